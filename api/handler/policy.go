package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"policy-portal/api/middleware"
	"policy-portal/api/response"
	"policy-portal/service"
	"policy-portal/types"
)

type PolicyHandler struct {
	policySvc     *service.PolicyService
	extractionSvc *service.ExtractionService
}

func NewPolicyHandler(policySvc *service.PolicyService, extractionSvc *service.ExtractionService) *PolicyHandler {
	return &PolicyHandler{
		policySvc:     policySvc,
		extractionSvc: extractionSvc,
	}
}

func (h *PolicyHandler) Create(c *gin.Context) {
	var in service.CreatePolicyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, "参数错误: 保单号/类型/起止日期必填")
		return
	}

	row, err := h.policySvc.CreatePolicy(c.Request.Context(), middleware.AgentID(c), in)
	if err != nil {
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, row)
}

// List 列表页：查询串绑定成 FilterCriteria 快照后整体丢给纯过滤器。
// 任何非法的范围参数都会在过滤层降级成"无约束"，这里不做校验。
func (h *PolicyHandler) List(c *gin.Context) {
	var criteria types.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		// 查询串绑定基本不会失败，兜底按无条件处理
		criteria = types.FilterCriteria{}
	}
	criteria.StatusBucket = types.StatusBucket(strings.ToUpper(strings.TrimSpace(string(criteria.StatusBucket))))

	result, err := h.policySvc.ListPolicies(c.Request.Context(), middleware.AgentID(c), criteria)
	if err != nil {
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, result)
}

func (h *PolicyHandler) Summary(c *gin.Context) {
	summary, err := h.policySvc.Summary(c.Request.Context(), middleware.AgentID(c))
	if err != nil {
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, summary)
}

func (h *PolicyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, "无效的保单 ID")
		return
	}

	row, err := h.policySvc.GetPolicy(c.Request.Context(), middleware.AgentID(c), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "保单不存在")
			return
		}
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, row)
}

func (h *PolicyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, "无效的保单 ID")
		return
	}

	if err := h.policySvc.DeletePolicy(c.Request.Context(), middleware.AgentID(c), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "保单不存在")
			return
		}
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, nil)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus 标记续保/退保，权威状态只在这里流转
func (h *PolicyHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, "无效的保单 ID")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "参数错误: status 必填")
		return
	}

	row, err := h.policySvc.UpdateStatus(c.Request.Context(), middleware.AgentID(c), id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "保单不存在")
			return
		}
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, row)
}

// Extract 上传保单 PDF，提取字段预填建单表单。
// 提取失败也返回 200 + success=false，前端提示手工录入即可。
func (h *PolicyHandler) Extract(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Fail(c, "文件上传失败或格式错误")
		return
	}
	files := form.File["file"]
	if len(files) == 0 {
		response.Fail(c, "未接收到文件，请检查参数名是否为 'file'")
		return
	}

	result := h.extractionSvc.ExtractFromDocument(c.Request.Context(), files[0])
	response.Success(c, result)
}
