package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"policy-portal/api/middleware"
	"policy-portal/api/response"
	"policy-portal/service"
)

type ClientHandler struct {
	clientSvc *service.ClientService
}

func NewClientHandler(clientSvc *service.ClientService) *ClientHandler {
	return &ClientHandler{clientSvc: clientSvc}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var in service.CreateClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, "参数错误: 客户姓名必填")
		return
	}

	client, err := h.clientSvc.CreateClient(c.Request.Context(), middleware.AgentID(c), in)
	if err != nil {
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, client)
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientSvc.ListClients(c.Request.Context(), middleware.AgentID(c))
	if err != nil {
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, "无效的客户 ID")
		return
	}

	client, err := h.clientSvc.GetClient(c.Request.Context(), middleware.AgentID(c), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "客户不存在")
			return
		}
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, "无效的客户 ID")
		return
	}

	if err := h.clientSvc.DeleteClient(c.Request.Context(), middleware.AgentID(c), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "客户不存在")
			return
		}
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, nil)
}
