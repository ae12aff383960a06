package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"policy-portal/api/response"
	"policy-portal/service"
)

type AuthHandler struct {
	authSvc *service.AuthService
}

func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "参数错误: 邮箱和密码(至少8位)必填")
		return
	}

	agent, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Fail(c, "该邮箱已被注册")
			return
		}
		response.Fail(c, err.Error())
		return
	}

	response.Success(c, map[string]any{
		"agent_id":  agent.ID,
		"email":     agent.Email,
		"full_name": agent.FullName,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "参数错误: 邮箱和密码必填")
		return
	}

	token, agent, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuth) {
			response.AuthFail(c, "邮箱或密码错误")
			return
		}
		response.Fail(c, err.Error())
		return
	}

	response.Success(c, map[string]any{
		"token":     token,
		"agent_id":  agent.ID,
		"full_name": agent.FullName,
	})
}
