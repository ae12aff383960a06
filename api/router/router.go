package router

import (
	"github.com/gin-gonic/gin"

	"policy-portal/api/handler"
	"policy-portal/api/middleware"
	"policy-portal/service"
)

func RegisterRoutes(r *gin.Engine, authSvc *service.AuthService, authH *handler.AuthHandler, policyH *handler.PolicyHandler, clientH *handler.ClientHandler) {
	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authH.Register)
			auth.POST("/login", authH.Login)
		}

		// 业务接口全部在鉴权后面
		authed := api.Group("", middleware.Auth(authSvc))
		{
			policies := authed.Group("/policies")
			{
				policies.POST("/create", policyH.Create)
				policies.GET("", policyH.List)
				policies.GET("/summary", policyH.Summary)
				policies.GET("/:id", policyH.Get)
				policies.PUT("/:id/status", policyH.UpdateStatus)
				policies.DELETE("/:id", policyH.Delete)
			}
			clients := authed.Group("/clients")
			{
				clients.POST("/create", clientH.Create)
				clients.GET("", clientH.List)
				clients.GET("/:id", clientH.Get)
				clients.DELETE("/:id", clientH.Delete)
			}
			documents := authed.Group("/documents")
			{
				documents.POST("/extract", policyH.Extract)
			}
		}
	}
}
