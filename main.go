package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"policy-portal/api/handler"
	"policy-portal/api/router"
	"policy-portal/job"
	"policy-portal/logic/chat"
	"policy-portal/service"
	"policy-portal/storage/postgres"
	"policy-portal/vars"
)

func main() {
	ctx := context.Background()

	// 1. 初始化 DB
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		vars.PGHOST, vars.PGUSER, vars.PGPWD, vars.PGDB, vars.PGPORT)
	db, err := postgres.InitDB(dsn)
	if err != nil {
		panic(err)
	}

	// 2. 初始化 Repo
	agentRepo := postgres.NewAgentRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	policyRepo := postgres.NewPolicyRepo(db)

	// 启动定时任务（每日过期状态流转）
	job.StartCronJob(policyRepo)

	// 3. 初始化 LLM Model（保单 PDF 提取用）
	model := chat.CreateOllamaChatModel(ctx, vars.OLLAMA_PATH, vars.QWEN3B)

	// 4. 初始化 Service (业务层)
	authSvc := service.NewAuthService(agentRepo)
	clientSvc := service.NewClientService(clientRepo)
	policySvc := service.NewPolicyService(policyRepo, clientRepo, time.Now)
	extractionSvc := service.NewExtractionService(model, time.Now)

	// 5. 初始化 Handler (API 层)
	authHandler := handler.NewAuthHandler(authSvc)
	clientHandler := handler.NewClientHandler(clientSvc)
	policyHandler := handler.NewPolicyHandler(policySvc, extractionSvc)

	// 6. 启动 Web Server
	r := gin.Default()
	router.RegisterRoutes(r, authSvc, authHandler, policyHandler, clientHandler)

	log.Println("Server running on", vars.HTTPADDR)
	if err := r.Run(vars.HTTPADDR); err != nil {
		panic(err)
	}
}
