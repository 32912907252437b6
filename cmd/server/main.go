package main

import (
	"flag"
	"log"

	"k8s.io/klog/v2"

	"github.com/legaldraft/backend/config"
	"github.com/legaldraft/backend/internal/handler"
	"github.com/legaldraft/backend/internal/pkg/database"
	"github.com/legaldraft/backend/internal/pkg/llm"
	"github.com/legaldraft/backend/internal/repository"
	"github.com/legaldraft/backend/internal/router"
	"github.com/legaldraft/backend/internal/service"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()

	// 初始化数据库
	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化预置数据（模板/辖区要求/文章），模板一致性校验失败直接退出
	if err := service.InitDefaultData(db); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	// 初始化 Repository
	templateRepo := repository.NewTemplateRepository(db)
	jurisdictionRepo := repository.NewJurisdictionRequirementRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	// 初始化生成客户端，缺少凭证不致命，生成接口返回 503
	llmClient, err := llm.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize generation client: %v", err)
	}
	if !llmClient.Available() {
		klog.Warning("生成服务未配置，POST /api/generate 将返回 503")
	}

	// 初始化 Service
	templateService := service.NewTemplateService(templateRepo)
	generateService := service.NewGenerateService(templateRepo, jurisdictionRepo, docRepo, llmClient)
	docService := service.NewDocumentService(docRepo)
	blogService := service.NewBlogService(blogRepo)

	// 初始化 Handler
	templateHandler := handler.NewTemplateHandler(templateService)
	docHandler := handler.NewDocumentHandler(generateService, docService)
	blogHandler := handler.NewBlogHandler(blogService)

	// 设置路由
	r := router.Setup(cfg, templateHandler, docHandler, blogHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
