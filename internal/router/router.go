package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/legaldraft/backend/config"
	"github.com/legaldraft/backend/internal/handler"
)

func Setup(
	cfg *config.Config,
	templateHandler *handler.TemplateHandler,
	docHandler *handler.DocumentHandler,
	blogHandler *handler.BlogHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(RequestID())

	api := r.Group("/api")
	{
		api.GET("/templates", templateHandler.List)
		api.GET("/templates/:type", templateHandler.Get)
		api.GET("/jurisdictions", templateHandler.Jurisdictions)

		api.POST("/generate", docHandler.Generate)

		docs := api.Group("/documents")
		{
			docs.GET("/:id", docHandler.Get)
			docs.POST("/:id/download", docHandler.Download)
			docs.GET("/:id/export", docHandler.Export)
		}

		api.GET("/blog", blogHandler.List)
		api.GET("/blog/:slug", blogHandler.Get)
	}

	return r
}
