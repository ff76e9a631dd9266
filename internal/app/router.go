package app

import (
	"time"

	"nurvo_backend/docs"
	"nurvo_backend/internal/config"
	"nurvo_backend/internal/middleware"
	"nurvo_backend/pkg/monitoring"
	"nurvo_backend/pkg/security"
	"nurvo_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/", c.health.Banner)

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/signup", c.auth.Signup)
		public.POST("/auth", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		dialogues := authGroup.Group("/dialogues")
		{
			dialogues.GET("", c.dialogue.Overview)
			dialogues.GET("/:chapterId", c.dialogue.Chapter)
			dialogues.POST("/:chapterId", c.dialogue.Bookmark)
			dialogues.GET("/:chapterId/:conversationId", c.dialogue.Sentence)
			dialogues.GET("/:chapterId/:conversationId/step2", c.dialogue.SecondStep)
		}

		bookmarks := authGroup.Group("/bookmark")
		{
			bookmarks.GET("", c.bookmark.List)
			bookmarks.POST("", c.bookmark.Save)
			bookmarks.DELETE("/:conversationId", c.bookmark.Delete)
		}

		edu := authGroup.Group("/edu")
		{
			edu.GET("", c.edu.Completed)
			edu.POST("", c.edu.Record)
			edu.GET("/today", c.edu.Today)
			edu.GET("/steps", c.edu.Steps)
		}

		attendance := authGroup.Group("/attendance")
		{
			attendance.GET("", c.attendance.List)
			attendance.POST("", c.attendance.Record)
		}

		authGroup.GET("/user", c.user.Me)
		authGroup.PATCH("/user/progress", c.user.UpdateProgress)
		authGroup.GET("/users", c.user.List)
	}
}
