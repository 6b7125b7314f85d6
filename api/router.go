package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ddoslab/api/handler"
	"ddoslab/api/middleware"
	"ddoslab/config"
	"ddoslab/internal/scheduler"
	"ddoslab/internal/service"
)

// SetupRouter 设置API路由
func SetupRouter(cfg *config.Config, db *gorm.DB, services *service.Services, scheduler *scheduler.Scheduler) *gin.Engine {
	// 创建Gin路由
	router := gin.New()
	// 添加中间件
	router.Use(middleware.Logger())
	router.Use(middleware.Cors())
	router.Use(middleware.Recovery())

	// 健康检查不需要认证
	router.GET("/healthz", handler.Health(db))

	apiGroup := router.Group("/api/v1")
	authMiddleware := middleware.Auth(cfg.Token)
	apiGroup.Use(authMiddleware)
	{
		// AI模型
		apiGroup.POST("/models", handler.CreateModel(services.AIModelService))
		apiGroup.GET("/models", handler.GetModels(services.AIModelService))
		apiGroup.POST("/models/:id/active", handler.SetModelActive(services.AIModelService))
		apiGroup.DELETE("/models/:id", handler.DeleteModel(services.AIModelService))

		// 攻击记录
		apiGroup.POST("/attacks", handler.CreateAttack(services.AttackService))
		apiGroup.GET("/attacks", handler.GetAttacks(services.AttackService))
		apiGroup.GET("/attack_types", handler.GetAttackTypes(services.AttackService))

		// 实验
		apiGroup.POST("/experiments", handler.CreateExperiment(services.ExperimentService))
		apiGroup.GET("/experiments", handler.GetExperiments(services.ExperimentService))
		apiGroup.GET("/experiments/:id", handler.GetExperiment(services.ExperimentService))
		apiGroup.POST("/experiments/:id/finish", handler.FinishExperiment(services.ExperimentService))
		apiGroup.DELETE("/experiments/:id", handler.DeleteExperiment(services.ExperimentService))
		apiGroup.POST("/experiments/:id/results", handler.RecordResult(services.ExperimentService))
		apiGroup.GET("/experiments/:id/results", handler.GetResults(services.ExperimentService))

		// 演示数据
		apiGroup.POST("/seed_demo", handler.SeedDemo(db))

		// 调度器状态API
		apiGroup.GET("/scheduler_status", func(c *gin.Context) {
			c.JSON(200, scheduler.GetStatus())
		})
	}

	webGroup := router.Group("/web/api")
	webAuthMiddleware := middleware.Auth(cfg.Token)
	webGroup.Use(webAuthMiddleware)
	{
		// 前端用的只读接口
		webGroup.GET("/models", handler.GetModels(services.AIModelService))
		webGroup.GET("/attacks", handler.GetAttacks(services.AttackService))
		webGroup.GET("/attack_types", handler.GetAttackTypes(services.AttackService))
		webGroup.GET("/experiments", handler.GetExperiments(services.ExperimentService))
		webGroup.GET("/experiments/:id", handler.GetExperiment(services.ExperimentService))
		webGroup.GET("/experiments/:id/results", handler.GetResults(services.ExperimentService))

		// 攻击实时推送
		webGroup.GET("/attack_feed", handler.AttackFeed(services.EventBus))
	}

	return router
}
