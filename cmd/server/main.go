package main

import (
	"log"
	"net/http"

	"ddoslab/api"
	"ddoslab/config"
	"ddoslab/internal/repository"
	"ddoslab/internal/scheduler"
	"ddoslab/internal/service"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. 初始化数据库，建表脚本重复执行是安全的
	db, err := repository.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 3. 按需插入演示数据
	if cfg.SeedDemo {
		if err := repository.SeedDemoData(db); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	// 4. 初始化服务
	services := service.NewServices(db)

	// 5. 初始化调度器
	newScheduler := scheduler.NewScheduler(services.ExperimentService)
	if err := newScheduler.Start(cfg.CronJobs); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// 6. 启动HTTP服务器
	router := api.SetupRouter(cfg, db, services, newScheduler)

	log.Printf("Starting server on %s", cfg.Server.Address)
	if err := http.ListenAndServe(cfg.Server.Address, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
