package service

import (
	"gorm.io/gorm"

	"ddoslab/internal/eventbus"
	"ddoslab/internal/repository"
)

// Services 所有服务的集合
type Services struct {
	AIModelService    AIModelService
	AttackService     AttackService
	ExperimentService ExperimentService
	EventBus          eventbus.EventBus
}

// NewServices 初始化所有服务
func NewServices(db *gorm.DB) *Services {
	// 创建仓库集合
	repos := repository.NewRepositories(db)

	// 事件总线，攻击记录通过它推给websocket订阅者
	bus := eventbus.NewEventBus()

	return &Services{
		AIModelService:    NewAIModelService(repos.AIModel),
		AttackService:     NewAttackService(repos.Attack, repos.AIModel, bus),
		ExperimentService: NewExperimentService(repos.Experiment, repos.ExperimentResult, repos.Attack, repos.AIModel, bus),
		EventBus:          bus,
	}
}
