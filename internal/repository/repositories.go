package repository

import (
	"gorm.io/gorm"
)

// Repositories 存储所有仓库的集合
type Repositories struct {
	AIModel          AIModelRepository
	Attack           AttackRepository
	Experiment       ExperimentRepository
	ExperimentResult ExperimentResultRepository
}

// NewRepositories 创建所有仓库的集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		AIModel:          NewAIModelRepository(db),
		Attack:           NewAttackRepository(db),
		Experiment:       NewExperimentRepository(db),
		ExperimentResult: NewExperimentResultRepository(db),
	}
}
