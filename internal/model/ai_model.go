package model

import (
	"time"
)

// AIModel AI检测模型
type AIModel struct {
	ModelID     uint      `json:"model_id" gorm:"column:model_id;primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_ai_models_name_version"`
	Version     string    `json:"version" gorm:"type:varchar(50);not null;uniqueIndex:idx_ai_models_name_version"`
	Description string    `json:"description" gorm:"type:text"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 指定表名
func (AIModel) TableName() string {
	return "ai_models"
}
