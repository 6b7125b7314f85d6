package model

import (
	"time"
)

// Experiment 检测实验，一次实验针对一个模型跑一批攻击
type Experiment struct {
	ExperimentID    uint       `json:"experiment_id" gorm:"column:experiment_id;primaryKey"`
	Name            string     `json:"name" gorm:"type:varchar(255);not null;unique"`
	StartTime       time.Time  `json:"start_time" gorm:"autoCreateTime"`
	EndTime         *time.Time `json:"end_time"`
	TotalAttacks    int        `json:"total_attacks" gorm:"check:chk_experiments_total_attacks,total_attacks >= 0"`
	DetectedAttacks int        `json:"detected_attacks" gorm:"check:chk_experiments_detected_attacks,detected_attacks >= 0 AND detected_attacks <= total_attacks"`
	ModelID         *uint      `json:"model_id" gorm:"column:model_id"`

	Model *AIModel `json:"-" gorm:"foreignKey:ModelID;references:ModelID;constraint:OnDelete:SET NULL"`
}

// TableName 指定表名
func (Experiment) TableName() string {
	return "experiments"
}

// Finished 实验是否已结束
func (e *Experiment) Finished() bool {
	return e.EndTime != nil
}

// DetectionRate 检出率，实验没有攻击时返回0
func (e *Experiment) DetectionRate() float64 {
	if e.TotalAttacks == 0 {
		return 0
	}
	return float64(e.DetectedAttacks) / float64(e.TotalAttacks)
}
