package model

// ExperimentResult 实验结果，一次实验里每个攻击最多打分一次
type ExperimentResult struct {
	ResultID        uint    `json:"result_id" gorm:"column:result_id;primaryKey"`
	ExperimentID    uint    `json:"experiment_id" gorm:"column:experiment_id;not null;uniqueIndex:idx_experiment_results_experiment_attack"`
	AttackID        uint    `json:"attack_id" gorm:"column:attack_id;not null;uniqueIndex:idx_experiment_results_experiment_attack"`
	IsDetected      bool    `json:"is_detected" gorm:"not null"`
	Confidence      float64 `json:"confidence" gorm:"check:chk_experiment_results_confidence,confidence >= 0.0 AND confidence <= 1.0"`
	DetectionTimeMs int     `json:"detection_time_ms" gorm:"column:detection_time_ms;check:chk_experiment_results_detection_time,detection_time_ms >= 0"`

	Experiment *Experiment `json:"-" gorm:"foreignKey:ExperimentID;references:ExperimentID;constraint:OnDelete:CASCADE"`
	Attack     *Attack     `json:"-" gorm:"foreignKey:AttackID;references:AttackID;constraint:OnDelete:CASCADE"`
}

// TableName 指定表名
func (ExperimentResult) TableName() string {
	return "experiment_results"
}
