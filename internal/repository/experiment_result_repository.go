package repository

import (
	"gorm.io/gorm"

	"ddoslab/internal/model"
)

// ResultStats 某个实验的结果统计
type ResultStats struct {
	Total    int64
	Detected int64
}

// ExperimentResultRepository 实验结果仓库接口
type ExperimentResultRepository interface {
	FindByID(id uint) (*model.ExperimentResult, error)
	FindByExperiment(experimentID uint) ([]*model.ExperimentResult, error)
	Create(result *model.ExperimentResult) error
	Delete(id uint) error
	CountByExperiment(experimentID uint) (*ResultStats, error)
}

// GormExperimentResultRepository 基于GORM的实验结果仓库实现
type GormExperimentResultRepository struct {
	db *gorm.DB
}

// NewExperimentResultRepository 创建实验结果仓库
func NewExperimentResultRepository(db *gorm.DB) ExperimentResultRepository {
	return &GormExperimentResultRepository{db: db}
}

// FindByID 根据ID查找实验结果
func (r *GormExperimentResultRepository) FindByID(id uint) (*model.ExperimentResult, error) {
	var result model.ExperimentResult
	if err := r.db.First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// FindByExperiment 查找某个实验的所有结果
func (r *GormExperimentResultRepository) FindByExperiment(experimentID uint) ([]*model.ExperimentResult, error) {
	var results []*model.ExperimentResult
	if err := r.db.Where("experiment_id = ?", experimentID).Order("result_id").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Create 创建实验结果，同一实验里同一攻击只能打分一次
func (r *GormExperimentResultRepository) Create(result *model.ExperimentResult) error {
	return r.db.Create(result).Error
}

// Delete 删除实验结果
func (r *GormExperimentResultRepository) Delete(id uint) error {
	return r.db.Delete(&model.ExperimentResult{}, id).Error
}

// CountByExperiment 统计某个实验的总数和检出数
func (r *GormExperimentResultRepository) CountByExperiment(experimentID uint) (*ResultStats, error) {
	var stats ResultStats

	query := r.db.Model(&model.ExperimentResult{}).Where("experiment_id = ?", experimentID)
	if err := query.Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.ExperimentResult{}).
		Where("experiment_id = ? AND is_detected = ?", experimentID, true).
		Count(&stats.Detected).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
