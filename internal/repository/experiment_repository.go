package repository

import (
	"gorm.io/gorm"

	"ddoslab/internal/model"
)

// ExperimentRepository 实验仓库接口
type ExperimentRepository interface {
	FindByID(id uint) (*model.Experiment, error)
	FindByName(name string) (*model.Experiment, error)
	FindAll(filters map[string]interface{}) ([]*model.Experiment, error)
	FindOpen() ([]*model.Experiment, error)
	Create(experiment *model.Experiment) error
	Update(experiment *model.Experiment) error
	Delete(id uint) error
}

// GormExperimentRepository 基于GORM的实验仓库实现
type GormExperimentRepository struct {
	db *gorm.DB
}

// NewExperimentRepository 创建实验仓库
func NewExperimentRepository(db *gorm.DB) ExperimentRepository {
	return &GormExperimentRepository{db: db}
}

// FindByID 根据ID查找实验
func (r *GormExperimentRepository) FindByID(id uint) (*model.Experiment, error) {
	var experiment model.Experiment
	result := r.db.First(&experiment, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &experiment, nil
}

// FindByName 根据名称查找实验
func (r *GormExperimentRepository) FindByName(name string) (*model.Experiment, error) {
	var experiment model.Experiment
	result := r.db.Where("name = ?", name).First(&experiment)
	if result.Error != nil {
		return nil, result.Error
	}
	return &experiment, nil
}

// FindAll 查找所有实验
func (r *GormExperimentRepository) FindAll(filters map[string]interface{}) ([]*model.Experiment, error) {
	var experiments []*model.Experiment
	query := r.db

	// 应用过滤条件
	if filters != nil {
		query = query.Where(filters)
	}

	result := query.Order("experiment_id").Find(&experiments)
	if result.Error != nil {
		return nil, result.Error
	}
	return experiments, nil
}

// FindOpen 查找所有未结束的实验
func (r *GormExperimentRepository) FindOpen() ([]*model.Experiment, error) {
	var experiments []*model.Experiment
	result := r.db.Where("end_time IS NULL").Order("experiment_id").Find(&experiments)
	if result.Error != nil {
		return nil, result.Error
	}
	return experiments, nil
}

// Create 创建实验
func (r *GormExperimentRepository) Create(experiment *model.Experiment) error {
	return r.db.Create(experiment).Error
}

// Update 更新实验
func (r *GormExperimentRepository) Update(experiment *model.Experiment) error {
	return r.db.Save(experiment).Error
}

// Delete 删除实验，关联的实验结果会被级联删除
func (r *GormExperimentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Experiment{}, id).Error
}
