package repository

import (
	"gorm.io/gorm"

	"ddoslab/internal/model"
)

// AIModelRepository AI模型仓库接口
type AIModelRepository interface {
	FindByID(id uint) (*model.AIModel, error)
	FindByNameVersion(name, version string) (*model.AIModel, error)
	FindAll(filters map[string]interface{}) ([]*model.AIModel, error)
	FindActive() ([]*model.AIModel, error)
	Create(aiModel *model.AIModel) error
	Update(aiModel *model.AIModel) error
	Delete(id uint) error
}

// GormAIModelRepository 基于GORM的AI模型仓库实现
type GormAIModelRepository struct {
	db *gorm.DB
}

// NewAIModelRepository 创建AI模型仓库
func NewAIModelRepository(db *gorm.DB) AIModelRepository {
	return &GormAIModelRepository{db: db}
}

// FindByID 根据ID查找模型
func (r *GormAIModelRepository) FindByID(id uint) (*model.AIModel, error) {
	var aiModel model.AIModel
	result := r.db.First(&aiModel, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &aiModel, nil
}

// FindByNameVersion 根据名称和版本查找模型
func (r *GormAIModelRepository) FindByNameVersion(name, version string) (*model.AIModel, error) {
	var aiModel model.AIModel
	result := r.db.Where("name = ? AND version = ?", name, version).First(&aiModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return &aiModel, nil
}

// FindAll 查找所有模型
func (r *GormAIModelRepository) FindAll(filters map[string]interface{}) ([]*model.AIModel, error) {
	var aiModels []*model.AIModel
	query := r.db

	// 应用过滤条件
	if filters != nil {
		query = query.Where(filters)
	}

	result := query.Order("model_id").Find(&aiModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return aiModels, nil
}

// FindActive 查找所有启用的模型
func (r *GormAIModelRepository) FindActive() ([]*model.AIModel, error) {
	var aiModels []*model.AIModel
	result := r.db.Where("is_active = ?", true).Order("model_id").Find(&aiModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return aiModels, nil
}

// Create 创建模型
func (r *GormAIModelRepository) Create(aiModel *model.AIModel) error {
	return r.db.Create(aiModel).Error
}

// Update 更新模型
func (r *GormAIModelRepository) Update(aiModel *model.AIModel) error {
	return r.db.Save(aiModel).Error
}

// Delete 删除模型，引用它的攻击和实验会被置空而不是级联删除
func (r *GormAIModelRepository) Delete(id uint) error {
	return r.db.Delete(&model.AIModel{}, id).Error
}
