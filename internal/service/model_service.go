package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ddoslab/internal/model"
	"ddoslab/internal/repository"
)

// RegisterModelReq 注册模型请求
type RegisterModelReq struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// AIModelService AI模型服务接口
type AIModelService interface {
	Register(req RegisterModelReq) (*model.AIModel, error)
	GetByID(id uint) (*model.AIModel, error)
	List(activeOnly bool) ([]*model.AIModel, error)
	SetActive(id uint, active bool) error
	Delete(id uint) error
}

type aiModelService struct {
	models repository.AIModelRepository
}

// NewAIModelService 创建AI模型服务
func NewAIModelService(models repository.AIModelRepository) AIModelService {
	return &aiModelService{models: models}
}

// Register 注册新模型，(name, version)不能重复
func (s *aiModelService) Register(req RegisterModelReq) (*model.AIModel, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("model name is required")
	}
	if req.Version == "" {
		return nil, fmt.Errorf("model version is required")
	}

	// 先查重，给调用方一个比约束冲突友好的错误
	existing, err := s.models.FindByNameVersion(req.Name, req.Version)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("model %s version %s already registered", req.Name, req.Version)
	}

	aiModel := &model.AIModel{
		Name:        req.Name,
		Version:     req.Version,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		aiModel.IsActive = *req.IsActive
	}

	if err := s.models.Create(aiModel); err != nil {
		return nil, err
	}
	return aiModel, nil
}

// GetByID 根据ID查找模型
func (s *aiModelService) GetByID(id uint) (*model.AIModel, error) {
	return s.models.FindByID(id)
}

// List 列出模型
func (s *aiModelService) List(activeOnly bool) ([]*model.AIModel, error) {
	if activeOnly {
		return s.models.FindActive()
	}
	return s.models.FindAll(nil)
}

// SetActive 启用或停用模型
func (s *aiModelService) SetActive(id uint, active bool) error {
	aiModel, err := s.models.FindByID(id)
	if err != nil {
		return err
	}
	aiModel.IsActive = active
	return s.models.Update(aiModel)
}

// Delete 删除模型
// 引用它的攻击和实验不会被删，引用字段会被数据库置空
func (s *aiModelService) Delete(id uint) error {
	if _, err := s.models.FindByID(id); err != nil {
		return err
	}
	return s.models.Delete(id)
}
