package repository

import (
	"gorm.io/gorm"

	"ddoslab/internal/model"
)

// PageQuery 分页查询参数
type PageQuery struct {
	Page     int
	PageSize int
	OrderBy  string
	Filters  map[string]interface{}
}

// AttackPageResult 攻击分页查询结果
type AttackPageResult struct {
	Total int64
	Items []*model.Attack
}

// AttackRepository DDoS攻击仓库接口
type AttackRepository interface {
	FindByID(id uint) (*model.Attack, error)
	FindAll(filters map[string]interface{}) ([]*model.Attack, error)
	FindByType(attackType model.AttackType) ([]*model.Attack, error)
	FindByModel(modelID uint) ([]*model.Attack, error)
	Create(attack *model.Attack) error
	Update(attack *model.Attack) error
	Delete(id uint) error
	FindPage(query PageQuery) (*AttackPageResult, error)
}

// GormAttackRepository 基于GORM的DDoS攻击仓库实现
type GormAttackRepository struct {
	db *gorm.DB
}

// NewAttackRepository 创建DDoS攻击仓库
func NewAttackRepository(db *gorm.DB) AttackRepository {
	return &GormAttackRepository{db: db}
}

// FindByID 根据ID查找攻击记录
func (r *GormAttackRepository) FindByID(id uint) (*model.Attack, error) {
	var attack model.Attack
	result := r.db.First(&attack, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &attack, nil
}

// FindAll 查找所有攻击记录
func (r *GormAttackRepository) FindAll(filters map[string]interface{}) ([]*model.Attack, error) {
	var attacks []*model.Attack
	query := r.db

	// 应用过滤条件
	if filters != nil {
		query = query.Where(filters)
	}

	result := query.Order("attack_id").Find(&attacks)
	if result.Error != nil {
		return nil, result.Error
	}
	return attacks, nil
}

// FindByType 根据攻击类型查找攻击记录
func (r *GormAttackRepository) FindByType(attackType model.AttackType) ([]*model.Attack, error) {
	var attacks []*model.Attack
	result := r.db.Where("attack_type = ?", attackType).Find(&attacks)
	if result.Error != nil {
		return nil, result.Error
	}
	return attacks, nil
}

// FindByModel 查找某个模型检出的攻击记录
func (r *GormAttackRepository) FindByModel(modelID uint) ([]*model.Attack, error) {
	var attacks []*model.Attack
	result := r.db.Where("detected_by_model_id = ?", modelID).Find(&attacks)
	if result.Error != nil {
		return nil, result.Error
	}
	return attacks, nil
}

// Create 创建攻击记录
func (r *GormAttackRepository) Create(attack *model.Attack) error {
	return r.db.Create(attack).Error
}

// Update 更新攻击记录
func (r *GormAttackRepository) Update(attack *model.Attack) error {
	return r.db.Save(attack).Error
}

// Delete 删除攻击记录
func (r *GormAttackRepository) Delete(id uint) error {
	return r.db.Delete(&model.Attack{}, id).Error
}

// FindPage 分页查询攻击记录
func (r *GormAttackRepository) FindPage(query PageQuery) (*AttackPageResult, error) {
	var attacks []*model.Attack
	var total int64

	// 构建查询条件
	db := r.db.Model(&model.Attack{})

	// 应用过滤条件
	if query.Filters != nil {
		for key, value := range query.Filters {
			db = db.Where(key, value)
		}
	}

	// 计算总数
	if err := db.Count(&total).Error; err != nil {
		return nil, err
	}

	// 设置默认值
	if query.Page <= 0 {
		query.Page = 1
	}

	if query.PageSize <= 0 {
		query.PageSize = 10
	}

	// 设置排序
	if query.OrderBy != "" {
		db = db.Order(query.OrderBy)
	} else {
		db = db.Order("timestamp DESC")
	}

	// 分页查询
	offset := (query.Page - 1) * query.PageSize
	if err := db.Offset(offset).Limit(query.PageSize).Find(&attacks).Error; err != nil {
		return nil, err
	}

	return &AttackPageResult{
		Total: total,
		Items: attacks,
	}, nil
}
