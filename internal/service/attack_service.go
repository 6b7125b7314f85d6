package service

import (
	"fmt"

	"ddoslab/internal/eventbus"
	"ddoslab/internal/model"
	"ddoslab/internal/repository"
	"ddoslab/internal/util"
)

// RecordAttackReq 记录攻击请求
type RecordAttackReq struct {
	SourceIP          string `json:"source_ip"`
	TargetIP          string `json:"target_ip"`
	AttackType        string `json:"attack_type"`
	PacketCount       int    `json:"packet_count"`
	DurationSeconds   int    `json:"duration_seconds"`
	TargetPorts       []int  `json:"target_ports"`
	DetectedByModelID *uint  `json:"detected_by_model_id"`
}

// AttackService DDoS攻击服务接口
type AttackService interface {
	Record(req RecordAttackReq) (*model.Attack, error)
	GetByID(id uint) (*model.Attack, error)
	ListPage(query repository.PageQuery) (*repository.AttackPageResult, error)
	Types() []model.AttackType
	Delete(id uint) error
}

type attackService struct {
	attacks repository.AttackRepository
	models  repository.AIModelRepository
	bus     eventbus.EventBus
}

// NewAttackService 创建DDoS攻击服务
func NewAttackService(attacks repository.AttackRepository, models repository.AIModelRepository, bus eventbus.EventBus) AttackService {
	return &attackService{attacks: attacks, models: models, bus: bus}
}

// Record 记录一次攻击
// 这里的校验比数据库约束严：IP必须是合法字面量，端口必须在合法范围内
func (s *attackService) Record(req RecordAttackReq) (*model.Attack, error) {
	if err := util.ValidateIPLiteral(req.SourceIP); err != nil {
		return nil, fmt.Errorf("invalid source_ip: %w", err)
	}
	if err := util.ValidateIPLiteral(req.TargetIP); err != nil {
		return nil, fmt.Errorf("invalid target_ip: %w", err)
	}

	attackType := model.StringToAttackType(req.AttackType)
	if !attackType.Valid() {
		return nil, fmt.Errorf("unsupported attack type: %s", req.AttackType)
	}

	if req.PacketCount <= 0 {
		return nil, fmt.Errorf("packet_count must be positive")
	}
	if req.DurationSeconds <= 0 || req.DurationSeconds > 86400 {
		return nil, fmt.Errorf("duration_seconds must be in (0, 86400]")
	}

	for _, port := range req.TargetPorts {
		if port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid target port: %d", port)
		}
	}

	// 指定了检出模型时，模型必须存在
	if req.DetectedByModelID != nil {
		if _, err := s.models.FindByID(*req.DetectedByModelID); err != nil {
			return nil, fmt.Errorf("detected_by_model_id %d not found", *req.DetectedByModelID)
		}
	}

	attack := &model.Attack{
		SourceIP:          req.SourceIP,
		TargetIP:          req.TargetIP,
		AttackType:        attackType,
		PacketCount:       req.PacketCount,
		DurationSeconds:   req.DurationSeconds,
		TargetPorts:       model.PortList(req.TargetPorts),
		DetectedByModelID: req.DetectedByModelID,
	}

	if err := s.attacks.Create(attack); err != nil {
		return nil, err
	}

	// 推给websocket订阅者
	if s.bus != nil {
		s.bus.Publish(eventbus.NewBaseEvent(eventbus.EventAttackRecorded, map[string]interface{}{
			"attack": attack,
		}))
	}

	return attack, nil
}

// GetByID 根据ID查找攻击记录
func (s *attackService) GetByID(id uint) (*model.Attack, error) {
	return s.attacks.FindByID(id)
}

// ListPage 分页查询攻击记录
func (s *attackService) ListPage(query repository.PageQuery) (*repository.AttackPageResult, error) {
	return s.attacks.FindPage(query)
}

// Types 返回所有支持的攻击类型
func (s *attackService) Types() []model.AttackType {
	return model.AttackTypes()
}

// Delete 删除攻击记录，关联的实验结果会被级联删除
func (s *attackService) Delete(id uint) error {
	if _, err := s.attacks.FindByID(id); err != nil {
		return err
	}
	return s.attacks.Delete(id)
}
