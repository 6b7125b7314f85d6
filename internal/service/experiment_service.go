package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ddoslab/internal/eventbus"
	"ddoslab/internal/model"
	"ddoslab/internal/repository"
)

// CreateExperimentReq 创建实验请求
type CreateExperimentReq struct {
	Name    string `json:"name"`
	ModelID *uint  `json:"model_id"`
}

// RecordResultReq 记录实验结果请求
type RecordResultReq struct {
	ExperimentID    uint    `json:"experiment_id"`
	AttackID        uint    `json:"attack_id"`
	IsDetected      bool    `json:"is_detected"`
	Confidence      float64 `json:"confidence"`
	DetectionTimeMs int     `json:"detection_time_ms"`
}

// ExperimentService 实验服务接口
type ExperimentService interface {
	Create(req CreateExperimentReq) (*model.Experiment, error)
	GetByID(id uint) (*model.Experiment, error)
	List() ([]*model.Experiment, error)
	Finish(id uint) (*model.Experiment, error)
	Delete(id uint) error
	RecordResult(req RecordResultReq) (*model.ExperimentResult, error)
	ListResults(experimentID uint) ([]*model.ExperimentResult, error)
	RecountStats(experimentID uint) (*model.Experiment, error)
	FinishStale(olderThan time.Duration) (int, error)
}

type experimentService struct {
	experiments repository.ExperimentRepository
	results     repository.ExperimentResultRepository
	attacks     repository.AttackRepository
	models      repository.AIModelRepository
	bus         eventbus.EventBus
}

// NewExperimentService 创建实验服务
func NewExperimentService(
	experiments repository.ExperimentRepository,
	results repository.ExperimentResultRepository,
	attacks repository.AttackRepository,
	models repository.AIModelRepository,
	bus eventbus.EventBus,
) ExperimentService {
	return &experimentService{
		experiments: experiments,
		results:     results,
		attacks:     attacks,
		models:      models,
		bus:         bus,
	}
}

// Create 创建实验，名称全局唯一
func (s *experimentService) Create(req CreateExperimentReq) (*model.Experiment, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("experiment name is required")
	}

	existing, err := s.experiments.FindByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("experiment %q already exists", req.Name)
	}

	if req.ModelID != nil {
		if _, err := s.models.FindByID(*req.ModelID); err != nil {
			return nil, fmt.Errorf("model_id %d not found", *req.ModelID)
		}
	}

	experiment := &model.Experiment{
		Name:    req.Name,
		ModelID: req.ModelID,
	}
	if err := s.experiments.Create(experiment); err != nil {
		return nil, err
	}
	return experiment, nil
}

// GetByID 根据ID查找实验
func (s *experimentService) GetByID(id uint) (*model.Experiment, error) {
	return s.experiments.FindByID(id)
}

// List 列出所有实验
func (s *experimentService) List() ([]*model.Experiment, error) {
	return s.experiments.FindAll(nil)
}

// Finish 结束实验并结算统计
func (s *experimentService) Finish(id uint) (*model.Experiment, error) {
	experiment, err := s.experiments.FindByID(id)
	if err != nil {
		return nil, err
	}
	if experiment.Finished() {
		return nil, fmt.Errorf("experiment %d already finished", id)
	}

	// 结束前把统计对齐一次
	if _, err := s.RecountStats(id); err != nil {
		return nil, err
	}

	experiment, err = s.experiments.FindByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	experiment.EndTime = &now
	if err := s.experiments.Update(experiment); err != nil {
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.NewBaseEvent(eventbus.EventExperimentFinished, map[string]interface{}{
			"experiment": experiment,
		}))
	}

	return experiment, nil
}

// Delete 删除实验，结果会被级联删除
func (s *experimentService) Delete(id uint) error {
	if _, err := s.experiments.FindByID(id); err != nil {
		return err
	}
	return s.experiments.Delete(id)
}

// RecordResult 记录一条实验结果并同步更新实验计数
func (s *experimentService) RecordResult(req RecordResultReq) (*model.ExperimentResult, error) {
	experiment, err := s.experiments.FindByID(req.ExperimentID)
	if err != nil {
		return nil, fmt.Errorf("experiment %d not found", req.ExperimentID)
	}
	if experiment.Finished() {
		return nil, fmt.Errorf("experiment %d already finished", req.ExperimentID)
	}

	if _, err := s.attacks.FindByID(req.AttackID); err != nil {
		return nil, fmt.Errorf("attack %d not found", req.AttackID)
	}

	if req.Confidence < 0.0 || req.Confidence > 1.0 {
		return nil, fmt.Errorf("confidence must be in [0.0, 1.0]")
	}
	if req.DetectionTimeMs < 0 {
		return nil, fmt.Errorf("detection_time_ms must be non-negative")
	}

	result := &model.ExperimentResult{
		ExperimentID:    req.ExperimentID,
		AttackID:        req.AttackID,
		IsDetected:      req.IsDetected,
		Confidence:      req.Confidence,
		DetectionTimeMs: req.DetectionTimeMs,
	}

	// 唯一约束兜底：同一实验同一攻击重复打分由数据库拒绝
	if err := s.results.Create(result); err != nil {
		return nil, err
	}

	// 计数跟着结果走
	if _, err := s.RecountStats(req.ExperimentID); err != nil {
		return nil, err
	}

	return result, nil
}

// ListResults 列出某个实验的所有结果
func (s *experimentService) ListResults(experimentID uint) ([]*model.ExperimentResult, error) {
	if _, err := s.experiments.FindByID(experimentID); err != nil {
		return nil, err
	}
	return s.results.FindByExperiment(experimentID)
}

// RecountStats 从experiment_results重算实验计数
// detected先于total更新会违反check约束，所以一次Update写两个字段
func (s *experimentService) RecountStats(experimentID uint) (*model.Experiment, error) {
	experiment, err := s.experiments.FindByID(experimentID)
	if err != nil {
		return nil, err
	}

	stats, err := s.results.CountByExperiment(experimentID)
	if err != nil {
		return nil, err
	}

	experiment.TotalAttacks = int(stats.Total)
	experiment.DetectedAttacks = int(stats.Detected)
	if err := s.experiments.Update(experiment); err != nil {
		return nil, err
	}

	return experiment, nil
}

// FinishStale 结束开始时间太久的实验，返回结束的数量
func (s *experimentService) FinishStale(olderThan time.Duration) (int, error) {
	open, err := s.experiments.FindOpen()
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-olderThan)
	finished := 0
	for _, experiment := range open {
		if experiment.StartTime.After(cutoff) {
			continue
		}
		if _, err := s.Finish(experiment.ExperimentID); err != nil {
			return finished, err
		}
		finished++
	}

	return finished, nil
}
