package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ddoslab/internal/model"
)

// newTestDB 创建内存数据库
// 内存库每个连接各有一份数据，限制为单连接
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db.Exec("PRAGMA foreign_keys = ON;")

	require.NoError(t, InitSchema(db, "sqlite"))
	return db
}

func createTestModel(t *testing.T, db *gorm.DB) *model.AIModel {
	t.Helper()
	aiModel := &model.AIModel{Name: "DeepPacket", Version: "1.2.0", IsActive: true}
	require.NoError(t, db.Create(aiModel).Error)
	return aiModel
}

func createTestAttack(t *testing.T, db *gorm.DB) *model.Attack {
	t.Helper()
	attack := &model.Attack{
		SourceIP:        "192.168.1.100",
		TargetIP:        "10.0.0.50",
		AttackType:      model.AttackTypeUDPFlood,
		PacketCount:     10000,
		DurationSeconds: 60,
		TargetPorts:     model.PortList{80, 443},
	}
	require.NoError(t, db.Create(attack).Error)
	return attack
}

func TestInitSchemaIdempotent(t *testing.T) {
	db := newTestDB(t)

	// newTestDB已经执行过一次，再执行两次都不应报错
	require.NoError(t, InitSchema(db, "sqlite"))
	require.NoError(t, InitSchema(db, "sqlite"))

	// 已有数据不能被重复初始化破坏
	createTestModel(t, db)
	require.NoError(t, InitSchema(db, "sqlite"))

	var count int64
	require.NoError(t, db.Model(&model.AIModel{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestInitSchemaUnsupportedDriver(t *testing.T) {
	db := newTestDB(t)
	require.Error(t, InitSchema(db, "oracle"))
}

func TestAttackPacketCountConstraint(t *testing.T) {
	db := newTestDB(t)

	bad := &model.Attack{
		SourceIP:        "192.168.1.1",
		TargetIP:        "10.0.0.1",
		AttackType:      model.AttackTypeUDPFlood,
		PacketCount:     0,
		DurationSeconds: 60,
	}
	require.Error(t, db.Create(bad).Error)

	good := &model.Attack{
		SourceIP:        "192.168.1.1",
		TargetIP:        "10.0.0.1",
		AttackType:      model.AttackTypeUDPFlood,
		PacketCount:     1,
		DurationSeconds: 60,
	}
	require.NoError(t, db.Create(good).Error)
}

func TestAttackDurationConstraint(t *testing.T) {
	db := newTestDB(t)

	// 上限一天
	bad := &model.Attack{
		SourceIP:        "192.168.1.1",
		TargetIP:        "10.0.0.1",
		AttackType:      model.AttackTypeSYNFlood,
		PacketCount:     100,
		DurationSeconds: 86401,
	}
	require.Error(t, db.Create(bad).Error)

	good := &model.Attack{
		SourceIP:        "192.168.1.1",
		TargetIP:        "10.0.0.1",
		AttackType:      model.AttackTypeSYNFlood,
		PacketCount:     100,
		DurationSeconds: 86400,
	}
	require.NoError(t, db.Create(good).Error)
}

func TestAIModelUniqueNameVersion(t *testing.T) {
	db := newTestDB(t)

	first := &model.AIModel{Name: "DeepPacket", Version: "1.2.0"}
	require.NoError(t, db.Create(first).Error)

	// 同名同版本应被拒绝
	duplicate := &model.AIModel{Name: "DeepPacket", Version: "1.2.0"}
	require.Error(t, db.Create(duplicate).Error)

	// 同名不同版本可以共存
	newVersion := &model.AIModel{Name: "DeepPacket", Version: "1.3.0"}
	require.NoError(t, db.Create(newVersion).Error)
}

func TestExperimentDetectedWithinTotal(t *testing.T) {
	db := newTestDB(t)

	bad := &model.Experiment{Name: "bad run", TotalAttacks: 5, DetectedAttacks: 6}
	require.Error(t, db.Create(bad).Error)

	good := &model.Experiment{Name: "good run", TotalAttacks: 5, DetectedAttacks: 5}
	require.NoError(t, db.Create(good).Error)
}

func TestModelDeleteDetachesAttack(t *testing.T) {
	db := newTestDB(t)

	aiModel := createTestModel(t, db)
	attack := createTestAttack(t, db)
	attack.DetectedByModelID = &aiModel.ModelID
	require.NoError(t, db.Save(attack).Error)

	// 删除模型不应删除攻击记录，只是把引用置空
	require.NoError(t, db.Delete(&model.AIModel{}, aiModel.ModelID).Error)

	var reloaded model.Attack
	require.NoError(t, db.First(&reloaded, attack.AttackID).Error)
	require.Nil(t, reloaded.DetectedByModelID)
}

func TestModelDeleteDetachesExperiment(t *testing.T) {
	db := newTestDB(t)

	aiModel := createTestModel(t, db)
	experiment := &model.Experiment{Name: "run", ModelID: &aiModel.ModelID}
	require.NoError(t, db.Create(experiment).Error)

	require.NoError(t, db.Delete(&model.AIModel{}, aiModel.ModelID).Error)

	var reloaded model.Experiment
	require.NoError(t, db.First(&reloaded, experiment.ExperimentID).Error)
	require.Nil(t, reloaded.ModelID)
}

func TestExperimentDeleteCascadesResults(t *testing.T) {
	db := newTestDB(t)

	attack := createTestAttack(t, db)
	experiment := &model.Experiment{Name: "run", TotalAttacks: 1, DetectedAttacks: 1}
	require.NoError(t, db.Create(experiment).Error)

	result := &model.ExperimentResult{
		ExperimentID:    experiment.ExperimentID,
		AttackID:        attack.AttackID,
		IsDetected:      true,
		Confidence:      0.9,
		DetectionTimeMs: 100,
	}
	require.NoError(t, db.Create(result).Error)

	require.NoError(t, db.Delete(&model.Experiment{}, experiment.ExperimentID).Error)

	var count int64
	require.NoError(t, db.Model(&model.ExperimentResult{}).Count(&count).Error)
	require.Equal(t, int64(0), count)

	// 攻击记录本身不受影响
	var attackCount int64
	require.NoError(t, db.Model(&model.Attack{}).Count(&attackCount).Error)
	require.Equal(t, int64(1), attackCount)
}

func TestAttackDeleteCascadesResults(t *testing.T) {
	db := newTestDB(t)

	attack := createTestAttack(t, db)
	experiment := &model.Experiment{Name: "run", TotalAttacks: 1, DetectedAttacks: 0}
	require.NoError(t, db.Create(experiment).Error)

	result := &model.ExperimentResult{
		ExperimentID: experiment.ExperimentID,
		AttackID:     attack.AttackID,
		IsDetected:   false,
		Confidence:   0.2,
	}
	require.NoError(t, db.Create(result).Error)

	require.NoError(t, db.Delete(&model.Attack{}, attack.AttackID).Error)

	var count int64
	require.NoError(t, db.Model(&model.ExperimentResult{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestResultUniquePerExperimentAttack(t *testing.T) {
	db := newTestDB(t)

	attack := createTestAttack(t, db)
	experiment := &model.Experiment{Name: "run", TotalAttacks: 1, DetectedAttacks: 1}
	require.NoError(t, db.Create(experiment).Error)

	first := &model.ExperimentResult{
		ExperimentID: experiment.ExperimentID,
		AttackID:     attack.AttackID,
		IsDetected:   true,
		Confidence:   0.9,
	}
	require.NoError(t, db.Create(first).Error)

	// 同一实验里同一攻击只能打分一次
	duplicate := &model.ExperimentResult{
		ExperimentID: experiment.ExperimentID,
		AttackID:     attack.AttackID,
		IsDetected:   false,
		Confidence:   0.1,
	}
	require.Error(t, db.Create(duplicate).Error)
}

func TestResultConfidenceBounds(t *testing.T) {
	db := newTestDB(t)

	attack := createTestAttack(t, db)
	experiment := &model.Experiment{Name: "run", TotalAttacks: 1, DetectedAttacks: 1}
	require.NoError(t, db.Create(experiment).Error)

	bad := &model.ExperimentResult{
		ExperimentID: experiment.ExperimentID,
		AttackID:     attack.AttackID,
		IsDetected:   true,
		Confidence:   1.5,
	}
	require.Error(t, db.Create(bad).Error)

	good := &model.ExperimentResult{
		ExperimentID: experiment.ExperimentID,
		AttackID:     attack.AttackID,
		IsDetected:   true,
		Confidence:   1.0,
	}
	require.NoError(t, db.Create(good).Error)
}

func TestResultDetectionTimeNonNegative(t *testing.T) {
	db := newTestDB(t)

	attack := createTestAttack(t, db)
	experiment := &model.Experiment{Name: "run", TotalAttacks: 1, DetectedAttacks: 0}
	require.NoError(t, db.Create(experiment).Error)

	bad := &model.ExperimentResult{
		ExperimentID:    experiment.ExperimentID,
		AttackID:        attack.AttackID,
		IsDetected:      false,
		Confidence:      0.1,
		DetectionTimeMs: -1,
	}
	require.Error(t, db.Create(bad).Error)
}
