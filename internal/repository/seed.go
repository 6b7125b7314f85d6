package repository

import (
	"log"

	"gorm.io/gorm"

	"ddoslab/internal/model"
)

// SeedDemoData 插入演示数据，库里已有模型数据时跳过
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.AIModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("已有数据，跳过演示数据插入")
		return nil
	}

	aiModels := []*model.AIModel{
		{Name: "DeepPacket", Version: "1.2.0", Description: "CNN for packet level analysis", IsActive: true},
		{Name: "FlowAnalyzer", Version: "2.1.5", Description: "RNN for flow level analysis", IsActive: true},
		{Name: "LegacyDetector", Version: "0.9.1", Description: "Legacy rule based detector", IsActive: false},
	}

	attacks := []*model.Attack{
		{SourceIP: "192.168.1.100", TargetIP: "10.0.0.50", AttackType: model.AttackTypeUDPFlood, PacketCount: 10000, DurationSeconds: 60, TargetPorts: model.PortList{80, 443}},
		{SourceIP: "fe80::1", TargetIP: "2001:db8::1", AttackType: model.AttackTypeHTTPFlood, PacketCount: 50000, DurationSeconds: 120, TargetPorts: model.PortList{8080}},
		{SourceIP: "172.16.0.10", TargetIP: "10.0.0.100", AttackType: model.AttackTypeSYNFlood, PacketCount: 75000, DurationSeconds: 30, TargetPorts: model.PortList{22, 3389}},
	}

	// 使用事务插入，失败时整体回滚
	return db.Transaction(func(tx *gorm.DB) error {
		for _, m := range aiModels {
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}

		for _, a := range attacks {
			if err := tx.Create(a).Error; err != nil {
				return err
			}
		}

		experiment := &model.Experiment{
			Name:            "Test Run #1 - DeepPacket",
			ModelID:         &aiModels[0].ModelID,
			TotalAttacks:    3,
			DetectedAttacks: 2,
		}
		if err := tx.Create(experiment).Error; err != nil {
			return err
		}

		results := []*model.ExperimentResult{
			{ExperimentID: experiment.ExperimentID, AttackID: attacks[0].AttackID, IsDetected: true, Confidence: 0.99, DetectionTimeMs: 150},
			{ExperimentID: experiment.ExperimentID, AttackID: attacks[1].AttackID, IsDetected: true, Confidence: 0.85, DetectionTimeMs: 220},
			{ExperimentID: experiment.ExperimentID, AttackID: attacks[2].AttackID, IsDetected: false, Confidence: 0.10, DetectionTimeMs: 50},
		}
		for _, r := range results {
			if err := tx.Create(r).Error; err != nil {
				return err
			}
		}

		log.Println("演示数据插入成功")
		return nil
	})
}
