package model

import (
	"time"
)

// AttackType 攻击类型，对应数据库的enum attack_type
// 新增类型需要修改DDL，不能直接插入新值
type AttackType string

const (
	AttackTypeUDPFlood  AttackType = "udp_flood"
	AttackTypeICMPFlood AttackType = "icmp_flood"
	AttackTypeHTTPFlood AttackType = "http_flood"
	AttackTypeSYNFlood  AttackType = "syn_flood"
)

// AttackTypes 返回所有支持的攻击类型
func AttackTypes() []AttackType {
	return []AttackType{
		AttackTypeUDPFlood,
		AttackTypeICMPFlood,
		AttackTypeHTTPFlood,
		AttackTypeSYNFlood,
	}
}

// Valid 判断攻击类型是否在枚举范围内
func (t AttackType) Valid() bool {
	switch t {
	case AttackTypeUDPFlood, AttackTypeICMPFlood, AttackTypeHTTPFlood, AttackTypeSYNFlood:
		return true
	}
	return false
}

// StringToAttackType string转AttackType
func StringToAttackType(str string) AttackType {
	return AttackType(str)
}

// Attack DDoS攻击记录模型
type Attack struct {
	AttackID          uint       `json:"attack_id" gorm:"column:attack_id;primaryKey"`
	SourceIP          string     `json:"source_ip" gorm:"type:varchar(45);not null"`
	TargetIP          string     `json:"target_ip" gorm:"type:varchar(45);not null"`
	AttackType        AttackType `json:"attack_type" gorm:"type:attack_type;not null"`
	PacketCount       int        `json:"packet_count" gorm:"check:chk_ddos_attacks_packet_count,packet_count > 0"`
	DurationSeconds   int        `json:"duration_seconds" gorm:"check:chk_ddos_attacks_duration,duration_seconds > 0 AND duration_seconds <= 86400"` // 上限一天
	Timestamp         time.Time  `json:"timestamp" gorm:"column:timestamp;autoCreateTime"`
	TargetPorts       PortList   `json:"target_ports" gorm:"column:target_ports"`
	DetectedByModelID *uint      `json:"detected_by_model_id" gorm:"column:detected_by_model_id"`

	DetectedBy *AIModel `json:"-" gorm:"foreignKey:DetectedByModelID;references:ModelID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName 指定表名
func (Attack) TableName() string {
	return "ddos_attacks"
}
