package model

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// PortList 目标端口列表，在PostgreSQL里存为INTEGER[]
type PortList []int

// Value 序列化为数组字面量，如 {80,443}
func (p PortList) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}

	parts := make([]string, 0, len(p))
	for _, port := range p {
		parts = append(parts, strconv.Itoa(port))
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

// Scan 解析数组字面量
func (p *PortList) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("unsupported type for PortList: %T", value)
	}

	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "{") || !strings.HasSuffix(raw, "}") {
		return fmt.Errorf("invalid array literal: %q", raw)
	}

	raw = strings.Trim(raw, "{}")
	if raw == "" {
		*p = PortList{}
		return nil
	}

	parts := strings.Split(raw, ",")
	ports := make(PortList, 0, len(parts))
	for _, part := range parts {
		port, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid port in array literal %q: %w", raw, err)
		}
		ports = append(ports, port)
	}

	*p = ports
	return nil
}

// GormDBDataType 根据数据库方言选择列类型
func (PortList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "integer[]"
	}
	// sqlite等没有数组类型，存为文本
	return "text"
}
