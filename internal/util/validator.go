package util

import (
	"fmt"
	"net/netip"
	"regexp"
)

// ipLiteralClass 数据库里source_ip的check约束用的字符类
// 这个类比真正的IP字面量宽松，比如"aaaa"也能通过
var ipLiteralClass = regexp.MustCompile(`^[0-9a-fA-F.:]+$`)

// MatchesIPClass 判断字符串是否满足schema的字符类约束
func MatchesIPClass(s string) bool {
	return ipLiteralClass.MatchString(s)
}

// ValidateIPLiteral 严格校验IPv4/IPv6字面量
// API写入走这里，比数据库约束更严
func ValidateIPLiteral(s string) error {
	if s == "" {
		return fmt.Errorf("ip address cannot be empty")
	}
	if !MatchesIPClass(s) {
		return fmt.Errorf("invalid characters in ip address: %q", s)
	}
	if _, err := netip.ParseAddr(s); err != nil {
		return fmt.Errorf("invalid ip address %q: %w", s, err)
	}
	return nil
}
