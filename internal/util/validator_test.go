package util

import (
	"testing"
)

func TestMatchesIPClass(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "ipv4", input: "192.168.1.1", expected: true},
		{name: "ipv6", input: "fe80::1", expected: true},
		{name: "full ipv6", input: "2001:db8::1", expected: true},
		{name: "garbage", input: "not-an-ip!", expected: false},
		{name: "hostname", input: "attacker.example.com", expected: false},
		{name: "empty", input: "", expected: false},
		// 字符类比真正的IP宽松，这些也会通过
		{name: "hex only", input: "aaaa", expected: true},
		{name: "trailing dot", input: "1.2.3.", expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := MatchesIPClass(tc.input); actual != tc.expected {
				t.Errorf("MatchesIPClass(%q): expected %v, got %v", tc.input, tc.expected, actual)
			}
		})
	}
}

func TestValidateIPLiteral(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "ipv4", input: "192.168.1.1"},
		{name: "ipv6 link local", input: "fe80::1"},
		{name: "ipv6 documentation", input: "2001:db8::1"},
		{name: "garbage", input: "not-an-ip!", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		// 通过字符类但不是合法IP，严格校验要拦住
		{name: "hex only", input: "aaaa", wantErr: true},
		{name: "trailing dot", input: "1.2.3.", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateIPLiteral(tc.input)
			if tc.wantErr && err == nil {
				t.Errorf("ValidateIPLiteral(%q): expected error, got nil", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("ValidateIPLiteral(%q): unexpected error: %v", tc.input, err)
			}
		})
	}
}
