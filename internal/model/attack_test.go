package model

import (
	"testing"
)

func TestAttackTypeValid(t *testing.T) {
	testCases := []struct {
		name       string
		attackType AttackType
		expected   bool
	}{
		{name: "udp flood", attackType: AttackTypeUDPFlood, expected: true},
		{name: "icmp flood", attackType: AttackTypeICMPFlood, expected: true},
		{name: "http flood", attackType: AttackTypeHTTPFlood, expected: true},
		{name: "syn flood", attackType: AttackTypeSYNFlood, expected: true},
		{name: "unknown type", attackType: "dns_amplification", expected: false},
		{name: "empty type", attackType: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := tc.attackType.Valid(); actual != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, actual)
			}
		})
	}
}

func TestAttackTypes(t *testing.T) {
	types := AttackTypes()
	if len(types) != 4 {
		t.Fatalf("expected 4 attack types, got %d", len(types))
	}
	for _, at := range types {
		if !at.Valid() {
			t.Errorf("AttackTypes returned invalid type %q", at)
		}
	}
}

func TestExperimentDetectionRate(t *testing.T) {
	testCases := []struct {
		name       string
		experiment Experiment
		expected   float64
	}{
		{
			name:       "half detected",
			experiment: Experiment{TotalAttacks: 4, DetectedAttacks: 2},
			expected:   0.5,
		},
		{
			name:       "all detected",
			experiment: Experiment{TotalAttacks: 3, DetectedAttacks: 3},
			expected:   1.0,
		},
		{
			name:       "no attacks",
			experiment: Experiment{},
			expected:   0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := tc.experiment.DetectionRate(); actual != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, actual)
			}
		})
	}
}
