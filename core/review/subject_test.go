package review

import "testing"

// =============================================================================
// ROI Tests
// =============================================================================

func TestROI(t *testing.T) {
	tests := []struct {
		name     string
		cost     float64
		revenue  float64
		expected float64
	}{
		{"fifty percent gain", 1000, 1500, 50},
		{"break even", 2000, 2000, 0},
		{"total loss", 1000, 0, -100},
		{"zero cost", 0, 5000, 0},
		{"negative cost", -100, 5000, 0},
		{"doubled", 500, 1000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Subject{ActualCost: tt.cost, Revenue: tt.revenue}
			if got := s.ROI(); got != tt.expected {
				t.Errorf("ROI() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormatROI(t *testing.T) {
	tests := []struct {
		roi      float64
		expected string
	}{
		{50, "+50.0%"},
		{0, "+0.0%"},
		{-100, "-100.0%"},
		{33.333, "+33.3%"},
	}
	for _, tt := range tests {
		if got := FormatROI(tt.roi); got != tt.expected {
			t.Errorf("FormatROI(%v) = %q, want %q", tt.roi, got, tt.expected)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1500000, "1,500,000"},
		{120000000, "120,000,000"},
		{-45000, "-45,000"},
		{1234.7, "1,235"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.amount); got != tt.expected {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.expected)
		}
	}
}

func TestSubjectValidate(t *testing.T) {
	s := Subject{ID: "p1", Name: "Pilot"}
	if err := s.Validate(); err != nil {
		t.Errorf("valid subject rejected: %v", err)
	}

	if err := (&Subject{Name: "no id"}).Validate(); err == nil {
		t.Error("expected error for missing id")
	}
	if err := (&Subject{ID: "no-name"}).Validate(); err == nil {
		t.Error("expected error for missing name")
	}
}
