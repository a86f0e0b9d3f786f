package catalog

import "testing"

func TestDefaultPrice(t *testing.T) {
	tests := []struct {
		level     string
		isStudent bool
		want      float64
	}{
		{"simple", true, 40},
		{"medium", true, 90},
		{"complex", true, 165},
		{"simple", false, 85},
		{"medium", false, 190},
		{"complex", false, 380},
		{"unknown", true, 70},
		{"unknown", false, 150},
		{"", false, 150},
	}

	for _, tt := range tests {
		got := DefaultPrice(tt.level, tt.isStudent)
		if got != tt.want {
			t.Errorf("DefaultPrice(%q, %v) = %v, want %v", tt.level, tt.isStudent, got, tt.want)
		}
	}
}

func TestErrorPrice(t *testing.T) {
	if got := errorPrice(true); got != 75 {
		t.Errorf("errorPrice(true) = %v, want 75", got)
	}
	if got := errorPrice(false); got != 150 {
		t.Errorf("errorPrice(false) = %v, want 150", got)
	}
}
