package mediactl

import (
	"math"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{599.9, "9:59"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3661, "1:01:01"},
		{36000, "10:00:00"},
		{math.NaN(), "0:00"},
		{math.Inf(1), "0:00"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(90 * time.Second); got != "1:30" {
		t.Errorf("FormatDuration(90s) = %q, want %q", got, "1:30")
	}
}
