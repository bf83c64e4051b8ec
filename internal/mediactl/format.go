package mediactl

import (
	"fmt"
	"math"
	"time"
)

// FormatTime renders seconds as M:SS, or H:MM:SS from one hour up.
// NaN, infinite and negative inputs render as 0:00.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0:00"
	}
	total := int64(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatDuration is FormatTime for a time.Duration.
func FormatDuration(d time.Duration) string {
	return FormatTime(d.Seconds())
}
