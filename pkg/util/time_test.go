package util

import (
	"testing"
	"time"
)

func TestDateToStr(t *testing.T) {
	dt := time.Date(2024, time.June, 1, 23, 59, 59, 0, time.UTC)
	if got := DateToStr(dt); got != "2024-06-01" {
		t.Errorf("DateToStr: got %s, want 2024-06-01", got)
	}
}
