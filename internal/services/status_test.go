package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	today := day("2024-05-15")

	end := func(s string) *time.Time {
		d := day(s)
		return &d
	}

	tests := []struct {
		name     string
		end      *time.Time
		label    StatusLabel
		daysLeft int
	}{
		{"well in the future", end("2024-05-25"), StatusActive, 10},
		{"eighth day out is still active", end("2024-05-23"), StatusActive, 8},
		{"window boundary", end("2024-05-22"), StatusExpiring, 7},
		{"ends today", end("2024-05-15"), StatusExpiring, 0},
		{"ended yesterday", end("2024-05-14"), StatusExpired, -1},
		{"long expired", end("2024-01-01"), StatusExpired, -135},
		{"no end date", nil, StatusExpired, 0},
		{"zero end date", &time.Time{}, StatusExpired, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStatus(tt.end, today)
			assert.Equal(t, tt.label, got.Label)
			assert.Equal(t, tt.daysLeft, got.DaysRemaining)
		})
	}
}

func TestClassifyStatusIgnoresTimeOfDay(t *testing.T) {
	end := time.Date(2024, 5, 25, 23, 59, 59, 0, time.UTC)
	lateToday := time.Date(2024, 5, 15, 22, 30, 0, 0, time.UTC)

	got := ClassifyStatus(&end, lateToday)
	assert.Equal(t, StatusActive, got.Label)
	assert.Equal(t, 10, got.DaysRemaining)
}
