package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alphagym/internal/models/db_models"
	"alphagym/pkg/utils"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeEndDate(t *testing.T) {
	tests := []struct {
		name    string
		subType db_models.SubscriptionType
		start   string
		want    string
	}{
		{"monthly plain", db_models.SubMonthly, "2024-03-01", "2024-04-01"},
		{"monthly clamps into leap february", db_models.SubMonthly, "2024-01-31", "2024-02-29"},
		{"monthly clamps into short february", db_models.SubMonthly, "2025-01-31", "2025-02-28"},
		{"trimester", db_models.SubTrimester, "2024-03-15", "2024-06-15"},
		{"six months across year end", db_models.SubSixMonths, "2024-08-31", "2025-02-28"},
		{"yearly from leap day", db_models.SubYearly, "2024-02-29", "2025-02-28"},
		{"yearly plain", db_models.SubYearly, "2024-03-01", "2025-03-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeEndDate(tt.subType, day(tt.start))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}

func TestComputeEndDateUnknownPlan(t *testing.T) {
	_, err := ComputeEndDate("weekly", day("2024-03-01"))
	assert.ErrorIs(t, err, utils.ErrInvalidSubscription)
}

func TestComputeFinalPrice(t *testing.T) {
	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	tests := []struct {
		name  string
		base  string
		promo string
		want  string
	}{
		{"no promo is identity", "100", "0", "100"},
		{"ten percent off", "300", "10", "270"},
		{"full promo is free", "100", "100", "0"},
		{"rounds to cents", "59.99", "15", "50.99"},
		{"negative base counts as zero", "-50", "10", "0"},
		{"negative promo counts as zero", "80", "-5", "80"},
		{"promo above hundred clamps", "80", "250", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFinalPrice(d(tt.base), d(tt.promo))
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestComputeFinalPriceNeverExceedsBase(t *testing.T) {
	base := decimal.RequireFromString("120.50")
	for promo := 0; promo <= 100; promo += 5 {
		got := ComputeFinalPrice(base, decimal.NewFromInt(int64(promo)))
		assert.True(t, got.LessThanOrEqual(base))
		assert.False(t, got.IsNegative())
	}
}
