package services

import (
	"time"

	"github.com/shopspring/decimal"

	"alphagym/internal/models/db_models"
	"alphagym/pkg/utils"
)

var planMonths = map[db_models.SubscriptionType]int{
	db_models.SubMonthly:   1,
	db_models.SubTrimester: 3,
	db_models.SubSixMonths: 6,
	db_models.SubYearly:    12,
}

var oneHundred = decimal.NewFromInt(100)

// ComputeEndDate derives the membership end date from the plan length:
// calendar-month addition with the day of month clamped when the target
// month is shorter.
func ComputeEndDate(subType db_models.SubscriptionType, start time.Time) (time.Time, error) {
	months, ok := planMonths[subType]
	if !ok {
		return time.Time{}, utils.ErrInvalidSubscription
	}
	return utils.AddMonthsClamped(start, months), nil
}

// ComputeFinalPrice applies the promotion percentage to the base price.
// Negative inputs count as zero and the result is never negative.
func ComputeFinalPrice(basePrice, promoPercent decimal.Decimal) decimal.Decimal {
	if basePrice.IsNegative() {
		basePrice = decimal.Zero
	}
	if promoPercent.IsNegative() {
		promoPercent = decimal.Zero
	}
	if promoPercent.GreaterThan(oneHundred) {
		promoPercent = oneHundred
	}
	price := basePrice.Mul(oneHundred.Sub(promoPercent)).Div(oneHundred).Round(2)
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}
