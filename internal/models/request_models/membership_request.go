package request_models

import "github.com/shopspring/decimal"

// UpdateMembershipRequest is the owner's escape hatch: any field may be
// overridden directly, dates and price included. Nil means "leave as is".
type UpdateMembershipRequest struct {
	Discipline       *string          `json:"discipline"`
	SubscriptionType *string          `json:"subscription_type"`
	MembershipStart  *string          `json:"membership_start"` // YYYY-MM-DD
	MembershipEnd    *string          `json:"membership_end"`   // YYYY-MM-DD
	PricePaid        *decimal.Decimal `json:"price_paid"`
	PromoPercentage  *decimal.Decimal `json:"promo_percentage"`
	CoachID          *string          `json:"coach_id"` // empty string detaches
}

type ReassignCoachRequest struct {
	CoachID string `json:"coach_id" binding:"required,uuid"`
}
