package request_models

import "github.com/shopspring/decimal"

// CreateOwnerRequest provisions an owner account together with its gym.
type CreateOwnerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	GymName  string `json:"gym_name" binding:"required"`
	Location string `json:"location"`
}

type CreateCoachRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

// CreateMemberRequest provisions a member account and its initial
// membership in one flow.
type CreateMemberRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`

	Discipline       string          `json:"discipline"`
	SubscriptionType string          `json:"subscription_type" binding:"required"`
	BasePrice        decimal.Decimal `json:"base_price"`
	PromoPercentage  decimal.Decimal `json:"promo_percentage"`
	CoachID          *string         `json:"coach_id"`
}
