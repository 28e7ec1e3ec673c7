package response_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MembershipResponse struct {
	ID       uuid.UUID `json:"id"`
	MemberID uuid.UUID `json:"member_id"`
	GymID    uuid.UUID `json:"gym_id"`

	MemberName  string `json:"member_name"`
	MemberPhone string `json:"member_phone,omitempty"`

	Discipline       string `json:"discipline,omitempty"`
	SubscriptionType string `json:"subscription_type"`

	MembershipStart string `json:"membership_start"`
	MembershipEnd   string `json:"membership_end"`

	PricePaid       decimal.Decimal `json:"price_paid"`
	PromoPercentage decimal.Decimal `json:"promo_percentage"`

	CoachID   *uuid.UUID `json:"coach_id,omitempty"`
	CoachName string     `json:"coach_name,omitempty"`

	Status        string `json:"status"`
	DaysRemaining int    `json:"days_remaining"`
}

// MyMembershipResponse adds the gym and coach detail a member sees on
// their own dashboard.
type MyMembershipResponse struct {
	MembershipResponse
	GymName     string `json:"gym_name"`
	GymLocation string `json:"gym_location,omitempty"`
	CoachPhone  string `json:"coach_phone,omitempty"`
	CoachBio    string `json:"coach_bio,omitempty"`
	CoachAvatar string `json:"coach_avatar,omitempty"`
}
