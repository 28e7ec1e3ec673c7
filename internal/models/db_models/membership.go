package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type SubscriptionType string

const (
	SubMonthly   SubscriptionType = "monthly"
	SubTrimester SubscriptionType = "trimester"
	SubSixMonths SubscriptionType = "6months"
	SubYearly    SubscriptionType = "yearly"
)

// Membership joins a member to their gym, plan and optional coach. One
// active membership per member; status is never stored, it is derived
// from MembershipEnd at read time.
type Membership struct {
	BaseModel
	MemberID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	GymID    uuid.UUID `gorm:"type:uuid;index"`

	Discipline       string
	SubscriptionType SubscriptionType

	MembershipStart time.Time `gorm:"type:date"`
	MembershipEnd   time.Time `gorm:"type:date"`

	PricePaid       decimal.Decimal `gorm:"type:numeric(10,2)"`
	PromoPercentage decimal.Decimal `gorm:"type:numeric(5,2)"`

	CoachID  *uuid.UUID     `gorm:"type:uuid;index"`
	Metadata datatypes.JSON `gorm:"type:jsonb"`

	Member *Account `gorm:"foreignKey:MemberID"`
	Gym    *Gym     `gorm:"foreignKey:GymID"`
	Coach  *Account `gorm:"foreignKey:CoachID"`
}
