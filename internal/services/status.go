package services

import (
	"time"

	"alphagym/pkg/utils"
)

type StatusLabel string

const (
	StatusActive   StatusLabel = "active"
	StatusExpiring StatusLabel = "expiring"
	StatusExpired  StatusLabel = "expired"
)

// expiringWindowDays is how close to the end date a membership starts
// showing as expiring.
const expiringWindowDays = 7

type MembershipStatus struct {
	Label         StatusLabel
	DaysRemaining int
}

// ClassifyStatus maps an end date against today. Both dates are
// normalized to midnight first, so the time of day never changes the
// answer. A missing end date classifies as expired with zero days.
func ClassifyStatus(endDate *time.Time, today time.Time) MembershipStatus {
	if endDate == nil || endDate.IsZero() {
		return MembershipStatus{Label: StatusExpired, DaysRemaining: 0}
	}
	end := utils.Midnight(*endDate)
	day := utils.Midnight(today)
	days := int(end.Sub(day) / (24 * time.Hour))

	switch {
	case days < 0:
		return MembershipStatus{Label: StatusExpired, DaysRemaining: days}
	case days <= expiringWindowDays:
		return MembershipStatus{Label: StatusExpiring, DaysRemaining: days}
	default:
		return MembershipStatus{Label: StatusActive, DaysRemaining: days}
	}
}
