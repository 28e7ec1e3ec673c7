package response_models

import "github.com/google/uuid"

// OwnerDashboard mirrors the owner landing view: status KPIs over the
// gym's members plus the five most recent memberships.
type OwnerDashboard struct {
	TotalMembers    int64                `json:"total_members"`
	ActiveMembers   int64                `json:"active_members"`
	ExpiringMembers int64                `json:"expiring_members"`
	ExpiredMembers  int64                `json:"expired_members"`
	TotalCoaches    int64                `json:"total_coaches"`
	RecentMembers   []MembershipResponse `json:"recent_members"`
}

type GymRollup struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location,omitempty"`
	OwnerName    string    `json:"owner_name,omitempty"`
	CoachesCount int64     `json:"coaches_count"`
	MembersCount int64     `json:"members_count"`
	ActiveCount  int64     `json:"active_count"`
}

// AdminAnalytics is the platform-wide rollup on the admin screen.
type AdminAnalytics struct {
	TotalGyms          int64       `json:"total_gyms"`
	TotalOwners        int64       `json:"total_owners"`
	TotalCoaches       int64       `json:"total_coaches"`
	TotalMembers       int64       `json:"total_members"`
	TotalMemberships   int64       `json:"total_memberships"`
	ActiveMemberships  int64       `json:"active_memberships"`
	ExpiredMemberships int64       `json:"expired_memberships"`
	Gyms               []GymRollup `json:"gyms_list"`
}
