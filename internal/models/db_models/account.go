package db_models

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
	RoleCoach  Role = "coach"
	RoleMember Role = "member"
)

// Account is the application profile. The sign-in credential lives in
// auth_credentials under the same id; the two rows are written by
// separate steps during provisioning.
type Account struct {
	BaseModel
	Email     string `gorm:"uniqueIndex"`
	FullName  string
	Phone     string
	Bio       string
	AvatarURL string
	Role      Role       `gorm:"index"`
	GymID     *uuid.UUID `gorm:"index"`

	// FirstLogin stays true until the account replaces its temporary
	// password. TempPassword is retained for the creator's reveal
	// button and cleared on the first reset.
	FirstLogin   bool `gorm:"default:true"`
	TempPassword *string

	Gym *Gym `gorm:"foreignKey:GymID"`
}

// Actor is the authenticated identity every service call runs as,
// resolved once from the JWT middleware. Never ambient state.
type Actor struct {
	ID    uuid.UUID
	Role  Role
	GymID *uuid.UUID
}
