package db_models

import "github.com/google/uuid"

// Gym is the tenant boundary. Every coach and member carries its id;
// owners reach it through the OwnerID backlink instead.
type Gym struct {
	BaseModel
	Name     string
	Location string
	OwnerID  uuid.UUID `gorm:"type:uuid;uniqueIndex"`
}
