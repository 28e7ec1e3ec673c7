package response_models

import "github.com/google/uuid"

type LoginResponse struct {
	Token      string `json:"token"`
	FirstLogin bool   `json:"first_login"`
}

type ProfileResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Phone     string     `json:"phone"`
	Bio       string     `json:"bio,omitempty"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	Role      string     `json:"role"`
	GymID     *uuid.UUID `json:"gym_id,omitempty"`
}

// CredentialGrant is returned exactly once from a provisioning call.
// The caller displays it; the service does not re-derive it.
type CredentialGrant struct {
	Email             string `json:"email"`
	TemporaryPassword string `json:"temporary_password"`
}

type ProvisionedAccountResponse struct {
	Account     ProfileResponse `json:"account"`
	Credentials CredentialGrant `json:"credentials"`
}

// CoachResponse backs both the owner's roster and the member's
// find-a-coach view. TempPassword is only populated for the owner of
// the coach's gym while the coach has not signed in yet.
type CoachResponse struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	GymName      string    `json:"gym_name,omitempty"`
	GymLocation  string    `json:"gym_location,omitempty"`
	ClientCount  int64     `json:"client_count"`
	FirstLogin   bool      `json:"first_login"`
	TempPassword string    `json:"temp_password,omitempty"`
}

type OwnerSummary struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	GymName     string    `json:"gym_name"`
	GymLocation string    `json:"gym_location,omitempty"`
	FirstLogin  bool      `json:"first_login"`
}
