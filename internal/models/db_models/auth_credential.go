package db_models

// AuthCredential is the sign-in identity. It shares its id with the
// Account row that follows it; a credential without an account is an
// orphan from a failed provisioning run and cannot log in.
type AuthCredential struct {
	BaseModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
}

func (AuthCredential) TableName() string {
	return "auth_credentials"
}
