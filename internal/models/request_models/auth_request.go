package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
	Confirm     string `json:"confirm" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name"`
	Phone     *string `json:"phone"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}
