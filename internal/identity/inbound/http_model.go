package inbound

import "time"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type PasswordForgotRequest struct {
	Identifier string `json:"identifier"`
	Channel    string `json:"channel"`
}

type PasswordForgotResponse struct {
	Method     string `json:"method"`
	Identifier string `json:"identifier"`
	ExpiresIn  int64  `json:"expires_in"`
}

func (PasswordForgotResponse) Message() string {
	return "A verification code has been sent."
}

type PasswordVerifyRequest struct {
	Identifier string `json:"identifier"`
	Code       string `json:"code"`
}

type PasswordVerifyResponse struct {
	ResetToken string `json:"reset_token"`
	ExpiresIn  int64  `json:"expires_in"`
}

type PasswordResetRequest struct {
	Identifier  string `json:"identifier"`
	ResetToken  string `json:"reset_token"`
	NewPassword string `json:"new_password"`
}

type PasswordResetResponse struct{}

func (PasswordResetResponse) Message() string {
	return "Your password has been updated. You can now sign in."
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type ProfileResponse struct {
	ID       int64  `json:"id,string"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	FullName string `json:"full_name"`
	Status   string `json:"status"`
}

type UserResponse struct {
	ID       int64     `json:"id,string"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
	FullName string    `json:"full_name"`
	Status   string    `json:"status"`
	UpdateAt time.Time `json:"updated_at"`
}

type UsersResponse struct {
	Page  int32          `json:"page"`
	Size  int32          `json:"size"`
	Total int64          `json:"total"`
	Users []UserResponse `json:"users"`
}

type UserDetailResponse struct {
	User UserResponse `json:"user"`
}

type UserCreateRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Status   int16  `json:"status"`
}

type UserUpdateRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Status   int16  `json:"status"`
}
