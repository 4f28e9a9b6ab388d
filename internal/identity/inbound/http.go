package inbound

import (
	"context"

	"github.com/shandysiswandi/innkeep/internal/identity/usecase"
	"github.com/shandysiswandi/innkeep/internal/pkg/router"
)

type uc interface {
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	Logout(ctx context.Context, in usecase.LogoutInput) error
	RefreshToken(ctx context.Context, in usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error)

	PasswordForgot(ctx context.Context, in usecase.PasswordForgotInput) (*usecase.PasswordForgotOutput, error)
	PasswordVerify(ctx context.Context, in usecase.PasswordVerifyInput) (*usecase.PasswordVerifyOutput, error)
	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) error

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
	ProfileUpdate(ctx context.Context, in usecase.ProfileUpdateInput) error

	UserList(ctx context.Context, in usecase.UserListInput) (*usecase.UserListOutput, error)
	UserDetail(ctx context.Context, in usecase.UserDetailInput) (*usecase.UserDetailOutput, error)
	UserCreate(ctx context.Context, in usecase.UserCreateInput) error
	UserUpdate(ctx context.Context, in usecase.UserUpdateInput) error
	UserDelete(ctx context.Context, in usecase.UserDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Auth
	r.POST("/api/v1/identity/login", end.Login)
	r.POST("/api/v1/identity/logout", end.Logout)
	r.POST("/api/v1/identity/refresh", end.RefreshToken)

	// Password Recovery
	r.POST("/api/v1/identity/password/forgot", end.PasswordForgot)
	r.POST("/api/v1/identity/password/verify", end.PasswordVerify)
	r.POST("/api/v1/identity/password/reset", end.PasswordReset)

	// User Profile (need authenticated)
	r.GET("/api/v1/identity/profile", end.Profile)
	r.PUT("/api/v1/identity/profile", end.ProfileUpdate)

	// User Directory (need authenticated & authorization)
	r.GET("/api/v1/identity/users", end.UserList)
	r.GET("/api/v1/identity/users/:id", end.UserDetail)
	r.POST("/api/v1/identity/users", end.UserCreate)
	r.PUT("/api/v1/identity/users/:id", end.UserUpdate)
	r.DELETE("/api/v1/identity/users/:id", end.UserDelete)
}
