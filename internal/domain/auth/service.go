package auth

import (
	"context"
)

type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair.
	// The refresh token is returned separately for cookie delivery.
	Login(ctx context.Context, req LoginRequest) (resp LoginResponse, refreshToken string, refreshExpiresAt int64, err error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes the current access and refresh tokens
	Logout(ctx context.Context, accessToken, refreshToken string) error

	// ChangePassword verifies the current password and stores a new hash
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error

	// Me returns the session identity for the authenticated user
	Me(ctx context.Context, userID string) (SessionUser, error)
}
