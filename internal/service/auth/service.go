package auth

import (
	"context"

	"github.com/humbingo/hrms-backend-go/internal/domain/auth"
	"github.com/humbingo/hrms-backend-go/internal/domain/user"
	"github.com/humbingo/hrms-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	usr, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.LoginResponse{}, "", 0, err
	}
	if usr == nil {
		// Same error for unknown email and wrong password
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(usr.ID, usr.Email, usr.EmployeeID, usr.IsAdmin)
	if err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(usr.ID)
	if err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	resp := auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User: auth.SessionUser{
			ID:         usr.ID,
			Email:      usr.Email,
			IsAdmin:    usr.IsAdmin,
			EmployeeID: usr.EmployeeID,
		},
	}

	return resp, refreshToken, refreshExpiresAt, nil
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrTokenRevoked
	}

	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidRefreshToken
	}

	usr, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.RefreshResponse{}, err
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(usr.ID, usr.Email, usr.EmployeeID, usr.IsAdmin)
	if err != nil {
		return auth.RefreshResponse{}, err
	}

	return auth.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if accessToken != "" {
		s.jwtService.RevokeToken(accessToken)
	}
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// ChangePassword implements auth.AuthService.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	usr, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, string(hash))
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (auth.SessionUser, error) {
	usr, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.SessionUser{}, err
	}

	return auth.SessionUser{
		ID:         usr.ID,
		Email:      usr.Email,
		IsAdmin:    usr.IsAdmin,
		EmployeeID: usr.EmployeeID,
	}, nil
}
