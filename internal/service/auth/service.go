package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cuidaemprego/ponto-backend-go/internal/domain/auth"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/employee"
	"github.com/cuidaemprego/ponto-backend-go/internal/domain/user"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/jwt"
)

type Service struct {
	user.UserRepository
	employee.EmployeeRepository
	auth.RefreshTokenRepository
	jwtService jwt.Service

	now func() time.Time
}

func NewService(
	userRepository user.UserRepository,
	employeeRepository employee.EmployeeRepository,
	refreshTokenRepository auth.RefreshTokenRepository,
	jwtService jwt.Service,
) *Service {
	return &Service{
		UserRepository:         userRepository,
		EmployeeRepository:     employeeRepository,
		RefreshTokenRepository: refreshTokenRepository,
		jwtService:             jwtService,
		now:                    time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Username:     req.Username,
		DisplayName:  req.DisplayName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Active:       true,
		Role:         user.Role(req.Role),
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueTokens(ctx, created)
}

func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !u.Active {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. A revoked or unknown token is rejected.
func (s *Service) Refresh(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userID, jti, err := s.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	stored, err := s.RefreshTokenRepository.GetByJTI(ctx, jti)
	if err != nil {
		if errors.Is(err, auth.ErrRefreshTokenNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get refresh token: %w", err)
	}
	if stored.Revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if stored.ExpiresAt.Before(s.now()) {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !u.Active {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	if err := s.RefreshTokenRepository.Revoke(ctx, jti); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.issueTokens(ctx, u)
}

func (s *Service) Logout(ctx context.Context, req auth.RefreshTokenRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	_, jti, err := s.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.ErrInvalidToken
	}

	if err := s.RefreshTokenRepository.Revoke(ctx, jti); err != nil {
		if errors.Is(err, auth.ErrRefreshTokenNotFound) {
			return auth.ErrInvalidToken
		}
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (s *Service) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	var employeeID *int64
	if emp, err := s.EmployeeRepository.GetByUserID(ctx, u.ID); err == nil {
		employeeID = &emp.ID
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, employeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, jti, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if _, err := s.RefreshTokenRepository.Create(ctx, auth.RefreshToken{
		JTI:       jti,
		UserID:    u.ID,
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
	}); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    accessExpiresAt - s.now().Unix(),
	}, nil
}
