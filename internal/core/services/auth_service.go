package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/apperrors"
	portssvc "github.com/SscSPs/bizhub_pricing/internal/core/ports/services"
	"github.com/SscSPs/bizhub_pricing/internal/platform/config"
	"github.com/SscSPs/bizhub_pricing/internal/utils"
)

// authService signs access tokens for the configured administrator.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

// Login checks the administrator credentials and issues an access token.
func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if s.cfg.AdminPasswordHash == "" {
		s.LogInfo(ctx, "Login attempted while administrator login is disabled")
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	// always run bcrypt so a wrong username costs as much as a wrong password
	passOK := utils.CheckPasswordHash(password, s.cfg.AdminPasswordHash)
	if !userOK || !passOK {
		s.LogInfo(ctx, "Login rejected", slog.String("username", username))
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	now := s.Now()
	token, err := utils.GenerateJWT(s.cfg.AdminUsername, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, now.Add(s.cfg.JWTExpiryDuration), nil
}
