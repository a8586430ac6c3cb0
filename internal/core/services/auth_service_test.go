package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bizhub_pricing/internal/apperrors"
	"github.com/SscSPs/bizhub_pricing/internal/core/services"
	"github.com/SscSPs/bizhub_pricing/internal/platform/config"
	"github.com/SscSPs/bizhub_pricing/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	cfg := &config.Config{
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
		JWTSecret:         "secret",
		JWTIssuer:         "bizhub-test",
		JWTExpiryDuration: time.Hour,
	}
	svc := services.NewAuthService(cfg)
	ctx := context.Background()

	token, expiresAt, err := svc.Login(ctx, "admin", "correct horse")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) { return []byte("secret"), nil })
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "bizhub-test", claims.Issuer)

	_, _, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, _, err = svc.Login(ctx, "root", "correct horse")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_LoginDisabledWithoutHash(t *testing.T) {
	svc := services.NewAuthService(&config.Config{AdminUsername: "admin"})
	_, _, err := svc.Login(context.Background(), "admin", "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
