package services

import (
	"context"
	"time"
)

// AuthSvcFacade authenticates the back-office administrator.
type AuthSvcFacade interface {
	// Login checks the credentials and returns a signed access token with its expiry.
	// Returns apperrors.ErrUnauthorized on a bad username or password.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}
