package domain

import (
	"context"
	"time"
)

// TokenValidity is the fixed lifetime of an issued token. Tokens are
// stateless; there is no revocation before natural expiry.
const TokenValidity = 48 * time.Hour

type AuthRepo interface {
	GenerateToken(sub string, iat, exp time.Time) (string, error)
	VerifyToken(token string) (accountID int64, err error)
}

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*Account, string, error)
	Verify(ctx context.Context, token string) (*Account, error)
}
