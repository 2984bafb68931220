package domain

import (
	"context"
	"time"
)

type Account struct {
	ID       int64  `json:"id" bson:"account_id"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"-" bson:"password"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"-" bson:"updated_at"`
}

// AccountUpdate carries the only externally settable fields. A nil field
// means "leave as is". Password must already be hashed before it reaches
// the repository.
type AccountUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type AccountRepo interface {
	Create(ctx context.Context, name, email, passwordHash string) (*Account, error)
	Get(ctx context.Context, accountID int64) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	Update(ctx context.Context, accountID int64, update *AccountUpdate) (*Account, error)
	Delete(ctx context.Context, accountID int64) error
}

type AccountUseCase interface {
	Register(ctx context.Context, name, email, password string) (*Account, string, error)
	Get(ctx context.Context, accountID int64) (*Account, error)
	Update(ctx context.Context, accountID int64, update *AccountUpdate) (*Account, error)
	Delete(ctx context.Context, accountID int64) error
}
