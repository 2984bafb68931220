package account

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/superj80820/account-service/domain"
	"github.com/superj80820/account-service/kit/code"
	loggerKit "github.com/superj80820/account-service/kit/logger"
	utilKit "github.com/superj80820/account-service/kit/util"
)

type accountUseCase struct {
	accountRepo domain.AccountRepo
	authRepo    domain.AuthRepo
	logger      *loggerKit.Logger
}

func CreateAccountUseCase(accountRepo domain.AccountRepo, authRepo domain.AuthRepo, logger *loggerKit.Logger) (domain.AccountUseCase, error) {
	if logger == nil {
		return nil, errors.New("create use case failed")
	}
	return &accountUseCase{
		accountRepo: accountRepo,
		authRepo:    authRepo,
		logger:      logger,
	}, nil
}

func (a *accountUseCase) Register(ctx context.Context, name, email, password string) (*domain.Account, string, error) {
	passwordHash, err := utilKit.GetBcrypt(password)
	if err != nil {
		return nil, "", errors.Wrap(err, "get bcrypt failed")
	}

	account, err := a.accountRepo.Create(ctx, name, email, passwordHash)
	if errors.Is(err, domain.ErrDuplicate) {
		return nil, "", code.CreateErrorCode(http.StatusBadRequest).AddCode(code.EmailExists)
	} else if err != nil {
		return nil, "", errors.Wrap(err, "create account failed")
	}

	now := time.Now()
	signedToken, err := a.authRepo.GenerateToken(
		strconv.FormatInt(account.ID, 10),
		now,
		now.Add(domain.TokenValidity),
	)
	if err != nil {
		return nil, "", errors.Wrap(err, "signed token failed")
	}

	return account, signedToken, nil
}

func (a *accountUseCase) Get(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := a.accountRepo.Get(ctx, accountID)
	if errors.Is(err, domain.ErrNoData) {
		return nil, code.CreateErrorCode(http.StatusNotFound).AddCode(code.AccountNotFound)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}
	return account, nil
}

func (a *accountUseCase) Update(ctx context.Context, accountID int64, update *domain.AccountUpdate) (*domain.Account, error) {
	if update.Password != nil {
		passwordHash, err := utilKit.GetBcrypt(*update.Password)
		if err != nil {
			return nil, errors.Wrap(err, "get bcrypt failed")
		}
		update = &domain.AccountUpdate{
			Name:     update.Name,
			Email:    update.Email,
			Password: &passwordHash,
		}
	}

	account, err := a.accountRepo.Update(ctx, accountID, update)
	if errors.Is(err, domain.ErrNoData) {
		return nil, code.CreateErrorCode(http.StatusNotFound).AddCode(code.AccountNotFound)
	} else if errors.Is(err, domain.ErrDuplicate) {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.EmailExists)
	} else if err != nil {
		return nil, errors.Wrap(err, "update account failed")
	}
	return account, nil
}

func (a *accountUseCase) Delete(ctx context.Context, accountID int64) error {
	err := a.accountRepo.Delete(ctx, accountID)
	if errors.Is(err, domain.ErrNoData) {
		return code.CreateErrorCode(http.StatusNotFound).AddCode(code.AccountNotFound)
	} else if err != nil {
		return errors.Wrap(err, "delete account failed")
	}
	return nil
}
