package auth

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

type authUseCase struct {
	authRepo    domain.AuthRepo
	accountRepo domain.AccountRepo
	logger      *loggerKit.Logger
}

func CreateAuthUseCase(authRepo domain.AuthRepo, accountRepo domain.AccountRepo, logger *loggerKit.Logger) (domain.AuthUseCase, error) {
	if logger == nil {
		return nil, errors.New("create use case failed")
	}
	return &authUseCase{
		authRepo:    authRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}, nil
}

// Login responds identically to an unknown email and a wrong password, so the
// caller cannot tell which part was wrong.
func (a *authUseCase) Login(ctx context.Context, email, password string) (*domain.Account, string, error) {
	account, err := a.accountRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNoData) {
		return nil, "", code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.CredentialsInvalid)
	} else if err != nil {
		return nil, "", errors.Wrap(err, "get account failed")
	}

	if err := utilKit.CompareBcrypt([]byte(account.Password), []byte(password)); err != nil {
		return nil, "", code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.CredentialsInvalid)
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

// Verify turns a bearer token into the account it asserts. A valid token
// whose account no longer exists surfaces as not found, not unauthorized.
func (a *authUseCase) Verify(ctx context.Context, token string) (*domain.Account, error) {
	accountID, err := a.authRepo.VerifyToken(token)
	if errors.Is(err, domain.ErrInvalidData) || errors.Is(err, domain.ErrExpired) {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.TokenInvalid).AddErrorMetaData(err)
	} else if err != nil {
		return nil, errors.Wrap(err, "verify token failed")
	}

	account, err := a.accountRepo.Get(ctx, accountID)
	if errors.Is(err, domain.ErrNoData) {
		return nil, code.CreateErrorCode(http.StatusNotFound).AddCode(code.AccountNotFound)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}

	return account, nil
}
