package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	deliveryHTTP "github.com/superj80820/account-service/auth/delivery/http"
	authJWTRepo "github.com/superj80820/account-service/auth/repository/auth/jwt"
	accountUseCaseLib "github.com/superj80820/account-service/auth/usecase/account"
	authUseCaseLib "github.com/superj80820/account-service/auth/usecase/auth"
	"github.com/superj80820/account-service/domain"
	httpKit "github.com/superj80820/account-service/kit/http"
	httpMiddlewareKit "github.com/superj80820/account-service/kit/http/middleware"
	loggerKit "github.com/superj80820/account-service/kit/logger"
	traceKit "github.com/superj80820/account-service/kit/trace"
	utilKit "github.com/superj80820/account-service/kit/util"
)

type memoryAccountRepo struct {
	lock     sync.Mutex
	accounts map[int64]*domain.Account
}

func createMemoryAccountRepo() *memoryAccountRepo {
	return &memoryAccountRepo{accounts: make(map[int64]*domain.Account)}
}

func (m *memoryAccountRepo) Create(ctx context.Context, name, email, passwordHash string) (*domain.Account, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, account := range m.accounts {
		if account.Email == email {
			return nil, errors.Wrap(domain.ErrDuplicate, "email already exists")
		}
	}
	now := time.Now()
	account := &domain.Account{
		ID:        utilKit.GetSnowflakeIDInt64(),
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.accounts[account.ID] = account
	return account, nil
}

func (m *memoryAccountRepo) Get(ctx context.Context, accountID int64) (*domain.Account, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	account, ok := m.accounts[accountID]
	if !ok {
		return nil, errors.Wrap(domain.ErrNoData, "account not exist")
	}
	accountCopy := *account
	return &accountCopy, nil
}

func (m *memoryAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, account := range m.accounts {
		if account.Email == email {
			accountCopy := *account
			return &accountCopy, nil
		}
	}
	return nil, errors.Wrap(domain.ErrNoData, "account not exist")
}

func (m *memoryAccountRepo) Update(ctx context.Context, accountID int64, update *domain.AccountUpdate) (*domain.Account, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	account, ok := m.accounts[accountID]
	if !ok {
		return nil, errors.Wrap(domain.ErrNoData, "account not exist")
	}
	if update.Name != nil {
		account.Name = *update.Name
	}
	if update.Email != nil {
		account.Email = *update.Email
	}
	if update.Password != nil {
		account.Password = *update.Password
	}
	account.UpdatedAt = time.Now()
	accountCopy := *account
	return &accountCopy, nil
}

func (m *memoryAccountRepo) Delete(ctx context.Context, accountID int64) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.accounts[accountID]; !ok {
		return errors.Wrap(domain.ErrNoData, "account not exist")
	}
	delete(m.accounts, accountID)
	return nil
}

func createTestRouter(t *testing.T, accountRepo domain.AccountRepo) *mux.Router {
	logger, err := loggerKit.NewLogger(t.TempDir()+"/go.log", loggerKit.InfoLevel, loggerKit.NoStdout)
	assert.Nil(t, err)

	authRepo, err := authJWTRepo.CreateAuthRepo("test-secret")
	assert.Nil(t, err)

	accountUseCase, err := accountUseCaseLib.CreateAccountUseCase(accountRepo, authRepo, logger)
	assert.Nil(t, err)
	authUseCase, err := authUseCaseLib.CreateAuthUseCase(authRepo, accountRepo, logger)
	assert.Nil(t, err)

	customMiddleware := endpoint.Chain(
		httpMiddlewareKit.CreateLoggingMiddleware(logger),
	)
	authMiddleware := httpMiddlewareKit.CreateAuthMiddleware(func(ctx context.Context, token string) (interface{}, error) {
		account, err := authUseCase.Verify(ctx, token)
		if err != nil {
			return nil, err
		}
		return account, nil
	})

	r := mux.NewRouter()
	options := []httptransport.ServerOption{
		httptransport.ServerBefore(httpKit.CustomBeforeCtx(traceKit.CreateNoOpTracer())),
		httptransport.ServerAfter(httpKit.CustomAfterCtx),
		httptransport.ServerErrorEncoder(httpKit.EncodeHTTPErrorResponse()),
	}
	r.Methods("POST").Path("/api/v1/account/register").Handler(
		httptransport.NewServer(
			customMiddleware(deliveryHTTP.MakeAccountRegisterEndpoint(accountUseCase)),
			deliveryHTTP.DecodeAccountRegisterRequest,
			deliveryHTTP.EncodeAccountRegisterResponse,
			options...,
		))
	r.Methods("POST").Path("/api/v1/auth/login").Handler(
		httptransport.NewServer(
			customMiddleware(deliveryHTTP.MakeAuthLoginEndpoint(authUseCase)),
			deliveryHTTP.DecodeAuthLoginRequest,
			deliveryHTTP.EncodeAuthLoginResponse,
			options...,
		))
	r.Methods("GET").Path("/api/v1/account/profile").Handler(
		httptransport.NewServer(
			customMiddleware(authMiddleware(deliveryHTTP.MakeAccountProfileEndpoint())),
			deliveryHTTP.DecodeAccountProfileRequest,
			deliveryHTTP.EncodeAccountProfileResponse,
			options...,
		))
	r.Methods("PUT").Path("/api/v1/account/profile").Handler(
		httptransport.NewServer(
			customMiddleware(authMiddleware(deliveryHTTP.MakeAccountUpdateProfileEndpoint(accountUseCase))),
			deliveryHTTP.DecodeAccountUpdateProfileRequest,
			deliveryHTTP.EncodeAccountUpdateProfileResponse,
			options...,
		))
	r.Methods("DELETE").Path("/api/v1/account/profile").Handler(
		httptransport.NewServer(
			customMiddleware(authMiddleware(deliveryHTTP.MakeAccountDeleteProfileEndpoint(accountUseCase))),
			deliveryHTTP.DecodeAccountDeleteProfileRequest,
			deliveryHTTP.EncodeAccountDeleteProfileResponse,
			options...,
		))
	return r
}

func doRequest(r *mux.Router, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func TestAccountEndToEnd(t *testing.T) {
	accountRepo := createMemoryAccountRepo()
	r := createTestRouter(t, accountRepo)

	// register
	res := doRequest(r, "POST", "/api/v1/account/register", `{"name":"Ann","email":"ann@x.com","password":"pw123"}`, "")
	assert.Equal(t, http.StatusCreated, res.Code)
	assert.NotContains(t, res.Body.String(), "password")
	var registerBody struct {
		Message string `json:"message"`
		User    struct {
			ID        int64     `json:"id"`
			Name      string    `json:"name"`
			Email     string    `json:"email"`
			CreatedAt time.Time `json:"created_at"`
		} `json:"user"`
		Token string `json:"token"`
	}
	assert.Nil(t, json.Unmarshal(res.Body.Bytes(), &registerBody))
	assert.Equal(t, "Ann", registerBody.User.Name)
	assert.Equal(t, "ann@x.com", registerBody.User.Email)
	assert.NotZero(t, registerBody.User.ID)
	assert.False(t, registerBody.User.CreatedAt.IsZero())
	assert.NotEmpty(t, registerBody.Token)

	// duplicate email
	res = doRequest(r, "POST", "/api/v1/account/register", `{"name":"Ann Again","email":"ann@x.com","password":"pw456"}`, "")
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), `"error":"email already in use"`)

	// login
	res = doRequest(r, "POST", "/api/v1/auth/login", `{"email":"ann@x.com","password":"pw123"}`, "")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.NotContains(t, res.Body.String(), "password")
	var loginBody struct {
		Token string `json:"token"`
	}
	assert.Nil(t, json.Unmarshal(res.Body.Bytes(), &loginBody))
	assert.NotEmpty(t, loginBody.Token)

	res = doRequest(r, "POST", "/api/v1/auth/login", `{"email":"ann@x.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, res.Body.String(), `"error":"invalid email or password"`)

	// profile, guarded
	res = doRequest(r, "GET", "/api/v1/account/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, res.Body.String(), `"error":"access denied, token missing"`)

	res = doRequest(r, "GET", "/api/v1/account/profile", "", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, res.Body.String(), `"error":"invalid token"`)

	res = doRequest(r, "GET", "/api/v1/account/profile", "", loginBody.Token)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"name":"Ann"`)
	assert.NotContains(t, res.Body.String(), "password")

	// update rejects fields outside the allow-list atomically
	res = doRequest(r, "PUT", "/api/v1/account/profile", `{"name":"Mallory","role":"admin"}`, loginBody.Token)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), `"error":"invalid updates"`)

	storedAccount, err := accountRepo.GetByEmail(context.Background(), "ann@x.com")
	assert.Nil(t, err)
	assert.Equal(t, "Ann", storedAccount.Name)

	// allowed partial update
	res = doRequest(r, "PUT", "/api/v1/account/profile", `{"name":"Annie"}`, loginBody.Token)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"name":"Annie"`)

	// delete, then the still-valid token stops resolving
	res = doRequest(r, "DELETE", "/api/v1/account/profile", "", loginBody.Token)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"message":"user deleted successfully"`)

	res = doRequest(r, "GET", "/api/v1/account/profile", "", loginBody.Token)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Contains(t, res.Body.String(), `"error":"user not found"`)
}
