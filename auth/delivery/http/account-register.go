package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/superj80820/account-service/domain"
	httpMiddlewareKit "github.com/superj80820/account-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/account-service/kit/http/transport"
)

var (
	DecodeAccountRegisterRequest  = httpTransportKit.DecodeJsonRequest[accountRegisterRequest]
	EncodeAccountRegisterResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)
)

type accountRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountRegisterResponse struct {
	Message string          `json:"message"`
	User    *domain.Account `json:"user"`
	Token   string          `json:"token"`
}

func (accountRegisterResponse) SuccessHTTPCode() int {
	return http.StatusCreated
}

func MakeAccountRegisterEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(accountRegisterRequest)
		account, token, err := svc.Register(ctx, req.Name, req.Email, req.Password)
		if err != nil {
			return nil, err
		}
		return &accountRegisterResponse{
			Message: "user registered successfully",
			User:    account,
			Token:   token,
		}, nil
	}
}
