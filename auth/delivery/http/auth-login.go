package http

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/superj80820/account-service/domain"
	httpMiddlewareKit "github.com/superj80820/account-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/account-service/kit/http/transport"
)

var (
	DecodeAuthLoginRequest  = httpTransportKit.DecodeJsonRequest[authLoginRequest]
	EncodeAuthLoginResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)
)

type authLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authLoginResponse struct {
	Message string          `json:"message"`
	User    *domain.Account `json:"user"`
	Token   string          `json:"token"`
}

func MakeAuthLoginEndpoint(svc domain.AuthUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(authLoginRequest)
		account, token, err := svc.Login(ctx, req.Email, req.Password)
		if err != nil {
			return nil, err
		}
		return &authLoginResponse{
			Message: "login successful",
			User:    account,
			Token:   token,
		}, nil
	}
}
