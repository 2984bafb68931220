package http

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/superj80820/account-service/domain"
	httpKit "github.com/superj80820/account-service/kit/http"
	httpMiddlewareKit "github.com/superj80820/account-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/account-service/kit/http/transport"
)

var (
	// The update body is an allow-list: any field outside {name, email,
	// password} rejects the whole request before anything is persisted.
	DecodeAccountUpdateProfileRequest  = httpTransportKit.DecodeStrictJsonRequest[accountUpdateProfileRequest]
	EncodeAccountUpdateProfileResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)
)

type accountUpdateProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type accountUpdateProfileResponse struct {
	Message string          `json:"message"`
	User    *domain.Account `json:"user"`
}

func MakeAccountUpdateProfileEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(accountUpdateProfileRequest)
		account := httpKit.GetAccount(ctx).(*domain.Account)
		updatedAccount, err := svc.Update(ctx, account.ID, &domain.AccountUpdate{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			return nil, err
		}
		return &accountUpdateProfileResponse{
			Message: "profile updated successfully",
			User:    updatedAccount,
		}, nil
	}
}
