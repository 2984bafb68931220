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
	DecodeAccountDeleteProfileRequest  = httpTransportKit.DecodeEmptyRequest
	EncodeAccountDeleteProfileResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)
)

type accountDeleteProfileResponse struct {
	Message string `json:"message"`
}

func MakeAccountDeleteProfileEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		account := httpKit.GetAccount(ctx).(*domain.Account)
		if err := svc.Delete(ctx, account.ID); err != nil {
			return nil, err
		}
		return &accountDeleteProfileResponse{
			Message: "user deleted successfully",
		}, nil
	}
}
