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
	DecodeAccountProfileRequest  = httpTransportKit.DecodeEmptyRequest
	EncodeAccountProfileResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)
)

type accountProfileResponse struct {
	User *domain.Account `json:"user"`
}

// MakeAccountProfileEndpoint returns the account the auth gate already
// resolved. No extra store round-trip.
func MakeAccountProfileEndpoint() endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		account := httpKit.GetAccount(ctx).(*domain.Account)
		return &accountProfileResponse{
			User: account,
		}, nil
	}
}
