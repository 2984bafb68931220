package middleware

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/pkg/errors"
	"github.com/superj80820/account-service/kit/code"
	httpKit "github.com/superj80820/account-service/kit/http"
)

// CreateAuthMiddleware guards an endpoint behind a bearer token. The token is
// taken from the request context, authFunc turns it into a resolved account,
// and the account is attached to the context before the endpoint runs. A
// missing token short-circuits here; every other rejection is authFunc's call.
func CreateAuthMiddleware(authFunc func(ctx context.Context, token string) (account interface{}, err error)) endpoint.Middleware {
	return func(e endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			token := httpKit.GetToken(ctx)
			if token == "" {
				return nil, code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.TokenMissing)
			}
			account, err := authFunc(ctx, token)
			if err != nil {
				return nil, errors.Wrap(err, "auth failed")
			}
			ctx = httpKit.AddAccount(ctx, account)
			return e(ctx, request)
		}
	}
}
