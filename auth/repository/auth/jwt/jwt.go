package jwt

import (
	"fmt"
	"strconv"
	"time"

	jwtPKG "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/superj80820/account-service/domain"
)

type authRepo struct {
	secret []byte
}

// CreateAuthRepo signs and verifies HS256 tokens with a process-wide secret.
// An empty secret is a configuration fault, not a silently weak key.
func CreateAuthRepo(secret string) (domain.AuthRepo, error) {
	if secret == "" {
		return nil, errors.New("empty token secret")
	}
	return &authRepo{
		secret: []byte(secret),
	}, nil
}

func (a *authRepo) GenerateToken(sub string, iat, exp time.Time) (string, error) {
	token := jwtPKG.NewWithClaims(jwtPKG.SigningMethodHS256, jwtPKG.MapClaims{
		"sub": sub,
		"iat": iat.Unix(),
		"exp": exp.Unix(),
	})
	signedToken, err := token.SignedString(a.secret)
	if err != nil {
		return "", errors.Wrap(err, "signed token failed")
	}
	return signedToken, nil
}

func (a *authRepo) VerifyToken(tokenString string) (int64, error) {
	token, err := jwtPKG.Parse(tokenString, func(token *jwtPKG.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtPKG.SigningMethodHMAC); !ok {
			return nil, errors.New(fmt.Sprintf("unexpected signing %s", token.Header["alg"]))
		}
		return a.secret, nil
	})
	if errors.Is(err, jwtPKG.ErrTokenExpired) {
		return 0, errors.Wrap(domain.ErrExpired, fmt.Sprintf("%+v", err))
	} else if err != nil {
		return 0, errors.Wrap(domain.ErrInvalidData, fmt.Sprintf("%+v", err))
	}
	if !token.Valid {
		return 0, errors.Wrap(domain.ErrInvalidData, "token invalid")
	}

	mapClaims, ok := token.Claims.(jwtPKG.MapClaims)
	if !ok {
		return 0, errors.Wrap(domain.ErrInvalidData, "get claims failed")
	}
	sub, ok := mapClaims["sub"]
	if !ok {
		return 0, errors.Wrap(domain.ErrInvalidData, "get sub claim failed")
	}
	subString, ok := sub.(string)
	if !ok {
		return 0, errors.Wrap(domain.ErrInvalidData, "get unexpected sub type")
	}
	accountID, err := strconv.ParseInt(subString, 10, 64)
	if err != nil {
		return 0, errors.Wrap(domain.ErrInvalidData, "parse sub claim failed")
	}

	return accountID, nil
}
