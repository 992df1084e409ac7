package jwt

import (
	"context"

	"github.com/golang-jwt/jwt/v4"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"
)

// Middleware parses and validates the bearer token stored in the context by
// the transport layer, and makes the claims available to the endpoint.
func Middleware(key []byte) endpoint.Middleware {
	return kitjwt.NewParser(func(token *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.SigningMethodHS256, func() jwt.Claims { return &Claims{} })
}

// OptionalMiddleware behaves like Middleware when a token is present, and
// lets the request through anonymously when there is none.
func OptionalMiddleware(key []byte) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			// tokenString is stored in the context from the transport handlers.
			_, ok := ctx.Value(kitjwt.JWTContextKey).(string)
			if !ok {
				return next(ctx, request)
			}

			return Middleware(key)(next)(ctx, request)
		}
	}
}
