package endpoints

import (
	"context"
	"net/http"

	kitjwt "github.com/go-kit/kit/auth/jwt"

	"github.com/Dev-MihirParmar/Enlighten/errors"
	"github.com/Dev-MihirParmar/Enlighten/jwt"
)

var (
	errInvalidRequest = errors.New("invalid request", errors.BadRequest())
)

// extractUserID returns the user id present in the context, or an error if
// there is no user id or the claims are not correct.
func extractUserID(ctx context.Context) (int, error) {
	claims := ctx.Value(kitjwt.JWTClaimsContextKey)
	if claims == nil {
		return 0, errors.New("no user", errors.WithCode(http.StatusUnauthorized))
	}

	tokenClaims, ok := claims.(*jwt.Claims)
	if !ok {
		return 0, errors.New("invalid claims", errors.WithCode(http.StatusForbidden))
	}

	return tokenClaims.UserID, nil
}

// extractOptionalUserID is like extractUserID but maps an anonymous caller
// to the id 0 instead of failing.
func extractOptionalUserID(ctx context.Context) int {
	claims, ok := ctx.Value(kitjwt.JWTClaimsContextKey).(*jwt.Claims)
	if !ok {
		return 0
	}
	return claims.UserID
}
