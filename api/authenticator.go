package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/auriaahmad/civil-defence/api/apicommon"
	"github.com/auriaahmad/civil-defence/errors"
)

// authenticator validates the JWT token and loads the admin account it
// names into the request context for the next handlers.
func (a *API) authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			errors.ErrUnauthorized.Write(w)
			return
		}
		if token == nil || jwt.Validate(token, jwt.WithRequiredClaim("username")) != nil {
			errors.ErrUnauthorized.Withf("username claim not found in JWT token").Write(w)
			return
		}
		username, ok := claims["username"].(string)
		if !ok {
			errors.ErrUnauthorized.Write(w)
			return
		}
		admin, err := a.db.Admin(username)
		if err != nil {
			errors.ErrUnauthorized.Withf("admin account not found").Write(w)
			return
		}
		ctx := context.WithValue(r.Context(), apicommon.AdminMetadataKey, *admin)
		// Token is authenticated, pass it through
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// buildLoginResponse creates a JWT token for the given admin username.
// The token is signed with the API secret, following the JWT specification.
// The token is valid for the period specified on jwtExpiration constant.
func (a *API) buildLoginResponse(username string) (*apicommon.LoginResponse, error) {
	j := jwt.New()
	if err := j.Set("username", username); err != nil {
		return nil, err
	}
	if err := j.Set(jwt.ExpirationKey, time.Now().Add(jwtExpiration).UnixNano()); err != nil {
		return nil, err
	}
	lr := apicommon.LoginResponse{}
	lr.Expirity = time.Now().Add(jwtExpiration)
	jmap, err := j.AsMap(context.Background())
	if err != nil {
		return nil, err
	}
	_, lr.Token, _ = a.auth.Encode(jmap)
	return &lr, nil
}
