package api

import (
	"encoding/json"
	"net/http"

	"github.com/auriaahmad/civil-defence/api/apicommon"
	"github.com/auriaahmad/civil-defence/db"
	"github.com/auriaahmad/civil-defence/errors"
	"github.com/auriaahmad/civil-defence/internal"
)

// authLoginHandler authenticates an admin account and returns a JWT
// token with its expiration time.
func (a *API) authLoginHandler(w http.ResponseWriter, r *http.Request) {
	// get the credentials from the request body
	loginInfo := &apicommon.LoginRequest{}
	if err := json.NewDecoder(r.Body).Decode(loginInfo); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	// get the admin record from the database by username
	admin, err := a.db.Admin(loginInfo.Username)
	if err != nil {
		if err == db.ErrNotFound {
			errors.ErrInvalidCredentials.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.Write(w)
		return
	}
	// check the password
	if pass := internal.HexHashPassword(passwordSalt, loginInfo.Password); pass != admin.Password {
		errors.ErrInvalidCredentials.Write(w)
		return
	}
	// generate a new token with the admin username as the subject
	res, err := a.buildLoginResponse(admin.Username)
	if err != nil {
		errors.ErrGenericInternalServerError.Write(w)
		return
	}
	// send the token back to the admin
	apicommon.HTTPWriteJSON(w, res)
}

// refreshTokenHandler issues a fresh JWT token for an authenticated admin.
func (a *API) refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	// get the admin from the request context
	admin, ok := apicommon.AdminFromContext(r.Context())
	if !ok {
		errors.ErrUnauthorized.Write(w)
		return
	}
	// generate a new token with the admin username as the subject
	res, err := a.buildLoginResponse(admin.Username)
	if err != nil {
		errors.ErrGenericInternalServerError.Write(w)
		return
	}
	// send the token back to the admin
	apicommon.HTTPWriteJSON(w, res)
}

// adminInfoHandler returns the authenticated admin's info, without
// credentials.
func (a *API) adminInfoHandler(w http.ResponseWriter, r *http.Request) {
	admin, ok := apicommon.AdminFromContext(r.Context())
	if !ok {
		errors.ErrUnauthorized.Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, &apicommon.AdminInfo{
		Username: admin.Username,
		FullName: admin.FullName,
	})
}
