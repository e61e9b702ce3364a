package api

import (
	"github.com/auriaahmad/civil-defence/db"
	"github.com/auriaahmad/civil-defence/internal"
)

// SeedAdmin creates or updates an admin account with the given plain-text
// password, hashed with the API password salt. It is used to bootstrap
// the first admin from the service configuration.
func SeedAdmin(store db.Store, username, password string) error {
	return store.SetAdmin(&db.Admin{
		Username: username,
		FullName: username,
		Password: internal.HexHashPassword(passwordSalt, password),
	})
}
