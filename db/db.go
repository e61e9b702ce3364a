// Package db implements the storage layer for volunteers and admin
// accounts. The Store interface decouples the API and filter engine from
// the backend so the MongoDB implementation can be swapped for the
// in-memory one (used for development and tests) without touching either.
package db

import "fmt"

var (
	ErrNotFound      = fmt.Errorf("not found")
	ErrInvalidData   = fmt.Errorf("invalid data provided")
	ErrAlreadyExists = fmt.Errorf("already exists")
)

// Store is the volunteer repository consumed by the API layer. List
// results preserve registration order, which the filter engine relies on
// for stable output ordering.
type Store interface {
	// SetVolunteer inserts or updates a volunteer and returns its id.
	// Inserting a volunteer whose CNIC is already registered returns
	// ErrAlreadyExists.
	SetVolunteer(v *Volunteer) (string, error)
	// Volunteer retrieves a volunteer by id.
	Volunteer(id string) (*Volunteer, error)
	// Volunteers returns all volunteers in registration order.
	Volunteers() ([]*Volunteer, error)
	// DelVolunteer removes a volunteer by id.
	DelVolunteer(id string) error
	// SetBulkVolunteers inserts volunteers in batches, skipping rows
	// whose CNIC is already registered. It returns the number added.
	SetBulkVolunteers(volunteers []*Volunteer) (int, error)
	// UpdateVolunteersStatus sets the status on every id in ids and
	// returns the number of records updated.
	UpdateVolunteersStatus(ids []string, status VolunteerStatus) (int, error)
	// CountVolunteers returns the total number of volunteers.
	CountVolunteers() (int64, error)
	// Stats aggregates the dashboard counters.
	Stats() (*Stats, error)

	// Admin retrieves an admin account by username.
	Admin(username string) (*Admin, error)
	// SetAdmin inserts or updates an admin account.
	SetAdmin(admin *Admin) error

	// Close releases the backend resources.
	Close()
}
