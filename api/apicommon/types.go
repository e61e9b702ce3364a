package apicommon

import (
	"time"

	"github.com/auriaahmad/civil-defence/db"
	"github.com/auriaahmad/civil-defence/volunteers"
)

// LoginRequest is the admin credential payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse is the explicit session object returned after a
// successful login or token refresh.
type LoginResponse struct {
	// JWT authentication token
	Token string `json:"token"`

	// Token expiration time
	Expirity time.Time `json:"expirity"`
}

// AdminInfo represents an admin account in the API, without credentials.
type AdminInfo struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// RegistrationRequest carries one complete registration form. Field names
// match the wizard draft keys; validator tags mirror the format rules the
// wizard re-checks step by step.
type RegistrationRequest struct {
	FullName    string `json:"fullName" validate:"required,personname"`
	FatherName  string `json:"fatherName" validate:"required,personname"`
	CNIC        string `json:"cnic" validate:"required,cnic"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,minage"`
	Gender      string `json:"gender" validate:"required"`

	Phone    string `json:"phone" validate:"required,pkphone"`
	WhatsApp string `json:"whatsapp,omitempty" validate:"omitempty,pkphone"`
	Email    string `json:"email" validate:"required,email"`

	Province     string `json:"province" validate:"required"`
	Division     string `json:"division" validate:"required"`
	District     string `json:"district" validate:"required"`
	Tehsil       string `json:"tehsil" validate:"required"`
	UnionCouncil string `json:"unionCouncil,omitempty"`
	HouseNumber  string `json:"houseNumber,omitempty"`
	Street       string `json:"street" validate:"required"`
	BlockMohalla string `json:"blockMohalla" validate:"required"`
	Village      string `json:"village,omitempty"`
	City         string `json:"city" validate:"required"`
	Address      string `json:"address,omitempty"`
	PostalCode   string `json:"postalCode" validate:"required"`

	Education        string `json:"education" validate:"required"`
	Occupation       string `json:"occupation,omitempty"`
	Availability     string `json:"availability" validate:"required"`
	Experience       string `json:"experience,omitempty"`
	EmergencyContact string `json:"emergencyContact" validate:"required"`
	EmergencyPhone   string `json:"emergencyPhone" validate:"required,pkphone"`
}

// RegistrationResponse is returned after a successful registration.
type RegistrationResponse struct {
	ID     string             `json:"id"`
	Status db.VolunteerStatus `json:"status"`
}

// VolunteerList is a page of the filtered volunteer list.
type VolunteerList struct {
	Volunteers []*db.Volunteer `json:"volunteers"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Total      int             `json:"total"`
}

// StatusUpdateRequest is a bulk status change over a set of volunteer ids.
type StatusUpdateRequest struct {
	IDs    []string           `json:"ids" validate:"required,min=1"`
	Status db.VolunteerStatus `json:"status" validate:"required"`
}

// StatusUpdateResponse reports how many records a bulk status change
// touched.
type StatusUpdateResponse struct {
	Updated int `json:"updated"`
}

// ImportResponse reports the outcome of a CSV bulk import.
type ImportResponse struct {
	Added  int                   `json:"added"`
	Errors []volunteers.RowError `json:"errors,omitempty"`
}
