package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VolunteerStatus is the review state of a registration.
type VolunteerStatus string

const (
	StatusActive   VolunteerStatus = "active"
	StatusPending  VolunteerStatus = "pending"
	StatusInactive VolunteerStatus = "inactive"
)

// ValidStatus reports whether s is one of the known volunteer statuses.
func ValidStatus(s VolunteerStatus) bool {
	switch s {
	case StatusActive, StatusPending, StatusInactive:
		return true
	}
	return false
}

// Volunteer is a registered civil-defence volunteer. Geography fields
// store both the selected hierarchy ids and the resolved display names;
// admin-side filtering accepts either.
type Volunteer struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName   string             `json:"fullName" bson:"fullName"`
	FatherName string             `json:"fatherName" bson:"fatherName"`
	CNIC       string             `json:"cnic" bson:"cnic"`
	DateOfBirth string            `json:"dateOfBirth" bson:"dateOfBirth"`
	Gender     string             `json:"gender" bson:"gender"`

	Phone    string `json:"phone" bson:"phone"`
	WhatsApp string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	Email    string `json:"email" bson:"email"`

	Province     string `json:"province" bson:"province"`
	ProvinceName string `json:"provinceName" bson:"provinceName"`
	Division     string `json:"division" bson:"division"`
	DivisionName string `json:"divisionName" bson:"divisionName"`
	District     string `json:"district" bson:"district"`
	DistrictName string `json:"districtName" bson:"districtName"`
	Tehsil       string `json:"tehsil" bson:"tehsil"`
	UnionCouncil string `json:"unionCouncil,omitempty" bson:"unionCouncil,omitempty"`
	HouseNumber  string `json:"houseNumber,omitempty" bson:"houseNumber,omitempty"`
	Street       string `json:"street" bson:"street"`
	BlockMohalla string `json:"blockMohalla" bson:"blockMohalla"`
	Village      string `json:"village,omitempty" bson:"village,omitempty"`
	City         string `json:"city" bson:"city"`
	Address      string `json:"address,omitempty" bson:"address,omitempty"`
	PostalCode   string `json:"postalCode" bson:"postalCode"`

	Education        string `json:"education" bson:"education"`
	Occupation       string `json:"occupation,omitempty" bson:"occupation,omitempty"`
	Availability     string `json:"availability" bson:"availability"`
	Experience       string `json:"experience,omitempty" bson:"experience,omitempty"`
	EmergencyContact string `json:"emergencyContact" bson:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone" bson:"emergencyPhone"`

	Status           VolunteerStatus `json:"status" bson:"status"`
	RegistrationDate time.Time       `json:"registrationDate" bson:"registrationDate"`
}

// Admin is a dashboard operator account. Password holds the salted hash,
// never the plain text.
type Admin struct {
	Username string `json:"username" bson:"_id"`
	FullName string `json:"fullName" bson:"fullName"`
	Password string `json:"password" bson:"password"`
}

// ProvinceCount is one row of the volunteers-by-province dashboard table.
type ProvinceCount struct {
	Province string `json:"province" bson:"_id"`
	Count    int64  `json:"count" bson:"count"`
}

// RecentRegistration is a compact row for the dashboard's latest
// registrations list.
type RecentRegistration struct {
	ID       string    `json:"id"`
	FullName string    `json:"name"`
	District string    `json:"district"`
	Date     time.Time `json:"date"`
}

// Stats aggregates the dashboard counters.
type Stats struct {
	Total      int64                `json:"totalVolunteers"`
	Active     int64                `json:"activeVolunteers"`
	Pending    int64                `json:"pendingApplications"`
	Inactive   int64                `json:"inactiveVolunteers"`
	ByProvince []ProvinceCount      `json:"volunteersByProvince"`
	Recent     []RecentRegistration `json:"recentRegistrations"`
}

// recentLimit bounds the dashboard's latest-registrations list.
const recentLimit = 5
