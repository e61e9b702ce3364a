package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/auriaahmad/civil-defence/api/apicommon"
	"github.com/auriaahmad/civil-defence/db"
	"github.com/auriaahmad/civil-defence/errors"
	"github.com/auriaahmad/civil-defence/registration"
)

// storeTransport submits a completed registration to the volunteer store
// as a pending application.
type storeTransport struct {
	db db.Store
}

func (t *storeTransport) SubmitRegistration(_ context.Context, p *registration.Payload) (string, error) {
	return t.db.SetVolunteer(&db.Volunteer{
		FullName:         p.FullName,
		FatherName:       p.FatherName,
		CNIC:             p.CNIC,
		DateOfBirth:      p.DateOfBirth,
		Gender:           p.Gender,
		Phone:            p.Phone,
		WhatsApp:         p.WhatsApp,
		Email:            p.Email,
		Province:         p.Province,
		ProvinceName:     p.ProvinceName,
		Division:         p.Division,
		DivisionName:     p.DivisionName,
		District:         p.District,
		DistrictName:     p.DistrictName,
		Tehsil:           p.Tehsil,
		UnionCouncil:     p.UnionCouncil,
		HouseNumber:      p.HouseNumber,
		Street:           p.Street,
		BlockMohalla:     p.BlockMohalla,
		Village:          p.Village,
		City:             p.City,
		Address:          p.Address,
		PostalCode:       p.PostalCode,
		Education:        p.Education,
		Occupation:       p.Occupation,
		Availability:     p.Availability,
		Experience:       p.Experience,
		EmergencyContact: p.EmergencyContact,
		EmergencyPhone:   p.EmergencyPhone,
		Status:           db.StatusPending,
	})
}

// registerVolunteerHandler accepts one complete registration form and
// drives it through the four wizard steps, so the HTTP surface enforces
// exactly the same gates as an interactive session.
func (a *API) registerVolunteerHandler(w http.ResponseWriter, r *http.Request) {
	req := &apicommon.RegistrationRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}

	wiz := registration.New()
	// parents before children, so the cascades don't wipe the selection
	fields := []struct {
		name  string
		value string
	}{
		{registration.FieldFullName, req.FullName},
		{registration.FieldFatherName, req.FatherName},
		{registration.FieldCNIC, req.CNIC},
		{registration.FieldDOB, req.DateOfBirth},
		{registration.FieldGender, req.Gender},
		{registration.FieldPhone, req.Phone},
		{registration.FieldWhatsApp, req.WhatsApp},
		{registration.FieldEmail, req.Email},
		{registration.FieldProvince, req.Province},
		{registration.FieldDivision, req.Division},
		{registration.FieldDistrict, req.District},
		{registration.FieldTehsil, req.Tehsil},
		{registration.FieldUnionCouncil, req.UnionCouncil},
		{registration.FieldHouseNumber, req.HouseNumber},
		{registration.FieldStreet, req.Street},
		{registration.FieldBlockMohalla, req.BlockMohalla},
		{registration.FieldVillage, req.Village},
		{registration.FieldCity, req.City},
		{registration.FieldAddress, req.Address},
		{registration.FieldPostalCode, req.PostalCode},
		{registration.FieldEducation, req.Education},
		{registration.FieldOccupation, req.Occupation},
		{registration.FieldAvailability, req.Availability},
		{registration.FieldExperience, req.Experience},
		{registration.FieldEmergencyContact, req.EmergencyContact},
		{registration.FieldEmergencyPhone, req.EmergencyPhone},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if _, err := wiz.Set(f.name, f.value); err != nil {
			errors.ErrMalformedBody.Withf("unknown field %s", f.name).Write(w)
			return
		}
	}
	// walk the step gates up to the final step
	for wiz.Step() < registration.StepVolunteerInfo {
		if !wiz.Next() {
			errors.ErrValidationFailed.WithData(wiz.Errors()).Write(w)
			return
		}
	}

	id, err := wiz.Submit(r.Context(), &storeTransport{db: a.db})
	if err != nil {
		switch {
		case stderrors.Is(err, registration.ErrInvalidDraft):
			errors.ErrValidationFailed.WithData(wiz.Errors()).Write(w)
		case stderrors.Is(err, db.ErrAlreadyExists):
			errors.ErrDuplicateConflict.Withf("CNIC already registered").Write(w)
		default:
			errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		}
		return
	}
	apicommon.HTTPWriteJSON(w, &apicommon.RegistrationResponse{
		ID:     id,
		Status: db.StatusPending,
	})
}
