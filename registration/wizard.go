// Package registration implements the four-step volunteer registration
// wizard: it owns the in-progress draft, formats identity fields as they
// are typed, gates forward navigation on per-step validation, and fires
// the cascading geography resets when a parent selection changes.
package registration

import (
	"context"
	"fmt"

	"github.com/auriaahmad/civil-defence/internal"
	"github.com/auriaahmad/civil-defence/locations"
)

// Step identifies a wizard state. Steps are strictly linear; Submitted is
// terminal.
type Step int

const (
	StepPersonal Step = iota + 1
	StepContact
	StepLocation
	StepVolunteerInfo
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepPersonal:
		return "personal"
	case StepContact:
		return "contact"
	case StepLocation:
		return "location"
	case StepVolunteerInfo:
		return "volunteerInfo"
	case StepSubmitted:
		return "submitted"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Draft field names. Every field belongs to exactly one step.
const (
	FieldFullName   = "fullName"
	FieldFatherName = "fatherName"
	FieldCNIC       = "cnic"
	FieldDOB        = "dateOfBirth"
	FieldGender     = "gender"

	FieldPhone    = "phone"
	FieldWhatsApp = "whatsapp"
	FieldEmail    = "email"

	FieldProvince     = "province"
	FieldDivision     = "division"
	FieldDistrict     = "district"
	FieldTehsil       = "tehsil"
	FieldUnionCouncil = "unionCouncil"
	FieldHouseNumber  = "houseNumber"
	FieldStreet       = "street"
	FieldBlockMohalla = "blockMohalla"
	FieldVillage      = "village"
	FieldCity         = "city"
	FieldAddress      = "address"
	FieldPostalCode   = "postalCode"

	FieldEducation        = "education"
	FieldOccupation       = "occupation"
	FieldAvailability     = "availability"
	FieldExperience       = "experience"
	FieldEmergencyContact = "emergencyContact"
	FieldEmergencyPhone   = "emergencyPhone"
)

// ErrInvalidDraft is returned by Submit when the final step fails
// validation; the per-field messages are available via Errors.
var ErrInvalidDraft = fmt.Errorf("draft failed validation")

// ErrAlreadySubmitted is returned by Set once the wizard has reached the
// Submitted state.
var ErrAlreadySubmitted = fmt.Errorf("registration already submitted")

// Payload is the submission record handed to the transport once the
// wizard completes. Geography fields carry both the selected ids and the
// resolved display names.
type Payload struct {
	FullName     string `json:"fullName"`
	FatherName   string `json:"fatherName"`
	CNIC         string `json:"cnic"`
	DateOfBirth  string `json:"dateOfBirth"`
	Gender       string `json:"gender"`
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp,omitempty"`
	Email        string `json:"email"`
	Province     string `json:"province"`
	ProvinceName string `json:"provinceName"`
	Division     string `json:"division"`
	DivisionName string `json:"divisionName"`
	District     string `json:"district"`
	DistrictName string `json:"districtName"`
	Tehsil       string `json:"tehsil"`
	UnionCouncil string `json:"unionCouncil,omitempty"`
	HouseNumber  string `json:"houseNumber,omitempty"`
	Street       string `json:"street"`
	BlockMohalla string `json:"blockMohalla"`
	Village      string `json:"village,omitempty"`
	City         string `json:"city"`
	Address      string `json:"address,omitempty"`
	PostalCode   string `json:"postalCode"`

	Education        string `json:"education"`
	Occupation       string `json:"occupation,omitempty"`
	Availability     string `json:"availability"`
	Experience       string `json:"experience,omitempty"`
	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`
}

// Transport is the external collaborator that receives a completed
// registration. It is expected to be a single atomic call; on failure the
// draft is preserved so the caller may retry.
type Transport interface {
	SubmitRegistration(ctx context.Context, payload *Payload) (id string, err error)
}

// Wizard drives one registration session. It is owned by a single caller
// and is not safe for concurrent use.
type Wizard struct {
	step   Step
	draft  map[string]string
	errors map[string]string

	divisions     []locations.Node
	districts     []locations.Node
	tehsils       []locations.Node
	unionCouncils []locations.Node
}

// New returns a wizard at the first step with an empty draft.
func New() *Wizard {
	return &Wizard{
		step:   StepPersonal,
		draft:  make(map[string]string),
		errors: make(map[string]string),
	}
}

// Step returns the current wizard state.
func (w *Wizard) Step() Step { return w.step }

// Value returns the current draft value for a field.
func (w *Wizard) Value(field string) string { return w.draft[field] }

// Draft returns a copy of the in-progress record.
func (w *Wizard) Draft() map[string]string {
	out := make(map[string]string, len(w.draft))
	for k, v := range w.draft {
		out[k] = v
	}
	return out
}

// Errors returns a copy of the validation error set from the last gate
// check. It is recomputed wholesale on each Next/Submit attempt and
// cleared per-field on edit.
func (w *Wizard) Errors() map[string]string {
	out := make(map[string]string, len(w.errors))
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}

// Divisions returns the division options derived from the current
// province selection.
func (w *Wizard) Divisions() []locations.Node { return w.divisions }

// Districts returns the district options derived from the current
// division selection.
func (w *Wizard) Districts() []locations.Node { return w.districts }

// Tehsils returns the tehsil options derived from the current district
// selection (curated or synthesized).
func (w *Wizard) Tehsils() []locations.Node { return w.tehsils }

// UnionCouncils returns the union council options derived from the
// current tehsil selection.
func (w *Wizard) UnionCouncils() []locations.Node { return w.unionCouncils }

// Set records a field value on the draft. CNIC and phone fields are
// reformatted progressively on every call. Setting a geography field
// clears its dependent fields and synchronously repopulates the child
// options, which are returned (nil for non-geography fields). Cascades
// re-fire unconditionally, even when the value is unchanged.
func (w *Wizard) Set(field, value string) ([]locations.Node, error) {
	if w.step == StepSubmitted {
		return nil, ErrAlreadySubmitted
	}

	switch field {
	case FieldCNIC:
		value = internal.FormatCNIC(value)
	case FieldPhone, FieldWhatsApp, FieldEmergencyPhone:
		value = internal.FormatPhone(value)
	}
	w.draft[field] = value
	delete(w.errors, field)

	switch field {
	case FieldProvince:
		w.clearFields(FieldDivision, FieldDistrict, FieldTehsil, FieldUnionCouncil, FieldCity)
		w.divisions = locations.DivisionsOf(value)
		w.districts, w.tehsils, w.unionCouncils = nil, nil, nil
		return w.divisions, nil
	case FieldDivision:
		w.clearFields(FieldDistrict, FieldTehsil, FieldUnionCouncil)
		w.districts = locations.DistrictsOf(value)
		w.tehsils, w.unionCouncils = nil, nil
		return w.districts, nil
	case FieldDistrict:
		w.clearFields(FieldTehsil, FieldUnionCouncil)
		w.tehsils = locations.TehsilsOf(value)
		w.unionCouncils = nil
		return w.tehsils, nil
	case FieldTehsil:
		w.clearFields(FieldUnionCouncil)
		w.unionCouncils = locations.UnionCouncilsOf(value)
		return w.unionCouncils, nil
	}
	return nil, nil
}

func (w *Wizard) clearFields(fields ...string) {
	for _, f := range fields {
		w.draft[f] = ""
		delete(w.errors, f)
	}
}

// Next validates the current step and advances one step when the
// validation set is empty. It reports whether the wizard advanced; on
// failure the per-field messages are available via Errors.
func (w *Wizard) Next() bool {
	if w.step >= StepVolunteerInfo {
		return false
	}
	w.errors = w.validateStep(w.step)
	if len(w.errors) > 0 {
		return false
	}
	w.step++
	return true
}

// Previous moves one step back without re-validating. It never fails and
// is a no-op at the first step.
func (w *Wizard) Previous() {
	if w.step > StepPersonal && w.step != StepSubmitted {
		w.step--
	}
}

// Submit validates the final step and hands the packaged draft to the
// transport. Calling Submit from any state other than the final step is a
// caller bug and panics. A validation failure returns ErrInvalidDraft; a
// transport failure is returned as-is and the draft is preserved for
// retry. On success the wizard transitions to Submitted and accepts no
// further mutation.
func (w *Wizard) Submit(ctx context.Context, transport Transport) (string, error) {
	if w.step != StepVolunteerInfo {
		panic(fmt.Sprintf("registration: Submit called from %s state", w.step))
	}
	w.errors = w.validateStep(StepVolunteerInfo)
	if len(w.errors) > 0 {
		return "", ErrInvalidDraft
	}
	id, err := transport.SubmitRegistration(ctx, w.Payload())
	if err != nil {
		return "", fmt.Errorf("registration submission failed: %w", err)
	}
	w.step = StepSubmitted
	return id, nil
}

// Payload packages the current draft for submission, resolving geography
// display names.
func (w *Wizard) Payload() *Payload {
	d := w.draft
	return &Payload{
		FullName:         d[FieldFullName],
		FatherName:       d[FieldFatherName],
		CNIC:             d[FieldCNIC],
		DateOfBirth:      d[FieldDOB],
		Gender:           d[FieldGender],
		Phone:            d[FieldPhone],
		WhatsApp:         d[FieldWhatsApp],
		Email:            d[FieldEmail],
		Province:         d[FieldProvince],
		ProvinceName:     locations.ProvinceName(d[FieldProvince]),
		Division:         d[FieldDivision],
		DivisionName:     locations.DivisionName(d[FieldDivision]),
		District:         d[FieldDistrict],
		DistrictName:     locations.DistrictName(d[FieldDistrict]),
		Tehsil:           d[FieldTehsil],
		UnionCouncil:     d[FieldUnionCouncil],
		HouseNumber:      d[FieldHouseNumber],
		Street:           d[FieldStreet],
		BlockMohalla:     d[FieldBlockMohalla],
		Village:          d[FieldVillage],
		City:             d[FieldCity],
		Address:          d[FieldAddress],
		PostalCode:       d[FieldPostalCode],
		Education:        d[FieldEducation],
		Occupation:       d[FieldOccupation],
		Availability:     d[FieldAvailability],
		Experience:       d[FieldExperience],
		EmergencyContact: d[FieldEmergencyContact],
		EmergencyPhone:   d[FieldEmergencyPhone],
	}
}
