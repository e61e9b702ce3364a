package registration

import (
	"github.com/auriaahmad/civil-defence/internal"
)

// validateStep recomputes the full validation set for one step. The
// returned map is never partially stale: it replaces the previous error
// set wholesale.
func (w *Wizard) validateStep(step Step) map[string]string {
	errs := make(map[string]string)

	switch step {
	case StepPersonal:
		if !internal.ValidRequired(w.draft[FieldFullName]) {
			errs[FieldFullName] = internal.ValidationMessage("Full Name", "required")
		} else if !internal.ValidName(w.draft[FieldFullName]) {
			errs[FieldFullName] = internal.ValidationMessage("Full Name", "name")
		}
		if !internal.ValidRequired(w.draft[FieldFatherName]) {
			errs[FieldFatherName] = internal.ValidationMessage("Father Name", "required")
		} else if !internal.ValidName(w.draft[FieldFatherName]) {
			errs[FieldFatherName] = internal.ValidationMessage("Father Name", "name")
		}
		if !internal.ValidCNIC(w.draft[FieldCNIC]) {
			errs[FieldCNIC] = internal.ValidationMessage("CNIC", "cnic")
		}
		if !internal.ValidRequired(w.draft[FieldDOB]) {
			errs[FieldDOB] = internal.ValidationMessage("Date of Birth", "required")
		} else if !internal.ValidMinimumAge(w.draft[FieldDOB]) {
			errs[FieldDOB] = internal.ValidationMessage("Age", "age")
		}
		if !internal.ValidRequired(w.draft[FieldGender]) {
			errs[FieldGender] = internal.ValidationMessage("Gender", "required")
		}

	case StepContact:
		if !internal.ValidPhone(w.draft[FieldPhone]) {
			errs[FieldPhone] = internal.ValidationMessage("Phone", "phone")
		}
		// WhatsApp is optional but must be valid when present.
		if wa := w.draft[FieldWhatsApp]; wa != "" && !internal.ValidPhone(wa) {
			errs[FieldWhatsApp] = internal.ValidationMessage("WhatsApp", "phone")
		}
		if !internal.ValidEmail(w.draft[FieldEmail]) {
			errs[FieldEmail] = internal.ValidationMessage("Email", "email")
		}

	case StepLocation:
		required := []struct{ field, label string }{
			{FieldProvince, "Province"},
			{FieldDivision, "Division"},
			{FieldDistrict, "District"},
			{FieldTehsil, "Tehsil"},
			{FieldStreet, "Street"},
			{FieldBlockMohalla, "Block/Mohalla/Society"},
			{FieldCity, "City"},
			{FieldPostalCode, "Postal Code"},
		}
		for _, f := range required {
			if !internal.ValidRequired(w.draft[f.field]) {
				errs[f.field] = internal.ValidationMessage(f.label, "required")
			}
		}

	case StepVolunteerInfo:
		if !internal.ValidRequired(w.draft[FieldEducation]) {
			errs[FieldEducation] = internal.ValidationMessage("Education", "required")
		}
		if !internal.ValidRequired(w.draft[FieldAvailability]) {
			errs[FieldAvailability] = internal.ValidationMessage("Availability", "required")
		}
		if !internal.ValidRequired(w.draft[FieldEmergencyContact]) {
			errs[FieldEmergencyContact] = internal.ValidationMessage("Emergency Contact Name", "required")
		}
		if !internal.ValidPhone(w.draft[FieldEmergencyPhone]) {
			errs[FieldEmergencyPhone] = internal.ValidationMessage("Emergency Contact Phone", "phone")
		}
	}

	return errs
}
