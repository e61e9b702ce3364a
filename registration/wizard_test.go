package registration

import (
	"context"
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
)

// fakeTransport records the submitted payload and can be told to fail.
type fakeTransport struct {
	payload *Payload
	err     error
}

func (t *fakeTransport) SubmitRegistration(_ context.Context, p *Payload) (string, error) {
	if t.err != nil {
		return "", t.err
	}
	t.payload = p
	return "vol-1", nil
}

func fillStepPersonal(w *Wizard) {
	_, _ = w.Set(FieldFullName, "Ahmed Khan")
	_, _ = w.Set(FieldFatherName, "Bashir Khan")
	_, _ = w.Set(FieldCNIC, "3520212345671")
	_, _ = w.Set(FieldDOB, "1995-03-10")
	_, _ = w.Set(FieldGender, "male")
}

func fillStepContact(w *Wizard) {
	_, _ = w.Set(FieldPhone, "03001234567")
	_, _ = w.Set(FieldEmail, "ahmed@example.com")
}

func fillStepLocation(w *Wizard) {
	_, _ = w.Set(FieldProvince, "punjab")
	_, _ = w.Set(FieldDivision, "lahore")
	_, _ = w.Set(FieldDistrict, "lahore")
	_, _ = w.Set(FieldTehsil, "lahore-city")
	_, _ = w.Set(FieldStreet, "Street 5")
	_, _ = w.Set(FieldBlockMohalla, "Block A")
	_, _ = w.Set(FieldCity, "Lahore")
	_, _ = w.Set(FieldPostalCode, "54000")
}

func fillStepVolunteerInfo(w *Wizard) {
	_, _ = w.Set(FieldEducation, "bachelors")
	_, _ = w.Set(FieldAvailability, "weekends")
	_, _ = w.Set(FieldEmergencyContact, "Bashir Khan")
	_, _ = w.Set(FieldEmergencyPhone, "03007654321")
}

func completeWizard() *Wizard {
	w := New()
	fillStepPersonal(w)
	w.Next()
	fillStepContact(w)
	w.Next()
	fillStepLocation(w)
	w.Next()
	fillStepVolunteerInfo(w)
	return w
}

func TestWizardStartsAtPersonal(t *testing.T) {
	c := qt.New(t)
	w := New()
	c.Assert(w.Step(), qt.Equals, StepPersonal)
	c.Assert(w.Errors(), qt.HasLen, 0)
}

func TestNextBlocksOnEmptyStep(t *testing.T) {
	c := qt.New(t)
	w := New()
	c.Assert(w.Next(), qt.IsFalse)
	c.Assert(w.Step(), qt.Equals, StepPersonal)
	errs := w.Errors()
	for _, field := range []string{FieldFullName, FieldFatherName, FieldCNIC, FieldDOB, FieldGender} {
		c.Assert(errs[field], qt.Not(qt.Equals), "", qt.Commentf("field %s", field))
	}
}

func TestNextAdvancesWhenValid(t *testing.T) {
	c := qt.New(t)
	w := New()
	fillStepPersonal(w)
	c.Assert(w.Next(), qt.IsTrue)
	c.Assert(w.Step(), qt.Equals, StepContact)
	c.Assert(w.Errors(), qt.HasLen, 0)
}

func TestUnderageIsRejected(t *testing.T) {
	c := qt.New(t)
	w := New()
	fillStepPersonal(w)
	_, _ = w.Set(FieldDOB, "2015-01-01")
	c.Assert(w.Next(), qt.IsFalse)
	c.Assert(w.Errors()[FieldDOB], qt.Contains, "18 years old")
}

func TestSetFormatsProgressively(t *testing.T) {
	c := qt.New(t)
	w := New()
	_, _ = w.Set(FieldCNIC, "3520212345671")
	c.Assert(w.Value(FieldCNIC), qt.Equals, "35202-1234567-1")
	_, _ = w.Set(FieldPhone, "923001234567")
	c.Assert(w.Value(FieldPhone), qt.Equals, "+92-300-1234567")
}

func TestSetClearsFieldError(t *testing.T) {
	c := qt.New(t)
	w := New()
	c.Assert(w.Next(), qt.IsFalse)
	c.Assert(w.Errors()[FieldFullName], qt.Not(qt.Equals), "")
	_, _ = w.Set(FieldFullName, "Ahmed Khan")
	c.Assert(w.Errors()[FieldFullName], qt.Equals, "")
}

func TestGeographyCascade(t *testing.T) {
	c := qt.New(t)
	w := New()
	divisions, err := w.Set(FieldProvince, "punjab")
	c.Assert(err, qt.IsNil)
	c.Assert(len(divisions) > 0, qt.IsTrue)

	districts, _ := w.Set(FieldDivision, "lahore")
	c.Assert(len(districts) > 0, qt.IsTrue)
	tehsils, _ := w.Set(FieldDistrict, "lahore")
	names := make([]string, 0, len(tehsils))
	for _, teh := range tehsils {
		names = append(names, teh.Name)
	}
	c.Assert(names, qt.Contains, "Lahore City")
	ucs, _ := w.Set(FieldTehsil, "lahore-city")
	c.Assert(len(ucs) > 0, qt.IsTrue)
	_, _ = w.Set(FieldUnionCouncil, "uc-1")

	// changing the province wipes every dependent selection
	_, _ = w.Set(FieldProvince, "sindh")
	c.Assert(w.Value(FieldDivision), qt.Equals, "")
	c.Assert(w.Value(FieldDistrict), qt.Equals, "")
	c.Assert(w.Value(FieldTehsil), qt.Equals, "")
	c.Assert(w.Value(FieldUnionCouncil), qt.Equals, "")
	c.Assert(w.Districts(), qt.HasLen, 0)
	c.Assert(w.Tehsils(), qt.HasLen, 0)
	c.Assert(w.UnionCouncils(), qt.HasLen, 0)
}

func TestTehsilFallbackOptions(t *testing.T) {
	c := qt.New(t)
	w := New()
	_, _ = w.Set(FieldProvince, "punjab")
	_, _ = w.Set(FieldDivision, "lahore")
	tehsils, _ := w.Set(FieldDistrict, "kasur")
	c.Assert(tehsils, qt.HasLen, 2)
	c.Assert(tehsils[0].ID, qt.Equals, "kasur-city")
	c.Assert(tehsils[1].ID, qt.Equals, "kasur-sadar")
}

func TestPrevious(t *testing.T) {
	c := qt.New(t)
	w := New()
	// Previous at the first step is a no-op
	w.Previous()
	c.Assert(w.Step(), qt.Equals, StepPersonal)

	fillStepPersonal(w)
	c.Assert(w.Next(), qt.IsTrue)
	w.Previous()
	c.Assert(w.Step(), qt.Equals, StepPersonal)
	// moving back does not re-validate and keeps the draft
	c.Assert(w.Value(FieldFullName), qt.Equals, "Ahmed Khan")
}

func TestSubmitFromEarlyStepPanics(t *testing.T) {
	c := qt.New(t)
	w := New()
	c.Assert(func() {
		_, _ = w.Submit(context.Background(), &fakeTransport{})
	}, qt.PanicMatches, `registration: Submit called from .*`)
}

func TestSubmitInvalidDraft(t *testing.T) {
	c := qt.New(t)
	w := completeWizard()
	_, _ = w.Set(FieldEmergencyPhone, "123")
	_, err := w.Submit(context.Background(), &fakeTransport{})
	c.Assert(err, qt.Equals, ErrInvalidDraft)
	c.Assert(w.Step(), qt.Equals, StepVolunteerInfo)
	c.Assert(w.Errors()[FieldEmergencyPhone], qt.Not(qt.Equals), "")
}

func TestSubmitTransportFailurePreservesDraft(t *testing.T) {
	c := qt.New(t)
	w := completeWizard()
	boom := fmt.Errorf("connection refused")
	_, err := w.Submit(context.Background(), &fakeTransport{err: boom})
	c.Assert(err, qt.ErrorMatches, ".*connection refused")
	c.Assert(w.Step(), qt.Equals, StepVolunteerInfo)
	c.Assert(w.Value(FieldFullName), qt.Equals, "Ahmed Khan")

	// a retry against a working transport succeeds
	id, err := w.Submit(context.Background(), &fakeTransport{})
	c.Assert(err, qt.IsNil)
	c.Assert(id, qt.Equals, "vol-1")
}

func TestSubmitEndToEnd(t *testing.T) {
	c := qt.New(t)
	w := completeWizard()
	transport := &fakeTransport{}
	id, err := w.Submit(context.Background(), transport)
	c.Assert(err, qt.IsNil)
	c.Assert(id, qt.Equals, "vol-1")
	c.Assert(w.Step(), qt.Equals, StepSubmitted)

	p := transport.payload
	c.Assert(p.CNIC, qt.Equals, "35202-1234567-1")
	c.Assert(p.Phone, qt.Equals, "0300-1234567")
	c.Assert(p.ProvinceName, qt.Equals, "Punjab")
	c.Assert(p.DivisionName, qt.Equals, "Lahore Division")
	c.Assert(p.DistrictName, qt.Equals, "Lahore")
	c.Assert(p.EmergencyPhone, qt.Equals, "0300-7654321")
}

func TestSubmittedWizardRejectsMutation(t *testing.T) {
	c := qt.New(t)
	w := completeWizard()
	_, err := w.Submit(context.Background(), &fakeTransport{})
	c.Assert(err, qt.IsNil)

	_, err = w.Set(FieldFullName, "Someone Else")
	c.Assert(err, qt.Equals, ErrAlreadySubmitted)
	// Previous is a no-op after submission
	w.Previous()
	c.Assert(w.Step(), qt.Equals, StepSubmitted)
}
