package internal

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestValidCNIC(t *testing.T) {
	c := qt.New(t)
	valid := []string{
		"35202-1234567-1",
		"3520212345671",
		"12345-6789012-3",
	}
	for _, cnic := range valid {
		c.Assert(ValidCNIC(cnic), qt.IsTrue, qt.Commentf("cnic %q", cnic))
	}
	invalid := []string{
		"",
		"35202-123456-1",   // short middle group
		"35202-1234567-12", // long check digit
		"35202-1234567",    // missing check digit
		"3520a-1234567-1",  // letter
		"352021234567",     // 12 digits
		"35202123456712",   // 14 digits
	}
	for _, cnic := range invalid {
		c.Assert(ValidCNIC(cnic), qt.IsFalse, qt.Commentf("cnic %q", cnic))
	}
}

func TestFormatCNIC(t *testing.T) {
	c := qt.New(t)
	cases := []struct {
		in, want string
	}{
		{"3520212345671", "35202-1234567-1"},
		{"35202-1234567-1", "35202-1234567-1"},
		{"35202", "35202"},
		{"352021", "35202-1"},
		{"352021234567", "35202-1234567"},
		{"35202.1234567#1", "35202-1234567-1"},
		{"", ""},
	}
	for _, tc := range cases {
		c.Assert(FormatCNIC(tc.in), qt.Equals, tc.want, qt.Commentf("input %q", tc.in))
	}
}

// formatting an already formatted CNIC must not change it, and a
// formatted complete CNIC must validate
func TestFormatCNICIdempotent(t *testing.T) {
	c := qt.New(t)
	raws := []string{"3520212345671", "1234567890123", "4210112345678"}
	for _, raw := range raws {
		once := FormatCNIC(raw)
		c.Assert(FormatCNIC(once), qt.Equals, once)
		c.Assert(ValidCNIC(once), qt.IsTrue)
	}
}

func TestValidPhone(t *testing.T) {
	c := qt.New(t)
	valid := []string{
		"+923001234567",
		"+92-300-1234567",
		"923001234567",
		"03001234567",
		"0300-1234567",
		"04212345678", // landline trunk form, 11 digits
	}
	for _, phone := range valid {
		c.Assert(ValidPhone(phone), qt.IsTrue, qt.Commentf("phone %q", phone))
	}
	invalid := []string{
		"",
		"123",
		"+9230012345",    // too short
		"+9230012345678", // too long
		"1234567890",     // no recognized prefix
		"+13001234567",   // wrong country code
	}
	for _, phone := range invalid {
		c.Assert(ValidPhone(phone), qt.IsFalse, qt.Commentf("phone %q", phone))
	}
}

func TestFormatPhone(t *testing.T) {
	c := qt.New(t)
	cases := []struct {
		in, want string
	}{
		{"+923001234567", "+92-300-1234567"},
		{"923001234567", "+92-300-1234567"},
		{"03001234567", "0300-1234567"},
		{"+92-300-1234567", "+92-300-1234567"},
		{"0300-1234567", "0300-1234567"},
		{"0300", "0300"},
		{"", ""},
	}
	for _, tc := range cases {
		c.Assert(FormatPhone(tc.in), qt.Equals, tc.want, qt.Commentf("input %q", tc.in))
	}
}

// a formatted valid phone must still validate and reformat to itself
func TestFormatPhoneRoundTrip(t *testing.T) {
	c := qt.New(t)
	raws := []string{"+923001234567", "923211234567", "03001234567"}
	for _, raw := range raws {
		once := FormatPhone(raw)
		c.Assert(ValidPhone(once), qt.IsTrue, qt.Commentf("formatted %q", once))
		c.Assert(FormatPhone(once), qt.Equals, once)
	}
}

func TestValidEmail(t *testing.T) {
	c := qt.New(t)
	valid := []string{"a@b.co", "volunteer.one@example.org.pk", "x+y@sub.domain.io"}
	for _, email := range valid {
		c.Assert(ValidEmail(email), qt.IsTrue, qt.Commentf("email %q", email))
	}
	invalid := []string{"", "a@b", "a b@c.d", "@b.co", "a@.co", "a@b."}
	for _, email := range invalid {
		c.Assert(ValidEmail(email), qt.IsFalse, qt.Commentf("email %q", email))
	}
}

func TestValidName(t *testing.T) {
	c := qt.New(t)
	c.Assert(ValidName("Ahmed Khan"), qt.IsTrue)
	c.Assert(ValidName("احمد خان"), qt.IsTrue) // Urdu letters
	c.Assert(ValidName("Ahmed2"), qt.IsFalse)
	c.Assert(ValidName("Ahmed-Khan"), qt.IsFalse)
	c.Assert(ValidName(""), qt.IsFalse)
}

func TestAgeAt(t *testing.T) {
	c := qt.New(t)
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		dob  string
		want int
	}{
		{"2000-01-01", 24},
		{"2000-06-15", 24}, // birthday today
		{"2000-06-16", 23}, // birthday tomorrow
		{"2006-06-15", 18},
		{"2006-06-16", 17},
	}
	for _, tc := range cases {
		c.Assert(AgeAt(tc.dob, now), qt.Equals, tc.want, qt.Commentf("dob %q", tc.dob))
	}
}

func TestValidMinimumAgeAt(t *testing.T) {
	c := qt.New(t)
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	c.Assert(ValidMinimumAgeAt("2006-06-15", now), qt.IsTrue)  // exactly 18
	c.Assert(ValidMinimumAgeAt("2006-06-16", now), qt.IsFalse) // 18 tomorrow
	c.Assert(ValidMinimumAgeAt("1990-01-01", now), qt.IsTrue)
	c.Assert(ValidMinimumAgeAt("not-a-date", now), qt.IsFalse)
	c.Assert(ValidMinimumAgeAt("", now), qt.IsFalse)
}

func TestValidRequiredAndLength(t *testing.T) {
	c := qt.New(t)
	c.Assert(ValidRequired("x"), qt.IsTrue)
	c.Assert(ValidRequired("  "), qt.IsFalse)
	c.Assert(ValidRequired(""), qt.IsFalse)

	c.Assert(ValidLength("abc", 2, 5), qt.IsTrue)
	c.Assert(ValidLength("a", 2, 5), qt.IsFalse)
	c.Assert(ValidLength("abcdef", 2, 5), qt.IsFalse)
}

func TestValidationMessage(t *testing.T) {
	c := qt.New(t)
	c.Assert(ValidationMessage("Full name", "required"), qt.Equals, "Full name is required")
	c.Assert(ValidationMessage("CNIC", "cnic"), qt.Contains, "13-digit CNIC")
	c.Assert(ValidationMessage("Phone", "unknown-kind"), qt.Equals, "Phone is invalid")
}

func TestHexHashPassword(t *testing.T) {
	c := qt.New(t)
	h1 := HexHashPassword("salt", "password1")
	h2 := HexHashPassword("salt", "password1")
	h3 := HexHashPassword("salt", "password2")
	c.Assert(h1, qt.Equals, h2)
	c.Assert(h1, qt.Not(qt.Equals), h3)
	c.Assert(h1, qt.Not(qt.Equals), "")
}
