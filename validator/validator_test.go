package validator

import (
	"testing"
)

// TestValidateCNIC tests the CNIC validator.
func TestValidateCNIC(t *testing.T) {
	type TestStruct struct {
		CNIC string `validate:"omitempty,cnic"`
	}

	v := New()

	// a formatted or bare 13-digit CNIC is valid
	validCNICs := []string{
		"35202-1234567-1",
		"3520212345671",
	}
	for _, cnic := range validCNICs {
		if err := v.Validate(&TestStruct{CNIC: cnic}); err != nil {
			t.Errorf("Expected CNIC %s to be valid, but got error: %v", cnic, err)
		}
	}

	invalidCNICs := []string{
		"123",
		"35202-1234567",
		"35202-1234567-12",
	}
	for _, cnic := range invalidCNICs {
		if err := v.Validate(&TestStruct{CNIC: cnic}); err == nil {
			t.Errorf("Expected CNIC %s to be invalid, but it was valid", cnic)
		}
	}

	// empty is valid without the required tag
	if err := v.Validate(&TestStruct{}); err != nil {
		t.Errorf("Expected empty CNIC to be valid, but got error: %v", err)
	}
}

// TestValidatePhone tests the Pakistani phone validator.
func TestValidatePhone(t *testing.T) {
	type TestStruct struct {
		Phone string `validate:"omitempty,pkphone"`
	}

	v := New()

	validPhones := []string{
		"+923001234567",
		"+92-300-1234567",
		"03001234567",
		"0300-1234567",
	}
	for _, phone := range validPhones {
		if err := v.Validate(&TestStruct{Phone: phone}); err != nil {
			t.Errorf("Expected phone number %s to be valid, but got error: %v", phone, err)
		}
	}

	invalidPhones := []string{
		"123",
		"1234567890",
		"+13001234567",
	}
	for _, phone := range invalidPhones {
		if err := v.Validate(&TestStruct{Phone: phone}); err == nil {
			t.Errorf("Expected phone number %s to be invalid, but it was valid", phone)
		}
	}
}

// TestValidateMinimumAge tests the minimum-age validator.
func TestValidateMinimumAge(t *testing.T) {
	type TestStruct struct {
		DateOfBirth string `validate:"omitempty,minage"`
	}

	v := New()

	if err := v.Validate(&TestStruct{DateOfBirth: "1990-01-01"}); err != nil {
		t.Errorf("Expected adult date of birth to be valid, but got error: %v", err)
	}
	if err := v.Validate(&TestStruct{DateOfBirth: "2020-01-01"}); err == nil {
		t.Errorf("Expected underage date of birth to be invalid, but it was valid")
	}
	if err := v.Validate(&TestStruct{DateOfBirth: "not-a-date"}); err == nil {
		t.Errorf("Expected malformed date of birth to be invalid, but it was valid")
	}
}

// TestValidateName tests the person-name validator.
func TestValidateName(t *testing.T) {
	type TestStruct struct {
		Name string `validate:"omitempty,personname"`
	}

	v := New()

	validNames := []string{"Ahmed Khan", "احمد خان"}
	for _, name := range validNames {
		if err := v.Validate(&TestStruct{Name: name}); err != nil {
			t.Errorf("Expected name %s to be valid, but got error: %v", name, err)
		}
	}
	invalidNames := []string{"Ahmed2", "Ahmed-Khan"}
	for _, name := range invalidNames {
		if err := v.Validate(&TestStruct{Name: name}); err == nil {
			t.Errorf("Expected name %s to be invalid, but it was valid", name)
		}
	}
}
