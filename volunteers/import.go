package volunteers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/auriaahmad/civil-defence/db"
	"github.com/auriaahmad/civil-defence/internal"
	"github.com/auriaahmad/civil-defence/locations"
)

// importHeader is the column set accepted by the bulk import. The first
// seven columns are required on every row; the rest may be empty.
var importHeader = []string{
	"fullName", "fatherName", "cnic", "dateOfBirth", "gender", "phone", "email",
	"whatsapp", "province", "division", "district", "tehsil", "unionCouncil",
	"street", "blockMohalla", "city", "postalCode",
	"education", "occupation", "availability", "experience",
	"emergencyContact", "emergencyPhone",
}

// RowError describes why a single CSV row was rejected during the
// pre-scan. Line is 1-based and counts the header.
type RowError struct {
	Line  int    `json:"line"`
	Field string `json:"field"`
	Error string `json:"error"`
}

// ParseImportCSV reads a bulk-import CSV and pre-scans every row with the
// registration format validators. Rows that pass become pending
// volunteers ready for insertion; rows that fail are reported in the
// returned RowError list and skipped. A malformed document (bad header,
// unreadable CSV) fails as a whole.
func ParseImportCSV(r io.Reader) ([]*db.Volunteer, []RowError, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range importHeader[:7] {
		if _, ok := col[required]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", required)
		}
	}
	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var parsed []*db.Volunteer
	var rowErrors []RowError
	seenCNIC := map[string]int{}
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read csv row %d: %w", line, err)
		}
		v := &db.Volunteer{
			FullName:         field(record, "fullName"),
			FatherName:       field(record, "fatherName"),
			CNIC:             internal.FormatCNIC(field(record, "cnic")),
			DateOfBirth:      field(record, "dateOfBirth"),
			Gender:           field(record, "gender"),
			Phone:            internal.FormatPhone(field(record, "phone")),
			WhatsApp:         internal.FormatPhone(field(record, "whatsapp")),
			Email:            field(record, "email"),
			Province:         field(record, "province"),
			Division:         field(record, "division"),
			District:         field(record, "district"),
			Tehsil:           field(record, "tehsil"),
			UnionCouncil:     field(record, "unionCouncil"),
			Street:           field(record, "street"),
			BlockMohalla:     field(record, "blockMohalla"),
			City:             field(record, "city"),
			PostalCode:       field(record, "postalCode"),
			Education:        field(record, "education"),
			Occupation:       field(record, "occupation"),
			Availability:     field(record, "availability"),
			Experience:       field(record, "experience"),
			EmergencyContact: field(record, "emergencyContact"),
			EmergencyPhone:   internal.FormatPhone(field(record, "emergencyPhone")),
			Status:           db.StatusPending,
		}
		if rowErr, ok := scanRow(line, v, seenCNIC); !ok {
			rowErrors = append(rowErrors, rowErr)
			continue
		}
		seenCNIC[v.CNIC] = line
		v.ProvinceName = locations.ProvinceName(v.Province)
		v.DivisionName = locations.DivisionName(v.Division)
		v.DistrictName = locations.DistrictName(v.District)
		parsed = append(parsed, v)
	}
	return parsed, rowErrors, nil
}

// scanRow validates a single parsed row, returning the first failure.
func scanRow(line int, v *db.Volunteer, seenCNIC map[string]int) (RowError, bool) {
	fail := func(field, msg string) (RowError, bool) {
		return RowError{Line: line, Field: field, Error: msg}, false
	}
	switch {
	case !internal.ValidRequired(v.FullName):
		return fail("fullName", internal.ValidationMessage("Full name", "required"))
	case !internal.ValidName(v.FullName):
		return fail("fullName", internal.ValidationMessage("Full name", "name"))
	case !internal.ValidRequired(v.FatherName):
		return fail("fatherName", internal.ValidationMessage("Father name", "required"))
	case !internal.ValidCNIC(v.CNIC):
		return fail("cnic", internal.ValidationMessage("CNIC", "cnic"))
	case !internal.ValidMinimumAge(v.DateOfBirth):
		return fail("dateOfBirth", internal.ValidationMessage("Date of birth", "age"))
	case !internal.ValidRequired(v.Gender):
		return fail("gender", internal.ValidationMessage("Gender", "required"))
	case !internal.ValidPhone(v.Phone):
		return fail("phone", internal.ValidationMessage("Phone", "phone"))
	case v.WhatsApp != "" && !internal.ValidPhone(v.WhatsApp):
		return fail("whatsapp", internal.ValidationMessage("WhatsApp", "phone"))
	case !internal.ValidEmail(v.Email):
		return fail("email", internal.ValidationMessage("Email", "email"))
	}
	if prev, dup := seenCNIC[v.CNIC]; dup {
		return fail("cnic", fmt.Sprintf("CNIC already present on row %d", prev))
	}
	return RowError{}, true
}
