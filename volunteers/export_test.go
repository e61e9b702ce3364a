package volunteers

import (
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/auriaahmad/civil-defence/db"
)

func TestWriteCSV(t *testing.T) {
	c := qt.New(t)
	var sb strings.Builder
	err := WriteCSV(&sb, []*db.Volunteer{
		{
			FullName:     "Ahmed Khan",
			CNIC:         "35202-1234567-1",
			Phone:        "0300-1111111",
			WhatsApp:     "0300-1111111",
			Email:        "ahmed@example.com",
			DistrictName: "Lahore",
			Status:       db.StatusActive,
		},
		{
			FullName:     `Sana "Sam" Malik, MD`,
			CNIC:         "42101-7654321-2",
			Phone:        "0301-2222222",
			Email:        "sana@example.com",
			DistrictName: "Karachi East",
			Status:       db.StatusPending,
		},
	})
	c.Assert(err, qt.IsNil)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	c.Assert(lines, qt.HasLen, 3)
	c.Assert(lines[0], qt.Equals, "Name,CNIC,Phone,WhatsApp,Email,District,Status")
	c.Assert(lines[1], qt.Equals, "Ahmed Khan,35202-1234567-1,0300-1111111,0300-1111111,ahmed@example.com,Lahore,active")
	// embedded commas and quotes get RFC 4180 quoting
	c.Assert(lines[2], qt.Equals, `"Sana ""Sam"" Malik, MD",42101-7654321-2,0301-2222222,,sana@example.com,Karachi East,pending`)
}

func TestWriteCSVEmpty(t *testing.T) {
	c := qt.New(t)
	var sb strings.Builder
	c.Assert(WriteCSV(&sb, nil), qt.IsNil)
	c.Assert(sb.String(), qt.Equals, "Name,CNIC,Phone,WhatsApp,Email,District,Status\n")
}

func TestExportFilename(t *testing.T) {
	c := qt.New(t)
	at := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	c.Assert(ExportFilename(at), qt.Equals, "volunteers-2026-08-31.csv")
}
