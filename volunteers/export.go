package volunteers

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/auriaahmad/civil-defence/db"
)

// csvHeader is the fixed column set of a volunteer export.
var csvHeader = []string{"Name", "CNIC", "Phone", "WhatsApp", "Email", "District", "Status"}

// WriteCSV writes the volunteers to w as an RFC 4180 CSV document with a
// fixed header row. Fields containing commas, quotes or newlines are
// quoted by the encoder.
func WriteCSV(w io.Writer, volunteers []*db.Volunteer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, v := range volunteers {
		record := []string{
			v.FullName,
			v.CNIC,
			v.Phone,
			v.WhatsApp,
			v.Email,
			v.DistrictName,
			string(v.Status),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename returns the download name for an export generated at t,
// such as "volunteers-2026-08-31.csv".
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("volunteers-%s.csv", t.Format(time.DateOnly))
}
