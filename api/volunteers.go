package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/auriaahmad/civil-defence/api/apicommon"
	"github.com/auriaahmad/civil-defence/db"
	"github.com/auriaahmad/civil-defence/errors"
	"github.com/auriaahmad/civil-defence/volunteers"
)

// criteriaFromRequest builds the filter criteria from the list query
// parameters.
func criteriaFromRequest(r *http.Request) *volunteers.Criteria {
	q := r.URL.Query()
	return &volunteers.Criteria{
		Search:       q.Get("search"),
		Province:     q.Get("province"),
		Division:     q.Get("division"),
		District:     q.Get("district"),
		Status:       q.Get("status"),
		Education:    q.Get("education"),
		Availability: q.Get("availability"),
	}
}

// volunteersHandler returns one page of the filtered volunteer list.
func (a *API) volunteersHandler(w http.ResponseWriter, r *http.Request) {
	all, err := a.db.Volunteers()
	if err != nil {
		errors.ErrStorageFailure.WithErr(err).Write(w)
		return
	}
	filtered := criteriaFromRequest(r).Apply(all)

	page, limit := apicommon.PageFromRequest(r)
	start := (page - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	apicommon.HTTPWriteJSON(w, &apicommon.VolunteerList{
		Volunteers: filtered[start:end],
		Page:       page,
		Limit:      limit,
		Total:      len(filtered),
	})
}

// volunteerHandler returns a single volunteer by id.
func (a *API) volunteerHandler(w http.ResponseWriter, r *http.Request) {
	volunteerID := chi.URLParam(r, "volunteerID")
	if volunteerID == "" {
		errors.ErrMalformedURLParam.Withf("missing volunteer ID").Write(w)
		return
	}
	volunteer, err := a.db.Volunteer(volunteerID)
	if err != nil {
		switch err {
		case db.ErrNotFound:
			errors.ErrVolunteerNotFound.Write(w)
		case db.ErrInvalidData:
			errors.ErrMalformedURLParam.Withf("invalid volunteer ID").Write(w)
		default:
			errors.ErrStorageFailure.WithErr(err).Write(w)
		}
		return
	}
	apicommon.HTTPWriteJSON(w, volunteer)
}

// volunteersStatusHandler applies a bulk status change (approve, reject
// or deactivate) over a set of volunteer ids.
func (a *API) volunteersStatusHandler(w http.ResponseWriter, r *http.Request) {
	req := &apicommon.StatusUpdateRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	if !db.ValidStatus(req.Status) {
		errors.ErrInvalidStatus.Withf("got %q", req.Status).Write(w)
		return
	}
	updated, err := a.db.UpdateVolunteersStatus(req.IDs, req.Status)
	if err != nil {
		if err == db.ErrInvalidData {
			errors.ErrMalformedURLParam.Withf("invalid volunteer ID").Write(w)
			return
		}
		errors.ErrStorageFailure.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, &apicommon.StatusUpdateResponse{Updated: updated})
}

// volunteersExportHandler downloads the filtered view as a CSV document.
// An optional comma-separated ids parameter restricts the export to a
// selection of the view.
func (a *API) volunteersExportHandler(w http.ResponseWriter, r *http.Request) {
	all, err := a.db.Volunteers()
	if err != nil {
		errors.ErrStorageFailure.WithErr(err).Write(w)
		return
	}
	filtered := criteriaFromRequest(r).Apply(all)

	selection := volunteers.NewSelection()
	if rawIDs := r.URL.Query().Get("ids"); rawIDs != "" {
		for _, id := range strings.Split(rawIDs, ",") {
			if id = strings.TrimSpace(id); id != "" {
				selection.Toggle(id)
			}
		}
	}
	subset := selection.Subset(filtered)

	filename := volunteers.ExportFilename(time.Now())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := volunteers.WriteCSV(w, subset); err != nil {
		// the CSV headers are already on the wire, so no error body
		zap.S().Errorw("failed to write export CSV", "error", err)
	}
}

// volunteersImportHandler bulk-imports volunteers from a CSV body. Rows
// failing the format pre-scan are reported and skipped; rows whose CNIC
// is already registered are skipped by the store.
func (a *API) volunteersImportHandler(w http.ResponseWriter, r *http.Request) {
	parsed, rowErrors, err := volunteers.ParseImportCSV(r.Body)
	if err != nil {
		errors.ErrInvalidCSVData.WithErr(err).Write(w)
		return
	}
	added, err := a.db.SetBulkVolunteers(parsed)
	if err != nil {
		errors.ErrStorageFailure.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, &apicommon.ImportResponse{
		Added:  added,
		Errors: rowErrors,
	})
}

// dashboardHandler returns the dashboard statistics.
func (a *API) dashboardHandler(w http.ResponseWriter, _ *http.Request) {
	stats, err := a.db.Stats()
	if err != nil {
		errors.ErrStorageFailure.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, stats)
}
