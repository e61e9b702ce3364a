package apicommon

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/auriaahmad/civil-defence/db"
)

// AdminFromContext retrieves the admin account from the context provided,
// expected to be the context of a request handled by the authenticator
// middleware.
func AdminFromContext(ctx context.Context) (*db.Admin, bool) {
	rawAdmin, ok := ctx.Value(AdminMetadataKey).(db.Admin)
	if ok {
		return &rawAdmin, ok
	}
	return nil, false
}

// PageFromRequest extracts the page and limit query parameters, clamping
// them to sane values.
func PageFromRequest(r *http.Request) (page, limit int) {
	page = DefaultPage
	limit = DefaultPageSize
	if raw := r.URL.Query().Get(ParamPage); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}
	if raw := r.URL.Query().Get(ParamLimit); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

// HTTPWriteJSON helper function allows to write a JSON response.
func HTTPWriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		zap.S().Warnw("failed to write on response", "error", err)
	}
}

// HTTPWriteOK helper function allows to write an OK response.
func HTTPWriteOK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("\n")); err != nil {
		zap.S().Warnw("failed to write on response", "error", err)
	}
}
