package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/auriaahmad/civil-defence/api/apicommon"
	"github.com/auriaahmad/civil-defence/errors"
	"github.com/auriaahmad/civil-defence/locations"
)

// provincesHandler lists the provinces.
func (a *API) provincesHandler(w http.ResponseWriter, _ *http.Request) {
	apicommon.HTTPWriteJSON(w, locations.Provinces())
}

// divisionsHandler lists the divisions of a province. Unknown provinces
// yield an empty list, matching the resolver semantics, but a missing
// parameter is a malformed request.
func (a *API) divisionsHandler(w http.ResponseWriter, r *http.Request) {
	provinceID := chi.URLParam(r, "provinceID")
	if provinceID == "" {
		errors.ErrMalformedURLParam.Withf("missing province ID").Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, locations.DivisionsOf(provinceID))
}

// districtsHandler lists the districts of a division.
func (a *API) districtsHandler(w http.ResponseWriter, r *http.Request) {
	divisionID := chi.URLParam(r, "divisionID")
	if divisionID == "" {
		errors.ErrMalformedURLParam.Withf("missing division ID").Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, locations.DistrictsOf(divisionID))
}

// tehsilsHandler lists the tehsils of a district, synthesizing the City
// and Sadar fallback pair for districts without curated tehsil data.
func (a *API) tehsilsHandler(w http.ResponseWriter, r *http.Request) {
	districtID := chi.URLParam(r, "districtID")
	if districtID == "" {
		errors.ErrMalformedURLParam.Withf("missing district ID").Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, locations.TehsilsOf(districtID))
}

// unionCouncilsHandler lists the union councils of a tehsil.
func (a *API) unionCouncilsHandler(w http.ResponseWriter, r *http.Request) {
	tehsilID := chi.URLParam(r, "tehsilID")
	if tehsilID == "" {
		errors.ErrMalformedURLParam.Withf("missing tehsil ID").Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, locations.UnionCouncilsOf(tehsilID))
}
