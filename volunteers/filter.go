// Package volunteers implements the admin-side filter, selection and
// export engine over registered volunteers. Filtering is a pure function
// of the criteria and the source list, so the same code serves both the
// HTTP handlers and an interactive session keeping a Selection.
package volunteers

import (
	"strings"

	"github.com/auriaahmad/civil-defence/db"
	"github.com/auriaahmad/civil-defence/locations"
)

// Criteria is the set of active filters. The zero value matches every
// volunteer. Geography facets accept either a hierarchy id ("punjab") or
// a display name ("Punjab"); both forms select the same records.
type Criteria struct {
	Search       string
	Province     string
	Division     string
	District     string
	Status       string
	Education    string
	Availability string
}

// SetProvince sets the province facet and clears the dependent division
// and district facets. It returns the divisions available under the new
// province, for the caller to rebuild its dropdown.
func (c *Criteria) SetProvince(province string) []locations.Node {
	c.Province = province
	c.Division = ""
	c.District = ""
	return locations.DivisionsOf(province)
}

// SetDivision sets the division facet and clears the dependent district
// facet. It returns the districts available under the new division.
func (c *Criteria) SetDivision(division string) []locations.Node {
	c.Division = division
	c.District = ""
	return locations.DistrictsOf(division)
}

// Empty reports whether no filter is active.
func (c *Criteria) Empty() bool {
	return *c == Criteria{}
}

// matchesFacet reports whether the stored id/name pair matches the facet
// value, compared case-insensitively.
func matchesFacet(want, id, name string) bool {
	return strings.EqualFold(want, id) || strings.EqualFold(want, name)
}

// Matches reports whether a single volunteer passes every active filter.
// The free-text search matches a case-insensitive substring of the name,
// CNIC, phone or email; all facets are combined with AND.
func (c *Criteria) Matches(v *db.Volunteer) bool {
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(v.FullName), q) &&
			!strings.Contains(strings.ToLower(v.CNIC), q) &&
			!strings.Contains(strings.ToLower(v.Phone), q) &&
			!strings.Contains(strings.ToLower(v.Email), q) {
			return false
		}
	}
	if c.Province != "" && !matchesFacet(c.Province, v.Province, v.ProvinceName) {
		return false
	}
	if c.Division != "" && !matchesFacet(c.Division, v.Division, v.DivisionName) {
		return false
	}
	if c.District != "" && !matchesFacet(c.District, v.District, v.DistrictName) {
		return false
	}
	if c.Status != "" && !strings.EqualFold(c.Status, string(v.Status)) {
		return false
	}
	if c.Education != "" && !strings.EqualFold(c.Education, v.Education) {
		return false
	}
	if c.Availability != "" && !strings.EqualFold(c.Availability, v.Availability) {
		return false
	}
	return true
}

// Apply returns the volunteers passing every active filter, preserving
// the order of the source list.
func (c *Criteria) Apply(source []*db.Volunteer) []*db.Volunteer {
	if c.Empty() {
		return source
	}
	filtered := make([]*db.Volunteer, 0, len(source))
	for _, v := range source {
		if c.Matches(v) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
