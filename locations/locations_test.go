package locations

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestProvinces(t *testing.T) {
	c := qt.New(t)
	provinces := Provinces()
	c.Assert(len(provinces), qt.Equals, 7)
	for _, p := range provinces {
		c.Assert(p.ID, qt.Not(qt.Equals), "")
		c.Assert(p.Name, qt.Not(qt.Equals), "")
		c.Assert(p.Urdu, qt.Not(qt.Equals), "")
		c.Assert(p.Level, qt.Equals, LevelProvince)
	}
	punjab, ok := ProvinceByID("punjab")
	c.Assert(ok, qt.IsTrue)
	c.Assert(punjab.Name, qt.Equals, "Punjab")
	_, ok = ProvinceByID("atlantis")
	c.Assert(ok, qt.IsFalse)
}

// every child node must point back at the id it was requested under
func TestHierarchyParentLinks(t *testing.T) {
	c := qt.New(t)
	for _, p := range Provinces() {
		for _, div := range DivisionsOf(p.ID) {
			c.Assert(div.ParentID, qt.Equals, p.ID)
			c.Assert(div.Level, qt.Equals, LevelDivision)
			for _, dist := range DistrictsOf(div.ID) {
				c.Assert(dist.ParentID, qt.Equals, div.ID)
				c.Assert(dist.Level, qt.Equals, LevelDistrict)
				for _, teh := range TehsilsOf(dist.ID) {
					c.Assert(teh.ParentID, qt.Equals, dist.ID)
					c.Assert(teh.Level, qt.Equals, LevelTehsil)
					for _, uc := range UnionCouncilsOf(teh.ID) {
						c.Assert(uc.ParentID, qt.Equals, teh.ID)
						c.Assert(uc.Level, qt.Equals, LevelUnionCouncil)
					}
				}
			}
		}
	}
}

func TestUnknownIDsYieldEmpty(t *testing.T) {
	c := qt.New(t)
	c.Assert(DivisionsOf("atlantis"), qt.HasLen, 0)
	c.Assert(DistrictsOf("atlantis"), qt.HasLen, 0)
	c.Assert(UnionCouncilsOf("atlantis"), qt.HasLen, 0)
}

func TestTehsilFallback(t *testing.T) {
	c := qt.New(t)
	// kasur has no curated tehsils, so it gets the synthesized pair
	tehsils := TehsilsOf("kasur")
	c.Assert(tehsils, qt.HasLen, 2)
	c.Assert(tehsils[0].ID, qt.Equals, "kasur-city")
	c.Assert(tehsils[0].Name, qt.Equals, "City Tehsil")
	c.Assert(tehsils[1].ID, qt.Equals, "kasur-sadar")
	c.Assert(tehsils[1].Name, qt.Equals, "Sadar Tehsil")
	// lahore keeps its curated list
	curated := TehsilsOf("lahore")
	c.Assert(len(curated), qt.Equals, 5)
	c.Assert(curated[0].Name, qt.Equals, "Lahore City")
}

// every district offers at least two selectable tehsils
func TestEveryDistrictHasTehsils(t *testing.T) {
	c := qt.New(t)
	for _, p := range Provinces() {
		for _, div := range DivisionsOf(p.ID) {
			for _, dist := range DistrictsOf(div.ID) {
				c.Assert(len(TehsilsOf(dist.ID)) >= 2, qt.IsTrue,
					qt.Commentf("district %s", dist.ID))
			}
		}
	}
}

// returned slices are copies; mutating them must not corrupt the tables
func TestResultsAreCopies(t *testing.T) {
	c := qt.New(t)
	divs := DivisionsOf("punjab")
	divs[0].Name = "mutated"
	c.Assert(DivisionsOf("punjab")[0].Name, qt.Equals, "Lahore Division")
}

func TestNameResolvers(t *testing.T) {
	c := qt.New(t)
	c.Assert(ProvinceName("punjab"), qt.Equals, "Punjab")
	c.Assert(DivisionName("karachi"), qt.Equals, "Karachi Division")
	c.Assert(DistrictName("lahore"), qt.Equals, "Lahore")
	c.Assert(ProvinceName("atlantis"), qt.Equals, "")
	c.Assert(DivisionName(""), qt.Equals, "")
}
