// Package locations holds the Pakistani administrative-geography
// hierarchy: Province → Division → District → Tehsil → Union Council.
//
// The tables are static and only partially populated on purpose: curated
// data exists for the regions that have it, and districts without curated
// tehsils fall back to two synthesized defaults so the registration flow
// is always completable.
package locations

// Level identifies a node's position in the hierarchy.
type Level string

const (
	LevelProvince     Level = "province"
	LevelDivision     Level = "division"
	LevelDistrict     Level = "district"
	LevelTehsil       Level = "tehsil"
	LevelUnionCouncil Level = "unionCouncil"
)

// Node is a single entry of the administrative hierarchy. ParentID is
// empty for provinces and otherwise names an existing node one level up.
type Node struct {
	ID       string `json:"id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	Urdu     string `json:"urdu,omitempty" bson:"urdu,omitempty"`
	ParentID string `json:"parentId,omitempty" bson:"parentId,omitempty"`
	Level    Level  `json:"level" bson:"level"`
}

var provinces = []Node{
	{ID: "punjab", Name: "Punjab", Urdu: "پنجاب", Level: LevelProvince},
	{ID: "sindh", Name: "Sindh", Urdu: "سندھ", Level: LevelProvince},
	{ID: "kpk", Name: "Khyber Pakhtunkhwa", Urdu: "خیبر پختونخوا", Level: LevelProvince},
	{ID: "balochistan", Name: "Balochistan", Urdu: "بلوچستان", Level: LevelProvince},
	{ID: "gilgit", Name: "Gilgit-Baltistan", Urdu: "گلگت بلتستان", Level: LevelProvince},
	{ID: "ajk", Name: "Azad Jammu & Kashmir", Urdu: "آزاد جموں و کشمیر", Level: LevelProvince},
	{ID: "ict", Name: "Islamabad Capital Territory", Urdu: "وفاقی دارالحکومت", Level: LevelProvince},
}

var divisions = map[string][]Node{
	"punjab": {
		{ID: "lahore", Name: "Lahore Division", ParentID: "punjab", Level: LevelDivision},
		{ID: "gujranwala", Name: "Gujranwala Division", ParentID: "punjab", Level: LevelDivision},
		{ID: "rawalpindi", Name: "Rawalpindi Division", ParentID: "punjab", Level: LevelDivision},
		{ID: "faisalabad", Name: "Faisalabad Division", ParentID: "punjab", Level: LevelDivision},
		{ID: "multan", Name: "Multan Division", ParentID: "punjab", Level: LevelDivision},
		{ID: "bahawalpur", Name: "Bahawalpur Division", ParentID: "punjab", Level: LevelDivision},
		{ID: "dera-ghazi-khan", Name: "Dera Ghazi Khan Division", ParentID: "punjab", Level: LevelDivision},
		{ID: "sahiwal", Name: "Sahiwal Division", ParentID: "punjab", Level: LevelDivision},
		{ID: "sargodha", Name: "Sargodha Division", ParentID: "punjab", Level: LevelDivision},
	},
	"sindh": {
		{ID: "karachi", Name: "Karachi Division", ParentID: "sindh", Level: LevelDivision},
		{ID: "hyderabad", Name: "Hyderabad Division", ParentID: "sindh", Level: LevelDivision},
		{ID: "sukkur", Name: "Sukkur Division", ParentID: "sindh", Level: LevelDivision},
		{ID: "larkana", Name: "Larkana Division", ParentID: "sindh", Level: LevelDivision},
		{ID: "mirpurkhas", Name: "Mirpur Khas Division", ParentID: "sindh", Level: LevelDivision},
		{ID: "shaheed-benazirabad", Name: "Shaheed Benazirabad Division", ParentID: "sindh", Level: LevelDivision},
	},
}

var districts = map[string][]Node{
	"lahore": {
		{ID: "lahore", Name: "Lahore", ParentID: "lahore", Level: LevelDistrict},
		{ID: "kasur", Name: "Kasur", ParentID: "lahore", Level: LevelDistrict},
		{ID: "okara", Name: "Okara", ParentID: "lahore", Level: LevelDistrict},
		{ID: "sheikhupura", Name: "Sheikhupura", ParentID: "lahore", Level: LevelDistrict},
		{ID: "nankana-sahib", Name: "Nankana Sahib", ParentID: "lahore", Level: LevelDistrict},
	},
	"gujranwala": {
		{ID: "gujranwala", Name: "Gujranwala", ParentID: "gujranwala", Level: LevelDistrict},
		{ID: "gujrat", Name: "Gujrat", ParentID: "gujranwala", Level: LevelDistrict},
		{ID: "hafizabad", Name: "Hafizabad", ParentID: "gujranwala", Level: LevelDistrict},
		{ID: "mandi-bahauddin", Name: "Mandi Bahauddin", ParentID: "gujranwala", Level: LevelDistrict},
		{ID: "narowal", Name: "Narowal", ParentID: "gujranwala", Level: LevelDistrict},
		{ID: "sialkot", Name: "Sialkot", ParentID: "gujranwala", Level: LevelDistrict},
	},
	"rawalpindi": {
		{ID: "rawalpindi", Name: "Rawalpindi", ParentID: "rawalpindi", Level: LevelDistrict},
		{ID: "attock", Name: "Attock", ParentID: "rawalpindi", Level: LevelDistrict},
		{ID: "chakwal", Name: "Chakwal", ParentID: "rawalpindi", Level: LevelDistrict},
		{ID: "jhelum", Name: "Jhelum", ParentID: "rawalpindi", Level: LevelDistrict},
	},
	"faisalabad": {
		{ID: "faisalabad", Name: "Faisalabad", ParentID: "faisalabad", Level: LevelDistrict},
		{ID: "chiniot", Name: "Chiniot", ParentID: "faisalabad", Level: LevelDistrict},
		{ID: "jhang", Name: "Jhang", ParentID: "faisalabad", Level: LevelDistrict},
		{ID: "toba-tek-singh", Name: "Toba Tek Singh", ParentID: "faisalabad", Level: LevelDistrict},
	},
	"multan": {
		{ID: "multan", Name: "Multan", ParentID: "multan", Level: LevelDistrict},
		{ID: "khanewal", Name: "Khanewal", ParentID: "multan", Level: LevelDistrict},
		{ID: "lodhran", Name: "Lodhran", ParentID: "multan", Level: LevelDistrict},
		{ID: "vehari", Name: "Vehari", ParentID: "multan", Level: LevelDistrict},
	},
	"bahawalpur": {
		{ID: "bahawalpur", Name: "Bahawalpur", ParentID: "bahawalpur", Level: LevelDistrict},
		{ID: "bahawalnagar", Name: "Bahawalnagar", ParentID: "bahawalpur", Level: LevelDistrict},
		{ID: "rahim-yar-khan", Name: "Rahim Yar Khan", ParentID: "bahawalpur", Level: LevelDistrict},
	},
	"dera-ghazi-khan": {
		{ID: "dera-ghazi-khan", Name: "Dera Ghazi Khan", ParentID: "dera-ghazi-khan", Level: LevelDistrict},
		{ID: "layyah", Name: "Layyah", ParentID: "dera-ghazi-khan", Level: LevelDistrict},
		{ID: "muzaffargarh", Name: "Muzaffargarh", ParentID: "dera-ghazi-khan", Level: LevelDistrict},
		{ID: "rajanpur", Name: "Rajanpur", ParentID: "dera-ghazi-khan", Level: LevelDistrict},
	},
	"sahiwal": {
		{ID: "sahiwal", Name: "Sahiwal", ParentID: "sahiwal", Level: LevelDistrict},
		{ID: "pakpattan", Name: "Pakpattan", ParentID: "sahiwal", Level: LevelDistrict},
	},
	"sargodha": {
		{ID: "sargodha", Name: "Sargodha", ParentID: "sargodha", Level: LevelDistrict},
		{ID: "bhakkar", Name: "Bhakkar", ParentID: "sargodha", Level: LevelDistrict},
		{ID: "khushab", Name: "Khushab", ParentID: "sargodha", Level: LevelDistrict},
		{ID: "mianwali", Name: "Mianwali", ParentID: "sargodha", Level: LevelDistrict},
	},
	"karachi": {
		{ID: "karachi-central", Name: "Karachi Central", ParentID: "karachi", Level: LevelDistrict},
		{ID: "karachi-east", Name: "Karachi East", ParentID: "karachi", Level: LevelDistrict},
		{ID: "karachi-south", Name: "Karachi South", ParentID: "karachi", Level: LevelDistrict},
		{ID: "karachi-west", Name: "Karachi West", ParentID: "karachi", Level: LevelDistrict},
		{ID: "korangi", Name: "Korangi", ParentID: "karachi", Level: LevelDistrict},
		{ID: "malir", Name: "Malir", ParentID: "karachi", Level: LevelDistrict},
	},
}

var tehsils = map[string][]Node{
	"lahore": {
		{ID: "lahore-city", Name: "Lahore City", ParentID: "lahore", Level: LevelTehsil},
		{ID: "lahore-cantt", Name: "Lahore Cantt", ParentID: "lahore", Level: LevelTehsil},
		{ID: "model-town", Name: "Model Town", ParentID: "lahore", Level: LevelTehsil},
		{ID: "raiwind", Name: "Raiwind", ParentID: "lahore", Level: LevelTehsil},
		{ID: "shalimar", Name: "Shalimar", ParentID: "lahore", Level: LevelTehsil},
	},
	"rawalpindi": {
		{ID: "rawalpindi", Name: "Rawalpindi", ParentID: "rawalpindi", Level: LevelTehsil},
		{ID: "gujar-khan", Name: "Gujar Khan", ParentID: "rawalpindi", Level: LevelTehsil},
		{ID: "kahuta", Name: "Kahuta", ParentID: "rawalpindi", Level: LevelTehsil},
		{ID: "kallar-syedan", Name: "Kallar Syedan", ParentID: "rawalpindi", Level: LevelTehsil},
		{ID: "taxila", Name: "Taxila", ParentID: "rawalpindi", Level: LevelTehsil},
	},
	"faisalabad": {
		{ID: "faisalabad-city", Name: "Faisalabad City", ParentID: "faisalabad", Level: LevelTehsil},
		{ID: "faisalabad-sadar", Name: "Faisalabad Sadar", ParentID: "faisalabad", Level: LevelTehsil},
		{ID: "jaranwala", Name: "Jaranwala", ParentID: "faisalabad", Level: LevelTehsil},
		{ID: "tandlianwala", Name: "Tandlianwala", ParentID: "faisalabad", Level: LevelTehsil},
	},
}

var unionCouncils = map[string][]Node{
	"lahore-city": {
		{ID: "uc-1", Name: "UC-1 Mochi Gate", ParentID: "lahore-city", Level: LevelUnionCouncil},
		{ID: "uc-2", Name: "UC-2 Bhati Gate", ParentID: "lahore-city", Level: LevelUnionCouncil},
		{ID: "uc-3", Name: "UC-3 Taxali Gate", ParentID: "lahore-city", Level: LevelUnionCouncil},
	},
	"model-town": {
		{ID: "uc-20", Name: "UC-20 Model Town", ParentID: "model-town", Level: LevelUnionCouncil},
		{ID: "uc-21", Name: "UC-21 Garden Town", ParentID: "model-town", Level: LevelUnionCouncil},
	},
}

// Provinces returns the ordered list of provinces and territories.
func Provinces() []Node {
	return append([]Node(nil), provinces...)
}

// ProvinceByID returns the province with the given id, or false.
func ProvinceByID(id string) (Node, bool) {
	for _, p := range provinces {
		if p.ID == id {
			return p, true
		}
	}
	return Node{}, false
}

// DivisionsOf returns the ordered divisions of a province. An unknown
// province id yields an empty list, never an error.
func DivisionsOf(provinceID string) []Node {
	return append([]Node(nil), divisions[provinceID]...)
}

// DistrictsOf returns the ordered districts of a division, empty when
// the id is unknown.
func DistrictsOf(divisionID string) []Node {
	return append([]Node(nil), districts[divisionID]...)
}

// TehsilsOf returns the ordered tehsils of a district. Districts without
// curated tehsil data get two synthesized defaults with deterministic ids,
// so every district offers at least two selectable tehsils.
func TehsilsOf(districtID string) []Node {
	if curated := tehsils[districtID]; len(curated) > 0 {
		return append([]Node(nil), curated...)
	}
	return []Node{
		{ID: districtID + "-city", Name: "City Tehsil", ParentID: districtID, Level: LevelTehsil},
		{ID: districtID + "-sadar", Name: "Sadar Tehsil", ParentID: districtID, Level: LevelTehsil},
	}
}

// UnionCouncilsOf returns the ordered union councils of a tehsil, empty
// when the id is unknown.
func UnionCouncilsOf(tehsilID string) []Node {
	return append([]Node(nil), unionCouncils[tehsilID]...)
}

// nodeName finds a node by id in a parent-keyed table.
func nodeName(table map[string][]Node, id string) string {
	for _, nodes := range table {
		for _, n := range nodes {
			if n.ID == id {
				return n.Name
			}
		}
	}
	return ""
}

// ProvinceName resolves a province id to its display name, empty when
// unknown.
func ProvinceName(id string) string {
	if p, ok := ProvinceByID(id); ok {
		return p.Name
	}
	return ""
}

// DivisionName resolves a division id to its display name.
func DivisionName(id string) string { return nodeName(divisions, id) }

// DistrictName resolves a district id to its display name.
func DistrictName(id string) string { return nodeName(districts, id) }
