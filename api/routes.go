package api

const (
	// POST /auth/login authenticates an admin and returns a JWT token
	authLoginEndpoint = "/auth/login"
	// POST /auth/refresh refreshes the JWT token
	authRefreshTokenEndpoint = "/auth/refresh"

	// GET /admins/me returns the authenticated admin's info
	adminsMeEndpoint = "/admins/me"

	// POST /volunteers registers a new volunteer (public)
	volunteersEndpoint = "/volunteers"
	// GET /volunteers/{volunteerID} returns a single volunteer
	volunteerEndpoint = "/volunteers/{volunteerID}"
	// POST /volunteers/status applies a bulk status change
	volunteersStatusEndpoint = "/volunteers/status"
	// GET /volunteers/export downloads the filtered view as CSV
	volunteersExportEndpoint = "/volunteers/export"
	// POST /volunteers/import bulk-imports volunteers from CSV
	volunteersImportEndpoint = "/volunteers/import"

	// GET /locations/provinces lists the provinces
	locationsProvincesEndpoint = "/locations/provinces"
	// GET /locations/provinces/{provinceID}/divisions lists the divisions of a province
	locationsDivisionsEndpoint = "/locations/provinces/{provinceID}/divisions"
	// GET /locations/divisions/{divisionID}/districts lists the districts of a division
	locationsDistrictsEndpoint = "/locations/divisions/{divisionID}/districts"
	// GET /locations/districts/{districtID}/tehsils lists the tehsils of a district
	locationsTehsilsEndpoint = "/locations/districts/{districtID}/tehsils"
	// GET /locations/tehsils/{tehsilID}/union-councils lists the union councils of a tehsil
	locationsUnionCouncilsEndpoint = "/locations/tehsils/{tehsilID}/union-councils"

	// GET /dashboard returns the dashboard statistics
	dashboardEndpoint = "/dashboard"

	// GET /ping is the health check
	pingEndpoint = "/ping"
)
