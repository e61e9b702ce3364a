// Package apicommon provides common types, constants, and helper functions for the API.
package apicommon

// MetadataKey is a type to define the key for the metadata stored in the
// context.
type MetadataKey string

// AdminMetadataKey is the key used to store the admin account in the context.
const AdminMetadataKey MetadataKey = "admin"

const (
	// DefaultPage is the page returned when the list query carries no
	// page parameter.
	DefaultPage = 1
	// DefaultPageSize is the number of volunteers per page when the list
	// query carries no limit parameter.
	DefaultPageSize = 20
	// MaxPageSize bounds the limit parameter.
	MaxPageSize = 200
)

const (
	// ParamPage is the query parameter for the page number.
	ParamPage = "page"
	// ParamLimit is the query parameter for the page size.
	ParamLimit = "limit"
)
