package model

// SearchLawyersParams are the directory search filters. Nil fields are
// omitted from the query string.
type SearchLawyersParams struct {
	Page           *int
	Limit          *int
	Specialization *string
	City           *string
	MinFee         *float64
	MaxFee         *float64
	MinExperience  *int
	MinRating      *float64
	Availability   *string // "today" or "tomorrow"
}

// Meta is the pagination envelope of list responses.
type Meta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Paginated wraps a page of results with its pagination metadata.
type Paginated[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}
