package domain

// Page is one server-computed slice of a paginated collection. The page index
// is zero-based and all totals are authoritative: the client displays them
// and never recomputes them after a mutation.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// ListQuery carries pagination and sorting parameters for list endpoints.
type ListQuery struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
}

// Defaults fills unset fields with the values the dashboard uses everywhere.
func (q ListQuery) Defaults() ListQuery {
	if q.Size <= 0 {
		q.Size = 10
	}
	if q.SortBy == "" {
		q.SortBy = "name"
	}
	if q.Direction == "" {
		q.Direction = "asc"
	}
	if q.Page < 0 {
		q.Page = 0
	}
	return q
}
