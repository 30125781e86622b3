package dtos

// SearchFilters are the optional query parameters of the search endpoint.
// At least one must be non-blank; the service enforces that.
type SearchFilters struct {
	Title      string `form:"title"`
	Location   string `form:"location"`
	Experience string `form:"experience"` // years, kept as text for query building
}

// Empty reports whether no filter carries a value.
func (f SearchFilters) Empty() bool {
	return f.Title == "" && f.Location == "" && f.Experience == ""
}
