package models

import (
	"net/url"
	"strconv"
)

// SortDirection orders search results ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortField is a dog attribute the catalog can sort search results by.
type SortField string

const (
	SortByBreed SortField = "breed"
	SortByName  SortField = "name"
	SortByAge   SortField = "age"
)

// SortConfig is a sort order for dog searches.
type SortConfig struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// String renders the sort in the "field:direction" form the catalog search
// endpoint expects.
func (s SortConfig) String() string {
	return string(s.Field) + ":" + string(s.Direction)
}

// DogSearchQuery is the full parameter set of a dog search request.
// All fields are optional; zero values are omitted from the outgoing query.
type DogSearchQuery struct {
	// Breeds restricts results to the listed breed names.
	Breeds []string `json:"breeds,omitempty"`

	// ZipCodes restricts results to dogs sheltered in the listed zip codes.
	ZipCodes []string `json:"zipCodes,omitempty"`

	// AgeMin is the inclusive lower age bound in years.
	AgeMin *int `json:"ageMin,omitempty"`

	// AgeMax is the inclusive upper age bound in years.
	AgeMax *int `json:"ageMax,omitempty"`

	// From is the zero-based result offset.
	From int `json:"from,omitempty"`

	// Size is the page size.
	Size int `json:"size,omitempty"`

	// Sort orders the result set.
	Sort *SortConfig `json:"sort,omitempty"`
}

// Values encodes the query as URL parameters. Array fields are repeated,
// matching the catalog's query conventions.
func (q DogSearchQuery) Values() url.Values {
	v := url.Values{}
	for _, b := range q.Breeds {
		v.Add("breeds", b)
	}
	for _, z := range q.ZipCodes {
		v.Add("zipCodes", z)
	}
	if q.AgeMin != nil {
		v.Set("ageMin", strconv.Itoa(*q.AgeMin))
	}
	if q.AgeMax != nil {
		v.Set("ageMax", strconv.Itoa(*q.AgeMax))
	}
	if q.From > 0 {
		v.Set("from", strconv.Itoa(q.From))
	}
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	if q.Sort != nil {
		v.Set("sort", q.Sort.String())
	}
	return v
}

// DogSearchResult is the catalog's answer to a dog search: matching ids for
// the requested page plus the total match count.
type DogSearchResult struct {
	ResultIDs []string `json:"resultIds"`
	Total     int      `json:"total"`
	Next      string   `json:"next,omitempty"`
	Prev      string   `json:"prev,omitempty"`
}

// LocationSearchQuery is the JSON body of a location search request.
type LocationSearchQuery struct {
	// City is a full or partial city name. Empty means no city filter.
	City string `json:"city,omitempty"`

	// States lists two-letter state codes to match.
	States []string `json:"states,omitempty"`

	// GeoBoundingBox restricts results to a geographic rectangle.
	GeoBoundingBox GeoBoundingBox `json:"geoBoundingBox,omitempty"`

	// From is the zero-based result offset.
	From int `json:"from,omitempty"`

	// Size is the page size.
	Size int `json:"size,omitempty"`
}

// HasCriteria reports whether the query carries any filter beyond its paging
// window. A criteria-free query matches every zip code in the catalog and is
// treated by callers as an implicit reset.
func (q LocationSearchQuery) HasCriteria() bool {
	return q.City != "" || len(q.States) > 0 || q.GeoBoundingBox != nil
}

// LocationSearchResult is the catalog's answer to a location search.
type LocationSearchResult struct {
	Results []Location `json:"results"`
	Total   int        `json:"total"`
}

// MatchResult is the catalog's answer to a match request: the id of the
// single dog chosen from the submitted candidates.
type MatchResult struct {
	Match string `json:"match"`
}

// SearchResultsSummary carries the total counts of the most recent search
// cycle, used for result messaging and pagination bounds.
type SearchResultsSummary struct {
	Dogs     int `json:"dogs"`
	ZipCodes int `json:"zipCodes"`
}
