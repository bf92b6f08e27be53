package domain

import "strings"

const (
	countryToken   = "Brazil"
	queryDelimiter = ", "
)

// Address is the normalized result of a postal-code lookup. Every field may
// be empty. Addresses live only for the duration of one pipeline run and are
// never persisted.
type Address struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// BuildQuery flattens the address into a geocoder-friendly text query:
// non-empty components in fixed order, ", "-joined, always ending with the
// country token. An all-empty address yields the bare country token.
func (a Address) BuildQuery() string {
	parts := make([]string, 0, 5)
	for _, c := range []string{a.Street, a.Neighborhood, a.City, a.State, countryToken} {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, queryDelimiter)
}
