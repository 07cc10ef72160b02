package models

// CityEntry is one tracked city. Names are compared by exact match.
type CityEntry struct {
	Name string `json:"name"`
}
