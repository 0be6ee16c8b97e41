package models

import (
	"strings"
	"time"
)

// Incident represents a single crime event loaded from the incidents file, carrying its raw source fields, the derived timestamp and join key, and the coordinates attached during enrichment.
type Incident struct {
	Date                string     `json:"date"`
	Time                string     `json:"time"`
	DateTime            *time.Time `json:"datetime,omitempty"`
	CrimeType           string     `json:"crime_type"`
	City                string     `json:"city"`
	State               string     `json:"state"`
	LocationDescription string     `json:"location_description"`
	VictimAge           string     `json:"victim_age"`
	VictimGender        string     `json:"victim_gender"`
	VictimRace          string     `json:"victim_race"`
	FullAddress         string     `json:"full_address"`
	Lat                 *float64   `json:"lat,omitempty"`
	Lon                 *float64   `json:"lon,omitempty"`
}

// Mapped reports whether the incident carries a coordinate pair. Lat and Lon
// are always set or unset together.
func (i Incident) Mapped() bool {
	return i.Lat != nil && i.Lon != nil
}

// GeocodeEntry maps a normalized full address to its precomputed coordinates.
type GeocodeEntry struct {
	FullAddress string  `json:"full_address"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// BuildFullAddress builds the canonical join key shared by the incidents file
// and the geocode lookup. Both sides must construct it identically or the
// join silently drops matches.
func BuildFullAddress(locationDescription, city, state string) string {
	return strings.TrimSpace(locationDescription) + ", " + strings.TrimSpace(city) + ", " + strings.TrimSpace(state)
}
