package models

// FilterParams are the dashboard's selector values, bound from the query
// string. Empty selectors mean the "All" sentinel.
type FilterParams struct {
	CrimeType       string `form:"crime_type" json:"crime_type"`
	City            string `form:"city" json:"city"`
	IncludeUnmapped bool   `form:"include_unmapped" json:"include_unmapped"`
}

// AllSentinel is the selector value that disables a filter.
const AllSentinel = "All"

// Normalize replaces empty selectors with the "All" sentinel.
func (p FilterParams) Normalize() FilterParams {
	if p.CrimeType == "" {
		p.CrimeType = AllSentinel
	}
	if p.City == "" {
		p.City = AllSentinel
	}
	return p
}

// Coverage summarizes geocode coverage under the current filter selection.
// Filtered is always Mapped + Unmapped.
type Coverage struct {
	Filtered int `json:"filtered"`
	Mapped   int `json:"mapped"`
	Unmapped int `json:"unmapped"`
}

// Tooltip carries the fields exposed when hovering a map point. Raw
// coordinates are deliberately not part of it.
type Tooltip struct {
	DateTime            string `json:"datetime"`
	VictimAge           string `json:"victim_age"`
	VictimGender        string `json:"victim_gender"`
	VictimRace          string `json:"victim_race"`
	City                string `json:"city"`
	State               string `json:"state"`
	LocationDescription string `json:"location_description"`
	FullAddress         string `json:"full_address"`
}

// MapPoint is one marker on the incident map, positioned at the geocoded
// coordinates and colored categorically by crime type.
type MapPoint struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	CrimeType string  `json:"crime_type"`
	Tooltip   Tooltip `json:"tooltip"`
}

// Snapshot is the result of one full pipeline run (load, enrich, filter,
// partition) under a given selection.
type Snapshot struct {
	Params     FilterParams `json:"params"`
	Coverage   Coverage     `json:"coverage"`
	Points     []MapPoint   `json:"points"`
	Rows       []Incident   `json:"rows"`
	CrimeTypes []string     `json:"crime_types"`
	Cities     []string     `json:"cities"`
}
