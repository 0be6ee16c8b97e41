package service

import (
	"context"
	"fmt"
	"sort"

	"crime-dashboard/internal/models"
)

// DashboardService contains the core pipeline logic: enrich incidents with
// geocodes, filter by the current selection, and partition by coverage.
type DashboardService struct {
	store         DatasetStore
	incidentsPath string
	geocodesPath  string
}

// DatasetStore interface for dependency injection
type DatasetStore interface {
	Incidents(path string) ([]models.Incident, error)
	Geocodes(path string) ([]models.GeocodeEntry, error)
}

// NewDashboardService creates a new dashboard service reading from the two
// configured input paths.
func NewDashboardService(store DatasetStore, incidentsPath, geocodesPath string) *DashboardService {
	return &DashboardService{
		store:         store,
		incidentsPath: incidentsPath,
		geocodesPath:  geocodesPath,
	}
}

// Snapshot runs one full render pass: load both tables, enrich, filter,
// partition, and assemble the view model. Every widget change re-runs it
// from the top; only the loads themselves are cached.
func (s *DashboardService) Snapshot(ctx context.Context, params models.FilterParams) (*models.Snapshot, error) {
	params = params.Normalize()

	incidents, err := s.store.Incidents(s.incidentsPath)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load incidents: %w", err)
	}

	geocodes, err := s.store.Geocodes(s.geocodesPath)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load geocodes: %w", err)
	}

	enriched := Enrich(incidents, geocodes)
	crimeTypes, cities := FilterOptions(enriched)

	filtered := Filter(enriched, params.CrimeType, params.City)
	mapped, unmapped := Partition(filtered)

	rows := mapped
	if params.IncludeUnmapped {
		rows = filtered
	}

	return &models.Snapshot{
		Params: params,
		Coverage: models.Coverage{
			Filtered: len(filtered),
			Mapped:   len(mapped),
			Unmapped: len(unmapped),
		},
		Points:     MapPoints(mapped),
		Rows:       rows,
		CrimeTypes: crimeTypes,
		Cities:     cities,
	}, nil
}

// Options returns the distinct sorted selector values over the full dataset.
func (s *DashboardService) Options(ctx context.Context) (crimeTypes, cities []string, err error) {
	incidents, err := s.store.Incidents(s.incidentsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to load incidents: %w", err)
	}

	crimeTypes, cities = FilterOptions(incidents)
	return crimeTypes, cities, nil
}

// Enrich left-joins geocode coordinates onto incidents by full address.
// Every incident is preserved; the first geocode occurrence wins when
// duplicate keys exist. Inputs are not mutated.
func Enrich(incidents []models.Incident, geocodes []models.GeocodeEntry) []models.Incident {
	byAddress := make(map[string]models.GeocodeEntry, len(geocodes))
	for _, g := range geocodes {
		if _, ok := byAddress[g.FullAddress]; !ok {
			byAddress[g.FullAddress] = g
		}
	}

	enriched := make([]models.Incident, len(incidents))
	for i, inc := range incidents {
		if g, ok := byAddress[inc.FullAddress]; ok {
			lat, lon := g.Lat, g.Lon
			inc.Lat = &lat
			inc.Lon = &lon
		}
		enriched[i] = inc
	}

	return enriched
}

// Filter narrows records by crime type and city. The "All" sentinel disables
// a selector; both conditions must hold. Relative order is preserved.
func Filter(records []models.Incident, crimeType, city string) []models.Incident {
	filtered := make([]models.Incident, 0, len(records))
	for _, r := range records {
		if crimeType != models.AllSentinel && r.CrimeType != crimeType {
			continue
		}
		if city != models.AllSentinel && r.City != city {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// Partition splits records into those with coordinates and those without.
// Every record lands in exactly one side.
func Partition(records []models.Incident) (mapped, unmapped []models.Incident) {
	mapped = make([]models.Incident, 0, len(records))
	unmapped = make([]models.Incident, 0)
	for _, r := range records {
		if r.Mapped() {
			mapped = append(mapped, r)
		} else {
			unmapped = append(unmapped, r)
		}
	}
	return mapped, unmapped
}

// FilterOptions returns the distinct, sorted, non-empty crime types and
// cities observed in the dataset.
func FilterOptions(records []models.Incident) (crimeTypes, cities []string) {
	return distinct(records, func(r models.Incident) string { return r.CrimeType }),
		distinct(records, func(r models.Incident) string { return r.City })
}

// MapPoints projects mapped records onto map markers. The tooltip exposes
// the descriptive fields but never the raw coordinates.
func MapPoints(mapped []models.Incident) []models.MapPoint {
	points := make([]models.MapPoint, 0, len(mapped))
	for _, r := range mapped {
		dt := ""
		if r.DateTime != nil {
			dt = r.DateTime.Format("2006-01-02 15:04:05")
		}
		points = append(points, models.MapPoint{
			Lat:       *r.Lat,
			Lon:       *r.Lon,
			CrimeType: r.CrimeType,
			Tooltip: models.Tooltip{
				DateTime:            dt,
				VictimAge:           r.VictimAge,
				VictimGender:        r.VictimGender,
				VictimRace:          r.VictimRace,
				City:                r.City,
				State:               r.State,
				LocationDescription: r.LocationDescription,
				FullAddress:         r.FullAddress,
			},
		})
	}
	return points
}

func distinct(records []models.Incident, field func(models.Incident) string) []string {
	seen := make(map[string]struct{}, len(records))
	values := make([]string, 0)
	for _, r := range records {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
