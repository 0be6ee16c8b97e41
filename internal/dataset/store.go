package dataset

import (
	"errors"
	"io/fs"

	"crime-dashboard/internal/loader"
	"crime-dashboard/internal/models"
)

// Store bundles the two table caches behind the methods the dashboard
// service consumes.
type Store struct {
	incidents *Cache[[]models.Incident]
	geocodes  *Cache[[]models.GeocodeEntry]
}

// NewStore creates a store backed by the CSV loaders.
func NewStore() *Store {
	return &Store{
		incidents: NewCache(loader.LoadIncidents),
		geocodes:  NewCache(loader.LoadGeocodes),
	}
}

// Incidents returns the incident table for path. An absent incidents file is
// an ordinary load failure; it has no existence guard of its own.
func (s *Store) Incidents(path string) ([]models.Incident, error) {
	return s.incidents.Get(path)
}

// Geocodes returns the geocode lookup for path. An absent file is reported
// as a *loader.MissingFileError so the dashboard can halt the render with a
// message naming the expected path.
func (s *Store) Geocodes(path string) ([]models.GeocodeEntry, error) {
	entries, err := s.geocodes.Get(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &loader.MissingFileError{Path: path}
		}
		return nil, err
	}
	return entries, nil
}
