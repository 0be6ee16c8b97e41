package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"crime-dashboard/internal/models"
)

var incidentColumns = []string{
	"date",
	"time",
	"crime_type",
	"city",
	"state",
	"location_description",
	"victim_age",
	"victim_gender",
	"victim_race",
}

var geocodeColumns = []string{"full_address", "lat", "lon"}

// datetimeLayouts are tried in order when combining the date and time columns.
var datetimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
}

// LoadIncidents parses the incidents file into incident records. The derived
// timestamp is lenient: an unparseable date/time combination yields a nil
// DateTime, never an error.
func LoadIncidents(path string) ([]models.Incident, error) {
	header, rows, err := readTable(path)
	if err != nil {
		return nil, err
	}

	cols, err := requireColumns(path, header, incidentColumns)
	if err != nil {
		return nil, err
	}

	incidents := make([]models.Incident, 0, len(rows))
	for _, row := range rows {
		inc := models.Incident{
			Date:                row[cols["date"]],
			Time:                row[cols["time"]],
			CrimeType:           row[cols["crime_type"]],
			City:                row[cols["city"]],
			State:               row[cols["state"]],
			LocationDescription: row[cols["location_description"]],
			VictimAge:           row[cols["victim_age"]],
			VictimGender:        row[cols["victim_gender"]],
			VictimRace:          row[cols["victim_race"]],
		}
		inc.DateTime = parseDateTime(inc.Date, inc.Time)
		inc.FullAddress = models.BuildFullAddress(inc.LocationDescription, inc.City, inc.State)
		incidents = append(incidents, inc)
	}

	return incidents, nil
}

// LoadGeocodes parses the geocode lookup file. The full_address key is
// trimmed, and only the key and coordinate columns are retained. An absent
// file is reported as a *MissingFileError, an incomplete header as a
// *SchemaError naming the missing columns.
func LoadGeocodes(path string) ([]models.GeocodeEntry, error) {
	header, rows, err := readTable(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, err
	}

	cols, err := requireColumns(path, header, geocodeColumns)
	if err != nil {
		return nil, err
	}

	entries := make([]models.GeocodeEntry, 0, len(rows))
	for i, row := range rows {
		lat, err := strconv.ParseFloat(row[cols["lat"]], 64)
		if err != nil {
			return nil, fmt.Errorf("loader: %s row %d: invalid latitude %q", path, i+1, row[cols["lat"]])
		}
		lon, err := strconv.ParseFloat(row[cols["lon"]], 64)
		if err != nil {
			return nil, fmt.Errorf("loader: %s row %d: invalid longitude %q", path, i+1, row[cols["lon"]])
		}

		entries = append(entries, models.GeocodeEntry{
			FullAddress: strings.TrimSpace(row[cols["full_address"]]),
			Lat:         lat,
			Lon:         lon,
		})
	}

	return entries, nil
}

// readTable reads a delimited file into a header row and data rows.
func readTable(path string) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("loader: %s: failed to read header: %w", path, err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("loader: %s: failed to read record: %w", path, err)
		}
		if len(row) < len(header) {
			return nil, nil, fmt.Errorf("loader: %s: invalid record length: %d, expected at least %d columns", path, len(row), len(header))
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// requireColumns maps required column names to header positions, failing with
// a *SchemaError naming every absent column.
func requireColumns(path string, header, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &SchemaError{Path: path, Missing: missing}
	}

	return index, nil
}

func parseDateTime(date, clock string) *time.Time {
	combined := date + " " + clock
	for _, layout := range datetimeLayouts {
		if ts, err := time.Parse(layout, combined); err == nil {
			return &ts
		}
	}
	return nil
}
