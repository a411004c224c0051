// Package loader builds route datasets from tabular input files: airports,
// direct-flight permissions and weather observations as CSV, missions as
// space-separated rows. Files may sit on local disk or behind an HTTP URL.
//
// Loading is tolerant: a malformed row, a duplicate airport or an edge
// referencing an unknown airport is logged and skipped, never fatal.
package loader

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/aeronav/flightroutes/internal/airline"
	"github.com/aeronav/flightroutes/internal/weather"
)

// Airports reads the airports CSV (code,airfield,latitude,longitude,
// parkingCost; header row skipped) into the directory. When a geocoder is
// provided, rows loaded without coordinates get a lookup by airfield name.
func Airports(ctx context.Context, r io.Reader, dir *airline.Directory, geo *Geocoder) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("airports: %w", err)
		}
		if first {
			first = false // header
			continue
		}
		if len(rec) < 5 {
			log.Printf("loader: skipping malformed airport row: %q", rec)
			continue
		}

		lat, latErr := strconv.ParseFloat(rec[2], 64)
		lon, lonErr := strconv.ParseFloat(rec[3], 64)
		parking, parkErr := strconv.ParseFloat(rec[4], 64)
		if latErr != nil || lonErr != nil || parkErr != nil {
			log.Printf("loader: skipping malformed airport row: %q", rec)
			continue
		}

		a := &airline.Airport{
			Code:         rec[0],
			AirfieldName: rec[1],
			Latitude:     lat,
			Longitude:    lon,
			ParkingCost:  parking,
		}

		if geo != nil && a.Latitude == 0 && a.Longitude == 0 {
			if glat, glon, err := geo.Resolve(ctx, a.AirfieldName); err != nil {
				log.Printf("loader: geocoding %s failed: %v", a.AirfieldName, err)
			} else {
				a.Latitude, a.Longitude = glat, glon
			}
		}

		if err := dir.Add(a); err != nil {
			// First registration wins; later duplicates are dropped.
			log.Printf("loader: %v, keeping first occurrence", err)
		}
	}
	return nil
}

// Weather reads the weather CSV (airfield,timestamp,code; header row
// skipped) into the table. Later rows for the same (airfield, timestamp)
// overwrite earlier ones.
func Weather(r io.Reader, t *weather.Table) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("weather: %w", err)
		}
		if first {
			first = false
			continue
		}
		if len(rec) < 3 {
			log.Printf("loader: skipping malformed weather row: %q", rec)
			continue
		}

		ts, tsErr := strconv.ParseInt(rec[1], 10, 64)
		code, codeErr := strconv.Atoi(rec[2])
		if tsErr != nil || codeErr != nil || code < 0 {
			log.Printf("loader: skipping malformed weather row: %q", rec)
			continue
		}

		t.Record(rec[0], ts, code)
	}
	return nil
}

// Directions reads the direct-flight CSV (from,to; header row skipped) into
// the graph. Edges referencing unknown airports are skipped with a
// diagnostic, matching load-time validation: queries never see them.
func Directions(r io.Reader, g *airline.Graph) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("directions: %w", err)
		}
		if first {
			first = false
			continue
		}
		if len(rec) < 2 {
			log.Printf("loader: skipping malformed direction row: %q", rec)
			continue
		}

		if err := g.AddEdge(rec[0], rec[1]); err != nil {
			log.Printf("loader: airport not found for direction %s -> %s, edge dropped", rec[0], rec[1])
		}
	}
	return nil
}

// Mission is one route request: find the cheapest path between two airport
// codes at a fixed timestamp.
type Mission struct {
	From      string
	To        string
	Timestamp int64
}

// Missions reads the missions file: one space-separated "from to timestamp"
// row per line, header row skipped.
func Missions(r io.Reader) ([]Mission, error) {
	sc := bufio.NewScanner(r)

	var missions []Mission
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			log.Printf("loader: skipping malformed mission row: %q", line)
			continue
		}
		ts, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			log.Printf("loader: skipping malformed mission row: %q", line)
			continue
		}

		missions = append(missions, Mission{From: fields[0], To: fields[1], Timestamp: ts})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("missions: %w", err)
	}
	return missions, nil
}
