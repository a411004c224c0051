package loader

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aeronav/flightroutes/internal/airline"
	"github.com/aeronav/flightroutes/internal/route"
	"github.com/aeronav/flightroutes/internal/weather"
)

// Paths names the three dataset inputs. Each may be a local file path or an
// http(s) URL.
type Paths struct {
	Airports   string
	Directions string
	Weather    string
}

// Builder assembles immutable route datasets from the configured inputs.
type Builder struct {
	fetcher  *Fetcher
	geocoder *Geocoder
}

// NewBuilder creates a Builder. The fetcher is required only when any input
// is a URL; the geocoder is optional.
func NewBuilder(fetcher *Fetcher, geocoder *Geocoder) *Builder {
	return &Builder{fetcher: fetcher, geocoder: geocoder}
}

// Build loads airports, weather and flight directions and wires them into a
// fresh dataset snapshot. Airports must load before directions so edge
// endpoints can be validated.
func (b *Builder) Build(ctx context.Context, p Paths) (*route.Dataset, error) {
	directory := airline.NewDirectory()
	table := weather.NewTable()
	graph := airline.NewGraph(directory)

	if err := b.load(ctx, p.Airports, func(r io.Reader) error {
		return Airports(ctx, r, directory, b.geocoder)
	}); err != nil {
		return nil, err
	}

	// The weather input is optional; without it every multiplier is 1.0.
	if p.Weather != "" {
		if err := b.load(ctx, p.Weather, func(r io.Reader) error {
			return Weather(r, table)
		}); err != nil {
			return nil, err
		}
	}

	if err := b.load(ctx, p.Directions, func(r io.Reader) error {
		return Directions(r, graph)
	}); err != nil {
		return nil, err
	}

	return route.NewDataset(directory, graph, table), nil
}

func (b *Builder) load(ctx context.Context, name string, parse func(io.Reader) error) error {
	rc, err := b.open(ctx, name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()
	return parse(rc)
}

func (b *Builder) open(ctx context.Context, name string) (io.ReadCloser, error) {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		if b.fetcher == nil {
			return nil, fmt.Errorf("no fetcher configured for remote input %s", name)
		}
		return b.fetcher.Fetch(ctx, name)
	}
	return os.Open(name)
}
