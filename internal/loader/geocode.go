package loader

import (
	"context"
	"fmt"

	"github.com/kelvins/geocoder"
	"golang.org/x/time/rate"
)

// Geocoder backfills airport coordinates from the airfield name when input
// rows arrive without them. Outbound lookups are rate limited to stay inside
// the geocoding API quota.
type Geocoder struct {
	limiter *rate.Limiter
}

// NewGeocoder configures the shared geocoding API key and returns a limiter-
// wrapped geocoder allowing perSecond lookups.
func NewGeocoder(apiKey string, perSecond float64) *Geocoder {
	geocoder.ApiKey = apiKey
	return &Geocoder{limiter: rate.NewLimiter(rate.Limit(perSecond), 1)}
}

// Resolve looks up coordinates for an airfield name.
func (g *Geocoder) Resolve(ctx context.Context, airfield string) (float64, float64, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return 0, 0, err
	}

	location, err := geocoder.Geocoding(geocoder.Address{City: airfield})
	if err != nil {
		return 0, 0, fmt.Errorf("geocode %s: %w", airfield, err)
	}
	return location.Latitude, location.Longitude, nil
}
