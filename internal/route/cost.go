package route

import (
	"math"

	"github.com/aeronav/flightroutes/internal/airline"
	"github.com/aeronav/flightroutes/internal/weather"
)

const (
	earthRadiusKm = 6371

	// baseLegCost is the fixed component of every leg, scaled by the weather
	// multipliers at both endpoints.
	baseLegCost = 300
)

// CostModel prices a single flight leg from great-circle distance and the
// weather at both endpoint airfields.
type CostModel struct {
	weather *weather.Table
}

// NewCostModel creates a cost model backed by the given weather table.
func NewCostModel(w *weather.Table) *CostModel {
	return &CostModel{weather: w}
}

// LegCost returns the cost of a direct flight from one airport to another at
// the given timestamp. Both weather multipliers are evaluated at that single
// timestamp; the model does not advance time leg by leg.
func (m *CostModel) LegCost(from, to *airline.Airport, timestamp int64) float64 {
	distance := HaversineKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
	wFrom := m.weather.Multiplier(from.AirfieldName, timestamp)
	wTo := m.weather.Multiplier(to.AirfieldName, timestamp)
	return baseLegCost*wFrom*wTo + distance
}

// HaversineKm computes the great-circle distance in kilometers between two
// points given in degrees.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	latDist := toRadians(lat2 - lat1)
	lonDist := toRadians(lon2 - lon1)
	a := math.Sin(latDist/2)*math.Sin(latDist/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(lonDist/2)*math.Sin(lonDist/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
