// Package weather holds sparse per-airfield weather observations and converts
// them into multiplicative flight-cost penalties.
package weather

// Condition bits of an encoded observation. Any combination may be set.
const (
	CodeLightning = 1 << 0
	CodeHail      = 1 << 1
	CodeSnow      = 1 << 2
	CodeRain      = 1 << 3
	CodeWind      = 1 << 4
)

// Per-condition penalty factors applied when the matching bit is set.
const (
	factorLightning = 1.20
	factorHail      = 1.15
	factorSnow      = 1.10
	factorRain      = 1.05
	factorWind      = 1.05
)

// Table maps airfield names to their observation series. Observations are
// keyed by exact timestamp; there is no interpolation and no nearest-prior
// fallback. A missing entry means "no data", which is distinct from a stored
// code of zero ("data present, clear") — both yield a 1.0 multiplier.
type Table struct {
	series map[string]map[int64]int
}

// NewTable creates an empty weather table.
func NewTable() *Table {
	return &Table{series: make(map[string]map[int64]int)}
}

// Record inserts or overwrites the observation for an (airfield, timestamp)
// pair, creating the airfield's series on first use.
func (t *Table) Record(airfield string, timestamp int64, code int) {
	s, ok := t.series[airfield]
	if !ok {
		s = make(map[int64]int)
		t.series[airfield] = s
	}
	s[timestamp] = code
}

// Multiplier returns the cost penalty for an airfield at a timestamp. With no
// data for exactly that timestamp the multiplier is 1.0. The result is always
// >= 1.0.
func (t *Table) Multiplier(airfield string, timestamp int64) float64 {
	s, ok := t.series[airfield]
	if !ok {
		return 1.0
	}
	code, ok := s[timestamp]
	if !ok {
		return 1.0
	}
	return DecodeMultiplier(code)
}

// DecodeMultiplier computes the penalty product for an encoded weather code.
func DecodeMultiplier(code int) float64 {
	m := 1.0
	if code&CodeWind != 0 {
		m *= factorWind
	}
	if code&CodeRain != 0 {
		m *= factorRain
	}
	if code&CodeSnow != 0 {
		m *= factorSnow
	}
	if code&CodeHail != 0 {
		m *= factorHail
	}
	if code&CodeLightning != 0 {
		m *= factorLightning
	}
	return m
}

// Airfields returns the number of airfields with at least one observation.
func (t *Table) Airfields() int {
	return len(t.series)
}
