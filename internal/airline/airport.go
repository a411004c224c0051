package airline

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAirport is returned when a code does not resolve to a loaded airport.
	ErrUnknownAirport = errors.New("unknown airport code")

	// ErrDuplicateAirport is returned when an airport code is registered twice.
	ErrDuplicateAirport = errors.New("duplicate airport code")
)

// Airport is an immutable record describing a single airport. Several airports
// may share one airfield; weather observations are keyed by the airfield name,
// not the airport code.
type Airport struct {
	Code         string  `json:"code"`
	AirfieldName string  `json:"airfield"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`

	// ParkingCost is carried from the input data but does not participate in
	// leg cost computation.
	ParkingCost float64 `json:"parkingCost"`
}

// Directory holds all known airports keyed by code. It is append-only: the
// load phase fills it, the query phase only reads it.
type Directory struct {
	airports map[string]*Airport
}

// NewDirectory creates an empty airport directory.
func NewDirectory() *Directory {
	return &Directory{airports: make(map[string]*Airport)}
}

// Add registers an airport. Re-registering an existing code fails with
// ErrDuplicateAirport; the first registration wins.
func (d *Directory) Add(a *Airport) error {
	if _, ok := d.airports[a.Code]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAirport, a.Code)
	}
	d.airports[a.Code] = a
	return nil
}

// Get resolves an airport code.
func (d *Directory) Get(code string) (*Airport, error) {
	a, ok := d.airports[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, code)
	}
	return a, nil
}

// Len returns the number of registered airports.
func (d *Directory) Len() int {
	return len(d.airports)
}
