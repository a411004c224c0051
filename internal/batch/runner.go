package batch

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/aeronav/flightroutes/internal/airline"
	"github.com/aeronav/flightroutes/internal/loader"
	"github.com/aeronav/flightroutes/internal/route"
)

// Sink receives one result line per mission, in mission order.
type Sink interface {
	WriteLine(line string) error
}

// Runner processes missions against the route service. A mission referencing
// an unknown airport is skipped with a diagnostic; an unreachable destination
// is a normal result and still produces an output line. Neither aborts the
// batch.
type Runner struct {
	service *route.Service
}

// NewRunner creates a Runner over the given service.
func NewRunner(service *route.Service) *Runner {
	return &Runner{service: service}
}

// Run executes every mission in order, writing results to the sink. The
// returned count is the number of lines written.
func (r *Runner) Run(missions []loader.Mission, sink Sink) (int, error) {
	runID := uuid.New().String()
	log.Printf("batch %s: processing %d missions", runID, len(missions))

	written := 0
	for _, m := range missions {
		plan, err := r.service.Cheapest(m.From, m.To, m.Timestamp)
		switch {
		case errors.Is(err, airline.ErrUnknownAirport):
			log.Printf("batch %s: invalid airport code(s) in mission: %s -> %s", runID, m.From, m.To)
			continue
		case errors.Is(err, route.ErrNoRoute):
			if werr := sink.WriteLine(fmt.Sprintf("No path found from %s to %s", m.From, m.To)); werr != nil {
				return written, werr
			}
			written++
			continue
		case err != nil:
			return written, fmt.Errorf("mission %s -> %s: %w", m.From, m.To, err)
		}

		line := strings.Join(plan.Codes(), " ") + " " + fmt.Sprintf("%.5f", plan.TotalCost)
		if werr := sink.WriteLine(line); werr != nil {
			return written, werr
		}
		written++
	}

	log.Printf("batch %s: done, %d result lines", runID, written)
	return written, nil
}
