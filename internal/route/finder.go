package route

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/aeronav/flightroutes/internal/airline"
)

// ErrNoRoute is returned when the search exhausts the graph without reaching
// the destination. It is a normal result variant, not a failure of the query
// machinery.
var ErrNoRoute = errors.New("no route between airports")

// Finder runs least-cost-path searches over a flight graph. All edge weights
// produced by the cost model are non-negative (distance >= 0, multipliers
// >= 1, base cost > 0), so Dijkstra's precondition always holds.
type Finder struct {
	directory *airline.Directory
	graph     *airline.Graph
	costs     *CostModel
}

// NewFinder creates a route finder over the given directory, graph and costs.
func NewFinder(directory *airline.Directory, graph *airline.Graph, costs *CostModel) *Finder {
	return &Finder{
		directory: directory,
		graph:     graph,
		costs:     costs,
	}
}

// FindCheapest computes the cheapest flight sequence from one airport code to
// another, pricing every leg at the single given timestamp. Unknown codes
// fail with airline.ErrUnknownAirport before any search runs; an unreachable
// destination fails with ErrNoRoute.
//
// Ties between equal-cost candidates resolve to whichever was relaxed first;
// relaxation requires a strict improvement, so later equal candidates never
// displace an earlier one.
func (f *Finder) FindCheapest(originCode, destCode string, timestamp int64) (*Plan, error) {
	origin, err := f.directory.Get(originCode)
	if err != nil {
		return nil, err
	}
	dest, err := f.directory.Get(destCode)
	if err != nil {
		return nil, err
	}

	if origin.Code == dest.Code {
		return &Plan{
			From:      origin.Code,
			To:        dest.Code,
			Timestamp: timestamp,
			Path:      []*airline.Airport{origin},
			Legs:      []Leg{},
		}, nil
	}

	best := map[string]float64{origin.Code: 0}
	prev := make(map[string]*airline.Airport)
	visited := make(map[string]bool)

	frontier := frontierQueue{{airport: origin, cost: 0}}
	heap.Init(&frontier)

	for frontier.Len() > 0 {
		item := heap.Pop(&frontier).(*frontierItem)
		current := item.airport

		// Lazy decrease-key: stale entries for already-finalized airports are
		// simply discarded.
		if visited[current.Code] {
			continue
		}
		visited[current.Code] = true

		if current.Code == dest.Code {
			return f.buildPlan(prev, origin, dest, timestamp)
		}

		for _, neighbor := range f.graph.Neighbors(current) {
			candidate := best[current.Code] + f.costs.LegCost(current, neighbor, timestamp)
			if candidate < bestOrInf(best, neighbor.Code) {
				best[neighbor.Code] = candidate
				prev[neighbor.Code] = current
				heap.Push(&frontier, &frontierItem{airport: neighbor, cost: candidate})
			}
		}
	}

	return nil, fmt.Errorf("%w: %s -> %s", ErrNoRoute, originCode, destCode)
}

// buildPlan follows predecessors back from the destination, reverses the
// sequence, and re-prices every leg at output time. The re-summed total
// matches the best cost the search converged on.
func (f *Finder) buildPlan(prev map[string]*airline.Airport, origin, dest *airline.Airport, timestamp int64) (*Plan, error) {
	var path []*airline.Airport
	for at := dest; at != nil; at = prev[at.Code] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	legs := make([]Leg, 0, len(path)-1)
	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		cost := f.costs.LegCost(path[i], path[i+1], timestamp)
		legs = append(legs, Leg{From: path[i].Code, To: path[i+1].Code, Cost: cost})
		total += cost
	}

	return &Plan{
		From:      origin.Code,
		To:        dest.Code,
		Timestamp: timestamp,
		Path:      path,
		Legs:      legs,
		TotalCost: total,
	}, nil
}

func bestOrInf(best map[string]float64, code string) float64 {
	if v, ok := best[code]; ok {
		return v
	}
	return math.Inf(1)
}

// frontierItem pairs an airport with its tentative cost in the frontier.
type frontierItem struct {
	airport *airline.Airport
	cost    float64
}

// frontierQueue is a min-heap of frontier items ordered by tentative cost.
type frontierQueue []*frontierItem

func (q frontierQueue) Len() int           { return len(q) }
func (q frontierQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q frontierQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *frontierQueue) Push(x any) { *q = append(*q, x.(*frontierItem)) }
func (q *frontierQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
