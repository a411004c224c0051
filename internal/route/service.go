package route

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/aeronav/flightroutes/internal/airline"
	"github.com/aeronav/flightroutes/internal/weather"
)

// Dataset is one immutable snapshot of everything a route query reads: the
// airport directory, the flight graph and the weather table, with the cost
// model and finder wired over them. Snapshots are built fully during a load
// phase and never mutated afterwards, so any number of queries may run
// against one concurrently.
type Dataset struct {
	Directory *airline.Directory
	Graph     *airline.Graph
	Weather   *weather.Table

	costs  *CostModel
	finder *Finder
}

// NewDataset wires a cost model and finder over freshly loaded structures.
func NewDataset(directory *airline.Directory, graph *airline.Graph, wt *weather.Table) *Dataset {
	costs := NewCostModel(wt)
	return &Dataset{
		Directory: directory,
		Graph:     graph,
		Weather:   wt,
		costs:     costs,
		finder:    NewFinder(directory, graph, costs),
	}
}

// Finder returns the route finder bound to this snapshot.
func (d *Dataset) Finder() *Finder {
	return d.finder
}

// PlanCache is the contract the in-memory plan store must satisfy.
type PlanCache interface {
	Save(key string, plan *Plan)
	Get(key string) (*Plan, error)
	Clear()
}

// Service answers route queries against the current dataset snapshot. The
// snapshot is swapped atomically on reload; in-flight queries keep reading
// the snapshot they started with.
type Service struct {
	current atomic.Pointer[Dataset]
	cache   PlanCache
}

// NewService creates a Service over an initial dataset. The cache may be nil
// to disable plan caching.
func NewService(ds *Dataset, cache PlanCache) *Service {
	s := &Service{cache: cache}
	s.current.Store(ds)
	return s
}

// Dataset returns the current snapshot.
func (s *Service) Dataset() *Dataset {
	return s.current.Load()
}

// Swap replaces the current snapshot and drops any cached plans computed
// against the old one.
func (s *Service) Swap(ds *Dataset) {
	s.current.Store(ds)
	if s.cache != nil {
		s.cache.Clear()
	}
	log.Printf("route: dataset swapped: %d airports, %d edges, %d airfields with weather",
		ds.Directory.Len(), ds.Graph.EdgeCount(), ds.Weather.Airfields())
}

// Airport resolves an airport code against the current snapshot.
func (s *Service) Airport(code string) (*airline.Airport, error) {
	return s.Dataset().Directory.Get(code)
}

// Cheapest computes (or recalls) the cheapest route between two airport codes
// at the given timestamp.
func (s *Service) Cheapest(fromCode, toCode string, timestamp int64) (*Plan, error) {
	key := planKey(fromCode, toCode, timestamp)
	if s.cache != nil {
		if plan, err := s.cache.Get(key); err == nil {
			return plan, nil
		}
	}

	plan, err := s.Dataset().Finder().FindCheapest(fromCode, toCode, timestamp)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Save(key, plan)
	}
	return plan, nil
}

func planKey(fromCode, toCode string, timestamp int64) string {
	return fmt.Sprintf("%s:%s:%d", fromCode, toCode, timestamp)
}
