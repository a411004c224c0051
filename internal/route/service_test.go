package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeronav/flightroutes/internal/airline"
	"github.com/aeronav/flightroutes/internal/weather"
)

type stubCache struct {
	plans   map[string]*Plan
	saves   int
	cleared bool
}

func newStubCache() *stubCache {
	return &stubCache{plans: make(map[string]*Plan)}
}

func (c *stubCache) Save(key string, plan *Plan) {
	c.plans[key] = plan
	c.saves++
}

func (c *stubCache) Get(key string) (*Plan, error) {
	if p, ok := c.plans[key]; ok {
		return p, nil
	}
	return nil, assert.AnError
}

func (c *stubCache) Clear() {
	c.plans = make(map[string]*Plan)
	c.cleared = true
}

func testDataset(t *testing.T) *Dataset {
	t.Helper()

	dir := airline.NewDirectory()
	require.NoError(t, dir.Add(&airline.Airport{Code: "A", AirfieldName: "field-a", Longitude: 0}))
	require.NoError(t, dir.Add(&airline.Airport{Code: "B", AirfieldName: "field-b", Longitude: 1}))

	g := airline.NewGraph(dir)
	require.NoError(t, g.AddEdge("A", "B"))

	return NewDataset(dir, g, weather.NewTable())
}

func TestServiceCachesPlans(t *testing.T) {
	cache := newStubCache()
	svc := NewService(testDataset(t), cache)

	first, err := svc.Cheapest("A", "B", 42)
	require.NoError(t, err)
	require.Equal(t, 1, cache.saves)

	// Second identical query is served from the cache.
	second, err := svc.Cheapest("A", "B", 42)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.saves)

	// A different timestamp is a different key.
	_, err = svc.Cheapest("A", "B", 43)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.saves)
}

func TestServiceErrorsAreNotCached(t *testing.T) {
	cache := newStubCache()
	svc := NewService(testDataset(t), cache)

	_, err := svc.Cheapest("B", "A", 42)
	assert.ErrorIs(t, err, ErrNoRoute)
	assert.Zero(t, cache.saves)

	_, err = svc.Cheapest("Z", "A", 42)
	assert.ErrorIs(t, err, airline.ErrUnknownAirport)
	assert.Zero(t, cache.saves)
}

func TestServiceSwapClearsCache(t *testing.T) {
	cache := newStubCache()
	svc := NewService(testDataset(t), cache)

	_, err := svc.Cheapest("A", "B", 42)
	require.NoError(t, err)
	require.NotEmpty(t, cache.plans)

	svc.Swap(testDataset(t))
	assert.True(t, cache.cleared)
	assert.Empty(t, cache.plans)
}

func TestServiceWithoutCache(t *testing.T) {
	svc := NewService(testDataset(t), nil)

	plan, err := svc.Cheapest("A", "B", 42)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, plan.Codes())

	a, err := svc.Airport("A")
	require.NoError(t, err)
	assert.Equal(t, "A", a.Code)
}
