package airline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryAddAndGet(t *testing.T) {
	dir := NewDirectory()

	a := &Airport{Code: "AAA", AirfieldName: "field-a", Latitude: 10, Longitude: 20}
	require.NoError(t, dir.Add(a))
	require.Equal(t, 1, dir.Len())

	got, err := dir.Get("AAA")
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = dir.Get("ZZZ")
	assert.ErrorIs(t, err, ErrUnknownAirport)
}

func TestDirectoryRejectsDuplicates(t *testing.T) {
	dir := NewDirectory()

	first := &Airport{Code: "AAA", AirfieldName: "field-a"}
	require.NoError(t, dir.Add(first))

	err := dir.Add(&Airport{Code: "AAA", AirfieldName: "field-b"})
	require.ErrorIs(t, err, ErrDuplicateAirport)

	// First registration wins.
	got, err := dir.Get("AAA")
	require.NoError(t, err)
	assert.Equal(t, "field-a", got.AirfieldName)
}

func TestGraphEdges(t *testing.T) {
	dir := NewDirectory()
	a := &Airport{Code: "AAA"}
	b := &Airport{Code: "BBB"}
	c := &Airport{Code: "CCC"}
	for _, ap := range []*Airport{a, b, c} {
		require.NoError(t, dir.Add(ap))
	}

	g := NewGraph(dir)
	require.NoError(t, g.AddEdge("AAA", "BBB"))
	require.NoError(t, g.AddEdge("AAA", "CCC"))

	neighbors := g.Neighbors(a)
	require.Len(t, neighbors, 2)
	// Insertion order is preserved.
	assert.Equal(t, "BBB", neighbors[0].Code)
	assert.Equal(t, "CCC", neighbors[1].Code)

	assert.Empty(t, g.Neighbors(b))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGraphRejectsUnknownEndpoints(t *testing.T) {
	dir := NewDirectory()
	require.NoError(t, dir.Add(&Airport{Code: "AAA"}))

	g := NewGraph(dir)
	assert.ErrorIs(t, g.AddEdge("AAA", "ZZZ"), ErrUnknownAirport)
	assert.ErrorIs(t, g.AddEdge("ZZZ", "AAA"), ErrUnknownAirport)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraphKeepsDuplicateEdges(t *testing.T) {
	dir := NewDirectory()
	require.NoError(t, dir.Add(&Airport{Code: "AAA"}))
	require.NoError(t, dir.Add(&Airport{Code: "BBB"}))

	g := NewGraph(dir)
	require.NoError(t, g.AddEdge("AAA", "BBB"))
	require.NoError(t, g.AddEdge("AAA", "BBB"))

	a, _ := dir.Get("AAA")
	assert.Len(t, g.Neighbors(a), 2)
}
