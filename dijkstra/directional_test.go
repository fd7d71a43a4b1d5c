package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/dijkstra"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

func TestDirection_Turns(t *testing.T) {
	cases := []struct {
		from, to dijkstra.Direction
		want     int
	}{
		{dijkstra.North, dijkstra.North, 0},
		{dijkstra.North, dijkstra.East, 1},
		{dijkstra.North, dijkstra.West, 1},
		{dijkstra.North, dijkstra.South, 2},
		{dijkstra.East, dijkstra.West, 2},
		{dijkstra.West, dijkstra.North, 1},
		{dijkstra.South, dijkstra.East, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.Turns(tc.to), "%s→%s", tc.from, tc.to)
	}
}

func TestDirectionBetween(t *testing.T) {
	o := gridgraph.Coord{X: 5, Y: 5}
	for _, d := range []dijkstra.Direction{dijkstra.North, dijkstra.East, dijkstra.South, dijkstra.West} {
		dx, dy := d.Delta()
		got, ok := dijkstra.DirectionBetween(o, o.Add(dx, dy))
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := dijkstra.DirectionBetween(o, o.Add(1, 1))
	assert.False(t, ok)
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]dijkstra.Direction{
		"N": dijkstra.North, "east": dijkstra.East, " s ": dijkstra.South, "West": dijkstra.West,
		"up": dijkstra.North, "Right": dijkstra.East, "down": dijkstra.South, "LEFT": dijkstra.West,
	} {
		got, err := dijkstra.ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := dijkstra.ParseDirection("NE")
	assert.ErrorIs(t, err, dijkstra.ErrBadDirection)
}

// TestDirectional_Line prices a straight corridor under each initial facing.
func TestDirectional_Line(t *testing.T) {
	g := mustGraph(t, uniform(4, 1))
	end := gridgraph.Coord{X: 3}

	for facing, want := range map[dijkstra.Direction]int64{
		dijkstra.East:  3,
		dijkstra.North: 1003,
		dijkstra.South: 1003,
		dijkstra.West:  2003,
	} {
		res, err := dijkstra.Directional(g, gridgraph.Coord{}, end, facing, nil)
		require.NoError(t, err)
		assert.Equal(t, want, res.Cost, "facing %s", facing)
		assert.Len(t, res.Path, 4)
		assert.Equal(t, dijkstra.East, res.Facing)
	}
}

// TestDirectional_Mazes checks the two reference reindeer mazes (move 1, turn 1000, start facing east).
func TestDirectional_Mazes(t *testing.T) {
	for name, tc := range map[string]struct {
		text string
		want int64
	}{
		"small": {maze1, 7036},
		"large": {maze2, 11048},
	} {
		t.Run(name, func(t *testing.T) {
			g, start, end := maze(t, tc.text)
			res, err := dijkstra.Directional(g, start, end, dijkstra.East, open)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Cost)
			assert.Equal(t, start, res.Path[0].Coord())
			assert.Equal(t, end, res.Path[len(res.Path)-1].Coord())
			assertContiguous(t, res.Path)

			// Recompute the cost along the returned path.
			var total int64
			facing := dijkstra.East
			for i := 1; i < len(res.Path); i++ {
				next, ok := dijkstra.DirectionBetween(res.Path[i-1].Coord(), res.Path[i].Coord())
				require.True(t, ok)
				total += 1 + 1000*int64(facing.Turns(next))
				facing = next
			}
			assert.Equal(t, res.Cost, total)
			assert.Equal(t, facing, res.Facing)
		})
	}
}

// TestDirectional_NoTurnCostMatchesShortestPath: with free turns the two searches agree.
func TestDirectional_NoTurnCostMatchesShortestPath(t *testing.T) {
	g, start, end := maze(t, maze1)
	plain, err := dijkstra.ShortestPath(g, start, end, open)
	require.NoError(t, err)

	turned, err := dijkstra.Directional(g, start, end, dijkstra.North, open,
		dijkstra.WithTurnCost(dijkstra.TurnPenalty[rune](1, 0)))
	require.NoError(t, err)
	assert.Equal(t, plain.Cost, turned.Cost)
	assert.Len(t, turned.Path, len(plain.Path))
}

func TestDirectional_Unreachable(t *testing.T) {
	g, start, end := maze(t, `
S#E`)
	res, err := dijkstra.Directional(g, start, end, dijkstra.East, open)
	require.NoError(t, err)
	assert.False(t, res.Reachable())
}

func TestDirectional_Errors(t *testing.T) {
	_, err := dijkstra.Directional[int](nil, gridgraph.Coord{}, gridgraph.Coord{}, dijkstra.East, nil)
	assert.ErrorIs(t, err, dijkstra.ErrGraphNil)

	g := mustGraph(t, uniform(2, 1))
	_, err = dijkstra.Directional(g, gridgraph.Coord{}, gridgraph.Coord{X: 1}, dijkstra.East, nil,
		dijkstra.WithTurnCost(func(_, _ *gridgraph.Node[int], _ dijkstra.Direction) int64 { return -5 }))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeCost)

	_, err = dijkstra.Directional(g, gridgraph.Coord{}, gridgraph.Coord{X: 1}, dijkstra.East, nil,
		dijkstra.WithMaxCost[int](-2))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

func TestDirectional_StartIsEnd(t *testing.T) {
	g := mustGraph(t, uniform(2, 2))
	res, err := dijkstra.Directional(g, gridgraph.Coord{X: 1}, gridgraph.Coord{X: 1}, dijkstra.South, nil)
	require.NoError(t, err)
	assert.Len(t, res.Path, 1)
	assert.Zero(t, res.Cost)
	assert.Equal(t, dijkstra.South, res.Facing)
}

func TestDirectional_CostOverflow(t *testing.T) {
	g := mustGraph(t, uniform(3, 1))
	huge := func(_, _ *gridgraph.Node[int], _ dijkstra.Direction) int64 { return math.MaxInt64/2 + 1 }

	_, err := dijkstra.Directional(g, gridgraph.Coord{}, gridgraph.Coord{X: 2}, dijkstra.East, nil,
		dijkstra.WithTurnCost(huge))
	assert.ErrorIs(t, err, dijkstra.ErrCostOverflow)
}

// TestDirectional_MaxInt64Step: a single step may cost the whole int64 range.
func TestDirectional_MaxInt64Step(t *testing.T) {
	g := mustGraph(t, uniform(2, 1))
	res, err := dijkstra.Directional(g, gridgraph.Coord{}, gridgraph.Coord{X: 1}, dijkstra.West, nil,
		dijkstra.WithTurnCost(func(_, _ *gridgraph.Node[int], _ dijkstra.Direction) int64 { return math.MaxInt64 }))
	require.NoError(t, err)
	require.True(t, res.Reachable())
	assert.Equal(t, int64(math.MaxInt64), res.Cost)
	assert.Equal(t, dijkstra.East, res.Facing)
}

// TestDirectional_SkipsFinalizedStates: edges back into finalized states are
// never priced.
func TestDirectional_SkipsFinalizedStates(t *testing.T) {
	g := mustGraph(t, uniform(3, 1))
	var edges []string
	cost := func(from, to *gridgraph.Node[int], _ dijkstra.Direction) int64 {
		edges = append(edges, string(from.Key())+">"+string(to.Key()))
		return 1
	}
	res, err := dijkstra.Directional(g, gridgraph.Coord{}, gridgraph.Coord{X: 2}, dijkstra.East, nil,
		dijkstra.WithTurnCost(cost))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Cost)
	assert.Equal(t, []string{"0,0>1,0", "1,0>0,0", "1,0>2,0"}, edges)
}
