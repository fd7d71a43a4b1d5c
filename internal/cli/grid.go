package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

var (
	// ErrMarkerNotFound is returned when a grid lacks a start or end marker.
	ErrMarkerNotFound = errors.New("marker not found")

	// ErrBlankRow is returned when a blank line splits a grid.
	ErrBlankRow = errors.New("blank line inside grid")
)

// ReadGrid reads one grid row per line. Trailing carriage returns and blank
// lines before or after the grid are dropped; a blank line between rows is
// ErrBlankRow. Row widths are checked later by gridgraph.New.
func ReadGrid(r io.Reader) ([][]rune, error) {
	var (
		grid  [][]rune
		blank int
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			if len(grid) > 0 && blank == 0 {
				blank = line
			}
			continue
		}
		if blank != 0 {
			return nil, fmt.Errorf("%w: line %d", ErrBlankRow, blank)
		}
		grid = append(grid, []rune(text))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return grid, nil
}

// LoadGrid reads a grid file and builds its graph.
func LoadGrid(path string) (*gridgraph.Graph[rune], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	grid, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("read grid %s: %w", path, err)
	}
	g, err := gridgraph.New(grid)
	if err != nil {
		return nil, fmt.Errorf("grid %s: %w", path, err)
	}
	return g, nil
}

// FindMarker returns the coordinate of the first cell, in row-major order,
// holding marker.
func FindMarker(g *gridgraph.Graph[rune], marker rune) (gridgraph.Coord, error) {
	for _, n := range g.Nodes() {
		if n.Value() == marker {
			return n.Coord(), nil
		}
	}
	return gridgraph.Coord{}, fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
}

// DigitGrid maps '0'..'9' to their values and every other cell to -1.
func DigitGrid(g *gridgraph.Graph[rune]) (*gridgraph.Graph[int], error) {
	rows := make([][]int, g.Height())
	for y := range rows {
		rows[y] = make([]int, g.Width())
		for x := range rows[y] {
			n, _ := g.Node(x, y)
			rows[y][x] = -1
			if r := n.Value(); r >= '0' && r <= '9' {
				rows[y][x] = int(r - '0')
			}
		}
	}
	return gridgraph.New(rows)
}

// parseCoord accepts "x,y".
func parseCoord(s string) (gridgraph.Coord, error) {
	return gridgraph.ParseKey(gridgraph.Key(strings.ReplaceAll(s, " ", "")))
}
