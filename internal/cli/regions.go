package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/dfs"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

// ErrRegionMismatch is returned by regions --verify when the two discovery
// methods disagree.
var ErrRegionMismatch = errors.New("region cross-check failed")

type regionsOpts struct {
	verify bool
}

func (c *CLI) regionsCommand() *cobra.Command {
	var opts regionsOpts

	cmd := &cobra.Command{
		Use:   "regions FILE",
		Short: "List connected regions of equal characters with area and perimeter",
		Long: `List every connected region of equal characters in row-major order of its
first cell, with its area, perimeter and price (area times perimeter), followed
by the total price.

With --verify the regions are found again by a depth-first walk from every
cell, deduplicated by cell set, and compared. This is quadratic in the
grid size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRegions(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.verify, "verify", false, "cross-check regions with per-cell depth-first walks")

	return cmd
}

func sameRune(a, b *gridgraph.Node[rune]) bool { return a.Value() == b.Value() }

func (c *CLI) runRegions(cmd *cobra.Command, file string, opts regionsOpts) error {
	g, err := LoadGrid(file)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	regions := g.Regions(sameRune)
	prog.done("regions found", "count", len(regions))

	if opts.verify {
		prog = newProgress(c.Logger)
		if err := verifyRegions(cmd.Context(), g, regions); err != nil {
			return err
		}
		prog.done("regions verified")
	}

	v := newView(cmd.OutOrStdout())
	var total int
	for _, r := range regions {
		area, perim := len(r), g.Perimeter(r)
		total += area * perim
		fmt.Fprintf(v.w, "%s %s area=%d perimeter=%d price=%d\n",
			v.marker.Render(string(r[0].Value())), r[0].Key(), area, perim, area*perim)
	}
	v.line("regions", len(regions))
	v.line("total", total)
	return nil
}

// verifyRegions walks from every cell with dfs.DFS, keeps one walk per
// distinct cell set and checks the result is exactly regions.
func verifyRegions(ctx context.Context, g *gridgraph.Graph[rune], regions []gridgraph.Path[rune]) error {
	var walked []gridgraph.Path[rune]
	for _, n := range g.Nodes() {
		res, err := dfs.DFS(g, n.Key(), dfs.WithContext[rune](ctx), dfs.WithPredicate(sameRune))
		if err != nil {
			return err
		}
		if indexOfPath(walked, res.Nodes()) < 0 {
			walked = append(walked, res.Nodes())
		}
	}

	if len(walked) != len(regions) {
		return fmt.Errorf("%w: %d regions, %d distinct walks", ErrRegionMismatch, len(regions), len(walked))
	}
	for _, r := range regions {
		if indexOfPath(walked, r) < 0 {
			return fmt.Errorf("%w: region at %s has no matching walk", ErrRegionMismatch, r[0].Key())
		}
	}
	return nil
}

func indexOfPath(paths []gridgraph.Path[rune], p gridgraph.Path[rune]) int {
	for i, q := range paths {
		if gridgraph.PathsEqual(q, p) {
			return i
		}
	}
	return -1
}
