package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/dfs"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

const (
	trailHead = 0
	trailPeak = 9
)

func (c *CLI) trailsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trails FILE",
		Short: "Score hiking trails on a digit height map",
		Long: `Treat the grid as a height map of digits; other characters are impassable.
A trail starts at a 0, ends at a 9 and climbs exactly one per step.

The score sums, over all trailheads, the number of distinct 9s reachable.
The rating sums the number of distinct trails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTrails(cmd, args[0])
		},
	}
}

func (c *CLI) runTrails(cmd *cobra.Command, file string) error {
	raw, err := LoadGrid(file)
	if err != nil {
		return err
	}
	g, err := DigitGrid(raw)
	if err != nil {
		return err
	}

	climb := func(cur, nbr *gridgraph.Node[int]) bool { return nbr.Value() == cur.Value()+1 }
	ctx := cmd.Context()
	prog := newProgress(c.Logger)

	var heads, score, rating int
	for _, n := range g.Nodes() {
		if n.Value() != trailHead {
			continue
		}
		heads++
		paths, err := dfs.AllPaths(g, n.Key(),
			dfs.WithContext[int](ctx),
			dfs.WithTarget(trailPeak),
			dfs.WithPredicate(climb),
		)
		if err != nil {
			return err
		}
		peaks := make(map[gridgraph.Key]struct{})
		for _, p := range paths {
			peaks[p[len(p)-1].Key()] = struct{}{}
		}
		c.Logger.Debug("trailhead", "at", n.Key(), "score", len(peaks), "rating", len(paths))
		score += len(peaks)
		rating += len(paths)
	}
	prog.done("trails scored", "trailheads", heads)

	v := newView(cmd.OutOrStdout())
	v.line("trailheads", heads)
	v.line("score", score)
	v.line("rating", rating)
	return nil
}
