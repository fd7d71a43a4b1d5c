package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/dijkstra"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

type pathOpts struct {
	turns  bool
	config string
}

func (c *CLI) pathCommand() *cobra.Command {
	var opts pathOpts

	cmd := &cobra.Command{
		Use:   "path FILE",
		Short: "Find the cheapest route from the start marker to the end marker",
		Long: `Find the cheapest route between the start and end markers, never entering walls.

Each step costs move_cost. With --turns the walker starts facing the
configured direction and every quarter turn adds turn_cost.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPath(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.turns, "turns", false, "charge turn_cost for every quarter turn")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML file overriding markers and costs")

	return cmd
}

func (c *CLI) runPath(cmd *cobra.Command, file string, opts pathOpts) error {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	g, err := LoadGrid(file)
	if err != nil {
		return err
	}
	start, err := FindMarker(g, cfg.start())
	if err != nil {
		return err
	}
	end, err := FindMarker(g, cfg.end())
	if err != nil {
		return err
	}
	c.Logger.Debug("grid loaded", "file", file, "width", g.Width(), "height", g.Height(), "start", start.Key(), "end", end.Key())

	wall := cfg.wall()
	open := func(n *gridgraph.Node[rune]) bool { return n.Value() != wall }
	ctx := cmd.Context()

	var res *dijkstra.Result[rune]
	prog := newProgress(c.Logger)
	if opts.turns {
		dr, err := dijkstra.Directional(g, start, end, cfg.facing(), open,
			dijkstra.WithContext[rune](ctx),
			dijkstra.WithTurnCost(dijkstra.TurnPenalty[rune](cfg.MoveCost, cfg.TurnCost)),
		)
		if err != nil {
			return err
		}
		res = &dr.Result
		if dr.Reachable() {
			c.Logger.Debug("arrived", "facing", dr.Facing)
		}
	} else {
		move := cfg.MoveCost
		res, err = dijkstra.ShortestPath(g, start, end, open,
			dijkstra.WithContext[rune](ctx),
			dijkstra.WithCost(func(_, _ *gridgraph.Node[rune]) int64 { return move }),
		)
		if err != nil {
			return err
		}
	}
	prog.done("search finished", "turns", opts.turns, "steps", len(res.Path))

	v := newView(cmd.OutOrStdout())
	if !res.Reachable() {
		v.line("cost", "unreachable")
		return nil
	}
	v.line("cost", res.Cost)
	v.line("steps", len(res.Path)-1)
	v.grid(g, keySet(res.Path), 'O', wall, cfg.start(), cfg.end())
	return nil
}
