package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

type reachOpts struct {
	from   string
	show   bool
	config string
}

func (c *CLI) reachCommand() *cobra.Command {
	var opts reachOpts

	cmd := &cobra.Command{
		Use:   "reach FILE",
		Short: "Count the open cells reachable from a coordinate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReach(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "starting cell as X,Y (required)")
	cmd.Flags().BoolVar(&opts.show, "show", false, "print the grid with reached cells marked")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML file overriding the wall marker")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func (c *CLI) runReach(cmd *cobra.Command, file string, opts reachOpts) error {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	from, err := parseCoord(opts.from)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	g, err := LoadGrid(file)
	if err != nil {
		return err
	}
	if !g.InBounds(from.X, from.Y) {
		return fmt.Errorf("--from: %s is outside the %dx%d grid", from.Key(), g.Width(), g.Height())
	}

	wall := cfg.wall()
	prog := newProgress(c.Logger)
	res, err := bfs.BFS(g, from.Key(),
		bfs.WithContext[rune](cmd.Context()),
		bfs.WithPredicate(func(_, n *gridgraph.Node[rune]) bool { return n.Value() != wall }),
	)
	if err != nil {
		return err
	}
	prog.done("bfs finished", "from", from.Key(), "visited", len(res.Visited))

	v := newView(cmd.OutOrStdout())
	v.line("reachable", len(res.Visited))
	if opts.show {
		v.grid(g, keySet(res.Visited), 'o', wall)
	}
	return nil
}
