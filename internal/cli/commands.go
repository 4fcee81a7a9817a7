package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbalakov/gravl/bfs"
	"github.com/tbalakov/gravl/dfs"
	"github.com/tbalakov/gravl/sssp"
)

// showCommand prints the adjacency-list dump of a graph file.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <graph.toml>",
		Short: "Print the adjacency-list dump of a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			c.Logger.Debug("graph loaded", "vertices", g.NumVertices(), "weighted", g.Weighted())
			fmt.Fprint(c.out, g.String())
			return nil
		},
	}
}

// bfsCommand runs a breadth-first traversal; with --to it prints the
// shortest-hop path, otherwise the depth of every reached vertex.
func (c *CLI) bfsCommand() *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "bfs <graph.toml> --from N [--to M]",
		Short: "Breadth-first depths or a shortest-hop path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			src, err := vertexArg(g, from)
			if err != nil {
				return err
			}
			res, err := bfs.BFS(g, src)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("to") {
				path, err := res.FormatPath(to)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.out, path)
				return nil
			}
			for _, v := range g.Vertices() {
				if d, ok := res.Depth(v.ID); ok {
					fmt.Fprintf(c.out, "%d: depth %d\n", v.ID, d)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "source vertex id")
	cmd.Flags().IntVar(&to, "to", 0, "destination vertex id")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

// topoCommand prints one topological order of an acyclic graph.
func (c *CLI) topoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topo <graph.toml>",
		Short: "Topological order of an acyclic graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			order, err := dfs.TopologicalSort(g)
			if err != nil {
				return err
			}
			ids := make([]string, len(order))
			for i, v := range order {
				ids[i] = fmt.Sprint(v.ID)
			}
			fmt.Fprintln(c.out, strings.Join(ids, " "))
			return nil
		},
	}
}

// sccCommand prints the strongly connected components, one per line.
func (c *CLI) sccCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scc <graph.toml>",
		Short: "Strongly connected components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			comps, err := dfs.StronglyConnectedComponents(g)
			if err != nil {
				return err
			}
			c.Logger.Debug("condensation computed", "components", len(comps))
			for _, comp := range comps {
				ids := make([]string, len(comp))
				for i, id := range comp {
					ids[i] = fmt.Sprint(id)
				}
				fmt.Fprintln(c.out, strings.Join(ids, " "))
			}
			return nil
		},
	}
}

// ssspCommand runs one of the shortest-path algorithms.
func (c *CLI) ssspCommand() *cobra.Command {
	var algo string
	var from, to int
	cmd := &cobra.Command{
		Use:   "sssp <graph.toml> --algo dag|dijkstra|bellman-ford --from N [--to M]",
		Short: "Single-source shortest paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			src, err := vertexArg(g, from)
			if err != nil {
				return err
			}

			var res *sssp.Result
			switch algo {
			case "dag":
				res, err = sssp.DAG(g, src)
			case "dijkstra":
				res, err = sssp.Dijkstra(g, src)
			case "bellman-ford":
				res, err = sssp.BellmanFord(g, src)
			default:
				return fmt.Errorf("unknown --algo %q", algo)
			}
			if err != nil {
				return err
			}
			if res.NegativeCycle() {
				fmt.Fprintln(c.out, "negative cycle reachable from source")
				return nil
			}

			if cmd.Flags().Changed("to") {
				d, ok := res.Distance(to)
				if !ok {
					return fmt.Errorf("vertex %d not reachable from %d", to, from)
				}
				path, err := res.FormatPath(to)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.out, "%s (distance %d)\n", path, d)
				return nil
			}
			for _, v := range g.Vertices() {
				if d, ok := res.Distance(v.ID); ok {
					fmt.Fprintf(c.out, "%d: distance %d\n", v.ID, d)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "dijkstra", "algorithm: dag, dijkstra or bellman-ford")
	cmd.Flags().IntVar(&from, "from", 0, "source vertex id")
	cmd.Flags().IntVar(&to, "to", 0, "destination vertex id")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
