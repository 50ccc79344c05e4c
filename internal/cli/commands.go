package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/busroute/bfs"
	"github.com/katalvlaran/busroute/builder"
	"github.com/katalvlaran/busroute/core"
	"github.com/katalvlaran/busroute/dataset"
	"github.com/katalvlaran/busroute/dfs"
	"github.com/katalvlaran/busroute/render"
)

// Kind selects which search a command runs.
type Kind int

const (
	// AllRoutes enumerates every simple route.
	AllRoutes Kind = iota
	// ShortestRoute finds one fewest-hop route.
	ShortestRoute
)

func (k Kind) name() string {
	if k == AllRoutes {
		return "allroutes"
	}

	return "shortestroute"
}

// defaultDataset mirrors the two original scripts: the all-routes one ran
// on the first dataset, the shortest-route one on the second.
func (k Kind) defaultDataset() string {
	if k == AllRoutes {
		return "first"
	}

	return "second"
}

// NewAllRoutesCommand returns the allroutes root command.
func NewAllRoutesCommand(stdout, stderr io.Writer) *cobra.Command {
	return newCommand(AllRoutes, stdout, stderr)
}

// NewShortestRouteCommand returns the shortestroute root command.
func NewShortestRouteCommand(stdout, stderr io.Writer) *cobra.Command {
	return newCommand(ShortestRoute, stdout, stderr)
}

func newCommand(kind Kind, stdout, stderr io.Writer) *cobra.Command {
	var (
		cfg Config
		env envReader
	)
	cmd := &cobra.Command{
		Use:           kind.name(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if kind == AllRoutes {
		cmd.Short = "List every simple route between two stops"
		cmd.Long = "allroutes enumerates every route between two stops that visits no stop twice,\n" +
			"riding any shared bus line or walking along explicit walking links."
	} else {
		cmd.Short = "Find one route with the fewest hops between two stops"
		cmd.Long = "shortestroute searches breadth-first for a route with the fewest hops,\n" +
			"where a bus ride between two stops and a walk each count as one hop."
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&cfg.Dataset, "dataset", env.stringVal("dataset", kind.defaultDataset()),
		"built-in dataset ("+strings.Join(dataset.Names(), ", ")+") or path to a YAML file")
	f.IntVar(&cfg.From, "from", env.intVal("from", 0), "origin stop (default: the dataset query)")
	f.IntVar(&cfg.To, "to", env.intVal("to", 0), "destination stop (default: the dataset query)")
	f.BoolVar(&cfg.NoWalk, "no-walk", env.boolVal("no-walk", false), "ignore walking links")
	f.IntVar(&cfg.MaxHops, "max-hops", env.intVal("max-hops", 0), "longest route to consider in hops (0 = unlimited)")
	if kind == AllRoutes {
		f.IntVar(&cfg.MaxPaths, "max-paths", env.intVal("max-paths", 0), "stop after this many routes (0 = unlimited)")
	}
	f.StringVar(&cfg.TieBreak, "tie-break", env.stringVal("tie-break", builder.NameTieBreakLast),
		"label for stops sharing several lines: last or first")
	f.StringVar(&cfg.Strategy, "strategy", env.stringVal("strategy", builder.NamePairwise),
		"how shared lines are discovered: pairwise or line-index")
	f.BoolVar(&cfg.Alternatives, "alternatives", env.boolVal("alternatives", false),
		"show other lines that also serve each bus hop")
	f.StringVar(&cfg.Color, "color", env.stringVal("color", ColorAuto), "colour output: auto, always or never")
	f.StringVar(&cfg.LogLevel, "log-level", env.stringVal("log-level", "warn"), "debug, info, warn or error")
	f.BoolVar(&cfg.ListDatasets, "list-datasets", false, "print the built-in dataset names and exit")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if env.err != nil {
			return env.err
		}
		if err := cfg.validate(); err != nil {
			return err
		}
		logger, err := NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
		if err != nil {
			return err
		}

		return run(cmd.Context(), kind, cfg, cmd.OutOrStdout(), logger)
	}

	return cmd
}

// run performs one search and prints the result.
func run(ctx context.Context, kind Kind, cfg Config, out io.Writer, logger *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.ListDatasets {
		return render.Fprint(out, strings.Join(dataset.Names(), "\n")+"\n")
	}

	d, err := dataset.Resolve(cfg.Dataset)
	if err != nil {
		return err
	}
	from, to, err := query(cfg, d)
	if err != nil {
		return err
	}

	n, err := buildNetwork(cfg, d, logger)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded", "dataset", d.Name, "stops", len(d.Stops), "walks", len(d.Walks),
		"from", from, "to", to)

	opts := []render.Option{render.WithColor(useColor(cfg.Color, out))}
	if cfg.Alternatives {
		opts = append(opts, render.WithAlternatives(n))
	}
	printer := render.New(opts...)

	started := time.Now()
	var text string
	switch kind {
	case AllRoutes:
		routes, err := findAll(ctx, cfg, n, from, to)
		if err != nil {
			return err
		}
		logger.Info("search finished", "search", "dfs", "routes", len(routes), "elapsed", time.Since(started))
		text = printer.AllRoutes(from, to, routes)
	default:
		route, ok, err := findShortest(ctx, cfg, n, from, to)
		if err != nil {
			return err
		}
		logger.Info("search finished", "search", "bfs", "found", ok, "hops", route.Hops(), "elapsed", time.Since(started))
		if ok {
			logger.Debug("shortest route", "route", render.Compact(route))
		}
		text = printer.Shortest(from, to, route, ok)
	}

	return render.Fprint(out, text)
}

// query picks the origin and destination: flags first, then the dataset.
func query(cfg Config, d *dataset.Dataset) (core.StopID, core.StopID, error) {
	from, to := core.StopID(cfg.From), core.StopID(cfg.To)
	if from == 0 {
		from = d.Query.From
	}
	if to == 0 {
		to = d.Query.To
	}
	if from == 0 || to == 0 {
		return 0, 0, fmt.Errorf("%w: dataset %q has no default query; set --from and --to", ErrBadConfig, d.Name)
	}

	return from, to, nil
}

func buildNetwork(cfg Config, d *dataset.Dataset, logger *slog.Logger) (*core.Network, error) {
	strategy, err := builder.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	tieBreak, err := builder.ParseTieBreak(cfg.TieBreak)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	return d.Network(
		builder.WithStrategy(strategy),
		builder.WithTieBreak(tieBreak),
		builder.WithLogger(logger),
	)
}

func findAll(ctx context.Context, cfg Config, n *core.Network, from, to core.StopID) ([]core.Route, error) {
	opts := []dfs.Option{
		dfs.WithContext(ctx),
		dfs.WithMaxHops(cfg.MaxHops),
		dfs.WithMaxPaths(cfg.MaxPaths),
	}
	if cfg.NoWalk {
		opts = append(opts, dfs.WithFilterLink(dfs.NoWalking))
	}

	return dfs.AllPaths(n, from, to, opts...)
}

func findShortest(ctx context.Context, cfg Config, n *core.Network, from, to core.StopID) (core.Route, bool, error) {
	opts := []bfs.Option{
		bfs.WithContext(ctx),
		bfs.WithMaxHops(cfg.MaxHops),
	}
	if cfg.NoWalk {
		opts = append(opts, bfs.WithFilterLink(bfs.NoWalking))
	}

	return bfs.ShortestPath(n, from, to, opts...)
}

// Execute runs cmd and maps the outcome to a process exit code. A search
// that finds no route is a success.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		if errors.Is(err, context.Canceled) {
			return 130
		}
		return 1
	}

	return 0
}
