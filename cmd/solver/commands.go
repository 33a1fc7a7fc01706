package main

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/statespace/crossing"
	"github.com/katalvlaran/statespace/jugs"
	"github.com/katalvlaran/statespace/queens"
	"github.com/katalvlaran/statespace/search"
	"github.com/katalvlaran/statespace/sliding"
)

var (
	rootCmd = &cobra.Command{
		Use:   "solver",
		Short: "A CLI for solving classic reachability puzzles",
		Long: `Solver explores puzzle state spaces with uninformed search:
breadth-first for the fewest moves, depth-first for the first solution found.
Solution paths go to stdout, diagnostics to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(viper.GetBool("debug"))
		},
	}

	depthFirst bool
	maxDepth   int
	timeout    time.Duration
	debug      bool

	jugsCmd = &cobra.Command{
		Use:   "jugs",
		Short: "Measure water by pouring between capped jugs",
		Long:  `Solves the water-measuring puzzle: jugs of fixed capacity, pour-only moves, and a target reading. Defaults to the classic 3/5/8 split.`,
		RunE:  runJugs,
	}
	jugCaps  []int
	jugStart []int
	jugGoal  []int

	slidingCmd = &cobra.Command{
		Use:   "sliding",
		Short: "Order a scrambled sliding-tile board",
		Long:  `Solves a rows×cols sliding-tile board. Scrambles the solved board by a seeded random walk, or takes an explicit arrangement via --tiles.`,
		RunE:  runSliding,
	}
	slideRows     int
	slideCols     int
	slideScramble int
	slideSeed     int64
	slideTiles    string

	queensCmd = &cobra.Command{
		Use:   "queens",
		Short: "Place n queens with none attacking another",
		RunE:  runQueens,
	}
	queensSize int

	crossingCmd = &cobra.Command{
		Use:   "crossing",
		Short: "Ferry the wolf, goat, and cabbage across the river",
		RunE:  runCrossing,
	}

	allCmd = &cobra.Command{
		Use:   "all",
		Short: "Solve the showcase instance of every puzzle concurrently",
		RunE:  runAll,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&depthFirst, "depth-first", false, "expand the newest discovery first instead of the oldest")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "stop exploring beyond this many moves (0 = no limit)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "abort the solve after this duration (0 = no timeout)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	for _, name := range []string{"depth-first", "max-depth", "timeout", "debug"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	viper.SetEnvPrefix("solver")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	jugsCmd.Flags().IntSliceVar(&jugCaps, "caps", []int{3, 5, 8}, "jug capacities")
	jugsCmd.Flags().IntSliceVar(&jugStart, "start", []int{0, 0, 8}, "initial amounts")
	jugsCmd.Flags().IntSliceVar(&jugGoal, "goal", []int{0, 4, 4}, "target amounts")
	rootCmd.AddCommand(jugsCmd)

	slidingCmd.Flags().IntVar(&slideRows, "rows", 3, "board height")
	slidingCmd.Flags().IntVar(&slideCols, "cols", 3, "board width")
	slidingCmd.Flags().IntVar(&slideScramble, "scramble", 12, "random slides away from the solved board")
	slidingCmd.Flags().Int64Var(&slideSeed, "seed", 42, "scramble seed")
	slidingCmd.Flags().StringVar(&slideTiles, "tiles", "", "explicit row-major arrangement, e.g. 1,2,3,4,0,6,7,5,8 (overrides --scramble)")
	rootCmd.AddCommand(slidingCmd)

	queensCmd.Flags().IntVar(&queensSize, "n", 8, "board dimension")
	rootCmd.AddCommand(queensCmd)

	rootCmd.AddCommand(crossingCmd)
	rootCmd.AddCommand(allCmd)
}

func runJugs(cmd *cobra.Command, args []string) error {
	p, err := jugs.New(jugCaps, jugGoal)
	if err != nil {
		return err
	}
	start, err := p.Start(jugStart)
	if err != nil {
		return err
	}

	return solveAndReport(cmd, "jugs", start)
}

func runSliding(cmd *cobra.Command, args []string) error {
	start, err := slidingStart()
	if err != nil {
		return err
	}

	return solveAndReport(cmd, "sliding", start)
}

// slidingStart builds the initial board from --tiles when given,
// otherwise from a seeded scramble of the solved board.
func slidingStart() (sliding.State, error) {
	if slideTiles != "" {
		grid, err := parseTiles(slideTiles, slideRows, slideCols)
		if err != nil {
			return sliding.State{}, err
		}

		return sliding.New(grid)
	}

	goal, err := sliding.Solved(slideRows, slideCols)
	if err != nil {
		return sliding.State{}, err
	}

	return goal.Scramble(slideScramble, rand.New(rand.NewSource(slideSeed))), nil
}

func runQueens(cmd *cobra.Command, args []string) error {
	start, err := queens.New(queensSize)
	if err != nil {
		return err
	}

	return solveAndReport(cmd, "queens", start)
}

func runCrossing(cmd *cobra.Command, args []string) error {
	return solveAndReport(cmd, "crossing", crossing.Start())
}

// namedStart pairs a puzzle label with its initial state.
type namedStart struct {
	name  string
	start search.State
}

// runAll solves the showcase instances concurrently; one failure cancels
// the rest through the group context.
func runAll(cmd *cobra.Command, args []string) error {
	starts, err := showcaseStarts()
	if err != nil {
		return err
	}

	type outcome struct {
		res  *search.Result
		took time.Duration
	}
	results := make([]outcome, len(starts))

	parent, cancel := solveContext(cmd)
	defer cancel()
	g, ctx := errgroup.WithContext(parent)
	for i, s := range starts {
		i, s := i, s
		g.Go(func() error {
			began := time.Now()
			res, err := search.Solve(s.start, solveOptions(ctx)...)
			if err != nil {
				return fmt.Errorf("%s: %w", s.name, err)
			}
			results[i] = outcome{res: res, took: time.Since(began)}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	for i, r := range results {
		logSolved(starts[i].name, r.res, r.took)
	}

	return nil
}

// showcaseStarts builds the default instance of every bundled puzzle.
func showcaseStarts() ([]namedStart, error) {
	goal, err := sliding.Solved(slideRows, slideCols)
	if err != nil {
		return nil, err
	}
	qs, err := queens.New(queensSize)
	if err != nil {
		return nil, err
	}

	return []namedStart{
		{name: "jugs", start: jugs.Classic()},
		{name: "sliding", start: goal.Scramble(slideScramble, rand.New(rand.NewSource(slideSeed)))},
		{name: "queens", start: qs},
		{name: "crossing", start: crossing.Start()},
	}, nil
}

// solveContext applies the configured timeout to the command context.
func solveContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if t := viper.GetDuration("timeout"); t > 0 {
		return context.WithTimeout(cmd.Context(), t)
	}

	return context.WithCancel(cmd.Context())
}

// solveOptions assembles engine options from the effective configuration.
func solveOptions(ctx context.Context) []search.Option {
	opts := []search.Option{search.WithContext(ctx)}
	if viper.GetBool("depth-first") {
		opts = append(opts, search.WithDepthFirst())
	}
	if d := viper.GetInt("max-depth"); d > 0 {
		opts = append(opts, search.WithMaxDepth(d))
	}

	return opts
}

// solveAndReport runs one solve, logs the outcome, and prints the path.
func solveAndReport(cmd *cobra.Command, name string, start search.State) error {
	ctx, cancel := solveContext(cmd)
	defer cancel()

	began := time.Now()
	res, err := search.Solve(start, solveOptions(ctx)...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	logSolved(name, res, time.Since(began))

	for _, line := range pathLines(res) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}

	return nil
}

func logSolved(name string, res *search.Result, took time.Duration) {
	log.Info().
		Str("puzzle", name).
		Int("moves", res.Moves()).
		Int("expanded", res.Expanded).
		Int("discovered", res.Discovered).
		Dur("took", took).
		Msg("solved")
}

// pathLines renders a solution path for terminal output.
func pathLines(res *search.Result) []string {
	return lo.Map(res.Path, func(s search.State, i int) string {
		if i == 0 {
			return "start   " + display(s)
		}

		return fmt.Sprintf("move %-2d %s", i, display(s))
	})
}

// display prefers a state's human rendering over its canonical key.
func display(s search.State) string {
	if str, ok := s.(fmt.Stringer); ok {
		return str.String()
	}

	return s.Key()
}

// parseTiles splits a comma-separated row-major tile list into rows of
// the given geometry.
func parseTiles(csv string, rows, cols int) ([][]int, error) {
	fields := strings.Split(csv, ",")
	if len(fields) != rows*cols {
		return nil, fmt.Errorf("expected %d tiles for a %d×%d board, got %d", rows*cols, rows, cols, len(fields))
	}
	grid := make([][]int, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			raw := strings.TrimSpace(fields[r*cols+c])
			v, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("tile %q is not a number", raw)
			}
			grid[r][c] = v
		}
	}

	return grid, nil
}
