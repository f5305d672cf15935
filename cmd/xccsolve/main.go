// Command xccsolve reads one or more exact-cover-with-colors problem
// files and reports solutions, grounded in original_source/src/main.c's
// flag surface (spec.md §6). There is no CLI framework in play: nothing
// in the retrieval pack reaches for cobra/urfave/pflag even in
// considerably larger programs, so this stays on the standard flag
// package, the way the pack does it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/maximaximal/xccsolve/internal/dlx"
	"github.com/maximaximal/xccsolve/internal/problem"
	"github.com/maximaximal/xccsolve/internal/xcclog"
)

const (
	exitSolved        = 10
	exitUnsatisfiable = 20
	exitError         = 1
)

type algorithm int

const (
	algMRV algorithm = iota
	algNaive
	algC
	algM
	algKnuthCNF
)

type config struct {
	printNames bool
	enumerate  bool
	alg        algorithm
	verbose    int
	files      []string
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}

	logger := xcclog.NewFromEnv()
	logger.SetVerbose(cfg.verbose)

	if len(cfg.files) == 0 {
		return solveOne(context.Background(), cfg, logger, "<stdin>", os.Stdin)
	}

	// Each file is an independently owned Problem; running them
	// concurrently parallelises across problems, not within a single
	// search, so it does not touch the single-threaded core's contract
	// (spec.md §5's non-goal is intra-search parallelism).
	results := make([]int, len(cfg.files))
	g, ctx := errgroup.WithContext(context.Background())
	for idx, path := range cfg.files {
		idx, path := idx, path
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return errors.Wrapf(err, "opening %s", path)
			}
			defer f.Close()
			results[idx] = solveOne(ctx, cfg, logger, path, f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}

	for _, code := range results {
		if code != exitSolved && code != exitUnsatisfiable {
			return code
		}
	}
	for _, code := range results {
		if code == exitSolved {
			return exitSolved
		}
	}
	return exitUnsatisfiable
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("xccsolve", flag.ContinueOnError)

	fs.BoolVar(&cfg.printNames, "p", false, "print solution as item-name rows rather than option indices")
	fs.BoolVar(&cfg.printNames, "print", false, "alias for -p")
	fs.BoolVar(&cfg.enumerate, "e", false, "emit every solution, then print the count")
	fs.BoolVar(&cfg.enumerate, "enumerate", false, "alias for -e")

	naive := fs.Bool("naive", false, "use the naive (leftmost) branch heuristic")
	mrv := fs.Bool("mrv", false, "use the MRV branch heuristic (default)")
	fs.BoolVar(mrv, "smrv", false, "alias for --mrv")

	useX := fs.Bool("x", false, "solve with Algorithm X (plain exact cover)")
	useC := fs.Bool("c", false, "solve with Algorithm C (exact cover with colors, default)")
	useM := fs.Bool("m", false, "solve with Algorithm M (multiplicities)")
	useK := fs.Bool("k", false, "solve via Knuth's CNF-SAT reduction (unsupported, no SAT backend wired in)")

	verbose := fs.Int("v", 0, "verbosity: dump the problem matrix (1) and primitive calls (2)")
	fs.IntVar(verbose, "verbose", 0, "alias for -v")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.alg = algC
	if *useX {
		cfg.alg = algMRV // Algorithm X is Algorithm C restricted to uncoloured items; same driver.
	}
	if *useM {
		cfg.alg = algM
	}
	if *useK {
		cfg.alg = algKnuthCNF
	}
	_ = useC

	if *naive {
		cfg.alg = algNaive
	}
	cfg.verbose = *verbose
	cfg.files = fs.Args()

	if *useK {
		return cfg, errors.New("xccsolve: -k (Knuth CNF-SAT reduction) requires an external SAT backend not wired into this build")
	}

	return cfg, nil
}

func heuristicFor(cfg config) dlx.Heuristic {
	if cfg.alg == algNaive {
		return dlx.Naive
	}
	return dlx.MRV
}

func solveOne(ctx context.Context, cfg config, logger *xcclog.Logger, name string, r interface{ Read([]byte) (int, error) }) int {
	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)
	for {
		n, err := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err != nil {
			break
		}
	}

	stats := &dlx.Stats{Progress: cfg.verbose > 0, Delta: 1000, Verbosity: cfg.verbose}
	prob, err := problem.Parse(string(buf), dlx.Options{Heuristic: heuristicFor(cfg)}, stats, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return exitError
	}

	solutions := 0

	for {
		var (
			found bool
			err   error
		)
		if cfg.verbose >= 1 {
			fmt.Fprintf(os.Stderr, "%s: before step:%s", name, prob.DumpMatrix())
		}
		if cfg.alg == algM {
			found, err = prob.ComputeNextResultM(ctx)
		} else {
			found, err = prob.ComputeNextResult(ctx)
		}
		if cfg.verbose >= 1 {
			fmt.Fprintf(os.Stderr, "%s: after step:%s", name, prob.DumpMatrix())
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			return exitError
		}
		if !found {
			break
		}
		solutions++
		printSolution(os.Stdout, name, prob, cfg)
		if !cfg.enumerate {
			break
		}
	}

	if cfg.enumerate {
		fmt.Fprintf(os.Stdout, "%s: %s solution(s)\n", name, humanize.Comma(int64(solutions)))
	}
	if solutions == 0 {
		return exitUnsatisfiable
	}
	return exitSolved
}

func printSolution(w *os.File, name string, prob *dlx.Problem, cfg config) {
	if cfg.printNames {
		fmt.Fprintln(w, prob.FormatSolution())
		return
	}
	indices := prob.ExtractOptionIndices()
	for i, idx := range indices {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%d", idx)
	}
	fmt.Fprintln(w)
}
