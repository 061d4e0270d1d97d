// Command louvain drives a single run of the parallel Louvain engine over
// a graph read from disk. Graph file ingestion and CLI-argument parsing
// libraries beyond the stdlib flag package are explicitly out of scope per
// spec.md §1/§6 — this file is the thinnest possible external collaborator
// satisfying the documented CLI surface, not a general-purpose loader.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/joeycumines/graphwork/community"
	"github.com/joeycumines/graphwork/graph"
	"github.com/joeycumines/graphwork/louvain"
)

func init() {
	// Ignored on purpose: when GOMAXPROCS is already set explicitly (or the
	// process isn't in a CPU-quota'd container), Set is a harmless no-op.
	_, _ = maxprocs.Set()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet(`louvain`, flag.ContinueOnError)
	algo := fs.String(`algo`, `Naive`, `algorithm selector (only "Naive" is meaningful)`)
	enableVF := fs.Bool(`enable_VF`, false, `run the vertex-following preprocessor before phase 1`)
	cThreshold := fs.Float64(`c_threshold`, 0.01, `modularity-gain convergence threshold`)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, `louvain: expected exactly one positional argument: the input graph file path`)
		return 2
	}
	if *algo != `Naive` {
		fmt.Fprintf(os.Stderr, "louvain: unsupported -algo %q (only \"Naive\" is implemented)\n", *algo)
		return 2
	}

	g, err := loadGraph(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "louvain: %v\n", err)
		return 1
	}

	driver := louvain.NewDriver(&louvain.Config{
		EnableVF:             *enableVF,
		ConvergenceThreshold: *cThreshold,
	})

	result, err := driver.Run(context.Background(), g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "louvain: %v\n", err)
		return 1
	}

	printResult(os.Stdout, result)
	return 0
}

// loadGraph reads a minimal implementation-defined edge-list format: a
// first line giving the vertex count, followed by one "u v w" triple per
// undirected edge. This stands in for the out-of-scope CSR file loader
// (spec.md §1/§6) — just enough to drive the engine end to end.
func loadGraph(path string) (*graph.CSR, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(`opening graph file: %w`, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, fmt.Errorf(`graph file %s: missing vertex count header`, path)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, fmt.Errorf(`graph file %s: invalid vertex count header: %w`, path, err)
	}

	adjacency := make([][]graph.Edge, n)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == `` {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf(`graph file %s: expected "u v w", got %q`, path, line)
		}
		u, err1 := strconv.Atoi(fields[0])
		v, err2 := strconv.Atoi(fields[1])
		w, err3 := strconv.ParseUint(fields[2], 10, 32)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf(`graph file %s: invalid edge %q`, path, line)
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf(`graph file %s: edge %q references an out-of-range vertex`, path, line)
		}
		adjacency[u] = append(adjacency[u], graph.Edge{Dst: v, Weight: uint32(w)})
		if u != v {
			adjacency[v] = append(adjacency[v], graph.Edge{Dst: u, Weight: uint32(w)})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf(`reading graph file %s: %w`, path, err)
	}
	return graph.NewCSR(adjacency), nil
}

func printResult(w *os.File, result *louvain.DriverResult) {
	fmt.Fprintf(w, "iter=%d e_xx=%v a2_x=%v q=%v\n",
		result.Phase1.Iterations, result.Phase1.EXX, result.Phase1.A2X, result.Phase1.Q)
	fmt.Fprintf(w, "communities=%d followed=%d\n", result.NumCommunities, result.Followed)
	for v, c := range result.Clusters {
		if c == community.Isolated {
			fmt.Fprintf(w, "%d -1\n", v)
			continue
		}
		fmt.Fprintf(w, "%d %d\n", v, c)
	}
}
