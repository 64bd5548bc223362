// Command circuit reads x,y,z junction points and prints one integer: the
// product of the three largest groups after connecting the closest pairs
// (-mode groups), or the product of the X coordinates of the pair that
// joins every point into one component (-mode span).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/TrevorS/circuit"
	"github.com/TrevorS/circuit/internal/input"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	path        string
	mode        circuit.Mode
	cfg         circuit.Config
	metricsFile string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	var reg *prometheus.Registry
	if opts.metricsFile != "" {
		reg = prometheus.NewRegistry()
		opts.cfg.Metrics = circuit.NewMetrics(reg)
	}

	result, err := solve(opts, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, result)

	if reg != nil {
		if err := prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
			fmt.Fprintf(stderr, "circuit: writing metrics: %v\n", err)
			return 1
		}
	}
	return 0
}

func solve(opts options, stdin io.Reader) (int, error) {
	rc, err := input.Open(opts.path, stdin)
	if err != nil {
		return 0, fmt.Errorf("circuit: %w", err)
	}
	defer rc.Close()

	points, err := circuit.ReadPoints(rc)
	if err != nil {
		return 0, err
	}
	return circuit.Solve(points, opts.mode, opts.cfg)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("circuit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: circuit [flags] [input]\n\ninput is a file of x,y,z lines, '-' for stdin (default)\n\n")
		fs.PrintDefaults()
	}

	mode := fs.String("mode", string(circuit.ModeGroups), "question to answer: groups (1) or span (2)")
	budget := fs.Int("budget", circuit.DefaultBudget, "number of closest pairs connected in groups mode")
	threads := fs.Int("threads", runtime.NumCPU(), "number of goroutines computing distances")
	metric := fs.String("metric", "euclidean", "distance metric: "+strings.Join(circuit.MetricNames, ", "))
	logLevel := fs.String("log-level", "warn", "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "text", "log format: text or json")
	metricsFile := fs.String("metrics-file", "", "write Prometheus metrics to this file after the run")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 1 {
		return options{}, fmt.Errorf("circuit: expected at most one input, got %d", fs.NArg())
	}

	opts := options{
		path:        input.Stdin,
		metricsFile: *metricsFile,
		cfg:         circuit.DefaultConfig(),
	}
	if fs.NArg() == 1 {
		opts.path = fs.Arg(0)
	}

	var err error
	if opts.mode, err = circuit.ParseMode(*mode); err != nil {
		return options{}, err
	}
	if opts.cfg.Metric, err = circuit.MetricByName(*metric); err != nil {
		return options{}, err
	}
	if *threads < 1 {
		return options{}, fmt.Errorf("circuit: -threads must be >= 1, got %d", *threads)
	}
	opts.cfg.Workers = *threads
	opts.cfg.Budget = *budget

	opts.cfg.Logger, err = newLogger(*logLevel, *logFormat, stderr)
	if err != nil {
		return options{}, err
	}
	return opts, nil
}

func newLogger(level, format string, w io.Writer) (*circuit.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("circuit: invalid -log-level %q", level)
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "text":
		return circuit.NewLogger(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return circuit.NewLogger(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("circuit: invalid -log-format %q", format)
	}
}
