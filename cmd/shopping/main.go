package main

import (
	"flag"
	"fmt"
	"go-ml.dev/pkg/shopping/model"
	"go-ml.dev/pkg/shopping/model/knn"
	"go-ml.dev/pkg/shopping/shopping"
	"go-ml.dev/pkg/zorros/zlog"
	"golang.org/x/xerrors"
	"io"
	"os"
)

const usage = "Usage: shopping [flags] data"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shopping", flag.ContinueOnError)
	fs.SetOutput(stderr)
	neighbors := fs.Int("k", knn.DefaultNeighbors, "count of nearest neighbors")
	testSize := fs.Float64("test-size", model.DefaultTestSize, "share of sessions held out for testing")
	seed := fs.Int64("seed", 0, "split seed, random if zero")
	table := fs.String("table", shopping.DefaultTable, "table to read from SQLite data")
	verbose := fs.Bool("v", false, "print progress to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	training := model.Training{TestSize: *testSize, Seed: *seed}
	if *verbose {
		training.Verbose = func(s string) { zlog.Info(s) }
	}

	ds, err := shopping.Load(shopping.Open(fs.Arg(0), *table))
	if err != nil {
		return fail(stderr, err)
	}
	if training.Verbose != nil {
		training.Verbose(fmt.Sprintf("loaded %d sessions from %v", ds.Len(), fs.Arg(0)))
	}

	report, err := training.Run(ds, knn.New(model.Params{"neighbors": float64(*neighbors)}))
	if err != nil {
		if xerrors.Is(err, model.ErrUndefinedRate) {
			zlog.Warning("test subset has a single class, try another seed or test size")
		}
		return fail(stderr, err)
	}
	if _, err = report.WriteTo(stdout); err != nil {
		return fail(stderr, err)
	}
	return 0
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "shopping: %v\n", err)
	return 1
}
