// Command rootfind solves one scalar equation from the command line.
//
// The function arrives as a text expression (see package exprfn), the
// method by name, and the numeric contract through flags:
//
//	rootfind -method bisect -f "x*x*x - x - 1" -a 1 -b 2
//	rootfind -method secant -f "cos(x) - x" -x0 0 -x1 1 -tol 1e-10
//	rootfind -method steffensen -g "cos(x)" -x0 0.5 -csv trace.csv -plot conv.png
//
// Unless -quiet is set, the per-iteration trace streams to stdout as a
// table; -csv and -plot export the same trace as a file and a chart. The
// final line always summarizes the result.
//
// Exit codes: 0 on success (converged or not; check the summary), 1 on
// solver, compile or I/O errors, 2 on usage errors.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/exprfn"
	"github.com/katalvlaran/rootfind/fixedpoint"
	"github.com/katalvlaran/rootfind/report"
	"github.com/katalvlaran/rootfind/secant"
)

func main() { os.Exit(run()) }

func run() int {
	var (
		flagMethod  string
		flagF       string
		flagG       string
		flagA       float64
		flagB       float64
		flagX0      float64
		flagX1      float64
		flagTol     float64
		flagMaxIter int
		flagQuiet   bool
		flagCSV     string
		flagPlot    string
	)
	flag.StringVar(&flagMethod, "method", "", "one of: bisect, regula, illinois, secant, fixedpoint, steffensen")
	flag.StringVar(&flagF, "f", "", `function f(x), e.g. "x*x*x - x - 1"; required by bisect, regula, illinois, secant; optional residual for the fixed-point methods`)
	flag.StringVar(&flagG, "g", "", `iteration function g(x), e.g. "cos(x)"; required by fixedpoint and steffensen`)
	flag.Float64Var(&flagA, "a", 0, "left bracket endpoint (bracket methods)")
	flag.Float64Var(&flagB, "b", 0, "right bracket endpoint (bracket methods)")
	flag.Float64Var(&flagX0, "x0", 0, "initial guess (secant, fixedpoint, steffensen)")
	flag.Float64Var(&flagX1, "x1", 0, "second initial guess (secant)")
	flag.Float64Var(&flagTol, "tol", 1e-8, "convergence tolerance; each method documents its criterion")
	flag.IntVar(&flagMaxIter, "max-iter", 100, "iteration budget (all methods except bisect)")
	flag.BoolVar(&flagQuiet, "quiet", false, "suppress the per-iteration table")
	flag.StringVar(&flagCSV, "csv", "", "write the iteration trace to this CSV file")
	flag.StringVar(&flagPlot, "plot", "", "write a convergence chart to this image file (.png, .svg, .pdf)")
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintln(out, "Usage: rootfind -method <name> [flags]")
		fmt.Fprintln(out, `Example: rootfind -method illinois -f "x*x*x - x - 1" -a 1 -b 2 -tol 1e-10`)
		flag.PrintDefaults()
	}
	flag.Parse()

	// Usage checks: a known method and the expressions it requires.
	switch flagMethod {
	case "":
		fmt.Fprintln(os.Stderr, "rootfind: -method is required")
		flag.Usage()
		return 2
	case "bisect", "regula", "illinois", "secant":
		if flagF == "" {
			fmt.Fprintf(os.Stderr, "rootfind: method %q requires -f\n", flagMethod)
			return 2
		}
	case "fixedpoint", "steffensen":
		if flagG == "" {
			fmt.Fprintf(os.Stderr, "rootfind: method %q requires -g\n", flagMethod)
			return 2
		}
	default:
		fmt.Fprintf(os.Stderr, "rootfind: unknown method %q\n", flagMethod)
		flag.Usage()
		return 2
	}

	// Compile whatever expressions were supplied.
	var (
		f, g core.Func
		err  error
	)
	if flagF != "" {
		if f, err = exprfn.Compile(flagF); err != nil {
			fmt.Fprintf(os.Stderr, "rootfind: %v\n", err)
			return 1
		}
	}
	if flagG != "" {
		if g, err = exprfn.Compile(flagG); err != nil {
			fmt.Fprintf(os.Stderr, "rootfind: %v\n", err)
			return 1
		}
	}

	// Assemble the trace sinks the run should feed.
	var sinks []report.Sink
	var table *report.Table
	if !flagQuiet {
		table = report.NewTable(os.Stdout)
		sinks = append(sinks, table)
	}
	var csvSink *report.CSV
	if flagCSV != "" {
		file, createErr := os.Create(flagCSV)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "rootfind: %v\n", createErr)
			return 1
		}
		defer file.Close()
		csvSink = report.NewCSV(file)
		sinks = append(sinks, csvSink)
	}
	var plotSink *report.Plot
	if flagPlot != "" {
		expr := flagF
		if expr == "" {
			expr = flagG
		}
		plotSink = report.NewPlot(flagMethod + " " + expr)
		sinks = append(sinks, plotSink)
	}
	hook := report.Tee(sinks...)

	// Dispatch to the solver.
	var res core.Result
	switch flagMethod {
	case "bisect":
		res, err = bracket.Bisect(f, flagA, flagB, flagTol, bracket.WithOnIterate(hook))
	case "regula":
		res, err = bracket.RegulaFalsi(f, flagA, flagB, flagTol, flagMaxIter, bracket.WithOnIterate(hook))
	case "illinois":
		res, err = bracket.Illinois(f, flagA, flagB, flagTol, flagMaxIter, bracket.WithOnIterate(hook))
	case "secant":
		res, err = secant.Secant(f, flagX0, flagX1, flagTol, flagMaxIter, secant.WithOnIterate(hook))
	case "fixedpoint":
		opts := []fixedpoint.Option{fixedpoint.WithOnIterate(hook)}
		if f != nil {
			opts = append(opts, fixedpoint.WithResidual(f))
		}
		res, err = fixedpoint.FixedPoint(g, flagX0, flagTol, flagMaxIter, opts...)
	case "steffensen":
		residual := f
		if residual == nil {
			residual = func(x float64) float64 { return g(x) - x }
		}
		res, err = fixedpoint.Steffensen(g, residual, flagX0, flagTol, flagMaxIter,
			fixedpoint.WithOnIterate(hook))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "rootfind: %v\n", err)
		return 1
	}

	// Drain the sinks, then summarize.
	if table != nil {
		if err := table.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "rootfind: %v\n", err)
			return 1
		}
	}
	if csvSink != nil {
		if err := csvSink.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "rootfind: %v\n", err)
			return 1
		}
	}
	if plotSink != nil {
		if err := plotSink.Save(flagPlot); err != nil {
			fmt.Fprintf(os.Stderr, "rootfind: %v\n", err)
			return 1
		}
	}
	fmt.Printf("root=%g residual=%g iterations=%d converged=%t\n",
		res.Root, res.Residual, res.Iterations, res.Converged)
	return 0
}
