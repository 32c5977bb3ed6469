// Package main provides the adjoint CLI, which evaluates sample formulas and
// prints their values and the adjoints of their inputs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"k8s.io/klog/v2"

	"github.com/born-ml/adjoint/autodiff"
)

const version = "v0.0.1-dev"

func main() {
	ctx := context.Background()
	err := run(ctx, os.Args[1:], os.Stdout)
	klog.Flush()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	x, y    float64
	formula string
	trace   bool
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) > 0 && args[0] == "version" {
		fmt.Fprintf(out, "adjoint %s\n", version)
		return nil
	}

	opts, err := parseFlags(args, out)
	if err != nil {
		return err
	}

	log := klog.FromContext(ctx)
	log.V(2).Info("evaluating", "formula", opts.formula, "x", opts.x, "y", opts.y)

	switch opts.formula {
	case "square":
		squareMinus(out, opts)
	case "chain":
		chain(out, opts)
	case "all":
		squareMinus(out, opts)
		chain(out, opts)
	default:
		return fmt.Errorf("unknown formula %q (want square, chain or all)", opts.formula)
	}
	return nil
}

func parseFlags(args []string, out io.Writer) (options, error) {
	fs := flag.NewFlagSet("adjoint", flag.ContinueOnError)
	fs.SetOutput(out)
	klog.InitFlags(fs)

	var opts options
	fs.Float64Var(&opts.x, "x", 6, "value of input x")
	fs.Float64Var(&opts.y, "y", 3, "value of input y")
	fs.StringVar(&opts.formula, "formula", "all", "formula to evaluate: square, chain or all")
	fs.BoolVar(&opts.trace, "trace", false, "print the evaluated expression tree")

	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// squareMinus evaluates res = x*x - y.
func squareMinus(out io.Writer, opts options) {
	x := autodiff.NewVariable(opts.x)
	y := autodiff.NewVariable(opts.y)
	res := autodiff.NewVariable(0.0)

	expr := res.Assign(x.Mul(x).Sub(y))
	autodiff.EvaluateValueAndAdjoint(expr, res)

	fmt.Fprintf(out, "x*x-y = %s\n", res)
	printXY(out, x, y)
	if opts.trace {
		fmt.Fprintf(out, "trace: %s\n", expr)
	}
}

// chain evaluates z0 = x*x, z1 = z0*(x+y), res = z1/y.
func chain(out io.Writer, opts options) {
	x := autodiff.NewVariable(opts.x)
	y := autodiff.NewVariable(opts.y)
	z := autodiff.NewArray[float64](2)
	res := autodiff.NewVariable(0.0)

	expr := autodiff.Seq(
		z.At(0).Assign(x.Mul(x)),
		z.At(1).Assign(z.At(0).Mul(x.Add(y))),
		res.Assign(z.At(1).Div(y)),
	)
	autodiff.EvaluateValueAndAdjoint(expr, res)

	fmt.Fprintf(out, "x*x*(x+y)/y = %s\n", res)
	printXY(out, x, y)
	if opts.trace {
		fmt.Fprintf(out, "z = %s\n", z)
		fmt.Fprintf(out, "trace: %s\n", expr)
	}
}

func printXY(out io.Writer, x, y *autodiff.Variable[float64]) {
	fmt.Fprintf(out, "x = %s\n", x)
	fmt.Fprintf(out, "y = %s\n", y)
}
