package solvecmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvcover/cover"
	"github.com/katalvlaran/lvcover/graphio"
	"github.com/katalvlaran/lvcover/internal/cli"
)

type LogFactory interface {
	Logger() logr.Logger
}

var ErrInvalidOutputFormat = errors.New("invalid output format")

func NewCmd(logFactory LogFactory) *cobra.Command {
	const (
		solveUse   = "solve [-f graph.yaml]"
		solveShort = "compute a vertex cover and the complementary independent set."
		solveLong  = "compute a vertex cover and the complementary independent set of a graph document. " +
			"Reads stdin when --file is empty or '-'. The exact solver is exponential; " +
			"auto switches to the randomized heuristic above --max-exact vertices."
	)

	cmd := &cobra.Command{
		Use:   solveUse,
		Short: solveShort,
		Long:  solveLong,
		Args:  cobra.NoArgs,
	}

	opts := options{
		Algorithm: cover.Auto.String(),
		MaxExact:  cover.DefaultMaxExactVertices,
		Output:    "table",
	}

	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		log := logFactory.Logger().WithName("solve")

		algo, err := cover.ParseAlgorithm(opts.Algorithm)
		if err != nil {
			return err
		}

		in, closeIn, err := opts.input(cmd.InOrStdin())
		if err != nil {
			return err
		}
		defer closeIn()

		g, err := graphio.Decode(in)
		if err != nil {
			return fmt.Errorf("loading graph: %w", err)
		}
		log.V(1).Info("loaded graph", "vertices", g.VertexCount(), "edges", g.EdgeCount())

		res, err := cover.SolveWithGraph(g,
			cover.WithAlgorithm(algo),
			cover.WithSeed(opts.Seed),
			cover.WithMaxExactVertices(opts.MaxExact),
			cover.WithLogger(log),
		)
		if err != nil {
			return fmt.Errorf("solving: %w", err)
		}

		printer := cli.NewPrinter(
			cli.WithOut{Out: cmd.OutOrStdout()},
			cli.WithErr{Err: cmd.ErrOrStderr()},
		)

		return printResult(printer, res, opts.Output)
	}

	return cmd
}

func printResult(p *cli.Printer, res cover.LabeledResult, output string) error {
	switch strings.ToLower(output) {
	case "", "table":
		table := cli.Table{Headers: []string{"SET", "ALGORITHM", "SIZE", "VERTICES"}}
		table.AddRow("cover", res.Algorithm, len(res.Cover), joinOrDash(res.Cover))
		table.AddRow("independent", res.Algorithm, len(res.IndependentSet), joinOrDash(res.IndependentSet))

		return p.PrintTable(table)
	}

	format, err := graphio.ParseFormat(output)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidOutputFormat, output)
	}

	return graphio.EncodeResult(p.Out(), format, res)
}

func joinOrDash(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}

	return strings.Join(ids, " ")
}

type options struct {
	File      string
	Algorithm string
	Seed      int64
	MaxExact  int
	Output    string
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(
		&o.File,
		"file",
		"f",
		o.File,
		"Graph document (YAML or JSON). Empty or '-' reads stdin.",
	)
	flags.StringVarP(
		&o.Algorithm,
		"algorithm",
		"a",
		o.Algorithm,
		"Solver: auto, exact or heuristic.",
	)
	flags.Int64Var(
		&o.Seed,
		"seed",
		o.Seed,
		"Heuristic RNG seed; 0 uses the fixed default seed.",
	)
	flags.IntVar(
		&o.MaxExact,
		"max-exact",
		o.MaxExact,
		fmt.Sprintf("Largest vertex count for the exact solver (1..%d).", cover.MaxSubsetVertices),
	)
	flags.StringVarP(
		&o.Output,
		"output",
		"o",
		o.Output,
		"Output format: table, yaml or json.",
	)
}

// input opens the graph source; the returned func releases it.
func (o *options) input(stdin io.Reader) (io.Reader, func(), error) {
	if o.File == "" || o.File == "-" {
		return stdin, func() {}, nil
	}

	f, err := os.Open(o.File)
	if err != nil {
		return nil, nil, fmt.Errorf("opening graph document: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
