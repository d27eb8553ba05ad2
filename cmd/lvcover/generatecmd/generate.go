package generatecmd

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/graphio"
)

type LogFactory interface {
	Logger() logr.Logger
}

func NewCmd(logFactory LogFactory) *cobra.Command {
	const (
		generateUse   = "generate KIND"
		generateShort = "write a generated graph document."
		generateLong  = "write a generated graph document to stdout. KIND is one of: "
	)

	cmd := &cobra.Command{
		Use:       generateUse,
		Short:     generateShort,
		Long:      generateLong + strings.Join(builder.KindNames(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: builder.KindNames(),
	}

	opts := options{
		N:      5,
		M:      1,
		P:      0.5,
		D:      2,
		Seed:   1,
		Output: string(graphio.FormatYAML),
	}

	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		log := logFactory.Logger().WithName("generate")

		kind, err := builder.ParseKind(args[0])
		if err != nil {
			return err
		}
		format, err := graphio.ParseFormat(opts.Output)
		if err != nil {
			return err
		}

		ctor, err := kind.Constructor(builder.Params{N: opts.N, M: opts.M, P: opts.P, D: opts.D})
		if err != nil {
			return err
		}

		bopts := []builder.BuilderOption{builder.WithSeed(opts.Seed)}
		if opts.Prefix != "" {
			bopts = append(bopts, builder.WithPrefixedIDs(opts.Prefix))
		}

		g, err := builder.BuildGraph(bopts, ctor)
		if err != nil {
			return fmt.Errorf("generating %s: %w", kind, err)
		}
		log.V(1).Info("generated graph", "kind", kind.String(), "vertices", g.VertexCount(), "edges", g.EdgeCount())

		return graphio.Encode(cmd.OutOrStdout(), g, format)
	}

	return cmd
}

type options struct {
	N      int
	M      int
	P      float64
	D      int
	Seed   int64
	Prefix string
	Output string
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.IntVarP(
		&o.N,
		"n",
		"n",
		o.N,
		"Vertex count (left side for bipartite, rows for grid).",
	)
	flags.IntVarP(
		&o.M,
		"m",
		"m",
		o.M,
		"Right side size for bipartite, columns for grid.",
	)
	flags.Float64VarP(
		&o.P,
		"p",
		"p",
		o.P,
		"Edge probability for random.",
	)
	flags.IntVarP(
		&o.D,
		"degree",
		"d",
		o.D,
		"Vertex degree for regular.",
	)
	flags.Int64Var(
		&o.Seed,
		"seed",
		o.Seed,
		"RNG seed for random and regular.",
	)
	flags.StringVar(
		&o.Prefix,
		"prefix",
		o.Prefix,
		"Vertex ID prefix, e.g. 'v' gives v0, v1, ... (default: decimal IDs).",
	)
	flags.StringVarP(
		&o.Output,
		"output",
		"o",
		o.Output,
		"Output format: yaml or json.",
	)
}
