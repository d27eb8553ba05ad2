package rootcmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/dig"

	"github.com/katalvlaran/lvcover/internal/version"
)

type Params struct {
	dig.In

	Streams     IOStreams
	Args        []string
	Log         *LogOptions
	SubCommands []*cobra.Command `group:"rootSubCommands"`
}

type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

func ProvideRootCmd(params Params) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lvcover",
		Short:        "Compute vertex covers and independent sets of undirected graphs.",
		Version:      version.Get().ApplicationVersion,
		SilenceUsage: true,
	}
	cmd.SetIn(params.Streams.In)
	cmd.SetOut(params.Streams.Out)
	cmd.SetErr(params.Streams.ErrOut)
	cmd.SetArgs(params.Args)

	params.Log.AddFlags(cmd.PersistentFlags())
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return params.Log.Validate()
	}

	for _, sub := range params.SubCommands {
		cmd.AddCommand(sub)
	}

	return cmd
}

// MaxVerbosity is the highest accepted --verbosity.
const MaxVerbosity = 10

var ErrInvalidVerbosity = errors.New("invalid verbosity")

// LogOptions holds the global logging flags. They are read when a command
// asks for a logger, after flag parsing.
type LogOptions struct {
	Verbosity   int
	Development bool
}

func (o *LogOptions) AddFlags(flags *pflag.FlagSet) {
	flags.IntVarP(
		&o.Verbosity,
		"verbosity",
		"v",
		o.Verbosity,
		"Log verbosity: 1 logs solver progress, 2 logs every search step.",
	)
	flags.BoolVar(
		&o.Development,
		"log-development",
		o.Development,
		"Use human-readable console logs instead of JSON.",
	)
}

func (o *LogOptions) Validate() error {
	if o.Verbosity < 0 || o.Verbosity > MaxVerbosity {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrInvalidVerbosity, o.Verbosity, MaxVerbosity)
	}

	return nil
}
