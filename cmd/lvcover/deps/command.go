package deps

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"github.com/katalvlaran/lvcover/cmd/lvcover/generatecmd"
	"github.com/katalvlaran/lvcover/cmd/lvcover/rootcmd"
	"github.com/katalvlaran/lvcover/cmd/lvcover/solvecmd"
	"github.com/katalvlaran/lvcover/cmd/lvcover/versioncmd"
)

func ProvideIOStreams() rootcmd.IOStreams {
	return rootcmd.IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

func ProvideArgs() []string {
	return os.Args[1:]
}

type RootSubCommandResult struct {
	dig.Out

	SubCommand *cobra.Command `group:"rootSubCommands"`
}

func ProvideSolveCmd(f LogFactory) RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: solvecmd.NewCmd(f),
	}
}

func ProvideGenerateCmd(f LogFactory) RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: generatecmd.NewCmd(f),
	}
}

func ProvideVersionCmd() RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: versioncmd.NewCmd(),
	}
}
