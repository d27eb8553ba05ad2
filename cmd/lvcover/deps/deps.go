package deps

import (
	"go.uber.org/dig"

	"github.com/katalvlaran/lvcover/cmd/lvcover/rootcmd"
)

// Build wires the command tree against the process streams and arguments.
func Build() (*dig.Container, error) {
	return build(append(constructors(), ProvideIOStreams, ProvideArgs)...)
}

// BuildWith wires the command tree against the given streams and arguments.
func BuildWith(streams rootcmd.IOStreams, args []string) (*dig.Container, error) {
	return build(append(constructors(),
		func() rootcmd.IOStreams { return streams },
		func() []string { return args },
	)...)
}

func build(cs ...any) (*dig.Container, error) {
	container := dig.New()

	for _, c := range cs {
		if err := container.Provide(c); err != nil {
			return nil, err
		}
	}

	return container, nil
}

func constructors() []any {
	return []any{
		rootcmd.ProvideRootCmd,
		ProvideLogOptions,
		ProvideLogFactory,
		ProvideSolveCmd,
		ProvideGenerateCmd,
		ProvideVersionCmd,
	}
}
