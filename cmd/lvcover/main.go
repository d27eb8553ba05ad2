package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcover/cmd/lvcover/deps"
)

const (
	// ReturnCodeSuccess is passed to os.Exit() when no error is reported.
	ReturnCodeSuccess = 0
	// ReturnCodeError is passed to os.Exit() if a command report an error.
	ReturnCodeError = 1
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context) int {
	container, err := deps.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "building dependencies:", err)

		return ReturnCodeError
	}

	if err := container.Invoke(func(root *cobra.Command) error {
		return root.ExecuteContext(ctx)
	}); err != nil {
		return ReturnCodeError
	}

	return ReturnCodeSuccess
}
