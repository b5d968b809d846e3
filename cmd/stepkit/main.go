package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/stepkit/internal/cli"
	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/arthur-debert/stepkit/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	// A failure has already been reported to the runner as an error command
	if _, ok := errors.AsFailure(err); !ok {
		fmt.Fprintln(os.Stderr, ui.RenderError(err, ui.FormatAuto.Resolve(os.Stderr)))
	}
	os.Exit(errors.ExitCode(err))
}
