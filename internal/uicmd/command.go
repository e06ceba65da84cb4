package uicmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minelaunch/minelaunch/internal/uiout"
)

// Runner is implemented by a subcommand's actual logic, kept separate
// from cobra's *Command so it can return an error cobra itself
// swallows unless Run is wired through New below.
type Runner interface {
	RunE(cmd *cobra.Command, args []string) error
}

// Command pairs a cobra command with a Runner, wiring cobra's Run so
// that any returned error is classified and rendered before exiting
// with a non-zero status.
type Command struct {
	*cobra.Command
	runner Runner
}

// New builds a Command whose Run classifies and renders any error
// RunE returns, then exits 1.
func New(cmd *cobra.Command, run Runner) *Command {
	built := &Command{Command: cmd, runner: run}
	built.Command.RunE = func(cmd *cobra.Command, args []string) error {
		if err := run.RunE(cmd, args); err != nil {
			cliErr := Classify(err)
			fmt.Fprintln(os.Stderr, uiout.ErrorBox(cliErr.Kind, cliErr.Message, cliErr.Artifact))
			if s := uiout.Suggestions(cliErr.Suggestions); s != "" {
				fmt.Fprintln(os.Stderr, s)
			}
			os.Exit(1)
		}
		return nil
	}
	return built
}
