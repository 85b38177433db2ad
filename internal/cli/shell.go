package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/internal/logging"
	"github.com/mesh-intelligence/shelf/internal/shell"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE:  a.runShell,
	}
}

// runShell starts the menu. A terminal on stdin gets line editing and
// history; piped input is read line by line.
func (a *app) runShell(cmd *cobra.Command, args []string) error {
	store, err := a.openStore(cmd)
	if err != nil {
		return err
	}

	var in shell.LineReader
	if stdin := cmd.InOrStdin(); logging.IsTerminal(stdin) && logging.IsTerminal(cmd.OutOrStdout()) {
		tr := shell.NewTerminalReader()
		defer tr.Close()
		in = tr
	} else {
		in = shell.NewScriptReader(stdin, cmd.OutOrStdout())
	}

	sh := shell.New(store, in, cmd.OutOrStdout(), shell.WithLogger(a.log))
	if err := sh.Run(cmd.Context()); err != nil {
		return sysError(err)
	}
	return nil
}
