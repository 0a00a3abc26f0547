package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "folio" command and registers all
// subcommands against the provided App. Running it with no subcommand
// launches the TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "folio",
		Short:         "Terminal admin client for the portfolio backend",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("not a terminal; use a subcommand (try `folio status`)")
			}
			p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err := p.Run()
			return err
		},
	}

	root.AddCommand(
		newStatusCmd(app),
		newProjectsCmd(app),
		newEducationCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
	)

	return root
}
