package cli

import (
	"context"
	"fmt"

	"github.com/foliohq/folio/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEducationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "education",
		Short: "Work with education entries",
	}

	cmd.AddCommand(newEducationListCmd(app))

	return cmd
}

func newEducationListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List education entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.API.Education.List(context.Background())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				gpa := ""
				if e.GPA != nil {
					gpa = fmt.Sprintf("%.2f", *e.GPA)
					if e.MaxGPA != nil {
						gpa += fmt.Sprintf("/%.1f", *e.MaxGPA)
					}
				}
				rows = append(rows, []string{
					formatter.TruncID(e.ID),
					formatter.Truncate(e.Degree, 32),
					formatter.Truncate(e.Institution, 28),
					e.Period(),
					gpa,
				})
			}

			fmt.Print(formatter.RenderTable(
				[]string{"ID", "Degree", "Institution", "Period", "GPA"},
				rows,
			))
			return nil
		},
	}
}
