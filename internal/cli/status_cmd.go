package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/foliohq/folio/internal/cli/formatter"
	"github.com/foliohq/folio/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var deadlines bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the portfolio overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			o, err := app.API.Dashboard.Overview(ctx)
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(formatter.Header("Portfolio") + "\n\n")
			b.WriteString(fmt.Sprintf("%s %s\n", formatter.PadRight("Projects", 14), formatter.Number(o.TotalProjects)))
			for _, s := range []domain.ProjectStatus{
				domain.ProjectPlanned, domain.ProjectInProgress,
				domain.ProjectCompleted, domain.ProjectOnHold,
			} {
				if n := o.ProjectsByStatus[s]; n > 0 {
					b.WriteString(fmt.Sprintf("  %-14s %s\n", s, formatter.Number(n)))
				}
			}
			b.WriteString(fmt.Sprintf("%s %s\n", formatter.PadRight("Education", 14), formatter.Number(o.EducationCount)))
			b.WriteString(fmt.Sprintf("%s %s\n", formatter.PadRight("Budget", 14), formatter.Currency(o.TotalBudget)))
			b.WriteString(fmt.Sprintf("%s %s\n", formatter.PadRight("Completion", 14), formatter.Percent(o.CompletionRate)))

			if deadlines {
				due, err := app.API.Dashboard.UpcomingDeadlines(ctx, deadlineWindowDays)
				if err != nil {
					return err
				}
				b.WriteString("\n" + formatter.Header("Upcoming Deadlines") + "\n\n")
				if len(due) == 0 {
					b.WriteString(formatter.Dim("Nothing due.") + "\n")
				}
				for _, d := range due {
					b.WriteString(fmt.Sprintf("%-30s %s (%dd)\n",
						formatter.Truncate(d.Title, 30), formatter.HumanDate(d.DueDate), d.DaysLeft))
				}
			}

			fmt.Print(b.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&deadlines, "deadlines", false, "Include upcoming deadlines")

	return cmd
}
