package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/foliohq/folio/internal/api"
	"github.com/foliohq/folio/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Work with portfolio projects",
	}

	cmd.AddCommand(newProjectsListCmd(app), newProjectsDeleteCmd(app))

	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var status, category, search string
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.API.Projects.List(context.Background(), api.ListQuery{
				Page:     page,
				PageSize: app.PageSize,
				Status:   status,
				Category: category,
				Search:   search,
			})
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(result.Projects))
			for _, p := range result.Projects {
				budget := ""
				if p.Budget != nil {
					budget = formatter.Currency(p.Budget)
				}
				rows = append(rows, []string{
					formatter.TruncID(p.ID),
					formatter.Truncate(p.Title, 32),
					string(p.Status),
					string(p.Priority),
					fmt.Sprintf("%d%%", p.Progress),
					budget,
					strings.Join(p.Tech, ", "),
				})
			}

			fmt.Print(formatter.RenderTable(
				[]string{"ID", "Title", "Status", "Priority", "Progress", "Budget", "Tech"},
				rows,
			))
			fmt.Printf("\npage %d/%d · %d projects\n", result.Page, result.Pages, result.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&search, "search", "", "Search titles and descriptions")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")

	return cmd
}

func newProjectsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.API.Projects.Delete(context.Background(), args[0])
			// A 404 means the row is already gone; deleting is idempotent.
			if err != nil && !errors.Is(err, api.ErrGone) {
				return err
			}
			fmt.Println("deleted", args[0])
			return nil
		},
	}
}
