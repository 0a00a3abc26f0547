package cli

import (
	"errors"
	"fmt"

	"github.com/foliohq/folio/internal/store"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var token, authToken string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return errors.New("--token is required")
			}
			if err := app.Prefs.Set(store.KeyAccessToken, token); err != nil {
				return err
			}
			if authToken != "" {
				if err := app.Prefs.Set(store.KeyAuthToken, authToken); err != nil {
					return err
				}
			}
			fmt.Println("logged in")
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Access token issued by the backend")
	cmd.Flags().StringVar(&authToken, "auth-token", "", "Legacy auth token, kept as a fallback")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget stored API tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Prefs.ClearTokens(); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
}
