package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"meeting-insights/pkg/gcalendar"
)

type calendarAuthOptions struct {
	credentialsPath string
	tokenPath       string
}

// newCalendarAuthCommand runs the one-time OAuth desktop flow that produces the
// token the API server reads for calendar export.
func newCalendarAuthCommand(root *rootOptions) *cobra.Command {
	opts := &calendarAuthOptions{}

	cmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and save an OAuth token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if cfg != nil {
				if !cmd.Flags().Changed("credentials") && cfg.GoogleCalendar.CredentialsPath != "" {
					opts.credentialsPath = cfg.GoogleCalendar.CredentialsPath
				}
				if !cmd.Flags().Changed("token") && cfg.GoogleCalendar.TokenPath != "" {
					opts.tokenPath = cfg.GoogleCalendar.TokenPath
				}
			}
			return runCalendarAuth(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.credentialsPath, "credentials", "google-credentials.json", "OAuth desktop client credentials")
	cmd.Flags().StringVar(&opts.tokenPath, "token", "token.json", "where to save the token")
	return cmd
}

func runCalendarAuth(cmd *cobra.Command, opts *calendarAuthOptions) error {
	data, err := os.ReadFile(opts.credentialsPath)
	if err != nil {
		return fmt.Errorf("failed to read credentials file %q: %w", opts.credentialsPath, err)
	}

	oauthConfig, err := gcalendar.OAuthConfig(data)
	if err != nil {
		return fmt.Errorf("failed to parse credentials (is %q an OAuth desktop client?): %w", opts.credentialsPath, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "1. Open this URL and sign in with the Google account that owns the calendar:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	fmt.Fprintln(out)
	fmt.Fprint(out, "2. Paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}

	tok, err := oauthConfig.Exchange(cmd.Context(), code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if err := gcalendar.SaveToken(opts.tokenPath, tok); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nToken saved to %s. Restart the API server to enable calendar export.\n", opts.tokenPath)
	return nil
}
