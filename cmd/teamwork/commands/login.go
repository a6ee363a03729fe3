package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Login to Teamwork",
		Long: `Verify an API key against a Teamwork account and store it.

The domain or base URL comes from --domain, --base-url, TEAMWORK_DOMAIN or a
prompt. The API key comes from --api-key, TEAMWORK_API_KEY or a hidden prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := settingsFromViper()
			reader := bufio.NewReader(cmd.InOrStdin())

			if settings.BaseURL == "" && settings.Domain == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "Teamwork domain (e.g. acme.teamwork.com): ")

				domain, _ := reader.ReadString('\n')
				settings.Domain = strings.TrimSpace(domain)
			}

			if settings.APIKey == "" {
				apiKey, err := promptAPIKey(cmd.OutOrStdout(), reader)
				if err != nil {
					return err
				}

				settings.APIKey = apiKey
			}

			config, account, err := login(cmd.Context(), settings)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s (%s)\n", account.Name, config.BaseURL)

			return err
		},
	}
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from Teamwork",
		Long:  "Remove the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = ""

			err := saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return err
		},
	}
}

// promptAPIKey reads the key without echo from a terminal, or as a line otherwise.
func promptAPIKey(out io.Writer, reader *bufio.Reader) (string, error) {
	_, _ = fmt.Fprint(out, "API key: ")

	var apiKey string

	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit in int
	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		_, _ = fmt.Fprintln(out)
		apiKey = string(data)
	} else {
		line, _ := reader.ReadString('\n')
		apiKey = line
	}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return "", constants.ErrEmptyAPIKey
	}

	return apiKey, nil
}

// login checks the key against authenticate.json and returns the config to store.
func login(ctx context.Context, settings ClientSettings) (*Config, *teamwork.Account, error) {
	client, cleanup, err := newClient(settings)
	if err != nil {
		return nil, nil, err
	}
	defer cleanup()

	account, err := fetchAccount(ctx, client, "getAuthentication")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to verify API key: %w", err)
	}

	config := loadConfig()
	config.APIKey = settings.APIKey
	config.BaseURL = client.Credentials().BaseURL
	config.Domain = ""

	return config, account, nil
}
