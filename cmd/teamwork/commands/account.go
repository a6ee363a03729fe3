package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// NewAccountCommand creates the account command.
func NewAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Display account details",
		Long:  "Display details of the Teamwork account the API key belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := CreateClient()
			if err != nil {
				return err
			}
			defer cleanup()

			account, err := fetchAccount(cmd.Context(), client, "getDetails")
			if err != nil {
				return err
			}

			return renderAccount(cmd.OutOrStdout(), account, outputFormat())
		},
	}
}

// fetchAccount runs an account operation and decodes the result.
func fetchAccount(ctx context.Context, client teamwork.Client, operation string) (*teamwork.Account, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := client.Account().Call(ctx, operation, teamwork.Args{})
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	account := &teamwork.Account{}

	err = teamwork.Decode(result, account)
	if err != nil {
		return nil, fmt.Errorf("failed to decode account: %w", err)
	}

	return account, nil
}

func renderAccount(out io.Writer, account *teamwork.Account, format string) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(account)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)

		return encoder.Encode(account)
	default:
		table := tablewriter.NewWriter(out)
		table.Header("Property", "Value")

		_ = table.Append("ID", account.ID)
		_ = table.Append("Name", account.Name)
		_ = table.Append("Code", account.Code)
		_ = table.Append("URL", account.URL)
		_ = table.Append("Company", account.CompanyName)
		_ = table.Append("SSL Enabled", strconv.FormatBool(account.SSLEnabled))

		if account.UserID != "" {
			_ = table.Append("User", strings.TrimSpace(account.FirstName+" "+account.LastName))
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
