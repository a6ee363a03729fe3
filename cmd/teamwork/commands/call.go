package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// CallOptions describe one dispatched operation.
type CallOptions struct {
	Resource  string
	Operation string
	IDs       []string
	Query     []string
	Data      string
	Select    string
	Output    string
}

// NewCallCommand creates the call command.
func NewCallCommand() *cobra.Command {
	var opts CallOptions

	cmd := &cobra.Command{
		Use:   "call RESOURCE OPERATION [ID...]",
		Short: "Call any resource operation",
		Long: `Call any operation of a registered resource by name.

Identifiers are passed positionally in the order the operation expects them.
Query parameters keep the order they are given in.

Examples:
  teamwork call projects get 42
  teamwork call tasks allForProject 42 --query page=2 --query pageSize=50
  teamwork call tags create --data '{"name": "bug", "color": "red"}'
  teamwork call people get 7 --select "first-name"`,
		Args: cobra.MinimumNArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Resource = args[0]
			opts.Operation = args[1]
			opts.IDs = args[2:]
			opts.Output = outputFormat()

			client, cleanup, err := CreateClient()
			if err != nil {
				return err
			}
			defer cleanup()

			return runCall(cmd.Context(), client, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Query, "query", "q", nil, "query parameter as key=value (repeatable)")
	cmd.Flags().StringVarP(&opts.Data, "data", "d", "", "request fields as a JSON object")
	cmd.Flags().StringVar(&opts.Select, "select", "", "print only the value at this path (gjson syntax)")

	return cmd
}

func runCall(ctx context.Context, client teamwork.Client, out io.Writer, opts CallOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	handler, err := client.Resolve(opts.Resource)
	if err != nil {
		return err
	}

	query, err := parseQueryPairs(opts.Query)
	if err != nil {
		return err
	}

	params, err := parseData(opts.Data)
	if err != nil {
		return err
	}

	ids := make([]any, len(opts.IDs))
	for i, id := range opts.IDs {
		ids[i] = id
	}

	result, err := handler.Call(ctx, opts.Operation, teamwork.Args{IDs: ids, Params: params, Query: query})
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", opts.Resource, opts.Operation, err)
	}

	result, err = selectPath(result, opts.Select)
	if err != nil {
		return err
	}

	return renderValue(out, result, opts.Output)
}
