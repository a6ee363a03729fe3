package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/teamwork/internal/client"
	"github.com/fivetwenty-io/teamwork/internal/constants"
)

// ResourceInfo lists the operations of one registered resource.
type ResourceInfo struct {
	Name       string   `json:"name"       yaml:"name"`
	Operations []string `json:"operations" yaml:"operations"`
}

// NewResourcesCommand creates the resources command.
func NewResourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "resources",
		Aliases: []string{"resource", "res"},
		Short:   "List resources and their operations",
		Long:    "List every registered resource with the operations the call command accepts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := listResources(client.DefaultRegistry())
			if err != nil {
				return err
			}

			return renderResources(cmd.OutOrStdout(), infos, outputFormat())
		},
	}
}

// listResources builds each registered handler without a transport to read its operations.
func listResources(registry *client.Registry) ([]ResourceInfo, error) {
	names := registry.Names()
	infos := make([]ResourceInfo, 0, len(names))

	for _, name := range names {
		canonical, factory, err := registry.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s: %w", name, err)
		}

		infos = append(infos, ResourceInfo{
			Name:       canonical,
			Operations: factory(nil).Operations(),
		})
	}

	return infos, nil
}

func renderResources(out io.Writer, infos []ResourceInfo, format string) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(infos)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)

		return encoder.Encode(infos)
	default:
		table := tablewriter.NewWriter(out)
		table.Header("Resource", "Operations")

		for _, info := range infos {
			_ = table.Append(info.Name, strings.Join(info.Operations, ", "))
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
