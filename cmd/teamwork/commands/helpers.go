package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// outputFormat returns the --output setting, defaulting to table.
func outputFormat() string {
	format := viper.GetString("output")
	if format == "" {
		return constants.FormatTable
	}

	return format
}

// parseQueryPairs turns repeated key=value flags into an ordered query.
func parseQueryPairs(pairs []string) (teamwork.Query, error) {
	query := teamwork.NewQuery()

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidQueryPair, pair)
		}

		query = query.Add(key, value)
	}

	return query, nil
}

// parseData decodes the --data flag. An empty string yields nil params.
func parseData(data string) (teamwork.Params, error) {
	if strings.TrimSpace(data) == "" {
		return nil, nil
	}

	var params teamwork.Params

	err := json.Unmarshal([]byte(data), &params)
	if err != nil || params == nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrInvalidJSONData, data)
	}

	return params, nil
}

// selectPath projects value through a gjson path. An empty path returns value unchanged.
func selectPath(value any, path string) (any, error) {
	if path == "" {
		return value, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}

	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return nil, fmt.Errorf("%w: %s", constants.ErrNoSelectMatch, path)
	}

	var selected any

	err = json.Unmarshal([]byte(result.Raw), &selected)
	if err != nil {
		return nil, fmt.Errorf("decoding selection: %w", err)
	}

	return selected, nil
}

// renderValue writes a decoded API result in the requested format.
func renderValue(out io.Writer, value any, format string) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)

		return encoder.Encode(value)
	default:
		return renderTable(out, value)
	}
}

func renderTable(out io.Writer, value any) error {
	table := tablewriter.NewWriter(out)

	switch typed := value.(type) {
	case map[string]any:
		table.Header("Property", "Value")

		for _, key := range sortedKeys(typed) {
			_ = table.Append(key, formatCell(typed[key]))
		}
	case []any:
		columns := listColumns(typed)
		if len(columns) == 0 {
			_, err := fmt.Fprintf(out, "%d items\n", len(typed))

			return err
		}

		header := make([]any, len(columns))
		for i, column := range columns {
			header[i] = column
		}

		table.Header(header...)

		for _, item := range typed {
			object, _ := item.(map[string]any)

			row := make([]string, len(columns))
			for i, column := range columns {
				row[i] = formatCell(object[column])
			}

			_ = table.Append(row)
		}
	default:
		_, err := fmt.Fprintln(out, formatCell(value))

		return err
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// listColumns picks the scalar fields of the first object, with id first.
func listColumns(items []any) []string {
	if len(items) == 0 {
		return nil
	}

	first, ok := items[0].(map[string]any)
	if !ok {
		return nil
	}

	var columns []string

	for _, key := range sortedKeys(first) {
		switch first[key].(type) {
		case map[string]any, []any:
			continue
		}

		if key == "id" {
			columns = append([]string{key}, columns...)
		} else {
			columns = append(columns, key)
		}
	}

	return columns
}

func sortedKeys(object map[string]any) []string {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func formatCell(value any) string {
	var text string

	switch typed := value.(type) {
	case nil:
		return constants.NotAvailable
	case string:
		text = typed
	case map[string]any, []any:
		data, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprint(typed)
		}

		text = string(data)
	default:
		text = fmt.Sprint(typed)
	}

	return truncate(text, constants.StringTruncationLength)
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit-3]) + "..."
}
