package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"swatchctl/internal/mcpserver"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want table, json or yaml)", s)
}

// columnOrder puts the color fields in reading order; anything else
// follows alphabetically.
var columnOrder = []string{"name", "hex", "r", "g", "b", "hue", "saturation", "lightness", "distance"}

// ExecutorOptions contains options for tool execution
type ExecutorOptions struct {
	Format OutputFormat
	Out    io.Writer
}

// ToolExecutor runs color tools and prints their results.
type ToolExecutor struct {
	client  *CLIClient
	options ExecutorOptions
}

// NewToolExecutor creates an executor backed by an in-process color server.
func NewToolExecutor(version string, options ExecutorOptions) *ToolExecutor {
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	return &ToolExecutor{
		client:  NewCLIClient(mcpserver.NewColorServer(version)),
		options: options,
	}
}

// Connect establishes the client session.
func (e *ToolExecutor) Connect(ctx context.Context) error {
	return e.client.Connect(ctx)
}

// Close closes the client session.
func (e *ToolExecutor) Close() error {
	return e.client.Close()
}

// Execute executes a tool and formats the output
func (e *ToolExecutor) Execute(ctx context.Context, toolName string, arguments map[string]interface{}) error {
	textResult, err := e.client.CallToolSimple(ctx, toolName, arguments)
	if err != nil {
		return fmt.Errorf("%s: %w", toolName, err)
	}
	return e.formatOutput(textResult)
}

func (e *ToolExecutor) formatOutput(jsonData string) error {
	switch e.options.Format {
	case OutputFormatJSON:
		_, err := fmt.Fprintln(e.options.Out, jsonData)
		return err
	case OutputFormatYAML:
		return e.outputYAML(jsonData)
	case OutputFormatTable:
		return e.outputTable(jsonData)
	default:
		return fmt.Errorf("unsupported output format: %s", e.options.Format)
	}
}

// outputYAML converts JSON to YAML and prints it
func (e *ToolExecutor) outputYAML(jsonData string) error {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}

	_, err = fmt.Fprint(e.options.Out, string(yamlData))
	return err
}

func (e *ToolExecutor) outputTable(jsonData string) error {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		_, err := fmt.Fprintln(e.options.Out, jsonData)
		return err
	}

	switch d := data.(type) {
	case map[string]interface{}:
		e.formatKeyValueTable(d)
	case []interface{}:
		e.formatTableFromArray(d)
	default:
		fmt.Fprintln(e.options.Out, jsonData)
	}
	return nil
}

func (e *ToolExecutor) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(e.options.Out)
	t.SetStyle(table.StyleRounded)
	return t
}

// formatTableFromArray creates a table from an array of objects
func (e *ToolExecutor) formatTableFromArray(data []interface{}) {
	if len(data) == 0 {
		fmt.Fprintln(e.options.Out, text.FgYellow.Sprint("No items found"))
		return
	}

	firstObj, ok := data[0].(map[string]interface{})
	if !ok {
		for _, item := range data {
			fmt.Fprintln(e.options.Out, item)
		}
		return
	}

	columns := orderedKeys(firstObj)
	t := e.newTable()

	headers := make(table.Row, len(columns))
	for i, col := range columns {
		headers[i] = text.FgHiCyan.Sprint(strings.ToUpper(col))
	}
	t.AppendHeader(headers)

	for _, item := range data {
		itemMap, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		row := make(table.Row, len(columns))
		for i, col := range columns {
			row[i] = formatCellValue(itemMap[col])
		}
		t.AppendRow(row)
	}

	t.Render()
}

// formatKeyValueTable formats an object as key-value pairs
func (e *ToolExecutor) formatKeyValueTable(data map[string]interface{}) {
	t := e.newTable()
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("PROPERTY"),
		text.FgHiCyan.Sprint("VALUE"),
	})

	for _, key := range orderedKeys(data) {
		t.AppendRow(table.Row{
			text.FgYellow.Sprint(key),
			formatCellValue(data[key]),
		})
	}

	t.Render()
}

func formatCellValue(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return text.FgHiBlack.Sprint("-")
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%.3f", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func orderedKeys(data map[string]interface{}) []string {
	rank := make(map[string]int, len(columnOrder))
	for i, k := range columnOrder {
		rank[k] = i
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, iKnown := rank[keys[i]]
		rj, jKnown := rank[keys[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
