package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/internal/logging"
	"github.com/fivetwenty-io/castore/pkg/castore"
	"github.com/fivetwenty-io/castore/pkg/schema"
	"github.com/fivetwenty-io/castore/pkg/storeclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"
	Masked       = "***"

	// Output formats.
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"

	idField = "_id"
)

// Common static errors used throughout the commands package.
var (
	ErrUnknownOutput  = errors.New("unknown output format")
	ErrEmptyRecordSet = errors.New("no records found in input")
)

// CreateStore builds a store from the resolved CLI configuration.
func CreateStore() (castore.Store, error) {
	base := viper.GetString("base")
	origin := viper.GetString("origin")

	if base == "" && origin == "" {
		return nil, constants.ErrNoBaseConfigured
	}

	config := &castore.Config{
		Base:      base,
		Origin:    origin,
		Token:     viper.GetString("token"),
		UserAgent: viper.GetString("user_agent"),
		Timeout:   constants.DefaultHTTPTimeout,
		Logger:    NewLogger(),
		Debug:     viper.GetBool("verbose"),
	}

	if viper.GetBool("validate") {
		config.Validation = schema.Default()
	}

	store, err := storeclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	return store, nil
}

// NewLogger returns the CLI logger. Verbose output raises the level to debug.
func NewLogger() *logging.Logger {
	level := "warn"
	if viper.GetBool("verbose") {
		level = "debug"
	}

	return logging.NewDefault("castore", level, os.Stderr)
}

// OutputFormat returns the configured output format. Without one, tables are
// used on a terminal and JSON otherwise.
func OutputFormat() string {
	output := viper.GetString("output")
	if output != "" {
		return output
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		return OutputFormatTable
	}

	return OutputFormatJSON
}

// outputResult writes a store result in the chosen format. A failed result
// is written as its failure envelope and reported as an error.
func outputResult(w io.Writer, res *castore.Result, format string) error {
	if res.Failed() {
		err := writeJSON(w, res.Failure)
		if err != nil {
			return err
		}

		return fmt.Errorf("%w: %w", constants.ErrRequestFailed, res.Failure)
	}

	var data interface{}
	if res != nil {
		data = res.Data
	}

	return outputData(w, data, format)
}

func outputData(w io.Writer, data interface{}, format string) error {
	switch format {
	case OutputFormatJSON:
		return writeJSON(w, data)
	case OutputFormatYAML:
		return writeYAML(w, data)
	case OutputFormatTable, "":
		return writeTable(w, data)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOutput, format)
	}
}

func writeJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return encoder.Close()
}

// writeTable renders records as rows, a list of scalars as a single column,
// and anything else as plain text.
func writeTable(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case nil:
		_, _ = io.WriteString(w, "No records found\n")

		return nil
	case []interface{}:
		if len(v) == 0 {
			_, _ = io.WriteString(w, "No records found\n")

			return nil
		}

		records := (&castore.Result{Data: v}).Records()
		if len(records) == len(v) {
			return renderRecords(w, records)
		}

		table := tablewriter.NewWriter(w)
		table.Header("Value")

		for _, item := range v {
			_ = table.Append([]string{formatCell(item)})
		}

		return renderTable(table)
	case map[string]interface{}:
		return renderRecords(w, []castore.Record{v})
	default:
		_, err := fmt.Fprintln(w, formatCell(v))

		return err
	}
}

func renderRecords(w io.Writer, records []castore.Record) error {
	columns := recordColumns(records)

	headers := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		headers = append(headers, columnTitle(column))
	}

	table := tablewriter.NewWriter(w)
	table.Header(headers...)

	for _, record := range records {
		row := make([]string, 0, len(columns))

		for _, column := range columns {
			value, ok := record[column]
			if !ok {
				row = append(row, "")

				continue
			}

			row = append(row, formatCell(value))
		}

		_ = table.Append(row)
	}

	return renderTable(table)
}

func renderTable(table *tablewriter.Table) error {
	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// recordColumns returns the union of record keys with _id first.
func recordColumns(records []castore.Record) []string {
	seen := map[string]bool{}

	for _, record := range records {
		for key := range record {
			seen[key] = true
		}
	}

	columns := make([]string, 0, len(seen))

	for key := range seen {
		if key != idField {
			columns = append(columns, key)
		}
	}

	sort.Strings(columns)

	if seen[idField] {
		columns = append([]string{idField}, columns...)
	}

	return columns
}

func columnTitle(key string) string {
	if key == idField {
		return "ID"
	}

	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

func formatCell(value interface{}) string {
	var text string

	switch v := value.(type) {
	case nil:
		text = NotAvailable
	case string:
		text = v
	case bool:
		text = strconv.FormatBool(v)
	case float64:
		text = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			text = fmt.Sprint(v)
		} else {
			text = string(raw)
		}
	}

	if len(text) > constants.MaxCellWidth {
		text = text[:constants.MaxCellWidth-3] + "..."
	}

	return text
}

// readInput returns the raw record input from --data, --file or stdin.
func readInput(in io.Reader, data, file string) ([]byte, error) {
	switch {
	case data != "":
		return []byte(data), nil
	case file == "-":
		return readAll(in)
	case file != "":
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		return raw, nil
	case in != nil && in != os.Stdin:
		return readAll(in)
	case !term.IsTerminal(int(os.Stdin.Fd())):
		return readAll(os.Stdin)
	default:
		return nil, constants.ErrRecordRequired
	}
}

func readAll(in io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, constants.ErrRecordRequired
	}

	return raw, nil
}

// parseRecord decodes a single JSON or YAML object.
func parseRecord(raw []byte) (castore.Record, error) {
	var value interface{}

	err := yaml.Unmarshal(raw, &value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse record: %w", err)
	}

	record, ok := normalize(value).(map[string]interface{})
	if !ok {
		return nil, constants.ErrNotAnObject
	}

	return record, nil
}

// parseRecords decodes a JSON or YAML object or list of objects.
func parseRecords(raw []byte) ([]castore.Record, error) {
	var value interface{}

	err := yaml.Unmarshal(raw, &value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}

	switch v := normalize(value).(type) {
	case map[string]interface{}:
		return []castore.Record{v}, nil
	case []interface{}:
		records := make([]castore.Record, 0, len(v))

		for i, item := range v {
			record, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("item %d: %w", i, constants.ErrNotAnObject)
			}

			records = append(records, record)
		}

		if len(records) == 0 {
			return nil, ErrEmptyRecordSet
		}

		return records, nil
	default:
		return nil, constants.ErrNotAnObject
	}
}

// normalize converts YAML-decoded values to their JSON equivalents.
func normalize(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		for key, item := range v {
			v[key] = normalize(item)
		}

		return v
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalize(item)
		}

		return out
	case []interface{}:
		for i, item := range v {
			v[i] = normalize(item)
		}

		return v
	case int:
		return float64(v)
	default:
		return v
	}
}

// parseQueryArgs turns key=value arguments into a query.
func parseQueryArgs(args []string) (*castore.Query, error) {
	query := castore.NewQuery()

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidQueryArg, arg)
		}

		query.Require(key, value)
	}

	return query, nil
}

// addRecordFlags registers the flags read by readInput.
func addRecordFlags(cmd *cobra.Command, data, file *string) {
	cmd.Flags().StringVarP(data, "data", "d", "", "record as inline JSON or YAML")
	cmd.Flags().StringVarP(file, "file", "f", "", "read the record from a file ('-' for stdin)")
}

// jsonFlag decodes a flag value as JSON, falling back to the raw string.
func jsonFlag(value string) interface{} {
	if value == "" {
		return nil
	}

	var decoded interface{}

	err := json.Unmarshal([]byte(value), &decoded)
	if err != nil {
		return value
	}

	return decoded
}
