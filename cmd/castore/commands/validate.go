package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/pkg/castore"
	"github.com/fivetwenty-io/castore/pkg/schema"
)

// ValidationReport summarizes a local validation run.
type ValidationReport struct {
	Type     string   `json:"type"     yaml:"type"`
	Total    int      `json:"total"    yaml:"total"`
	Valid    int      `json:"valid"    yaml:"valid"`
	Failures []string `json:"failures" yaml:"failures"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var entityType string

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate records locally",
		Long: `Validate a JSON or YAML file of records against the built-in schemas
without contacting the store. Use '-' to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), "", args[0])
			if err != nil {
				return err
			}

			records, err := parseRecords(raw)
			if err != nil {
				return err
			}

			return validateRecords(cmd.OutOrStdout(), schema.Default(), castore.EntityType(entityType), records, OutputFormat())
		},
	}

	cmd.Flags().StringVar(&entityType, "type", string(castore.EntityMark), "entity type (mark, heatmap, slide, template)")

	return cmd
}

func validateRecords(w io.Writer, registry castore.Registry, tag castore.EntityType, records []castore.Record, format string) error {
	_, ok := registry.Lookup(tag)
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownEntityType, tag)
	}

	report := ValidationReport{
		Type:     string(tag),
		Total:    len(records),
		Failures: []string{},
	}

	err := schema.ValidateAll(registry, tag, records)

	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, failure := range merr.Errors {
			report.Failures = append(report.Failures, failure.Error())
		}
	}

	report.Valid = report.Total - len(report.Failures)

	writeErr := writeReport(w, report, format)
	if writeErr != nil {
		return writeErr
	}

	if len(report.Failures) > 0 {
		return fmt.Errorf("%w: %d of %d", constants.ErrValidationFailures, len(report.Failures), report.Total)
	}

	return nil
}

func writeReport(w io.Writer, report ValidationReport, format string) error {
	switch format {
	case OutputFormatJSON:
		return writeJSON(w, report)
	case OutputFormatYAML:
		return writeYAML(w, report)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Type", "Total", "Valid", "Invalid")
	_ = table.Append(report.Type, strconv.Itoa(report.Total), strconv.Itoa(report.Valid), strconv.Itoa(len(report.Failures)))

	err := renderTable(table)
	if err != nil {
		return err
	}

	for _, failure := range report.Failures {
		_, _ = fmt.Fprintf(w, "  %s\n", failure)
	}

	return nil
}
