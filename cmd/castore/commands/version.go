package commands

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the castore CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeVersion(cmd.OutOrStdout(), VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}, OutputFormat())
		},
	}
}

func writeVersion(w io.Writer, info VersionInfo, format string) error {
	switch format {
	case OutputFormatJSON:
		return writeJSON(w, info)
	case OutputFormatYAML:
		return writeYAML(w, info)
	default:
		table := tablewriter.NewWriter(w)
		table.Header("Property", "Value")
		_ = table.Append("Version", info.Version)
		_ = table.Append("Commit", info.Commit)
		_ = table.Append("Built", info.Built)

		return renderTable(table)
	}
}
