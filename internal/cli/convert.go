package cli

import (
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/griptip/internal/observability"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the sheet once",
	Long: `Reads the input sheet, drops blank and inactive rows and writes the
product document. The output file is replaced atomically; nothing is written
when the run fails.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	stats, err := convertOnce(cmd.Context(), observability.SourceCLI)
	if err != nil {
		return err
	}
	printSummary(cmd, stats)
	return nil
}
