package cli

import (
	"encoding/csv"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/griptip/internal/core"
)

var templateDelimiter string

var templateCmd = &cobra.Command{
	Use:               "template",
	Short:             "Print an empty sheet with every known column",
	PersistentPreRunE: skipConfig,
	Args:              cobra.NoArgs,
	RunE:              runTemplate,
}

func init() {
	templateCmd.Flags().StringVarP(&templateDelimiter, "delimiter", "d", ",", "column separator: , or ;")
	rootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command, _ []string) error {
	var comma rune
	switch templateDelimiter {
	case ",":
		comma = ','
	case ";":
		comma = ';'
	default:
		return fmt.Errorf("unsupported delimiter %q: use , or ;", templateDelimiter)
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	w.Comma = comma
	if err := w.Write(core.SheetHeader(core.ProductSheet)); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	w.Flush()
	return w.Error()
}
