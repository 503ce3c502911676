package cli

import (
	"fmt"
	"strings"

	"github.com/fintext/bratsent/internal/convert"
	"github.com/spf13/cobra"
)

var (
	convertTextCol   string
	convertLabelCol  string
	convertDropCols  string
	convertKeepEmpty bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <input.tsv> <output.jsonl>",
	Short: "Convert a sentence table to JSONL",
	Long: `Convert reshapes the tab-separated sentence table into JSONL, one
object per row, with the text column standardized to "text" and an optional
label column standardized to "label".

Example:
  bratsent convert dataset_clean.tsv dataset.jsonl --label-col y_any_event
  bratsent convert dataset_clean.tsv dataset.jsonl --drop-cols doc,sent_id`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertTextCol, "text-col", "text", "column name for the text field")
	convertCmd.Flags().StringVar(&convertLabelCol, "label-col", "", "optional label column name (e.g. y_any_event)")
	convertCmd.Flags().StringVar(&convertDropCols, "drop-cols", "", "comma-separated columns to drop")
	convertCmd.Flags().BoolVar(&convertKeepEmpty, "keep-empty", false, "keep rows with empty text")
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts := convert.Options{
		TextCol:   convertTextCol,
		LabelCol:  convertLabelCol,
		KeepEmpty: convertKeepEmpty,
	}
	if convertDropCols != "" {
		opts.DropCols = strings.Split(convertDropCols, ",")
	}

	n, err := convert.Run(args[0], args[1], opts)
	if err != nil {
		return fmt.Errorf("convert failed: %w", err)
	}

	fmt.Printf("wrote objects: %d\n", n)
	fmt.Printf("output:        %s\n", args[1])
	return nil
}
