package cli

import (
	"fmt"
	"os"

	"github.com/fintext/bratsent/internal/ingest"
	"github.com/spf13/cobra"
)

var ingestOutputDir string

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest <file.html>...",
	Short: "Extract plain text from HTML articles for annotation",
	Long: `Ingest extracts the visible text of HTML article files (skipping
scripts, styles and embedded frames) and writes one .txt document per
input, ready to be annotated and fed to build.

Example:
  bratsent ingest articles/*.html --output-dir ./docs`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringVar(&ingestOutputDir, "output-dir", ".", "directory for extracted .txt files")
}

func runIngest(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(ingestOutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	wrote := 0
	for _, path := range args {
		out, err := ingest.ConvertFile(path, ingestOutputDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}
		wrote++
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", out)
		}
	}

	fmt.Printf("extracted %d of %d files into %s\n", wrote, len(args), ingestOutputDir)
	return nil
}
