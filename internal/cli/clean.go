package cli

import (
	"fmt"

	"github.com/fintext/bratsent/internal/model"
	"github.com/fintext/bratsent/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cleanMinTokens     int
	cleanMinChars      int
	cleanMaxTokens     int
	cleanCaseSensitive bool
	cleanNoDigitHeavy  bool
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean <input.tsv> <output.tsv>",
	Short: "Filter and deduplicate a raw sentence table",
	Long: `Clean runs every row of the input table through an ordered cascade
of quality filters (length bounds, URLs and emails, bylines and other
boilerplate, all-caps headers, digit-heavy lines) and drops duplicates of
previously seen normalized text. Surviving rows are written with their
text normalized; a summary of counts and rejection reasons is printed.

Example:
  bratsent clean dataset.tsv dataset_clean.tsv
  bratsent clean dataset.tsv out.tsv --min-tokens 3 --dedupe-case-sensitive`,
	Args: cobra.ExactArgs(2),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	defaults := model.DefaultConfig().Clean
	cleanCmd.Flags().IntVar(&cleanMinTokens, "min-tokens", defaults.MinTokens, "minimum token count")
	cleanCmd.Flags().IntVar(&cleanMinChars, "min-chars", defaults.MinChars, "minimum character count")
	cleanCmd.Flags().IntVar(&cleanMaxTokens, "max-tokens", defaults.MaxTokens, "maximum token count")
	cleanCmd.Flags().BoolVar(&cleanCaseSensitive, "dedupe-case-sensitive", defaults.DedupeCaseSensitive,
		"dedupe on exact normalized text instead of the case-folded form")
	cleanCmd.Flags().BoolVar(&cleanNoDigitHeavy, "no-digit-heavy-filter", !defaults.DigitHeavy,
		"disable the digit-heavy rejection rule")

	_ = viper.BindPFlag("clean.min_tokens", cleanCmd.Flags().Lookup("min-tokens"))
	_ = viper.BindPFlag("clean.min_chars", cleanCmd.Flags().Lookup("min-chars"))
	_ = viper.BindPFlag("clean.max_tokens", cleanCmd.Flags().Lookup("max-tokens"))
	_ = viper.BindPFlag("clean.dedupe_case_sensitive", cleanCmd.Flags().Lookup("dedupe-case-sensitive"))
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := model.CleanConfig{
		MinTokens:           cleanMinTokens,
		MinChars:            cleanMinChars,
		MaxTokens:           cleanMaxTokens,
		DedupeCaseSensitive: cleanCaseSensitive,
		DigitHeavy:          !cleanNoDigitHeavy,
	}

	c := pipeline.NewCleaner(cfg, verbose)
	stats, err := c.Run(args[0], args[1])
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	fmt.Printf("input rows:        %d\n", stats.InputRows)
	fmt.Printf("after filters:     %d\n", stats.AfterFilter)
	fmt.Printf("after dedupe:      %d\n", stats.AfterDedupe)
	fmt.Printf("kept fraction:     %.3f\n", stats.KeptFraction())

	if len(stats.Reasons) > 0 {
		fmt.Printf("\nfilter reasons (counts):\n")
		for _, rc := range stats.ReasonCounts() {
			fmt.Printf("  %-18s %d\n", rc.Reason, rc.Count)
		}
	}
	if stats.Duplicates > 0 {
		fmt.Printf("\nduplicates dropped: %d\n", stats.Duplicates)
	}
	return nil
}
