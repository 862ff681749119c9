package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var (
	batchFile     string
	batchLanguage string
	batchJSON     bool
	batchSort     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score every phrase in a file",
	Long: "Batch reads one phrase per non-empty line and analyzes them\n" +
		"concurrently. Output is one row per phrase, in input order unless\n" +
		"--sort is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateLanguage(batchLanguage); err != nil {
			return err
		}
		phrases, err := readPhraseFile(batchFile)
		if err != nil {
			return err
		}
		if len(phrases) == 0 {
			return fmt.Errorf("no phrases in %s", batchFile)
		}

		ctx := cmd.Context()
		a, err := bootstrap(ctx, true)
		if err != nil {
			return err
		}
		defer a.Close()

		results, summary, err := a.Batch.Run(ctx, batchLanguage, phrases)
		if err != nil {
			return err
		}

		if batchSort {
			sort.SliceStable(results, func(i, j int) bool {
				return results[i].NumericLevel < results[j].NumericLevel
			})
		}

		w := cmd.OutOrStdout()
		if batchJSON {
			enc := json.NewEncoder(w)
			for _, res := range results {
				if err := enc.Encode(res); err != nil {
					return err
				}
			}
			return nil
		}

		for _, res := range results {
			fmt.Fprintf(w, "%4d %5.1f %-9s %s\n", res.NumericLevel, res.Score, res.Level, res.Phrase)
		}
		fmt.Fprintf(w, "\n%d phrases: min %.1f, max %.1f, mean %.1f\n",
			summary.Phrases, summary.Min, summary.Max, summary.Mean)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "file with one phrase per line")
	batchCmd.Flags().StringVarP(&batchLanguage, "language", "l", "en",
		"language code (en, de, fr, or a locale like de-DE)")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "output JSON lines")
	batchCmd.Flags().BoolVar(&batchSort, "sort", false, "sort output by level, lowest first")
	_ = batchCmd.MarkFlagRequired("file")
}
