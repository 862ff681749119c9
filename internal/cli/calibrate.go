package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	calibrateFile     string
	calibrateLanguage string
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Suggest a score range for a phrase set",
	Long: "Calibrate analyzes a representative phrase file and reports the\n" +
		"score distribution. The 5th/95th percentiles are the recommended\n" +
		"min/max for mapping this language's scores onto the 1-1000 scale.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateLanguage(calibrateLanguage); err != nil {
			return err
		}
		phrases, err := readPhraseFile(calibrateFile)
		if err != nil {
			return err
		}
		if len(phrases) == 0 {
			return fmt.Errorf("no phrases in %s", calibrateFile)
		}

		ctx := cmd.Context()
		a, err := bootstrap(ctx, true)
		if err != nil {
			return err
		}
		defer a.Close()

		_, summary, err := a.Batch.Run(ctx, calibrateLanguage, phrases)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Calibrating score ranges for %s (%d phrases)\n\n", calibrateLanguage, summary.Phrases)
		fmt.Fprintf(w, "  Min score  : %.1f\n", summary.Min)
		fmt.Fprintf(w, "  Max score  : %.1f\n", summary.Max)
		fmt.Fprintf(w, "  5th pctile : %.1f\n", summary.P5)
		fmt.Fprintf(w, "  95th pctile: %.1f\n", summary.P95)
		fmt.Fprintf(w, "\nRecommendation: add to the score ranges table:\n")
		fmt.Fprintf(w, "    %q: {\"min\": %.1f, \"max\": %.1f},\n", calibrateLanguage, summary.P5, summary.P95)
		return nil
	},
}

func init() {
	calibrateCmd.Flags().StringVarP(&calibrateFile, "file", "f", "", "file with one phrase per line")
	calibrateCmd.Flags().StringVarP(&calibrateLanguage, "language", "l", "",
		"language code the calibration will be keyed by (e.g. de-DE)")
	_ = calibrateCmd.MarkFlagRequired("file")
	_ = calibrateCmd.MarkFlagRequired("language")
}
