package cli

import (
	"github.com/spf13/cobra"
)

var (
	analyzeLanguage string
	analyzeJSON     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <phrase>",
	Short: "Score one phrase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateLanguage(analyzeLanguage); err != nil {
			return err
		}

		ctx := cmd.Context()
		a, err := bootstrap(ctx, true)
		if err != nil {
			return err
		}
		defer a.Close()

		result := a.Analyzer.Analyze(ctx, args[0], analyzeLanguage)
		if analyzeJSON {
			return printJSON(cmd.OutOrStdout(), result)
		}
		printReport(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeLanguage, "language", "l", "en",
		"language code (en, de, fr, or a locale like de-DE)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output as JSON")
}
