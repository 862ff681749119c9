// Package cli implements the phraselevel command tree.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/phraselevel/internal/app"
	"github.com/heartmarshall/phraselevel/internal/config"
	"github.com/heartmarshall/phraselevel/internal/domain"
)

var rootCmd = &cobra.Command{
	Use:   "phraselevel",
	Short: "Phrase difficulty scoring for language learning",
	Long: "Phraselevel scores how hard a phrase is for a language learner by\n" +
		"combining word length, age-of-acquisition norms, syllable density, and\n" +
		"phoneme complexity into a 0-100 score and a 1-1000 level.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.Version = app.BuildVersion()

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(normsCmd)
}

// bootstrap loads config, builds the logger, and wires the pipeline.
// When ensureNorms is set the AoA store is built if empty; analysis
// commands must not run without it.
func bootstrap(ctx context.Context, ensureNorms bool) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if ensureNorms {
		if err := a.Norms.Ensure(ctx); err != nil {
			a.Close()
			return nil, err
		}
	}
	return a, nil
}

// validateLanguage rejects codes the pipeline cannot analyze before any
// stores or providers are touched.
func validateLanguage(code string) error {
	if !domain.IsSupportedLanguage(code) {
		return fmt.Errorf("%w: %q (supported: %s and their locales)",
			domain.ErrUnsupportedLanguage, code,
			strings.Join(domain.SupportedLanguages(), ", "))
	}
	return nil
}

// readPhraseFile loads one phrase per line, skipping blank lines.
func readPhraseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open phrase file: %w", err)
	}
	defer f.Close()

	var phrases []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		phrases = append(phrases, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read phrase file: %w", err)
	}
	return phrases, nil
}
