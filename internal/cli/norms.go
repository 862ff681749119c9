package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var normsForce bool

var normsCmd = &cobra.Command{
	Use:   "norms",
	Short: "Manage the age-of-acquisition norms store",
}

var normsBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Download and import the Glasgow Norms dataset",
	Long: "Build downloads the Glasgow Norms CSV (Scott et al. 2019, CC BY 4.0)\n" +
		"and imports the word ratings into the configured store. Without\n" +
		"--force the download is skipped when the store is already populated.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := bootstrap(ctx, false)
		if err != nil {
			return err
		}
		defer a.Close()

		if normsForce {
			err = a.Norms.Build(ctx)
		} else {
			err = a.Norms.Ensure(ctx)
		}
		if err != nil {
			return err
		}

		n, err := a.Norms.Count(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "AoA norms store ready: %d words\n", n)
		return nil
	},
}

func init() {
	normsBuildCmd.Flags().BoolVar(&normsForce, "force", false,
		"rebuild even if the store is already populated")
	normsCmd.AddCommand(normsBuildCmd)
}
