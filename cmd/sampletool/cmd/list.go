package cmd

import (
	"github.com/spf13/cobra"

	"github.com/minetrack/sampletool/pkg/samplefile"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the samples in a file",
	Long: `Print every sample in the file, one per line, in file order.

Example:
  sampletool -f world.samples2 list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveSamplesFile()
		if err != nil {
			return err
		}
		return samplefile.List(path, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
