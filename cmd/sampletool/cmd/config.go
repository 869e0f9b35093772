package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minetrack/sampletool/pkg/config"
)

var configSamplesFile string

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or set sampletool configuration",
	Long: `Show the current configuration, or update it and write it back.

With --samples-file the given path is stored as the default samples file,
so later invocations can omit --file.

Examples:
  sampletool config
  sampletool config --samples-file /srv/mc/world.samples2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("samples-file") {
			cfg.SamplesFile = configSamplesFile
			if err := config.Save(cfg, configPath); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "samples_file: %s\n", cfg.SamplesFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVar(&configSamplesFile, "samples-file", "", "Default samples file used when --file is omitted")
}
