package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minetrack/sampletool/pkg/config"
)

var (
	samplesFile string
	configPath  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sampletool",
	Short: "Inspect and edit Minecraft mineral sample files",
	Long: `sampletool lists and edits the binary .samples2 files written by the
Minecraft mineral tracker mods (Immersive, TerraFirmaCraft, Geolosys).

The samples file is selected with --file, or with the samples_file entry
of the config file when --file is omitted.`,
	SilenceUsage: true,
}

// Execute runs the root command and maps any error to exit status 1. All
// core operations return typed errors; this is the only place a failure
// turns into a process exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&samplesFile, "file", "f", "", "The .samples2 file to operate on")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "Config file location")
}

// resolveSamplesFile returns the samples file from --file, falling back to
// the config file's samples_file entry.
func resolveSamplesFile() (string, error) {
	if samplesFile != "" {
		return samplesFile, nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", err
	}
	if cfg.SamplesFile == "" {
		return "", fmt.Errorf("no samples file given: pass --file or set samples_file in %s", configPath)
	}
	return cfg.SamplesFile, nil
}
