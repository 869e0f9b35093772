package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/minetrack/sampletool/pkg/samplefile"
)

var (
	editMineral string
	editLiquid  string
	editOre     string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <dimension> <x> <z>",
	Short: "Modify the samples at a chunk position",
	Long: `Modify every sample at the given dimension and chunk coordinates.

--mineral and --liquid change Immersive samples; --ore changes
TerraFirmaCraft and Geolosys samples and cannot be combined with the other
two. Samples at the position whose variant does not accept the supplied
fields are left alone.

Flags come before the coordinates so that negative coordinates are not
taken for flags:

  sampletool -f world.samples2 edit --ore "Native Copper" 0 3 -4`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := parseKey(args)
		if err != nil {
			return err
		}

		var update samplefile.Update
		if cmd.Flags().Changed("mineral") {
			update.Mineral = &editMineral
		}
		if cmd.Flags().Changed("liquid") {
			update.Liquid = &editLiquid
		}
		if cmd.Flags().Changed("ore") {
			update.Ore = &editOre
		}
		if err := update.Validate(); err != nil {
			return err
		}

		path, err := resolveSamplesFile()
		if err != nil {
			return err
		}
		return samplefile.Edit(path, key, update)
	},
}

// parseKey converts the dimension/x/z arguments into an edit key.
func parseKey(args []string) (samplefile.Key, error) {
	dimension, err := parseCoordinate(args[0], "dimension ID")
	if err != nil {
		return samplefile.Key{}, err
	}
	x, err := parseCoordinate(args[1], "X coordinate")
	if err != nil {
		return samplefile.Key{}, err
	}
	z, err := parseCoordinate(args[2], "Z coordinate")
	if err != nil {
		return samplefile.Key{}, err
	}
	return samplefile.Key{Dimension: dimension, X: x, Z: z}, nil
}

func parseCoordinate(arg, name string) (int32, error) {
	n, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return 0, &samplefile.UsageError{Message: fmt.Sprintf("%s must be an integer", name)}
	}
	return int32(n), nil
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editMineral, "mineral", "m", "", "The Immersive mineral deposit text to change the sample to")
	editCmd.Flags().StringVarP(&editLiquid, "liquid", "l", "", "The Immersive liquid reservoir text to change the sample to")
	editCmd.Flags().StringVarP(&editOre, "ore", "o", "", "The TerraFirmaCraft or Geolosys ore name to change the sample to")

	editCmd.MarkFlagsMutuallyExclusive("mineral", "ore")
	editCmd.MarkFlagsMutuallyExclusive("liquid", "ore")
	editCmd.MarkFlagsOneRequired("mineral", "liquid", "ore")

	// Stop flag parsing at the first positional so "-5" stays a coordinate.
	editCmd.Flags().SetInterspersed(false)
}
