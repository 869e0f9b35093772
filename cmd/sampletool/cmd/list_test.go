package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minetrack/sampletool/pkg/codec"
	"github.com/minetrack/sampletool/pkg/samplefile"
)

func TestListCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.samples2")
	require.NoError(t, samplefile.Write(path, []codec.Sample{
		{Dimension: 0, X: 3, Z: 4, Data: codec.TerraFirmaCraftData{Ore: "Native Copper"}},
		{Dimension: 1, X: 10, Z: -5, Data: codec.ImmersiveData{Mineral: "Quartz", Liquid: "Oil", Timestamp: 99}},
	}))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--file", path, "list"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t,
		"Dimension 0, X=3, Z=4: TFC Native Copper\n"+
			"Dimension 1, X=10, Z=-5: Immersive Quartz, Oil, timestamp 99\n",
		out.String())
}
