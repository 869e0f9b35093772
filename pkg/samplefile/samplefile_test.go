package samplefile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minetrack/sampletool/pkg/codec"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	samples := []codec.Sample{
		{Dimension: 0, X: 3, Z: 4, Data: codec.TerraFirmaCraftData{Ore: "Native Copper"}},
		{Dimension: -1, X: 10, Z: -5, Data: codec.ImmersiveData{Mineral: "Quartz", Liquid: "Oil", Timestamp: 1600000000}},
		{Dimension: 1, X: 0, Z: 0, Data: codec.GeolosysData{Ore: "Hematite"}},
	}
	path := writeTestFile(t, samples)

	loaded, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, samples, loaded)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.samples2"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRead_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.samples2")
	// Count of one, then an invalid discriminant.
	require.NoError(t, os.WriteFile(path, []byte{
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x09,
	}, 0600))

	_, err := Read(path)
	var formatErr *codec.FormatError
	assert.True(t, errors.As(err, &formatErr), "expected FormatError, got %v", err)
}

func TestWrite_ReplacesExistingContent(t *testing.T) {
	path := writeTestFile(t, []codec.Sample{
		{Dimension: 5, X: 5, Z: 5, Data: codec.TerraFirmaCraftData{Ore: "Garnierite"}},
		{Dimension: 6, X: 6, Z: 6, Data: codec.GeolosysData{Ore: "Gold"}},
	})

	// Rewrite with a shorter list; no remnant of the old file may survive.
	shorter := []codec.Sample{
		{Dimension: 7, X: 7, Z: 7, Data: codec.GeolosysData{Ore: "Silver"}},
	}
	require.NoError(t, Write(path, shorter))

	loaded, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, shorter, loaded)
}

func TestList_RendersOneLinePerRecord(t *testing.T) {
	path := writeTestFile(t, []codec.Sample{
		{Dimension: 0, X: 3, Z: 4, Data: codec.TerraFirmaCraftData{Ore: "Native Copper"}},
		{Dimension: 2, X: -1, Z: 9, Data: codec.ImmersiveData{Mineral: "Galena", Liquid: "Water", Timestamp: 12345}},
	})

	var out bytes.Buffer
	require.NoError(t, List(path, &out))

	assert.Equal(t,
		"Dimension 0, X=3, Z=4: TFC Native Copper\n"+
			"Dimension 2, X=-1, Z=9: Immersive Galena, Water, timestamp 12345\n",
		out.String())
}

func TestList_DoesNotModifyFile(t *testing.T) {
	path := writeTestFile(t, []codec.Sample{
		{Dimension: 1, X: 1, Z: 1, Data: codec.GeolosysData{Ore: "Hematite"}},
	})
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, List(path, &out))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
