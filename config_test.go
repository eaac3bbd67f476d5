package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejectsBadRate(t *testing.T) {
	c := DefaultConfig()
	c.Audio.Rate = 100
	if err := c.Validate(); err == nil {
		t.Error("expected an error for an out-of-range sample rate")
	}
}

func TestValidateRejectsBadDUT1(t *testing.T) {
	c := DefaultConfig()
	c.Signal.DUT1Tenths = 20
	if err := c.Validate(); err == nil {
		t.Error("expected an error for an out-of-range DUT1")
	}
}

func TestMergeFileOverridesDefaults(t *testing.T) {
	c := DefaultConfig()
	fc := FileConfig{Station: "MSF", Rate: 96000}
	merged := c.MergeFile(fc)
	assert.Equal(t, MSF, merged.Signal.Station)
	assert.Equal(t, 96000, merged.Audio.Rate)
}

func TestMergeFileLeavesUnsetFieldsAlone(t *testing.T) {
	c := DefaultConfig()
	merged := c.MergeFile(FileConfig{})
	if merged.Audio.Rate != c.Audio.Rate {
		t.Error("expected rate to be left at its default when the file doesn't set it")
	}
}
