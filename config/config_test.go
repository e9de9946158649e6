package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesYAMLAndValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := []byte(`
min_copper_width_nm: 150000
min_copper_copper_clearance_nm: 200000
allowed_pth_slots: multi_segment_straight
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), cfg.MinCopperWidthNm)

	settings, err := cfg.ToSettings()
	require.NoError(t, err)
	assert.EqualValues(t, 150000, settings.MinCopperWidth)
}

func TestValidateRejectsNegativeLength(t *testing.T) {
	cfg := Default()
	cfg.MinCopperWidthNm = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownSlotAllowance(t *testing.T) {
	cfg := Default()
	cfg.AllowedPthSlots = SlotAllowanceName("bogus")
	assert.Error(t, cfg.Validate())
}

func TestDefaultDisablesAllChecks(t *testing.T) {
	cfg := Default()
	settings, err := cfg.ToSettings()
	require.NoError(t, err)
	assert.Zero(t, settings.MinCopperWidth)
	assert.Zero(t, settings.MinCopperCopperClearance)
}
