// Package config loads and validates the engine's YAML-encoded settings
// file, in the style of arx-os-arxos/internal/config: a Default()
// constructor, Load(path) that reads and validates, and a Validate() that
// rejects configurations the engine cannot run safely.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boarddrc/drc/drc"
	"github.com/boarddrc/drc/geometry"
)

// SlotAllowanceName is the YAML-facing spelling of drc.SlotAllowance.
type SlotAllowanceName string

const (
	SlotAllowanceNone                  SlotAllowanceName = "none"
	SlotAllowanceSingleSegmentStraight SlotAllowanceName = "single_segment_straight"
	SlotAllowanceMultiSegmentStraight  SlotAllowanceName = "multi_segment_straight"
	SlotAllowanceAny                   SlotAllowanceName = "any"
)

func (n SlotAllowanceName) resolve() (drc.SlotAllowance, error) {
	switch n {
	case "", SlotAllowanceNone:
		return drc.SlotNone, nil
	case SlotAllowanceSingleSegmentStraight:
		return drc.SlotSingleSegmentStraight, nil
	case SlotAllowanceMultiSegmentStraight:
		return drc.SlotMultiSegmentStraight, nil
	case SlotAllowanceAny:
		return drc.SlotAny, nil
	default:
		return 0, fmt.Errorf("config: invalid slot allowance %q", n)
	}
}

// NetClassOverrideConfig is the YAML shape of a drc.NetClassOverride.
type NetClassOverrideConfig struct {
	ClassA                   string `yaml:"class_a"`
	ClassB                   string `yaml:"class_b"`
	MinCopperWidthNm         int64  `yaml:"min_copper_width_nm"`
	MinCopperCopperClearance int64  `yaml:"min_copper_copper_clearance_nm"`
}

// Config is the on-disk YAML settings file: every drc.Settings field plus
// the additive NetClassOverrides table (SPEC_FULL §3).
type Config struct {
	MinCopperWidthNm           int64                    `yaml:"min_copper_width_nm"`
	MinCopperCopperClearanceNm int64                    `yaml:"min_copper_copper_clearance_nm"`
	MinCopperBoardClearanceNm  int64                    `yaml:"min_copper_board_clearance_nm"`
	MinCopperNpthClearanceNm   int64                    `yaml:"min_copper_npth_clearance_nm"`
	MinDrillDrillClearanceNm   int64                    `yaml:"min_drill_drill_clearance_nm"`
	MinDrillBoardClearanceNm   int64                    `yaml:"min_drill_board_clearance_nm"`
	MinPthAnnularRingNm        int64                    `yaml:"min_pth_annular_ring_nm"`
	MinNpthDrillDiameterNm     int64                    `yaml:"min_npth_drill_diameter_nm"`
	MinPthDrillDiameterNm      int64                    `yaml:"min_pth_drill_diameter_nm"`
	MinNpthSlotWidthNm         int64                    `yaml:"min_npth_slot_width_nm"`
	MinPthSlotWidthNm          int64                    `yaml:"min_pth_slot_width_nm"`
	AllowedNpthSlots           SlotAllowanceName        `yaml:"allowed_npth_slots"`
	AllowedPthSlots            SlotAllowanceName        `yaml:"allowed_pth_slots"`
	MinOutlineToolDiameterNm   int64                    `yaml:"min_outline_tool_diameter_nm"`
	NetClassOverrides          []NetClassOverrideConfig `yaml:"net_class_overrides"`
}

// Default returns a Config with every check disabled (all lengths 0),
// matching spec.md's "0 ⇒ check disabled" convention — an explicit,
// unsurprising starting point rather than silently enabling checks a
// caller didn't ask for.
func Default() *Config {
	return &Config{}
}

// Load reads and parses a YAML settings file, then validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read settings file: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: failed to parse YAML settings: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid settings: %w", err)
	}
	return c, nil
}

// Validate rejects negative lengths and unknown slot-allowance names; zero
// is always valid (it means "check disabled").
func (c *Config) Validate() error {
	lengths := map[string]int64{
		"min_copper_width_nm":             c.MinCopperWidthNm,
		"min_copper_copper_clearance_nm":  c.MinCopperCopperClearanceNm,
		"min_copper_board_clearance_nm":   c.MinCopperBoardClearanceNm,
		"min_copper_npth_clearance_nm":    c.MinCopperNpthClearanceNm,
		"min_drill_drill_clearance_nm":    c.MinDrillDrillClearanceNm,
		"min_drill_board_clearance_nm":    c.MinDrillBoardClearanceNm,
		"min_pth_annular_ring_nm":         c.MinPthAnnularRingNm,
		"min_npth_drill_diameter_nm":      c.MinNpthDrillDiameterNm,
		"min_pth_drill_diameter_nm":       c.MinPthDrillDiameterNm,
		"min_npth_slot_width_nm":          c.MinNpthSlotWidthNm,
		"min_pth_slot_width_nm":           c.MinPthSlotWidthNm,
		"min_outline_tool_diameter_nm":    c.MinOutlineToolDiameterNm,
	}
	for name, v := range lengths {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0, got %d", name, v)
		}
	}
	if _, err := c.AllowedNpthSlots.resolve(); err != nil {
		return err
	}
	if _, err := c.AllowedPthSlots.resolve(); err != nil {
		return err
	}
	return nil
}

// ToSettings converts the validated YAML config into the engine's native
// drc.Settings record.
func (c *Config) ToSettings() (drc.Settings, error) {
	allowedNpth, err := c.AllowedNpthSlots.resolve()
	if err != nil {
		return drc.Settings{}, err
	}
	allowedPth, err := c.AllowedPthSlots.resolve()
	if err != nil {
		return drc.Settings{}, err
	}

	overrides := make([]drc.NetClassOverride, 0, len(c.NetClassOverrides))
	for _, o := range c.NetClassOverrides {
		overrides = append(overrides, drc.NetClassOverride{
			ClassA:               o.ClassA,
			ClassB:               o.ClassB,
			MinCopperWidth:       geometry.Length(o.MinCopperWidthNm),
			MinCopperCopperClear: geometry.Length(o.MinCopperCopperClearance),
		})
	}

	return drc.Settings{
		MinCopperWidth:           geometry.Length(c.MinCopperWidthNm),
		MinCopperCopperClearance: geometry.Length(c.MinCopperCopperClearanceNm),
		MinCopperBoardClearance:  geometry.Length(c.MinCopperBoardClearanceNm),
		MinCopperNpthClearance:   geometry.Length(c.MinCopperNpthClearanceNm),
		MinDrillDrillClearance:   geometry.Length(c.MinDrillDrillClearanceNm),
		MinDrillBoardClearance:   geometry.Length(c.MinDrillBoardClearanceNm),
		MinPthAnnularRing:        geometry.Length(c.MinPthAnnularRingNm),
		MinNpthDrillDiameter:     geometry.Length(c.MinNpthDrillDiameterNm),
		MinPthDrillDiameter:      geometry.Length(c.MinPthDrillDiameterNm),
		MinNpthSlotWidth:         geometry.Length(c.MinNpthSlotWidthNm),
		MinPthSlotWidth:          geometry.Length(c.MinPthSlotWidthNm),
		AllowedNpthSlots:         allowedNpth,
		AllowedPthSlots:          allowedPth,
		MinOutlineToolDiameter:   geometry.Length(c.MinOutlineToolDiameterNm),
		NetClassOverrides:        overrides,
	}, nil
}
