package debris

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Settings carries the material-physics constants for volume math.
// Thicknesses are meters of in-place material; expansion coefficients turn
// solid volume into loose rubble volume.
type Settings struct {
	FloorTileThicknessM   float64 `json:"floor_tile_thickness_m" yaml:"floor_tile_thickness_m"`
	WallTileThicknessM    float64 `json:"wall_tile_thickness_m" yaml:"wall_tile_thickness_m"`
	MortarBaseThicknessM  float64 `json:"mortar_base_thickness_m" yaml:"mortar_base_thickness_m"`
	WoodenFloorThicknessM float64 `json:"wooden_floor_thickness_m" yaml:"wooden_floor_thickness_m"`
	CeilingThicknessM     float64 `json:"ceiling_thickness_m" yaml:"ceiling_thickness_m"`

	CeramicExpansion float64 `json:"ceramic_expansion" yaml:"ceramic_expansion"`
	MortarExpansion  float64 `json:"mortar_expansion" yaml:"mortar_expansion"`
	WoodExpansion    float64 `json:"wood_expansion" yaml:"wood_expansion"`
	CeilingExpansion float64 `json:"ceiling_expansion" yaml:"ceiling_expansion"`
	WallExpansion    float64 `json:"wall_expansion" yaml:"wall_expansion"`

	ContainerSizeM3 float64 `json:"container_size_m3" yaml:"container_size_m3"`
}

func DefaultSettings() Settings {
	return Settings{
		FloorTileThicknessM:   0.01,
		WallTileThicknessM:    0.01,
		MortarBaseThicknessM:  0.05,
		WoodenFloorThicknessM: 0.02,
		CeilingThicknessM:     0.015,
		CeramicExpansion:      1.4,
		MortarExpansion:       1.3,
		WoodExpansion:         1.2,
		CeilingExpansion:      1.3,
		WallExpansion:         1.5,
		ContainerSizeM3:       5,
	}
}

// WithDefaults fills every unset field so downstream formulas can assume a
// fully populated settings value.
func (s Settings) WithDefaults() Settings {
	return s.Merge(DefaultSettings())
}

// Merge returns s with every unset field taken from base.
func (s Settings) Merge(base Settings) Settings {
	pick := func(v, fallback float64) float64 {
		if v > 0 {
			return v
		}
		return fallback
	}
	return Settings{
		FloorTileThicknessM:   pick(s.FloorTileThicknessM, base.FloorTileThicknessM),
		WallTileThicknessM:    pick(s.WallTileThicknessM, base.WallTileThicknessM),
		MortarBaseThicknessM:  pick(s.MortarBaseThicknessM, base.MortarBaseThicknessM),
		WoodenFloorThicknessM: pick(s.WoodenFloorThicknessM, base.WoodenFloorThicknessM),
		CeilingThicknessM:     pick(s.CeilingThicknessM, base.CeilingThicknessM),
		CeramicExpansion:      pick(s.CeramicExpansion, base.CeramicExpansion),
		MortarExpansion:       pick(s.MortarExpansion, base.MortarExpansion),
		WoodExpansion:         pick(s.WoodExpansion, base.WoodExpansion),
		CeilingExpansion:      pick(s.CeilingExpansion, base.CeilingExpansion),
		WallExpansion:         pick(s.WallExpansion, base.WallExpansion),
		ContainerSizeM3:       pick(s.ContainerSizeM3, base.ContainerSizeM3),
	}
}

// LoadSettingsFile reads a YAML override file. Missing file is not an
// error: callers get the zero value and defaults apply later.
func LoadSettingsFile(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
