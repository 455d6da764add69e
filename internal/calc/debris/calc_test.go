package debris

import (
	"testing"

	"github.com/stretchr/testify/require"

	"Reforma/internal/calc/demolition"
	"Reforma/internal/calc/rooms"
)

func TestContainersFor(t *testing.T) {
	require.Equal(t, 3, ContainersFor(10.1, 5)) // ceiling, not rounding
	require.Equal(t, 2, ContainersFor(10, 5))
	require.Equal(t, 1, ContainersFor(0.1, 5))
	require.Equal(t, 0, ContainersFor(0, 5))
	require.Equal(t, 0, ContainersFor(3, 0))
}

func TestSettingsDefaults(t *testing.T) {
	st := Settings{}.WithDefaults()
	require.Equal(t, 0.01, st.FloorTileThicknessM)
	require.Equal(t, 1.4, st.CeramicExpansion)
	require.Equal(t, 5.0, st.ContainerSizeM3)

	// explicit values survive the merge
	st = Settings{ContainerSizeM3: 7, WoodExpansion: 1.1}.WithDefaults()
	require.Equal(t, 7.0, st.ContainerSizeM3)
	require.Equal(t, 1.1, st.WoodExpansion)
	require.Equal(t, 0.05, st.MortarBaseThicknessM)
}

func TestCeramicDebrisScenario(t *testing.T) {
	// bathroom: 6 m2 ceramic floor + 26 m2 ceramic wall, default settings
	roomList, issues := rooms.NormalizeAll([]rooms.Input{{
		ID: "bath", Type: "Baño", AreaM2: 6, PerimeterM: 10,
		FloorMaterial: "Cerámica", WallMaterial: "Cerámica", RemoveFloor: true,
	}}, rooms.Options{StandardHeightM: 2.6, Phase: rooms.PhaseDemolition})
	require.Empty(t, issues)

	cfg := demolition.Config{StandardHeightM: 2.6}
	summary := demolition.Calculate(roomList, cfg)
	res := Calculate(summary, roomList, cfg, Settings{})

	require.InDelta(t, 0.448, res.CeramicDebrisM3, 1e-9) // (6+26) * 0.01 * 1.4
	require.InDelta(t, 0.448, res.MixedDebrisM3, 1e-9)
	require.Zero(t, res.WoodDebrisM3)
	require.Equal(t, 1, res.ContainersNeeded)
}

func TestRadiatorConstantsStayDistinct(t *testing.T) {
	roomList := []rooms.Room{{ID: "r", RemoveRadiators: true, RadiatorCount: 1}}
	res := Calculate(demolition.Summary{}, roomList, demolition.Config{}, Settings{})

	require.Equal(t, 0.08, res.RadiatorDebrisM3)
	require.Equal(t, 0.05, res.SpecialItemsM3)
	require.NotEqual(t, res.RadiatorDebrisM3, res.SpecialItemsM3)
	require.Equal(t, 0.08, res.TotalDebrisM3)
}

func TestWallGroupDebris(t *testing.T) {
	summary := demolition.Summary{
		WallGroups: []demolition.WallGroup{
			{ThicknessCM: 10, AreaM2: 12.5},
			{ThicknessCM: 20, AreaM2: 10},
		},
	}
	res := Calculate(summary, nil, demolition.Config{}, Settings{})

	require.Len(t, res.WallGroups, 2)
	require.InDelta(t, 12.5*0.10*1.5, res.WallGroups[0].VolumeM3, 1e-9)
	require.InDelta(t, 10*0.20*1.5, res.WallGroups[1].VolumeM3, 1e-9)
	require.InDelta(t, res.WallGroups[0].VolumeM3+res.WallGroups[1].VolumeM3, res.WallDebrisM3, 1e-9)
}

func TestWoodDebrisIncludesSkirting(t *testing.T) {
	summary := demolition.Summary{
		WoodenFloorRemovalM2: 10,
		SkirtingRemovalM:     12,
	}
	res := Calculate(summary, nil, demolition.Config{}, Settings{})

	require.InDelta(t, 10*0.02*1.2, res.WoodenFloorDebrisM3, 1e-9)
	require.InDelta(t, 12*0.02*0.1*1.2, res.SkirtingDebrisM3, 1e-9)
	require.InDelta(t, res.WoodenFloorDebrisM3+res.SkirtingDebrisM3, res.WoodDebrisM3, 1e-9)
}

func TestDiscreteItemAllowances(t *testing.T) {
	roomList := []rooms.Room{
		{ID: "k", RemoveKitchenFurniture: true},
		{ID: "d", HasDoors: true, Doors: []rooms.Door{{Type: rooms.DoorPlain}, {Type: rooms.DoorDouble}}},
		{ID: "b", RemoveBathroomElements: true},
	}
	res := Calculate(demolition.Summary{}, roomList, demolition.Config{}, Settings{})

	require.InDelta(t, 3.5, res.KitchenFurnitureDebrisM3, 1e-9)
	require.InDelta(t, 0.12, res.DoorDebrisM3, 1e-9)
	require.InDelta(t, 1.5, res.BathroomDebrisM3, 1e-9)
	require.InDelta(t, 3.5+0.12, res.WoodDebrisM3, 1e-9)
	require.InDelta(t, 1.5, res.MixedDebrisM3, 1e-9)
}

func TestHourModels(t *testing.T) {
	summary := demolition.Summary{MortarBaseRemovalM2: 100} // 100 * 0.05 * 1.3 = 6.5 m3
	cfg := demolition.Config{Floors: 3, HasElevator: false}
	res := Calculate(summary, nil, cfg, Settings{})

	require.InDelta(t, 6.5, res.TotalDebrisM3, 1e-9)
	require.InDelta(t, 3.25, res.ClearingHours, 1e-9)
	// carry-down: 6.5*1.0 + 6.5*2*0.20
	require.InDelta(t, 6.5+2.6, res.CarryDownHours, 1e-9)

	// with an elevator only the base rate applies
	res = Calculate(summary, nil, demolition.Config{Floors: 3, HasElevator: true}, Settings{})
	require.InDelta(t, 6.5, res.CarryDownHours, 1e-9)
}
