package demolition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"Reforma/internal/calc/rooms"
)

func normalizeAll(t *testing.T, ins []rooms.Input, height float64) []rooms.Room {
	t.Helper()
	normalized, issues := rooms.NormalizeAll(ins, rooms.Options{
		StandardHeightM: height,
		Phase:           rooms.PhaseDemolition,
	})
	require.Empty(t, issues)
	return normalized
}

func TestCalculateEmpty(t *testing.T) {
	require.Equal(t, Summary{}, Calculate(nil, Config{}))
}

func TestCalculateBathroomScenario(t *testing.T) {
	// one bathroom, ceramic floor and walls, standard height 2.6
	roomList := normalizeAll(t, []rooms.Input{{
		ID:            "bath",
		Type:          "Baño",
		AreaM2:        6,
		PerimeterM:    10,
		FloorMaterial: "Cerámica",
		WallMaterial:  "Cerámica",
		RemoveFloor:   true,
	}}, 2.6)

	s := Calculate(roomList, Config{StandardHeightM: 2.6})
	require.Equal(t, 6.0, s.FloorTileRemovalM2)
	require.Equal(t, 26.0, s.WallTileRemovalM2)
	require.Equal(t, 6.0, s.TotalFloorAreaM2)
}

func TestCalculatePerRoomRules(t *testing.T) {
	roomList := normalizeAll(t, []rooms.Input{
		{
			ID: "kitchen", Type: "Cocina", AreaM2: 8, PerimeterM: 12,
			FloorMaterial: "Madera", RemoveFloor: true,
			RemoveKitchenFurniture: true, RemoveMoldings: true,
		},
		{
			ID: "bedroom", Type: "Dormitorio", AreaM2: 12, PerimeterM: 14,
			WallMaterial: "Gotelé", RemoveGotele: true,
			RemoveBedroomFurniture: true, RemoveRadiators: true, HasRadiator: true,
			HasDoors: true, Doors: []rooms.DoorInput{{Type: "Abatible"}, {Type: "Corredera empotrada"}},
		},
		{
			ID: "hall", Type: "Pasillo", AreaM2: 4, PerimeterM: 10,
			RemoveWallpaper: true, RemoveFalseCeiling: true, RemoveMortarBase: true,
			RemoveSewagePipes: true,
		},
	}, 2.5)

	s := Calculate(roomList, Config{StandardHeightM: 2.5})
	require.Equal(t, 8.0, s.WoodenFloorRemovalM2)
	require.Equal(t, 12.0, s.SkirtingRemovalM)
	require.Equal(t, 1, s.KitchenFurnitureUnits)
	require.Equal(t, 12.0, s.MoldingRemovalM)
	require.Equal(t, 35.0, s.GoteleRemovalM2) // 14 * 2.5
	require.Equal(t, 1, s.BedroomFurnitureUnits)
	require.Equal(t, 1, s.RadiatorRemovals)
	require.Equal(t, 2, s.DoorRemovals)
	require.Equal(t, 1, s.PocketFrameRemovals)
	require.Equal(t, 25.0, s.WallpaperRemovalM2) // 10 * 2.5
	require.Equal(t, 4.0, s.FalseCeilingRemovalM2)
	require.Equal(t, 4.0, s.MortarBaseRemovalM2)
	require.Equal(t, 1, s.SewagePipeRemovals)
	require.Equal(t, 24.0, s.TotalFloorAreaM2)
}

func TestCalculateGlobalToggles(t *testing.T) {
	roomList := normalizeAll(t, []rooms.Input{
		{ID: "a", Type: "Salón", AreaM2: 10, PerimeterM: 13, FloorMaterial: "Cerámica"},
		{ID: "b", Type: "Dormitorio", AreaM2: 8, PerimeterM: 12, FloorMaterial: "Parquet flotante"},
	}, 2.5)

	s := Calculate(roomList, Config{RemoveAllCeramic: true, RemoveWoodenFloor: true})
	require.Equal(t, 10.0, s.FloorTileRemovalM2)
	require.Equal(t, 8.0, s.WoodenFloorRemovalM2)
}

func TestCalculateOrderIndependent(t *testing.T) {
	ins := []rooms.Input{
		{ID: "a", Type: "Baño", AreaM2: 6, PerimeterM: 10, WallMaterial: "Cerámica", RemoveWallTiles: true},
		{ID: "b", Type: "Cocina", AreaM2: 8, PerimeterM: 12, FloorMaterial: "Cerámica", RemoveFloor: true},
		{ID: "c", Type: "Salón", AreaM2: 16, PerimeterM: 18, RemoveMoldings: true},
	}
	reversed := []rooms.Input{ins[2], ins[0], ins[1]}

	cfg := Config{StandardHeightM: 2.5}
	require.Equal(t,
		Calculate(normalizeAll(t, ins, 2.5), cfg),
		Calculate(normalizeAll(t, reversed, 2.5), cfg))
}

func TestWallGroups(t *testing.T) {
	cfg := Config{
		StandardHeightM: 2.5,
		WallDemolitions: []WallDemolition{
			{ID: "w1", LengthM: 2, ThicknessCM: 10},
			{ID: "w2", LengthM: 3, ThicknessCM: 10, HasTiles: true, TileSides: "both", TileThicknessCM: 1},
			{ID: "w3", LengthM: 4, ThicknessCM: 20},
		},
	}
	s := Calculate(nil, cfg)

	require.Len(t, s.WallGroups, 2)
	require.Equal(t, 10.0, s.WallGroups[0].ThicknessCM)
	require.Equal(t, 12.5, s.WallGroups[0].AreaM2)   // (2+3) * 2.5
	require.Equal(t, 15.0, s.WallGroups[0].TileAreaM2) // 3 * 2.5 * 2 sides
	require.Equal(t, 20.0, s.WallGroups[1].ThicknessCM)
	require.Equal(t, 10.0, s.WallGroups[1].AreaM2)
	require.Equal(t, 22.5, s.WallAreaM2)
}
