package rooms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSynonyms(t *testing.T) {
	require.Equal(t, TypeBathroom, ParseType("Baño"))
	require.Equal(t, TypeBathroom, ParseType("bathroom"))
	require.Equal(t, TypeLivingRoom, ParseType("SALÓN"))
	require.Equal(t, TypeKitchen, ParseType(" Cocina "))
	require.Equal(t, TypeOther, ParseType("garaje"))

	require.Equal(t, FloorCeramic, ParseFloorMaterial("Cerámica"))
	require.Equal(t, FloorParquet, ParseFloorMaterial("Tarima Flotante"))
	require.Equal(t, FloorNoChange, ParseFloorMaterial(""))
	require.Equal(t, FloorOther, ParseFloorMaterial("moqueta"))

	require.Equal(t, WallGotele, ParseWallMaterial("Gotelé"))
	require.Equal(t, WallPlasterPaint, ParseWallMaterial("Yeso y Pintura"))

	require.Equal(t, DoorSlidingPocket, ParseDoorType("Corredera Empotrada"))
	require.Equal(t, DoorPlain, ParseDoorType("abatible"))

	require.Equal(t, FixtureShowerTray, ParseFixture("Plato de Ducha"))
	require.Equal(t, FixtureBidet, ParseFixture("Bidé"))
}

func TestNormalizeGeometryFromDimensions(t *testing.T) {
	r, issue := Normalize(Input{
		ID:              "r1",
		Type:            "Dormitorio",
		MeasurementMode: "dimensions",
		WidthM:          3,
		LengthM:         4,
	}, Options{StandardHeightM: 2.5})
	require.Nil(t, issue)
	require.Equal(t, 12.0, r.AreaM2)
	require.Equal(t, 14.0, r.PerimeterM)
	require.Equal(t, 2.5, r.HeightM)
}

func TestNormalizeMissingGeometry(t *testing.T) {
	r, issue := Normalize(Input{ID: "bad"}, Options{StandardHeightM: 2.5})
	require.NotNil(t, issue)
	require.Equal(t, IssueMissingGeometry, issue.Kind)
	require.Equal(t, "bad", issue.RoomID)
	require.Zero(t, r.AreaM2)
	require.Zero(t, r.PerimeterM)
}

func TestNormalizeAllCollectsIssues(t *testing.T) {
	normalized, issues := NormalizeAll([]Input{
		{ID: "ok", AreaM2: 10, PerimeterM: 13},
		{ID: "bad"},
		{ID: "ok2", WidthM: 2, LengthM: 2},
	}, Options{StandardHeightM: 2.5})
	require.Len(t, normalized, 3)
	require.Len(t, issues, 1)
	require.Equal(t, "bad", issues[0].RoomID)
}

func TestEffectiveHeightPrecedence(t *testing.T) {
	base := Input{ID: "h", AreaM2: 10, PerimeterM: 13}

	// lowering in the reform phase wins
	in := base
	in.LowerCeiling = true
	in.NewCeilingHeightM = 2.3
	in.CurrentCeilingStatus = "lowered"
	in.CurrentCeilingHeightM = 2.4
	in.CustomHeightM = 2.8
	r, _ := Normalize(in, Options{StandardHeightM: 2.5, Phase: PhaseReform})
	require.Equal(t, 2.3, r.HeightM)

	// same input on the demolition side: lowering does not apply yet
	r, _ = Normalize(in, Options{StandardHeightM: 2.5, Phase: PhaseDemolition})
	require.Equal(t, 2.4, r.HeightM)

	// kept lowered ceiling beats the custom height
	in = base
	in.CurrentCeilingStatus = "Bajado"
	in.CurrentCeilingHeightM = 2.35
	in.CustomHeightM = 2.8
	r, _ = Normalize(in, Options{StandardHeightM: 2.5})
	require.Equal(t, 2.35, r.HeightM)

	// custom height beats the standard
	in = base
	in.CustomHeightM = 2.8
	r, _ = Normalize(in, Options{StandardHeightM: 2.5})
	require.Equal(t, 2.8, r.HeightM)

	// nothing set: standard applies
	r, _ = Normalize(base, Options{StandardHeightM: 2.5})
	require.Equal(t, 2.5, r.HeightM)
}

func TestWallTileSurfaceFallbackChain(t *testing.T) {
	// branch 1: explicit measured tiled area
	r, _ := Normalize(Input{
		ID: "b1", Type: "Baño", AreaM2: 6, PerimeterM: 10,
		TiledWallSurfaceM2: 20, RemoveWallTiles: true,
	}, Options{StandardHeightM: 2.6})
	require.Equal(t, 20.0, r.WallTileSurfaceM2)

	// branch 2: generic wall surface, only honored for ceramic walls
	r, _ = Normalize(Input{
		ID: "b2", Type: "Baño", AreaM2: 6, PerimeterM: 10,
		WallSurfaceM2: 15, WallMaterial: "Cerámica",
	}, Options{StandardHeightM: 2.6})
	require.Equal(t, 15.0, r.WallTileSurfaceM2)

	r, _ = Normalize(Input{
		ID: "b2-plaster", Type: "Salón", AreaM2: 6, PerimeterM: 10,
		WallSurfaceM2: 15, WallMaterial: "Yeso y pintura",
	}, Options{StandardHeightM: 2.6})
	require.Zero(t, r.WallTileSurfaceM2)

	// branch 3: wet room flagged for removal, perimeter known
	r, _ = Normalize(Input{
		ID: "b3", Type: "Baño", AreaM2: 6, PerimeterM: 10, RemoveWallTiles: true,
	}, Options{StandardHeightM: 2.6})
	require.Equal(t, 26.0, r.WallTileSurfaceM2)

	// branch 4: perimeter missing, square room assumed: 4*sqrt(9) = 12
	r, _ = Normalize(Input{
		ID: "b4", Type: "Baño", AreaM2: 9, RemoveWallTiles: true,
	}, Options{StandardHeightM: 2.6})
	require.InDelta(t, 12*2.6, r.WallTileSurfaceM2, 1e-9)

	// no branch applies for a dry room without flags
	r, _ = Normalize(Input{
		ID: "none", Type: "Dormitorio", AreaM2: 9, PerimeterM: 12,
	}, Options{StandardHeightM: 2.6})
	require.Zero(t, r.WallTileSurfaceM2)
}

func TestRadiatorCount(t *testing.T) {
	r, _ := Normalize(Input{ID: "r", AreaM2: 10, PerimeterM: 13, HasRadiator: true}, Options{})
	require.Equal(t, 1, r.RadiatorCount)

	r, _ = Normalize(Input{
		ID: "r2", AreaM2: 10, PerimeterM: 13,
		Radiators: []RadiatorInput{{Elements: 8}, {Elements: 10}},
	}, Options{})
	require.Equal(t, 2, r.RadiatorCount)
}
