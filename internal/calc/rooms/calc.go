package rooms

import (
	"context"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Detector is the external image-analysis collaborator: it turns a floor
// plan reference into candidate raw rooms for the normalizer.
type Detector interface {
	DetectRooms(ctx context.Context, imageRef string) ([]Input, error)
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases, trims and strips accents so "Cerámica", " ceramica " and
// "CERAMICA" all match the same synonym key.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

var roomTypeSynonyms = map[string]Type{
	"salon":         TypeLivingRoom,
	"living room":   TypeLivingRoom,
	"livingroom":    TypeLivingRoom,
	"cocina":        TypeKitchen,
	"kitchen":       TypeKitchen,
	"bano":          TypeBathroom,
	"aseo":          TypeBathroom,
	"bathroom":      TypeBathroom,
	"dormitorio":    TypeBedroom,
	"habitacion":    TypeBedroom,
	"bedroom":       TypeBedroom,
	"pasillo":       TypeHallway,
	"hallway":       TypeHallway,
	"recibidor":     TypeHall,
	"hall":          TypeHall,
	"terraza":       TypeTerrace,
	"terrace":       TypeTerrace,
	"balcon":        TypeTerrace,
	"trastero":      TypeStorage,
	"storage":       TypeStorage,
	"vestidor":      TypeDressing,
	"dressing":      TypeDressing,
	"dressing room": TypeDressing,
	"otro":          TypeOther,
	"other":         TypeOther,
}

var floorSynonyms = map[string]FloorMaterial{
	"ceramica":         FloorCeramic,
	"ceramic":          FloorCeramic,
	"gres":             FloorCeramic,
	"madera":           FloorWood,
	"wood":             FloorWood,
	"parquet":          FloorWood,
	"parquet flotante": FloorParquet,
	"tarima flotante":  FloorParquet,
	"floating parquet": FloorParquet,
	"sin cambios":      FloorNoChange,
	"sin cambio":       FloorNoChange,
	"no change":        FloorNoChange,
}

var wallSynonyms = map[string]WallMaterial{
	"ceramica":          WallCeramic,
	"ceramic":           WallCeramic,
	"azulejo":           WallCeramic,
	"gotele":            WallGotele,
	"papel pintado":     WallWallpaper,
	"wallpaper":         WallWallpaper,
	"yeso":              WallPlaster,
	"plaster":           WallPlaster,
	"yeso y pintura":    WallPlasterPaint,
	"plaster and paint": WallPlasterPaint,
	"sin cambios":       WallNoChange,
	"no change":         WallNoChange,
}

var doorSynonyms = map[string]DoorType{
	"abatible":            DoorPlain,
	"plain":               DoorPlain,
	"simple":              DoorPlain,
	"doble":               DoorDouble,
	"double":              DoorDouble,
	"corredera empotrada": DoorSlidingPocket,
	"corredera casoneto":  DoorSlidingPocket,
	"sliding pocket":      DoorSlidingPocket,
	"corredera exterior":  DoorSlidingExterior,
	"sliding exterior":    DoorSlidingExterior,
}

var fixtureSynonyms = map[string]Fixture{
	"inodoro":        FixtureToilet,
	"toilet":         FixtureToilet,
	"wc":             FixtureToilet,
	"lavabo":         FixtureBasin,
	"basin":          FixtureBasin,
	"sink":           FixtureBasin,
	"plato de ducha": FixtureShowerTray,
	"ducha":          FixtureShowerTray,
	"shower tray":    FixtureShowerTray,
	"banera":         FixtureBathtub,
	"bathtub":        FixtureBathtub,
	"bide":           FixtureBidet,
	"bidet":          FixtureBidet,
	"mampara":        FixtureScreen,
	"screen":         FixtureScreen,
}

func ParseType(s string) Type {
	if t, ok := roomTypeSynonyms[Fold(s)]; ok {
		return t
	}
	return TypeOther
}

func ParseFloorMaterial(s string) FloorMaterial {
	if f := Fold(s); f != "" {
		if m, ok := floorSynonyms[f]; ok {
			return m
		}
		return FloorOther
	}
	return FloorNoChange
}

func ParseWallMaterial(s string) WallMaterial {
	if f := Fold(s); f != "" {
		if m, ok := wallSynonyms[f]; ok {
			return m
		}
		return WallOther
	}
	return WallNoChange
}

func ParseDoorType(s string) DoorType {
	if t, ok := doorSynonyms[Fold(s)]; ok {
		return t
	}
	return DoorPlain
}

func ParseFixture(s string) Fixture {
	if fx, ok := fixtureSynonyms[Fold(s)]; ok {
		return fx
	}
	return FixtureOther
}

// Normalize turns a raw room record into its canonical shape. It never
// fails: contract violations come back as an Issue next to a room with
// zeroed geometry.
func Normalize(in Input, opts Options) (Room, *Issue) {
	std := opts.StandardHeightM
	if std <= 0 {
		std = DefaultStandardHeightM
	}

	r := Room{
		ID:           in.ID,
		Type:         ParseType(in.Type),
		Number:       in.Number,
		LowerCeiling: in.LowerCeiling,
		Windows:      in.Windows,
	}
	if r.Type == TypeOther {
		r.CustomLabel = in.CustomTypeLabel
	}

	r.HeightM = effectiveHeight(in, opts.Phase, std)
	r.NewCeilingHeightM = in.NewCeilingHeightM

	var issue *Issue
	r.AreaM2, r.PerimeterM = resolveGeometry(in)
	if r.AreaM2 <= 0 {
		r.AreaM2, r.PerimeterM = 0, 0
		issue = &Issue{Kind: IssueMissingGeometry, RoomID: in.ID}
	}

	r.FloorMaterial = ParseFloorMaterial(in.FloorMaterial)
	r.WallMaterial = ParseWallMaterial(in.WallMaterial)
	r.WallTileSurfaceM2 = wallTileSurface(in, r)

	r.RemoveFloor = in.RemoveFloor
	r.RemoveWallTiles = in.RemoveWallTiles
	r.RemoveMortarBase = in.RemoveMortarBase
	r.RemoveBathroomElements = in.RemoveBathroomElements
	r.RemoveKitchenFurniture = in.RemoveKitchenFurniture
	r.RemoveBedroomFurniture = in.RemoveBedroomFurniture
	r.RemoveLivingRoomFurniture = in.RemoveLivingRoomFurniture
	r.RemoveGotele = in.RemoveGotele
	r.RemoveWallpaper = in.RemoveWallpaper
	r.RemoveFalseCeiling = in.RemoveFalseCeiling
	r.RemoveRadiators = in.RemoveRadiators
	r.RemoveSewagePipes = in.RemoveSewagePipes
	r.RemoveMoldings = in.RemoveMoldings
	r.HasDoors = in.HasDoors

	for _, d := range in.Doors {
		r.Doors = append(r.Doors, Door{Type: ParseDoorType(d.Type)})
	}
	for _, d := range in.NewDoors {
		r.NewDoors = append(r.NewDoors, Door{Type: ParseDoorType(d.Type)})
	}
	for _, e := range in.BathroomElements {
		r.Fixtures = append(r.Fixtures, ParseFixture(e))
	}

	r.HeatingElements = in.HeatingElements
	r.RadiatorCount = len(in.Radiators)
	if r.RadiatorCount == 0 && in.HasRadiator {
		r.RadiatorCount = 1
	}

	return r, issue
}

// NormalizeAll normalizes a whole room list, collecting issues instead of
// aborting on the first bad record.
func NormalizeAll(ins []Input, opts Options) ([]Room, []Issue) {
	out := make([]Room, 0, len(ins))
	var issues []Issue
	for _, in := range ins {
		r, issue := Normalize(in, opts)
		out = append(out, r)
		if issue != nil {
			issues = append(issues, *issue)
		}
	}
	return out, issues
}

// effectiveHeight resolves the competing height signals. Precedence:
// ceiling lowered in this phase, then a kept lowered ceiling, then the
// per-room custom height, then the phase standard.
func effectiveHeight(in Input, phase Phase, std float64) float64 {
	switch {
	case phase == PhaseReform && in.LowerCeiling && in.NewCeilingHeightM > 0:
		return in.NewCeilingHeightM
	case loweredCeiling(in.CurrentCeilingStatus) && in.CurrentCeilingHeightM > 0:
		return in.CurrentCeilingHeightM
	case in.CustomHeightM > 0:
		return in.CustomHeightM
	}
	return std
}

func loweredCeiling(status string) bool {
	switch Fold(status) {
	case "lowered", "bajado", "falso techo":
		return true
	}
	return false
}

func resolveGeometry(in Input) (area, perimeter float64) {
	switch Fold(in.MeasurementMode) {
	case "dimensions":
		return in.WidthM * in.LengthM, 2 * (in.WidthM + in.LengthM)
	case "area_perimeter":
		return in.AreaM2, in.PerimeterM
	}
	if in.WidthM > 0 && in.LengthM > 0 {
		return in.WidthM * in.LengthM, 2 * (in.WidthM + in.LengthM)
	}
	return in.AreaM2, in.PerimeterM
}

// wallTileSurface resolves the tiled wall area through the fallback chain:
// measured ceramic area, then the generic wall surface when the wall is
// ceramic, then a perimeter*height estimate for wet rooms, with a square
// room assumed when the perimeter itself is missing.
func wallTileSurface(in Input, r Room) float64 {
	if in.TiledWallSurfaceM2 > 0 {
		return in.TiledWallSurfaceM2
	}
	if in.WallSurfaceM2 > 0 && r.WallMaterial == WallCeramic {
		return in.WallSurfaceM2
	}
	wet := r.Type == TypeBathroom || r.Type == TypeKitchen
	if wet && (in.RemoveWallTiles || r.WallMaterial == WallCeramic) {
		p := r.PerimeterM
		if p <= 0 && r.AreaM2 > 0 {
			p = 4 * math.Sqrt(r.AreaM2)
		}
		return p * r.HeightM
	}
	return 0
}
