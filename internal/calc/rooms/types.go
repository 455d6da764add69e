package rooms

// Phase tells the normalizer which side of the project a room list belongs
// to. Ceiling-lowering only affects the effective height on the reform side.
type Phase string

const (
	PhaseDemolition Phase = "demolition"
	PhaseReform     Phase = "reform"
)

type Type string

const (
	TypeLivingRoom Type = "living_room"
	TypeKitchen    Type = "kitchen"
	TypeBathroom   Type = "bathroom"
	TypeBedroom    Type = "bedroom"
	TypeHallway    Type = "hallway"
	TypeHall       Type = "hall"
	TypeTerrace    Type = "terrace"
	TypeStorage    Type = "storage"
	TypeDressing   Type = "dressing_room"
	TypeOther      Type = "other"
)

type FloorMaterial string

const (
	FloorCeramic  FloorMaterial = "ceramic"
	FloorWood     FloorMaterial = "wood"
	FloorParquet  FloorMaterial = "floating_parquet"
	FloorNoChange FloorMaterial = "no_change"
	FloorOther    FloorMaterial = "other"
)

type WallMaterial string

const (
	WallCeramic      WallMaterial = "ceramic"
	WallGotele       WallMaterial = "gotele"
	WallWallpaper    WallMaterial = "wallpaper"
	WallPlaster      WallMaterial = "plaster"
	WallPlasterPaint WallMaterial = "plaster_paint"
	WallNoChange     WallMaterial = "no_change"
	WallOther        WallMaterial = "other"
)

type DoorType string

const (
	DoorPlain           DoorType = "plain"
	DoorDouble          DoorType = "double"
	DoorSlidingPocket   DoorType = "sliding_pocket"
	DoorSlidingExterior DoorType = "sliding_exterior"
)

type Fixture string

const (
	FixtureToilet     Fixture = "toilet"
	FixtureBasin      Fixture = "basin"
	FixtureShowerTray Fixture = "shower_tray"
	FixtureBathtub    Fixture = "bathtub"
	FixtureBidet      Fixture = "bidet"
	FixtureScreen     Fixture = "screen"
	FixtureOther      Fixture = "other"
)

// DefaultStandardHeightM is the fallback wall height when neither the room
// nor the project config carries one.
const DefaultStandardHeightM = 2.5

type DoorInput struct {
	Type string `json:"type"`
}

type RadiatorInput struct {
	Elements int `json:"elements"`
}

// Input is a raw room record as the client (or the room-detection service)
// produces it. Every field is optional; absent numbers read as 0 and absent
// booleans as false.
type Input struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	CustomTypeLabel string `json:"custom_type_label"`
	Number          int    `json:"number_within_type"`

	MeasurementMode string  `json:"measurement_mode"` // "dimensions" or "area_perimeter"
	WidthM          float64 `json:"width_m"`
	LengthM         float64 `json:"length_m"`
	AreaM2          float64 `json:"area_m2"`
	PerimeterM      float64 `json:"perimeter_m"`

	CustomHeightM         float64 `json:"custom_height_m"`
	CurrentCeilingHeightM float64 `json:"current_ceiling_height_m"`
	NewCeilingHeightM     float64 `json:"new_ceiling_height_m"`
	CurrentCeilingStatus  string  `json:"current_ceiling_status"` // "original" or "lowered"

	FloorMaterial      string  `json:"floor_material"`
	WallMaterial       string  `json:"wall_material"`
	TiledWallSurfaceM2 float64 `json:"tiled_wall_surface_m2"`
	WallSurfaceM2      float64 `json:"wall_surface_m2"`

	RemoveFloor               bool `json:"remove_floor"`
	RemoveWallTiles           bool `json:"remove_wall_tiles"`
	RemoveMortarBase          bool `json:"remove_mortar_base"`
	RemoveBathroomElements    bool `json:"remove_bathroom_elements"`
	RemoveKitchenFurniture    bool `json:"remove_kitchen_furniture"`
	RemoveBedroomFurniture    bool `json:"remove_bedroom_furniture"`
	RemoveLivingRoomFurniture bool `json:"remove_living_room_furniture"`
	RemoveGotele              bool `json:"remove_gotele"`
	RemoveWallpaper           bool `json:"remove_wallpaper"`
	RemoveFalseCeiling        bool `json:"remove_false_ceiling"`
	RemoveRadiators           bool `json:"remove_radiators"`
	HasRadiator               bool `json:"has_radiator"`
	RemoveSewagePipes         bool `json:"remove_sewage_pipes"`
	RemoveMoldings            bool `json:"remove_moldings"`

	HasDoors bool        `json:"has_doors"`
	Doors    []DoorInput `json:"door_list"`

	LowerCeiling     bool            `json:"lower_ceiling"`
	Windows          int             `json:"windows"`
	NewDoors         []DoorInput     `json:"new_door_list"`
	BathroomElements []string        `json:"bathroom_elements"`
	HeatingElements  int             `json:"heating_elements"`
	Radiators        []RadiatorInput `json:"radiators"`
}

type Door struct {
	Type DoorType `json:"type"`
}

// Room is the canonical shape every calculator consumes. Geometry and
// materials are fully resolved; free text never leaks past this point.
type Room struct {
	ID          string `json:"id"`
	Type        Type   `json:"type"`
	CustomLabel string `json:"custom_label,omitempty"`
	Number      int    `json:"number_within_type"`

	AreaM2     float64 `json:"area_m2"`
	PerimeterM float64 `json:"perimeter_m"`
	HeightM    float64 `json:"height_m"`

	FloorMaterial     FloorMaterial `json:"floor_material"`
	WallMaterial      WallMaterial  `json:"wall_material"`
	WallTileSurfaceM2 float64       `json:"wall_tile_surface_m2"`

	RemoveFloor               bool `json:"remove_floor"`
	RemoveWallTiles           bool `json:"remove_wall_tiles"`
	RemoveMortarBase          bool `json:"remove_mortar_base"`
	RemoveBathroomElements    bool `json:"remove_bathroom_elements"`
	RemoveKitchenFurniture    bool `json:"remove_kitchen_furniture"`
	RemoveBedroomFurniture    bool `json:"remove_bedroom_furniture"`
	RemoveLivingRoomFurniture bool `json:"remove_living_room_furniture"`
	RemoveGotele              bool `json:"remove_gotele"`
	RemoveWallpaper           bool `json:"remove_wallpaper"`
	RemoveFalseCeiling        bool `json:"remove_false_ceiling"`
	RemoveRadiators           bool `json:"remove_radiators"`
	RemoveSewagePipes         bool `json:"remove_sewage_pipes"`
	RemoveMoldings            bool `json:"remove_moldings"`

	HasDoors bool   `json:"has_doors"`
	Doors    []Door `json:"door_list,omitempty"`

	LowerCeiling      bool      `json:"lower_ceiling"`
	NewCeilingHeightM float64   `json:"new_ceiling_height_m"`
	Windows           int       `json:"windows"`
	NewDoors          []Door    `json:"new_door_list,omitempty"`
	Fixtures          []Fixture `json:"fixtures,omitempty"`
	HeatingElements   int       `json:"heating_elements"`
	RadiatorCount     int       `json:"radiator_count"`
}

type IssueKind string

const IssueMissingGeometry IssueKind = "missing_geometry"

// Issue flags a contract violation on a single room. The room still passes
// through with zeroed geometry so one bad record never sinks the batch.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	RoomID string    `json:"room_id"`
}

type Options struct {
	StandardHeightM float64 `json:"standard_height_m"`
	Phase           Phase   `json:"phase"`
}
