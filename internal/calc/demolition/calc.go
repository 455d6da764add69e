package demolition

import (
	"sort"

	"Reforma/internal/calc/rooms"
)

type StructureType string

const (
	StructureConcrete StructureType = "concrete"
	StructureWood     StructureType = "wood"
	StructureMixed    StructureType = "mixed"
)

// WallDemolition is a project-level wall opening or removal, not tied to a
// room. Thickness drives downstream grouping and volume math.
type WallDemolition struct {
	ID              string  `json:"id"`
	LengthM         float64 `json:"length_m"`
	ThicknessCM     float64 `json:"thickness_cm"`
	HasTiles        bool    `json:"has_tiles"`
	TileSides       string  `json:"tile_sides"` // "one" or "both"
	TileThicknessCM float64 `json:"tile_thickness_cm"`
}

type Config struct {
	StandardHeightM    float64          `json:"standard_height_m"`
	StructureType      StructureType    `json:"structure_type"`
	HeatingType        string           `json:"heating_type"`
	RemoveWoodenFloor  bool             `json:"remove_wooden_floor"`
	RemoveAllCeramic   bool             `json:"remove_all_ceramic"`
	AllWallsHaveGotele bool             `json:"all_walls_have_gotele"`
	Floors             int              `json:"floors"`
	HasElevator        bool             `json:"has_elevator"`
	WallDemolitions    []WallDemolition `json:"wall_demolitions"`
}

// WallGroup aggregates wall demolitions sharing a thickness.
type WallGroup struct {
	ThicknessCM float64 `json:"thickness_cm"`
	AreaM2      float64 `json:"area_m2"`
	TileAreaM2  float64 `json:"tile_area_m2"`
}

type Summary struct {
	FloorTileRemovalM2    float64 `json:"floor_tile_removal_m2"`
	WoodenFloorRemovalM2  float64 `json:"wooden_floor_removal_m2"`
	SkirtingRemovalM      float64 `json:"skirting_removal_m"`
	WallTileRemovalM2     float64 `json:"wall_tile_removal_m2"`
	MortarBaseRemovalM2   float64 `json:"mortar_base_removal_m2"`
	GoteleRemovalM2       float64 `json:"gotele_removal_m2"`
	WallpaperRemovalM2    float64 `json:"wallpaper_removal_m2"`
	FalseCeilingRemovalM2 float64 `json:"false_ceiling_removal_m2"`
	MoldingRemovalM       float64 `json:"molding_removal_m"`

	BathroomStripOuts        int `json:"bathroom_strip_outs"`
	KitchenFurnitureUnits    int `json:"kitchen_furniture_units"`
	BedroomFurnitureUnits    int `json:"bedroom_furniture_units"`
	LivingRoomFurnitureUnits int `json:"living_room_furniture_units"`
	RadiatorRemovals         int `json:"radiator_removals"`
	SewagePipeRemovals       int `json:"sewage_pipe_removals"`
	DoorRemovals             int `json:"door_removals"`
	PocketFrameRemovals      int `json:"pocket_frame_removals"`

	TotalFloorAreaM2 float64     `json:"total_floor_area_m2"`
	WallGroups       []WallGroup `json:"wall_groups,omitempty"`
	WallAreaM2       float64     `json:"wall_area_m2"`
}

// Calculate folds the room list into a demolition summary. Every rule is a
// plain sum, so room order never changes the result.
func Calculate(roomList []rooms.Room, cfg Config) Summary {
	var s Summary
	for _, r := range roomList {
		accumulateRoom(&s, r, cfg)
	}
	s.WallGroups, s.WallAreaM2 = groupWalls(cfg)
	return s
}

func accumulateRoom(s *Summary, r rooms.Room, cfg Config) {
	s.TotalFloorAreaM2 += r.AreaM2

	ceramicFloor := r.FloorMaterial == rooms.FloorCeramic && (r.RemoveFloor || cfg.RemoveAllCeramic)
	if ceramicFloor {
		s.FloorTileRemovalM2 += r.AreaM2
	}

	woodFloor := r.FloorMaterial == rooms.FloorWood || r.FloorMaterial == rooms.FloorParquet
	if woodFloor && (r.RemoveFloor || cfg.RemoveWoodenFloor) {
		s.WoodenFloorRemovalM2 += r.AreaM2
		s.SkirtingRemovalM += r.PerimeterM
	}

	if r.RemoveWallTiles || r.WallMaterial == rooms.WallCeramic {
		s.WallTileRemovalM2 += r.WallTileSurfaceM2
	}

	if r.RemoveMortarBase {
		s.MortarBaseRemovalM2 += r.AreaM2
	}
	if r.RemoveBathroomElements {
		s.BathroomStripOuts++
	}
	if r.RemoveKitchenFurniture {
		s.KitchenFurnitureUnits++
	}
	if r.RemoveBedroomFurniture {
		s.BedroomFurnitureUnits++
	}
	if r.RemoveLivingRoomFurniture {
		s.LivingRoomFurnitureUnits++
	}

	if r.RemoveGotele && (r.WallMaterial == rooms.WallGotele || cfg.AllWallsHaveGotele) {
		s.GoteleRemovalM2 += r.PerimeterM * r.HeightM
	}
	if r.RemoveWallpaper {
		s.WallpaperRemovalM2 += r.PerimeterM * r.HeightM
	}
	if r.RemoveFalseCeiling {
		s.FalseCeilingRemovalM2 += r.AreaM2
	}
	if r.RemoveMoldings {
		s.MoldingRemovalM += r.PerimeterM
	}
	if r.RemoveSewagePipes {
		s.SewagePipeRemovals++
	}
	if r.RemoveRadiators {
		n := r.RadiatorCount
		if n == 0 {
			n = 1
		}
		s.RadiatorRemovals += n
	}

	if r.HasDoors {
		s.DoorRemovals += len(r.Doors)
		for _, d := range r.Doors {
			if d.Type == rooms.DoorSlidingPocket {
				s.PocketFrameRemovals++
			}
		}
	}
}

func groupWalls(cfg Config) ([]WallGroup, float64) {
	if len(cfg.WallDemolitions) == 0 {
		return nil, 0
	}
	h := cfg.StandardHeightM
	if h <= 0 {
		h = rooms.DefaultStandardHeightM
	}

	byThickness := make(map[float64]*WallGroup)
	var total float64
	for _, wd := range cfg.WallDemolitions {
		area := wd.LengthM * h
		total += area
		g, ok := byThickness[wd.ThicknessCM]
		if !ok {
			g = &WallGroup{ThicknessCM: wd.ThicknessCM}
			byThickness[wd.ThicknessCM] = g
		}
		g.AreaM2 += area
		if wd.HasTiles {
			sides := 1.0
			if rooms.Fold(wd.TileSides) == "both" || rooms.Fold(wd.TileSides) == "ambas" {
				sides = 2.0
			}
			g.TileAreaM2 += area * sides
		}
	}

	groups := make([]WallGroup, 0, len(byThickness))
	for _, g := range byThickness {
		groups = append(groups, *g)
	}
	// map iteration order is random; sort so identical inputs give identical output
	sort.Slice(groups, func(i, j int) bool { return groups[i].ThicknessCM < groups[j].ThicknessCM })
	return groups, total
}
