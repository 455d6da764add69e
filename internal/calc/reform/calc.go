package reform

import (
	"Reforma/internal/calc/rooms"
)

type Config struct {
	StandardHeightM    float64 `json:"standard_height_m"`
	HeatingType        string  `json:"heating_type"`
	LowerAllCeilings   bool    `json:"lower_all_ceilings"`
	TileAllFloors      bool    `json:"tile_all_floors"`
	PaintAndPlasterAll bool    `json:"paint_and_plaster_all"`
	PaintCeilings      bool    `json:"paint_ceilings"`
	EntranceDoorType   string  `json:"entrance_door_type"`

	ChangeBoiler         bool `json:"change_boiler"`
	RemoveWaterHeater    bool `json:"remove_water_heater"`
	InstallGasBoiler     bool `json:"install_gas_boiler"`
	InstallGasConnection bool `json:"install_gas_connection"`
	InstallWaterHeater   bool `json:"install_water_heater"`
}

type Electrical struct {
	Points   int  `json:"num_points"`
	Sockets  int  `json:"num_sockets"`
	TVPoints int  `json:"num_tv_points"`
	ACPoints int  `json:"num_ac_points"`
	NewPanel bool `json:"has_new_panel"`
}

type Masonry struct {
	CeramicFloorM2    float64 `json:"ceramic_floor_m2"`
	WallTilingM2      float64 `json:"wall_tiling_m2"`
	CeilingLoweringM2 float64 `json:"ceiling_lowering_m2"`
	PartitionM2       float64 `json:"partition_m2"`
	WallLiningM2      float64 `json:"wall_lining_m2"`
}

type Plumbing struct {
	WaterNetworks      int `json:"water_networks"`
	ExtractionDucts    int `json:"extraction_ducts"`
	SinkInstalls       int `json:"sink_installs"`
	WasherInstalls     int `json:"washer_installs"`
	DishwasherInstalls int `json:"dishwasher_installs"`

	ToiletInstalls     int `json:"toilet_installs"`
	BasinInstalls      int `json:"basin_installs"`
	BasinTaps          int `json:"basin_taps"`
	ShowerTrayInstalls int `json:"shower_tray_installs"`
	ShowerTaps         int `json:"shower_taps"`
	BathtubInstalls    int `json:"bathtub_installs"`
	BathtubTaps        int `json:"bathtub_taps"`
	BidetInstalls      int `json:"bidet_installs"`
	ScreenInstalls     int `json:"screen_installs"`

	GasConnections      int `json:"gas_connections"`
	WaterHeaterInstalls int `json:"water_heater_installs"`
	WaterHeaterRemovals int `json:"water_heater_removals"`
}

type Paint struct {
	PlasterOnlyM2  float64 `json:"plaster_only_m2"`
	PlasterPaintM2 float64 `json:"plaster_paint_m2"`
	CeilingPaintM2 float64 `json:"ceiling_paint_m2"`
}

type Carpentry struct {
	FloatingParquetM2 float64 `json:"floating_parquet_m2"`
	WoodFloorM2       float64 `json:"wood_floor_m2"`
	SkirtingM         float64 `json:"skirting_m"`

	PlainDoors           int    `json:"plain_doors"`
	DoubleDoors          int    `json:"double_doors"`
	PocketDoors          int    `json:"pocket_doors"`
	PocketFrames         int    `json:"pocket_frames"`
	ExteriorSlidingDoors int    `json:"exterior_sliding_doors"`
	EntranceDoors        int    `json:"entrance_doors"`
	EntranceDoorType     string `json:"entrance_door_type,omitempty"`
	Windows              int    `json:"windows"`
}

type Heating struct {
	RadiatorFeeds     int `json:"radiator_feeds"`
	RadiatorInstalls  int `json:"radiator_installs"`
	EmitterFixations  int `json:"emitter_fixations"`
	ElectricEmitters  int `json:"electric_emitters"`
	BoilerChanges     int `json:"boiler_changes"`
	GasBoilerInstalls int `json:"gas_boiler_installs"`
}

type ElectricalWork struct {
	LightPoints int `json:"light_points"`
	Sockets     int `json:"sockets"`
	TVPoints    int `json:"tv_points"`
	ACPoints    int `json:"ac_points"`
	NewPanels   int `json:"new_panels"`
}

// Summary is the categorized reform takeoff. Every bucket is computed
// unconditionally; rendering only non-zero sections is a presentation
// concern.
type Summary struct {
	Masonry    Masonry        `json:"masonry"`
	Plumbing   Plumbing       `json:"plumbing"`
	Paint      Paint          `json:"paint"`
	Carpentry  Carpentry      `json:"carpentry"`
	Heating    Heating        `json:"heating"`
	Electrical ElectricalWork `json:"electrical"`
}

func Calculate(roomList []rooms.Room, cfg Config, elec Electrical) Summary {
	var s Summary
	electric := rooms.Fold(cfg.HeatingType) == "electrica" || rooms.Fold(cfg.HeatingType) == "electric"

	for _, r := range roomList {
		accumulateFloors(&s, r, cfg)
		accumulateWalls(&s, r, cfg)
		accumulateCeilings(&s, r, cfg)
		accumulateCarpentry(&s, r)
		accumulatePlumbing(&s, r)
		accumulateHeating(&s, r, electric)
	}

	if cfg.EntranceDoorType != "" {
		s.Carpentry.EntranceDoors = 1
		s.Carpentry.EntranceDoorType = cfg.EntranceDoorType
	}
	if cfg.ChangeBoiler {
		s.Heating.BoilerChanges = 1
	}
	if cfg.InstallGasBoiler {
		s.Heating.GasBoilerInstalls = 1
	}
	if cfg.InstallGasConnection {
		s.Plumbing.GasConnections = 1
	}
	if cfg.InstallWaterHeater {
		s.Plumbing.WaterHeaterInstalls = 1
	}
	if cfg.RemoveWaterHeater {
		s.Plumbing.WaterHeaterRemovals = 1
	}

	s.Electrical = ElectricalWork{
		LightPoints: elec.Points,
		Sockets:     elec.Sockets,
		TVPoints:    elec.TVPoints,
		ACPoints:    elec.ACPoints,
	}
	if elec.NewPanel {
		s.Electrical.NewPanels = 1
	}

	return s
}

func accumulateFloors(s *Summary, r rooms.Room, cfg Config) {
	switch r.FloorMaterial {
	case rooms.FloorParquet:
		s.Carpentry.FloatingParquetM2 += r.AreaM2
	case rooms.FloorWood:
		s.Carpentry.WoodFloorM2 += r.AreaM2
	case rooms.FloorCeramic:
		s.Masonry.CeramicFloorM2 += r.AreaM2
	default:
		if cfg.TileAllFloors && r.FloorMaterial != rooms.FloorNoChange {
			s.Masonry.CeramicFloorM2 += r.AreaM2
		}
	}

	skirting := r.FloorMaterial != rooms.FloorCeramic && r.FloorMaterial != rooms.FloorNoChange
	if skirting && r.Type != rooms.TypeTerrace {
		s.Carpentry.SkirtingM += r.PerimeterM
	}
}

func accumulateWalls(s *Summary, r rooms.Room, cfg Config) {
	wallArea := r.PerimeterM * r.HeightM
	switch {
	case r.WallMaterial == rooms.WallCeramic:
		tiling := r.WallTileSurfaceM2
		if tiling <= 0 {
			tiling = wallArea
		}
		s.Masonry.WallTilingM2 += tiling
	case r.WallMaterial == rooms.WallPlaster:
		s.Paint.PlasterOnlyM2 += wallArea
	case r.WallMaterial == rooms.WallPlasterPaint || cfg.PaintAndPlasterAll:
		if r.WallMaterial != rooms.WallNoChange || cfg.PaintAndPlasterAll {
			s.Paint.PlasterPaintM2 += wallArea
		}
	}
}

func accumulateCeilings(s *Summary, r rooms.Room, cfg Config) {
	if r.Type == rooms.TypeTerrace {
		return
	}
	if (r.LowerCeiling && r.NewCeilingHeightM > 0) || cfg.LowerAllCeilings {
		s.Masonry.CeilingLoweringM2 += r.AreaM2
	}
	if cfg.PaintCeilings || cfg.PaintAndPlasterAll {
		s.Paint.CeilingPaintM2 += r.AreaM2
	}
}

func accumulateCarpentry(s *Summary, r rooms.Room) {
	for _, d := range r.NewDoors {
		switch d.Type {
		case rooms.DoorDouble:
			s.Carpentry.DoubleDoors++
		case rooms.DoorSlidingPocket:
			s.Carpentry.PocketDoors++
			s.Carpentry.PocketFrames++
		case rooms.DoorSlidingExterior:
			s.Carpentry.ExteriorSlidingDoors++
		default:
			s.Carpentry.PlainDoors++
		}
	}
	s.Carpentry.Windows += r.Windows
}

func accumulatePlumbing(s *Summary, r rooms.Room) {
	switch r.Type {
	case rooms.TypeBathroom:
		s.Plumbing.WaterNetworks++
		s.Plumbing.ExtractionDucts++
	case rooms.TypeKitchen:
		s.Plumbing.WaterNetworks++
		s.Plumbing.ExtractionDucts++
		s.Plumbing.SinkInstalls++
		s.Plumbing.WasherInstalls++
		s.Plumbing.DishwasherInstalls++
	}

	for _, fx := range r.Fixtures {
		switch fx {
		case rooms.FixtureToilet:
			s.Plumbing.ToiletInstalls++
		case rooms.FixtureBasin:
			s.Plumbing.BasinInstalls++
			s.Plumbing.BasinTaps++
		case rooms.FixtureShowerTray:
			s.Plumbing.ShowerTrayInstalls++
			s.Plumbing.ShowerTaps++
		case rooms.FixtureBathtub:
			s.Plumbing.BathtubInstalls++
			s.Plumbing.BathtubTaps++
		case rooms.FixtureBidet:
			s.Plumbing.BidetInstalls++
		case rooms.FixtureScreen:
			s.Plumbing.ScreenInstalls++
		}
	}
}

// accumulateHeating routes every radiator-flagged room into exactly one of
// the two branches: electric emitters or the standard feed network.
func accumulateHeating(s *Summary, r rooms.Room, electric bool) {
	n := r.RadiatorCount
	if n == 0 {
		return
	}
	if electric {
		s.Heating.EmitterFixations += n
		s.Heating.ElectricEmitters += n
		return
	}
	s.Heating.RadiatorFeeds += n
	s.Heating.RadiatorInstalls += n
}
