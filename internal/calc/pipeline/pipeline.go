package pipeline

import (
	"Reforma/internal/calc/debris"
	"Reforma/internal/calc/demolition"
	"Reforma/internal/calc/materials"
	"Reforma/internal/calc/reform"
	"Reforma/internal/calc/rooms"
)

// Input is the full takeoff document for one project: both room lists, the
// per-phase configs, the physics settings and the build definitions.
type Input struct {
	DemolitionRooms []rooms.Input          `json:"demolition_rooms"`
	ReformRooms     []rooms.Input          `json:"reform_rooms"`
	Demolition      demolition.Config      `json:"demolition"`
	Reform          reform.Config          `json:"reform"`
	Electrical      reform.Electrical      `json:"electrical"`
	Settings        debris.Settings        `json:"settings"`
	Partitions      []materials.Partition  `json:"partitions"`
	WallLinings     []materials.WallLining `json:"wall_linings"`
}

type Result struct {
	Issues     []rooms.Issue      `json:"issues,omitempty"`
	Demolition demolition.Summary `json:"demolition"`
	Debris     debris.Result      `json:"debris"`
	Reform     reform.Summary     `json:"reform"`
	Materials  materials.Result   `json:"materials"`
}

// Calculate runs the whole takeoff: normalize both room lists, fold the
// demolition side into debris volumes, the reform side into categorized
// work items, and derive material counts. Pure and deterministic: the same
// input always produces the same result.
func Calculate(in Input) Result {
	demoRooms, demoIssues := rooms.NormalizeAll(in.DemolitionRooms, rooms.Options{
		StandardHeightM: in.Demolition.StandardHeightM,
		Phase:           rooms.PhaseDemolition,
	})
	reformRooms, reformIssues := rooms.NormalizeAll(in.ReformRooms, rooms.Options{
		StandardHeightM: in.Reform.StandardHeightM,
		Phase:           rooms.PhaseReform,
	})

	var res Result
	res.Issues = append(res.Issues, demoIssues...)
	res.Issues = append(res.Issues, reformIssues...)

	res.Demolition = demolition.Calculate(demoRooms, in.Demolition)
	res.Debris = debris.Calculate(res.Demolition, demoRooms, in.Demolition, in.Settings)
	res.Reform = reform.Calculate(reformRooms, in.Reform, in.Electrical)
	res.Materials = materials.Calculate(in.Partitions, in.WallLinings, reformRooms)

	// partition and lining areas live in the materials inputs, not in rooms;
	// surface them in the masonry bucket here
	res.Reform.Masonry.PartitionM2 = res.Materials.BrickPartitionM2 + res.Materials.BoardPartitionM2
	res.Reform.Masonry.WallLiningM2 = res.Materials.LiningM2

	return res
}
