package materials

import (
	"math"

	"Reforma/internal/calc/rooms"
)

const (
	// 24x12 cm brick with a 1 cm mortar joint gives 31 bricks per m2.
	bricksPerM2 = 31
	// 1.20 x 2.40 m plasterboard.
	boardAreaM2 = 2.88
	wasteFactor = 1.05
)

type PartitionType string

const (
	PartitionBrick        PartitionType = "brick"
	PartitionPlasterboard PartitionType = "plasterboard"
)

// Partition is a freestanding wall to be built.
type Partition struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"` // "brick" / "ladrillo" or "plasterboard" / "pladur"
	LinearM float64 `json:"linear_m"`
	HeightM float64 `json:"height_m"`
}

// WallLining is a single-sided plasterboard layer over an existing wall.
type WallLining struct {
	ID      string  `json:"id"`
	LinearM float64 `json:"linear_m"`
	HeightM float64 `json:"height_m"`
}

type Result struct {
	BrickPartitionM2  float64 `json:"brick_partition_m2"`
	BoardPartitionM2  float64 `json:"board_partition_m2"`
	LiningM2          float64 `json:"lining_m2"`
	CeilingM2         float64 `json:"ceiling_m2"`
	BathroomCeilingM2 float64 `json:"bathroom_ceiling_m2"`

	Bricks          int `json:"bricks"`
	PartitionBoards int `json:"partition_boards"`
	LiningBoards    int `json:"lining_boards"`
	CeilingBoards   int `json:"ceiling_boards"`
	// Informational: how many of the ceiling boards should be the
	// moisture-resistant kind (bathroom ceilings). Not added to the total.
	MoistureResistantBoards int `json:"moisture_resistant_boards"`

	TotalBoards int `json:"total_boards"`
}

func parsePartitionType(s string) PartitionType {
	switch rooms.Fold(s) {
	case "brick", "ladrillo":
		return PartitionBrick
	}
	return PartitionPlasterboard
}

func wallArea(linearM, heightM float64) float64 {
	if heightM <= 0 {
		heightM = rooms.DefaultStandardHeightM
	}
	return linearM * heightM
}

// Calculate derives material counts from partition and lining definitions
// plus the reform rooms that get a lowered ceiling.
func Calculate(partitions []Partition, linings []WallLining, reformRooms []rooms.Room) Result {
	var res Result

	for _, p := range partitions {
		area := wallArea(p.LinearM, p.HeightM)
		if parsePartitionType(p.Type) == PartitionBrick {
			res.BrickPartitionM2 += area
		} else {
			res.BoardPartitionM2 += area
		}
	}
	for _, l := range linings {
		res.LiningM2 += wallArea(l.LinearM, l.HeightM)
	}
	for _, r := range reformRooms {
		if r.LowerCeiling && r.NewCeilingHeightM > 0 {
			res.CeilingM2 += r.AreaM2
			if r.Type == rooms.TypeBathroom {
				res.BathroomCeilingM2 += r.AreaM2
			}
		}
	}

	res.Bricks = ceilInt(res.BrickPartitionM2 * bricksPerM2 * wasteFactor)
	// freestanding board partitions are boarded on both faces, linings on one
	res.PartitionBoards = ceilInt(res.BoardPartitionM2 * 2 / boardAreaM2)
	res.LiningBoards = ceilInt(res.LiningM2 / boardAreaM2)
	res.CeilingBoards = ceilInt(res.CeilingM2 / boardAreaM2)
	res.MoistureResistantBoards = ceilInt(res.BathroomCeilingM2 / boardAreaM2)

	res.TotalBoards = ceilInt(float64(res.PartitionBoards+res.LiningBoards+res.CeilingBoards) * wasteFactor)
	return res
}

func ceilInt(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Ceil(v))
}
