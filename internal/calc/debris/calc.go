package debris

import (
	"math"

	"Reforma/internal/calc/demolition"
	"Reforma/internal/calc/rooms"
)

// Fixed volumetric allowances for discrete items, in m3 of loose debris.
const (
	doorDebrisM3                = 0.06
	kitchenFurnitureDebrisM3    = 3.5
	bedroomFurnitureDebrisM3    = 2.0
	livingRoomFurnitureDebrisM3 = 2.0
	bathroomSuiteDebrisM3       = 1.5
	// Two radiator factors coexist in the product: 0.08 feeds the debris
	// totals, 0.05 feeds the special-items display bucket. Kept separate
	// until product settles on one.
	radiatorDebrisM3  = 0.08
	radiatorDisplayM3 = 0.05

	skirtingHeightM = 0.1

	// Two hour models coexist as well: a flat clearing rate and a
	// carry-down estimate with a no-elevator storey penalty.
	clearingHoursPerM3  = 0.5
	carryDownHoursPerM3 = 1.0
	storeyPenaltyPerM3  = 0.20
)

type WallGroupDebris struct {
	ThicknessCM float64 `json:"thickness_cm"`
	VolumeM3    float64 `json:"volume_m3"`
}

type Result struct {
	WallGroups   []WallGroupDebris `json:"wall_groups,omitempty"`
	WallDebrisM3 float64           `json:"wall_debris_m3"`

	FloorTileDebrisM3 float64 `json:"floor_tile_debris_m3"`
	WallTileDebrisM3  float64 `json:"wall_tile_debris_m3"`
	CeramicDebrisM3   float64 `json:"ceramic_debris_m3"`
	MortarDebrisM3    float64 `json:"mortar_debris_m3"`
	CeilingDebrisM3   float64 `json:"ceiling_debris_m3"`

	WoodenFloorDebrisM3 float64 `json:"wooden_floor_debris_m3"`
	SkirtingDebrisM3    float64 `json:"skirting_debris_m3"`

	DoorDebrisM3                float64 `json:"door_debris_m3"`
	KitchenFurnitureDebrisM3    float64 `json:"kitchen_furniture_debris_m3"`
	BedroomFurnitureDebrisM3    float64 `json:"bedroom_furniture_debris_m3"`
	LivingRoomFurnitureDebrisM3 float64 `json:"living_room_furniture_debris_m3"`
	BathroomDebrisM3            float64 `json:"bathroom_debris_m3"`
	RadiatorDebrisM3            float64 `json:"radiator_debris_m3"`
	SpecialItemsM3              float64 `json:"special_items_m3"`

	MixedDebrisM3 float64 `json:"mixed_debris_m3"`
	WoodDebrisM3  float64 `json:"wood_debris_m3"`
	TotalDebrisM3 float64 `json:"total_debris_m3"`

	ContainersNeeded int     `json:"containers_needed"`
	ClearingHours    float64 `json:"clearing_hours"`
	CarryDownHours   float64 `json:"carry_down_hours"`
}

// Calculate turns the demolition summary into debris volumes. Rooms are
// consulted again for the discrete items (doors, furniture, radiators) the
// area sums do not capture.
func Calculate(sum demolition.Summary, roomList []rooms.Room, cfg demolition.Config, settings Settings) Result {
	st := settings.WithDefaults()
	var res Result

	for _, g := range sum.WallGroups {
		vol := g.AreaM2 * (g.ThicknessCM / 100) * st.WallExpansion
		res.WallGroups = append(res.WallGroups, WallGroupDebris{ThicknessCM: g.ThicknessCM, VolumeM3: vol})
		res.WallDebrisM3 += vol
		res.WallTileDebrisM3 += g.TileAreaM2 * st.WallTileThicknessM * st.CeramicExpansion
	}

	res.FloorTileDebrisM3 = sum.FloorTileRemovalM2 * st.FloorTileThicknessM * st.CeramicExpansion
	res.WallTileDebrisM3 += sum.WallTileRemovalM2 * st.WallTileThicknessM * st.CeramicExpansion
	res.CeramicDebrisM3 = res.FloorTileDebrisM3 + res.WallTileDebrisM3
	res.MortarDebrisM3 = sum.MortarBaseRemovalM2 * st.MortarBaseThicknessM * st.MortarExpansion
	res.CeilingDebrisM3 = sum.FalseCeilingRemovalM2 * st.CeilingThicknessM * st.CeilingExpansion

	res.WoodenFloorDebrisM3 = sum.WoodenFloorRemovalM2 * st.WoodenFloorThicknessM * st.WoodExpansion
	res.SkirtingDebrisM3 = sum.SkirtingRemovalM * st.WoodenFloorThicknessM * skirtingHeightM * st.WoodExpansion

	doors, kitchens, bedrooms, livings, baths, radiators := countDiscreteItems(roomList)
	res.DoorDebrisM3 = float64(doors) * doorDebrisM3
	res.KitchenFurnitureDebrisM3 = float64(kitchens) * kitchenFurnitureDebrisM3
	res.BedroomFurnitureDebrisM3 = float64(bedrooms) * bedroomFurnitureDebrisM3
	res.LivingRoomFurnitureDebrisM3 = float64(livings) * livingRoomFurnitureDebrisM3
	res.BathroomDebrisM3 = float64(baths) * bathroomSuiteDebrisM3
	res.RadiatorDebrisM3 = float64(radiators) * radiatorDebrisM3
	res.SpecialItemsM3 = res.DoorDebrisM3 + res.KitchenFurnitureDebrisM3 + res.BedroomFurnitureDebrisM3 +
		res.LivingRoomFurnitureDebrisM3 + res.BathroomDebrisM3 + float64(radiators)*radiatorDisplayM3

	res.MixedDebrisM3 = res.WallDebrisM3 + res.CeramicDebrisM3 + res.MortarDebrisM3 +
		res.CeilingDebrisM3 + res.BathroomDebrisM3 + res.RadiatorDebrisM3
	res.WoodDebrisM3 = res.WoodenFloorDebrisM3 + res.SkirtingDebrisM3 + res.DoorDebrisM3 +
		res.KitchenFurnitureDebrisM3 + res.BedroomFurnitureDebrisM3 + res.LivingRoomFurnitureDebrisM3
	res.TotalDebrisM3 = res.MixedDebrisM3 + res.WoodDebrisM3

	res.ContainersNeeded = ContainersFor(res.TotalDebrisM3, st.ContainerSizeM3)
	res.ClearingHours = res.TotalDebrisM3 * clearingHoursPerM3
	res.CarryDownHours = res.TotalDebrisM3 * carryDownHoursPerM3
	if !cfg.HasElevator && cfg.Floors > 1 {
		res.CarryDownHours += res.TotalDebrisM3 * float64(cfg.Floors-1) * storeyPenaltyPerM3
	}

	return res
}

// ContainersFor rounds debris volume up to whole skips.
func ContainersFor(totalM3, containerM3 float64) int {
	if totalM3 <= 0 || containerM3 <= 0 {
		return 0
	}
	return int(math.Ceil(totalM3 / containerM3))
}

func countDiscreteItems(roomList []rooms.Room) (doors, kitchens, bedrooms, livings, baths, radiators int) {
	for _, r := range roomList {
		if r.HasDoors {
			doors += len(r.Doors)
		}
		if r.RemoveKitchenFurniture {
			kitchens++
		}
		if r.RemoveBedroomFurniture {
			bedrooms++
		}
		if r.RemoveLivingRoomFurniture {
			livings++
		}
		if r.RemoveBathroomElements {
			baths++
		}
		if r.RemoveRadiators {
			n := r.RadiatorCount
			if n == 0 {
				n = 1
			}
			radiators += n
		}
	}
	return
}
