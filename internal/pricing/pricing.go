package pricing

import (
	"context"
	"fmt"

	"Reforma/internal/calc/pipeline"
)

// Item is one quantity produced by the takeoff engine, ready to be priced.
type Item struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
}

// Line is a priced item as the catalog service returns it. Currency and tax
// stay on the pricing side.
type Line struct {
	Item
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Pricer is the external pricing collaborator.
type Pricer interface {
	Price(ctx context.Context, items []Item) ([]Line, error)
}

// ItemsFromTakeoff flattens a computed takeoff into priceable items, in a
// fixed order, skipping zero quantities.
func ItemsFromTakeoff(res pipeline.Result) []Item {
	var items []Item
	add := func(category, description, unit string, qty float64) {
		if qty > 0 {
			items = append(items, Item{Category: category, Description: description, Unit: unit, Quantity: qty})
		}
	}

	d := res.Demolition
	add("demolition", "Floor tile removal", "m2", d.FloorTileRemovalM2)
	add("demolition", "Wooden floor removal", "m2", d.WoodenFloorRemovalM2)
	add("demolition", "Skirting removal", "m", d.SkirtingRemovalM)
	add("demolition", "Wall tile removal", "m2", d.WallTileRemovalM2)
	add("demolition", "Mortar base removal", "m2", d.MortarBaseRemovalM2)
	add("demolition", "Textured coating removal", "m2", d.GoteleRemovalM2)
	add("demolition", "Wallpaper removal", "m2", d.WallpaperRemovalM2)
	add("demolition", "False ceiling removal", "m2", d.FalseCeilingRemovalM2)
	add("demolition", "Molding removal", "m", d.MoldingRemovalM)
	add("demolition", "Bathroom strip-out", "ud", float64(d.BathroomStripOuts))
	add("demolition", "Kitchen furniture removal", "ud", float64(d.KitchenFurnitureUnits))
	add("demolition", "Bedroom furniture removal", "ud", float64(d.BedroomFurnitureUnits))
	add("demolition", "Living room furniture removal", "ud", float64(d.LivingRoomFurnitureUnits))
	add("demolition", "Radiator removal", "ud", float64(d.RadiatorRemovals))
	add("demolition", "Sewage pipe removal", "ud", float64(d.SewagePipeRemovals))
	add("demolition", "Door removal", "ud", float64(d.DoorRemovals))
	add("demolition", "Pocket frame removal", "ud", float64(d.PocketFrameRemovals))
	for _, g := range d.WallGroups {
		add("demolition", fmt.Sprintf("Wall demolition %.0f cm", g.ThicknessCM), "m2", g.AreaM2)
	}

	add("debris", "Debris containers", "ud", float64(res.Debris.ContainersNeeded))
	add("debris", "Debris clearing", "h", res.Debris.ClearingHours)
	add("debris", "Debris carry-down", "h", res.Debris.CarryDownHours)

	m := res.Reform.Masonry
	add("masonry", "Ceramic floor installation", "m2", m.CeramicFloorM2)
	add("masonry", "Wall tiling", "m2", m.WallTilingM2)
	add("masonry", "Ceiling lowering", "m2", m.CeilingLoweringM2)
	add("masonry", "Partition build", "m2", m.PartitionM2)
	add("masonry", "Wall lining", "m2", m.WallLiningM2)

	p := res.Reform.Plumbing
	add("plumbing", "Water network", "ud", float64(p.WaterNetworks))
	add("plumbing", "Extraction duct", "ud", float64(p.ExtractionDucts))
	add("plumbing", "Sink installation", "ud", float64(p.SinkInstalls))
	add("plumbing", "Washer installation", "ud", float64(p.WasherInstalls))
	add("plumbing", "Dishwasher installation", "ud", float64(p.DishwasherInstalls))
	add("plumbing", "Toilet installation", "ud", float64(p.ToiletInstalls))
	add("plumbing", "Basin installation", "ud", float64(p.BasinInstalls))
	add("plumbing", "Basin tap", "ud", float64(p.BasinTaps))
	add("plumbing", "Shower tray installation", "ud", float64(p.ShowerTrayInstalls))
	add("plumbing", "Shower tap", "ud", float64(p.ShowerTaps))
	add("plumbing", "Bathtub installation", "ud", float64(p.BathtubInstalls))
	add("plumbing", "Bathtub tap", "ud", float64(p.BathtubTaps))
	add("plumbing", "Bidet installation", "ud", float64(p.BidetInstalls))
	add("plumbing", "Shower screen installation", "ud", float64(p.ScreenInstalls))
	add("plumbing", "Gas connection", "ud", float64(p.GasConnections))
	add("plumbing", "Water heater installation", "ud", float64(p.WaterHeaterInstalls))
	add("plumbing", "Water heater removal", "ud", float64(p.WaterHeaterRemovals))

	pa := res.Reform.Paint
	add("paint", "Wall plastering", "m2", pa.PlasterOnlyM2)
	add("paint", "Wall plastering and painting", "m2", pa.PlasterPaintM2)
	add("paint", "Ceiling painting", "m2", pa.CeilingPaintM2)

	c := res.Reform.Carpentry
	add("carpentry", "Floating parquet", "m2", c.FloatingParquetM2)
	add("carpentry", "Wood flooring", "m2", c.WoodFloorM2)
	add("carpentry", "Skirting installation", "m", c.SkirtingM)
	add("carpentry", "Plain door", "ud", float64(c.PlainDoors))
	add("carpentry", "Double door", "ud", float64(c.DoubleDoors))
	add("carpentry", "Sliding pocket door", "ud", float64(c.PocketDoors))
	add("carpentry", "Pocket frame box", "ud", float64(c.PocketFrames))
	add("carpentry", "Exterior sliding door", "ud", float64(c.ExteriorSlidingDoors))
	add("carpentry", "Entrance door", "ud", float64(c.EntranceDoors))
	add("carpentry", "Window", "ud", float64(c.Windows))

	ht := res.Reform.Heating
	add("heating", "Radiator feed network", "ud", float64(ht.RadiatorFeeds))
	add("heating", "Radiator installation", "ud", float64(ht.RadiatorInstalls))
	add("heating", "Electric emitter fixation", "ud", float64(ht.EmitterFixations))
	add("heating", "Electric emitter", "ud", float64(ht.ElectricEmitters))
	add("heating", "Boiler change", "ud", float64(ht.BoilerChanges))
	add("heating", "Gas boiler installation", "ud", float64(ht.GasBoilerInstalls))

	e := res.Reform.Electrical
	add("electrical", "Light point", "ud", float64(e.LightPoints))
	add("electrical", "Socket", "ud", float64(e.Sockets))
	add("electrical", "TV point", "ud", float64(e.TVPoints))
	add("electrical", "AC point", "ud", float64(e.ACPoints))
	add("electrical", "New electrical panel", "ud", float64(e.NewPanels))

	mt := res.Materials
	add("materials", "Bricks", "ud", float64(mt.Bricks))
	add("materials", "Plasterboard", "ud", float64(mt.TotalBoards))

	return items
}
