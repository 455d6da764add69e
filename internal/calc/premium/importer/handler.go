package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"Reforma/internal/calc/pipeline"
	"Reforma/internal/calc/rooms"
	"Reforma/internal/pricing"
)

type Handler struct{}

type RoomImportResult struct {
	Count int           `json:"count"`
	Rooms []rooms.Input `json:"rooms"`
}

// Rooms parses an uploaded xlsx sheet into raw room records, one room per
// row, header row skipped.
func (h *Handler) Rooms(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	excelRows, err := f.GetRows(sheet)
	if err != nil || len(excelRows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var imported []rooms.Input
	for i := 1; i < len(excelRows); i++ {
		row := excelRows[i]
		input, err := parseRoomRow(row, i)
		if err != nil {
			continue
		}
		imported = append(imported, input)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RoomImportResult{Count: len(imported), Rooms: imported})
}

// Export writes a computed takeoff as an xlsx workbook, one item per row.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var takeoff pipeline.Result
	if err := json.NewDecoder(r.Body).Decode(&takeoff); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Category", "Description", "Unit", "Quantity"}
	for col, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, hd)
	}
	for i, item := range pricing.ItemsFromTakeoff(takeoff) {
		values := []any{item.Category, item.Description, item.Unit, item.Quantity}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"takeoff.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}

// expected columns: type, area_m2, perimeter_m, height_m(optional),
// floor_material, wall_material, remove_floor, remove_wall_tiles
func parseRoomRow(row []string, index int) (rooms.Input, error) {
	if len(row) < 3 {
		return rooms.Input{}, fmt.Errorf("bad row")
	}
	area, err := toFloat(row[1])
	if err != nil {
		return rooms.Input{}, err
	}
	perimeter, err := toFloat(row[2])
	if err != nil {
		return rooms.Input{}, err
	}
	in := rooms.Input{
		ID:              fmt.Sprintf("import-%d", index),
		Type:            row[0],
		MeasurementMode: "area_perimeter",
		AreaM2:          area,
		PerimeterM:      perimeter,
	}
	if len(row) > 3 && row[3] != "" {
		in.CustomHeightM, _ = toFloat(row[3])
	}
	if len(row) > 4 {
		in.FloorMaterial = row[4]
	}
	if len(row) > 5 {
		in.WallMaterial = row[5]
	}
	if len(row) > 6 {
		in.RemoveFloor = toBool(row[6])
	}
	if len(row) > 7 {
		in.RemoveWallTiles = toBool(row[7])
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}

func toBool(s string) bool {
	switch rooms.Fold(s) {
	case "si", "yes", "true", "1", "x":
		return true
	}
	return false
}
