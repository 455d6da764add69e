package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	"Reforma/internal/calc/pipeline"
	"Reforma/internal/pricing"
)

type Input struct {
	Project string          `json:"project"`
	Author  string          `json:"author"`
	Title   string          `json:"title"`
	Notes   string          `json:"notes"`
	Takeoff pipeline.Result `json:"takeoff"`
	Lines   []pricing.Line  `json:"lines,omitempty"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Renovation Takeoff"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	writeItems(pdf, pricing.ItemsFromTakeoff(input.Takeoff))
	writeDebris(pdf, input.Takeoff)
	writeLines(pdf, input.Lines)

	if input.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"takeoff.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
}

func writeItems(pdf *gofpdf.Fpdf, items []pricing.Item) {
	category := ""
	for _, it := range items {
		if it.Category != category {
			category = it.Category
			sectionTitle(pdf, category)
		}
		pdf.Cell(110, 6, it.Description)
		pdf.Cell(40, 6, fmt.Sprintf("%.2f %s", it.Quantity, it.Unit))
		pdf.Ln(6)
	}
}

func writeDebris(pdf *gofpdf.Fpdf, takeoff pipeline.Result) {
	d := takeoff.Debris
	if d.TotalDebrisM3 <= 0 {
		return
	}
	sectionTitle(pdf, "debris summary")
	rows := []struct {
		label string
		value float64
		unit  string
	}{
		{"Mixed debris", d.MixedDebrisM3, "m3"},
		{"Wood debris", d.WoodDebrisM3, "m3"},
		{"Total debris", d.TotalDebrisM3, "m3"},
		{"Containers", float64(d.ContainersNeeded), "ud"},
		{"Clearing time", d.ClearingHours, "h"},
		{"Carry-down time", d.CarryDownHours, "h"},
	}
	for _, row := range rows {
		pdf.Cell(110, 6, row.label)
		pdf.Cell(40, 6, fmt.Sprintf("%.2f %s", row.value, row.unit))
		pdf.Ln(6)
	}
}

func writeLines(pdf *gofpdf.Fpdf, lines []pricing.Line) {
	if len(lines) == 0 {
		return
	}
	sectionTitle(pdf, "budget")
	var total float64
	for _, l := range lines {
		pdf.Cell(90, 6, l.Description)
		pdf.Cell(35, 6, fmt.Sprintf("%.2f %s", l.Quantity, l.Unit))
		pdf.Cell(35, 6, fmt.Sprintf("%.2f", l.Total))
		pdf.Ln(6)
		total += l.Total
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(125, 6, "Total")
	pdf.Cell(35, 6, fmt.Sprintf("%.2f", total))
	pdf.Ln(6)
}
