package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/voyago/travelsearch/internal/models"
)

// RenderSummary renders a search result as a one-page PDF itinerary summary
// and returns the raw bytes.
func RenderSummary(req models.SearchRequest, options []models.TravelOption) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFillColor(21, 32, 43)
	pdf.Rect(0, 0, 210, 24, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(20, 7)
	pdf.CellFormat(170, 10, "Travel Options Summary", "", 1, "L", false, 0, "")

	pdf.SetY(32)
	pdf.SetTextColor(0, 0, 0)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(120, 7, value, "", 1, "L", false, 0, "")
	}

	row("Route", fmt.Sprintf("%s to %s", req.Origin, req.Destination))
	row("Departure", req.DepartureDate)
	if req.ReturnDate != "" {
		row("Return", req.ReturnDate)
	}
	row("Passengers", fmt.Sprintf("%d", req.Passengers))
	row("Mode", string(req.Mode))
	row("Generated", time.Now().UTC().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	pdf.SetFillColor(21, 32, 43)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 8, "  Carrier", "", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Departs", "", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Duration", "", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Stops", "", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Price", "", 1, "R", true, 0, "")
	pdf.SetTextColor(20, 20, 20)

	for _, opt := range options {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(60, 7, fmt.Sprintf("%s %s", opt.Carrier.Name, opt.Vehicle.Number), "B", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, opt.DepartureTime.Format("15:04"), "B", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, formatDuration(opt.DurationMinutes), "B", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", opt.Stops), "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(30, 7, opt.PriceFormatted, "B", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}
