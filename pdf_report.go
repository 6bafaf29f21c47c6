package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// PDF palette matching the dashboard chart colours.
var (
	pdfBlue  = [3]int{59, 130, 246}
	pdfGreen = [3]int{16, 185, 129}
	pdfGrey  = [3]int{229, 231, 235}
	pdfAmber = [3]int{251, 191, 36}
	pdfRed   = [3]int{239, 68, 68}
)

// GenerateImpactPDFReport builds the one-page impact report for a single
// adoption rate and returns the PDF bytes.
func GenerateImpactPDFReport(config *Config, metrics Metrics) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s Impact Report for %s", config.Candidate.Name, config.Country), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s vs %s at %.0f%% adoption - generated %s",
		config.Incumbent.Name, config.Candidate.Name, metrics.AdoptionRate,
		time.Now().Format("2 January 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Lives saved summary
	writePDFSectionHeader(pdf, "Lives Saved")
	writePDFMetricRow(pdf, [][2]string{
		{"Children's Lives Saved", FormatCount(metrics.LivesSaved.Children)},
		{"Adult Lives Saved", FormatCount(metrics.LivesSaved.Adults)},
		{"Total Lives Saved", FormatCount(metrics.LivesSaved.Total)},
	})
	pdf.Ln(2)

	writePDFChart(pdf, BuildLivesSavedChart(metrics, config), false)
	pdf.Ln(4)

	// Cost summary
	writePDFSectionHeader(pdf, "Cost Analysis")
	writePDFMetricRow(pdf, [][2]string{
		{"Total Treatment Cost", FormatUSD(metrics.TotalCost)},
		{"Additional Cost", FormatUSD(metrics.AdditionalCost)},
		{"Cost per Life Saved", FormatUSD(metrics.CostPerLifeSaved)},
	})
	pdf.Ln(2)

	writePDFChart(pdf, BuildCostChart(metrics, config), true)
	pdf.Ln(4)

	// Cost breakdown table
	writePDFSectionHeader(pdf, "Cost Breakdown by Age Group")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(241, 245, 249)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(50, 7, "Treatment", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 7, "Children", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 7, "Adults", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 7, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(50, 7, config.Incumbent.Name, "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, FormatUSD(metrics.IncumbentCosts.Children), "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, FormatUSD(metrics.IncumbentCosts.Adults), "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, FormatUSD(metrics.IncumbentCosts.Total), "1", 1, "R", false, 0, "")
	pdf.CellFormat(50, 7, config.Candidate.Name, "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, FormatUSD(metrics.CandidateCosts.Children), "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, FormatUSD(metrics.CandidateCosts.Adults), "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, FormatUSD(metrics.CandidateCosts.Total), "1", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Reference figures
	writePDFSectionHeader(pdf, "Reference Figures")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 41, 59)
	out := config.Outcomes
	lines := []string{
		fmt.Sprintf("Base cost difference: %s (constant across adoption rates)", FormatUSD(metrics.CostDifference)),
		fmt.Sprintf("Cost per life saved at 100%% adoption: %s", FormatUSD(metrics.BaselineCostPerLife)),
		fmt.Sprintf("Total potential lives saved: %s", FormatCount(int(out.PotentialLivesTotal()))),
		fmt.Sprintf("Children mortality reduction: %.1f%% (%.1f%% to %.1f%%)",
			(out.ChildrenMortalityBefore-out.ChildrenMortalityAfter)*100,
			out.ChildrenMortalityBefore*100, out.ChildrenMortalityAfter*100),
		fmt.Sprintf("Adult mortality reduction: %.1f%% (%.0f%% to %.0f%%)",
			(out.AdultMortalityBefore-out.AdultMortalityAfter)*100,
			out.AdultMortalityBefore*100, out.AdultMortalityAfter*100),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePDFSectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(37, 99, 235)
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+185, pdf.GetY())
	pdf.Ln(2)
}

// writePDFMetricRow prints up to three label/value pairs side by side.
func writePDFMetricRow(pdf *fpdf.Fpdf, pairs [][2]string) {
	width := 185.0 / float64(len(pairs))

	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(30, 41, 59)
	for _, p := range pairs {
		pdf.CellFormat(width, 7, p[1], "", 0, "C", false, 0, "")
	}
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 116, 139)
	for _, p := range pairs {
		pdf.CellFormat(width, 5, p[0], "", 0, "C", false, 0, "")
	}
	pdf.Ln(7)
}

// writePDFChart draws a chart spec as horizontal bars with filled rects.
func writePDFChart(pdf *fpdf.Fpdf, spec ChartSpec, money bool) {
	max := spec.MaxValue()
	if max <= 0 {
		max = 1
	}

	const labelWidth = 55.0
	const trackWidth = 95.0
	const barHeight = 5.0

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(0, 6, spec.Title, "", 1, "L", false, 0, "")

	if len(spec.Series) == 0 {
		return
	}

	for _, group := range spec.Series[0].Bars {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetTextColor(100, 116, 139)
		pdf.CellFormat(0, 5, group.Label, "", 1, "L", false, 0, "")

		for _, s := range spec.Series {
			for _, b := range s.Bars {
				if b.Label != group.Label {
					continue
				}

				pdf.SetFont("Helvetica", "", 8)
				pdf.SetTextColor(30, 41, 59)
				pdf.CellFormat(labelWidth, barHeight+1, s.Name, "", 0, "R", false, 0, "")

				x, y := pdf.GetX(), pdf.GetY()
				rgb := pdfBarColor(b.Color)
				pdf.SetFillColor(241, 245, 249)
				pdf.Rect(x+2, y+0.5, trackWidth, barHeight, "F")
				pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
				width := b.Value / max * trackWidth
				if width < 0.8 {
					width = 0.8
				}
				pdf.Rect(x+2, y+0.5, width, barHeight, "F")

				value := FormatCount(int(b.Value))
				if money {
					value = FormatUSD(b.Value)
				}
				pdf.SetX(x + trackWidth + 4)
				pdf.CellFormat(0, barHeight+1, value, "", 1, "L", false, 0, "")
			}
		}
	}
}

// pdfBarColor maps the shared CSS palette onto RGB triples.
func pdfBarColor(css string) [3]int {
	switch css {
	case colorChildren:
		return pdfBlue
	case colorAdults:
		return pdfGreen
	case colorIncumbent:
		return pdfAmber
	case colorCandidate:
		return pdfRed
	default:
		return pdfGrey
	}
}
