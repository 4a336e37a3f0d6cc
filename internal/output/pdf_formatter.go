package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/windplan/windfarm-planner/internal/domain"
)

// PDFFileName is the fixed name of the exported document.
const PDFFileName = "wind_farm_investment_report.pdf"

// PDFMIMEType identifies the exported artifact for download boundaries.
const PDFMIMEType = "application/pdf"

// PDFFormatter renders the report document as a single in-memory PDF. Free
// text is sanitized to the CP-1252 encodable set before it reaches the
// renderer, so encoding failures should not occur for valid input.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) FileName() string { return PDFFileName }

func (p PDFFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	doc := sanitizeDocument(BuildReport(results))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, section := range doc.Sections {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, tr(fmt.Sprintf("%s: %s", section.Label, section.Name)), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, line := range section.Lines {
			pdf.CellFormat(90, 6, tr(line.Label), "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, tr(line.Value), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	if doc.Recommendation != nil {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, tr("Recommended: "+doc.Recommendation.WinnerName), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, tr(doc.Recommendation.Justification), "", "L", false)
	} else if doc.Warning != "" {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, tr("Warning"), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, tr(doc.Warning), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF output: %w", err)
	}
	return buf.Bytes(), nil
}
