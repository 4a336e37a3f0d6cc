package output

import (
	"bytes"
	"fmt"

	"github.com/windplan/windfarm-planner/internal/domain"
)

// TextFormatter renders the report document as plain text, one scenario block
// per section in input order. It shares the document builder with the PDF
// formatter so both artifacts carry identical content.
type TextFormatter struct{}

func (c TextFormatter) Name() string { return "text" }

func (c TextFormatter) FileName() string { return "wind_farm_investment_report.txt" }

func (c TextFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	doc := BuildReport(results)

	var buf bytes.Buffer
	fmt.Fprintln(&buf, doc.Title)
	fmt.Fprintln(&buf, "================================")
	for _, section := range doc.Sections {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s: %s\n", section.Label, section.Name)
		for _, line := range section.Lines {
			fmt.Fprintf(&buf, "  %-34s %s\n", line.Label+":", line.Value)
		}
	}
	fmt.Fprintln(&buf)
	if doc.Recommendation != nil {
		fmt.Fprintf(&buf, "Recommended: %s\n", doc.Recommendation.WinnerName)
		fmt.Fprintln(&buf, doc.Recommendation.Justification)
	} else if doc.Warning != "" {
		fmt.Fprintf(&buf, "Warning: %s\n", doc.Warning)
	}
	return buf.Bytes(), nil
}
