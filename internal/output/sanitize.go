package output

import "strings"

// SanitizeText strips characters the PDF core fonts cannot encode. The
// document is emitted with a single-byte (CP-1252) encoding, so free text is
// reduced to ASCII plus the Latin-1 supplement and the euro sign before it
// reaches the renderer. Numeric and structural content is unaffected since
// digits, punctuation, and spaces all survive.
func SanitizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if encodable(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func encodable(r rune) bool {
	switch {
	case r == '\n' || r == '\t':
		return true
	case r >= 0x20 && r <= 0x7E: // printable ASCII
		return true
	case r >= 0xA0 && r <= 0xFF: // Latin-1 supplement (£, ¥, ©, accents)
		return true
	case r == '€': // euro sign, present in CP-1252
		return true
	default:
		return false
	}
}

// sanitizeDocument returns a copy of the document with every free-text field
// passed through SanitizeText. Formatters that encode to a single-byte
// character set call this before rendering.
func sanitizeDocument(doc ReportDocument) ReportDocument {
	out := ReportDocument{
		Title:   SanitizeText(doc.Title),
		Warning: SanitizeText(doc.Warning),
	}
	out.Sections = make([]ScenarioSection, len(doc.Sections))
	for i, sec := range doc.Sections {
		clean := ScenarioSection{
			Label: SanitizeText(sec.Label),
			Name:  SanitizeText(sec.Name),
			Lines: make([]ReportLine, len(sec.Lines)),
		}
		for j, line := range sec.Lines {
			clean.Lines[j] = ReportLine{
				Label: SanitizeText(line.Label),
				Value: SanitizeText(line.Value),
			}
		}
		out.Sections[i] = clean
	}
	if doc.Recommendation != nil {
		out.Recommendation = &RecommendationSection{
			WinnerName:    SanitizeText(doc.Recommendation.WinnerName),
			Justification: SanitizeText(doc.Recommendation.Justification),
		}
	}
	return out
}
