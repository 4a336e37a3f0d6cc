package output

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/windplan/windfarm-planner/internal/domain"
	"github.com/windplan/windfarm-planner/pkg/money"
)

// ReportLine is a single label/value row of a scenario section.
type ReportLine struct {
	Label string
	Value string
}

// ScenarioSection is the rendered content for one scenario, in input order.
type ScenarioSection struct {
	Label string // "Scenario 1", "Scenario 2", ...
	Name  string
	Lines []ReportLine
}

// ReportDocument is the full textual content of a report, computed as a
// structured value before any rendering happens. Formatters consume this
// value; none of them recomputes financial figures.
type ReportDocument struct {
	Title    string
	Sections []ScenarioSection

	// Recommendation is nil when no scenario has a finite payback; in that
	// case Warning carries the text the formatter must surface instead.
	Recommendation *RecommendationSection
	Warning        string
}

// RecommendationSection names the winning scenario and its justification.
type RecommendationSection struct {
	WinnerName    string
	Justification string
}

// ReportTitle is the fixed heading of every generated report.
const ReportTitle = "Wind Farm Investment Comparison"

// BuildReport turns a plan comparison into the report document. Scenario
// sections appear in input order and carry every display field of the
// contract; battery lines are present only for scenarios with a battery.
func BuildReport(results *domain.PlanComparison) ReportDocument {
	doc := ReportDocument{Title: ReportTitle}

	symbol := results.CurrencySymbol
	for i, sc := range results.Scenarios {
		section := ScenarioSection{
			Label: fmt.Sprintf("Scenario %d", i+1),
			Name:  sc.Name,
		}
		section.Lines = append(section.Lines,
			ReportLine{"Turbines", fmt.Sprintf("%d", sc.TurbineCount)},
			ReportLine{"Cost per Turbine", formatAmount(symbol, sc.TurbineUnitCost)},
			ReportLine{"Maintenance per Turbine (annual)", formatAmount(symbol, sc.MaintenancePerTurbine)},
			ReportLine{"Income per Turbine (annual)", formatAmount(symbol, sc.IncomePerTurbine)},
		)
		if sc.HasBattery {
			section.Lines = append(section.Lines,
				ReportLine{"Battery Cost", formatAmount(symbol, sc.BatteryCost)},
				ReportLine{"Battery Extra Savings (annual)", formatAmount(symbol, sc.BatteryExtraSavings)},
			)
		}
		section.Lines = append(section.Lines,
			ReportLine{"Total Installation Cost", formatAmount(symbol, sc.InstallCost)},
			// The total income line always folds in the battery contribution;
			// without a battery that contribution is zero, not omitted.
			ReportLine{"Annual Income (with battery)", formatAmount(symbol, sc.TotalIncome)},
			ReportLine{"Annual Maintenance", formatAmount(symbol, sc.TotalMaintenance)},
			ReportLine{"Net Annual Savings", formatAmount(symbol, sc.NetAnnualSavings)},
			ReportLine{"Payback Period", sc.Payback.String()},
		)
		doc.Sections = append(doc.Sections, section)
	}

	if results.Recommendation.HasWinner {
		doc.Recommendation = &RecommendationSection{
			WinnerName:    results.Recommendation.WinnerName,
			Justification: results.Recommendation.Justification,
		}
	} else {
		doc.Warning = results.Recommendation.Justification
	}

	return doc
}

// formatAmount renders a monetary value rounded to two decimals with the
// caller-chosen currency symbol.
func formatAmount(symbol string, d decimal.Decimal) string {
	return money.NewMoneyFromDecimal(d).Round().FormatWith(symbol)
}
