package output_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windplan/windfarm-planner/internal/calculation"
	"github.com/windplan/windfarm-planner/internal/domain"
	"github.com/windplan/windfarm-planner/internal/output"
)

func comparisonFixture(t *testing.T) *domain.PlanComparison {
	t.Helper()
	plan := &domain.PlanDefinition{
		Currency: "$",
		Scenarios: []domain.ScenarioInput{
			{
				Name:                  "Plan A",
				TurbineCount:          5,
				TurbineUnitCost:       decimal.NewFromInt(100000),
				MaintenancePerTurbine: decimal.NewFromInt(3000),
				IncomePerTurbine:      decimal.NewFromInt(10000),
			},
			{
				Name:                  "Plan B",
				TurbineCount:          5,
				TurbineUnitCost:       decimal.NewFromInt(90000),
				MaintenancePerTurbine: decimal.NewFromInt(3000),
				IncomePerTurbine:      decimal.NewFromInt(9000),
				HasBattery:            true,
				BatteryCost:           decimal.NewFromInt(50000),
				BatteryExtraSavings:   decimal.NewFromInt(4000),
			},
		},
	}
	results, err := calculation.NewPlanningEngine().RunPlan(plan)
	require.NoError(t, err)
	return results
}

func noWinnerFixture(t *testing.T) *domain.PlanComparison {
	t.Helper()
	plan := &domain.PlanDefinition{
		Currency: "$",
		Scenarios: []domain.ScenarioInput{
			{
				Name:                  "Drain",
				TurbineCount:          2,
				TurbineUnitCost:       decimal.NewFromInt(10000),
				MaintenancePerTurbine: decimal.NewFromInt(900),
				IncomePerTurbine:      decimal.NewFromInt(500),
			},
		},
	}
	results, err := calculation.NewPlanningEngine().RunPlan(plan)
	require.NoError(t, err)
	return results
}

func lineValue(t *testing.T, section output.ScenarioSection, label string) string {
	t.Helper()
	for _, line := range section.Lines {
		if line.Label == label {
			return line.Value
		}
	}
	t.Fatalf("section %s has no line %q", section.Label, label)
	return ""
}

func hasLine(section output.ScenarioSection, label string) bool {
	for _, line := range section.Lines {
		if line.Label == label {
			return true
		}
	}
	return false
}

func TestBuildReport_SectionsInInputOrder(t *testing.T) {
	doc := output.BuildReport(comparisonFixture(t))

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "Scenario 1", doc.Sections[0].Label)
	assert.Equal(t, "Plan A", doc.Sections[0].Name)
	assert.Equal(t, "Scenario 2", doc.Sections[1].Label)
	assert.Equal(t, "Plan B", doc.Sections[1].Name)
}

func TestBuildReport_ScenarioContent(t *testing.T) {
	doc := output.BuildReport(comparisonFixture(t))

	a := doc.Sections[0]
	assert.Equal(t, "5", lineValue(t, a, "Turbines"))
	assert.Equal(t, "$100000.00", lineValue(t, a, "Cost per Turbine"))
	assert.Equal(t, "$3000.00", lineValue(t, a, "Maintenance per Turbine (annual)"))
	assert.Equal(t, "$10000.00", lineValue(t, a, "Income per Turbine (annual)"))
	assert.Equal(t, "$500000.00", lineValue(t, a, "Total Installation Cost"))
	assert.Equal(t, "$50000.00", lineValue(t, a, "Annual Income (with battery)"))
	assert.Equal(t, "$15000.00", lineValue(t, a, "Annual Maintenance"))
	assert.Equal(t, "$35000.00", lineValue(t, a, "Net Annual Savings"))
	assert.Equal(t, "14.29 years", lineValue(t, a, "Payback Period"))

	// Battery lines appear only for scenarios with a battery.
	assert.False(t, hasLine(a, "Battery Cost"))

	b := doc.Sections[1]
	assert.Equal(t, "$50000.00", lineValue(t, b, "Battery Cost"))
	assert.Equal(t, "$4000.00", lineValue(t, b, "Battery Extra Savings (annual)"))
	assert.Equal(t, "$49000.00", lineValue(t, b, "Annual Income (with battery)"))
	assert.Equal(t, "14.71 years", lineValue(t, b, "Payback Period"))
}

func TestBuildReport_Recommendation(t *testing.T) {
	doc := output.BuildReport(comparisonFixture(t))

	require.NotNil(t, doc.Recommendation)
	assert.Equal(t, "Plan A", doc.Recommendation.WinnerName)
	assert.Contains(t, doc.Recommendation.Justification, "14.29")
	assert.Empty(t, doc.Warning)
}

func TestBuildReport_NoWinnerOmitsRecommendation(t *testing.T) {
	doc := output.BuildReport(noWinnerFixture(t))

	assert.Nil(t, doc.Recommendation)
	assert.NotEmpty(t, doc.Warning)
	assert.Equal(t, "Not achievable", lineValue(t, doc.Sections[0], "Payback Period"))
}
