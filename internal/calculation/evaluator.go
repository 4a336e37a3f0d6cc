package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/windplan/windfarm-planner/internal/domain"
)

// ErrInvalidScenario marks scenario input that violates the input contract
// (turbine count below one, or a negative monetary field). Invalid input is
// rejected loudly rather than clamped, since clamping would corrupt the
// payback comparison downstream.
var ErrInvalidScenario = errors.New("invalid scenario input")

// Evaluate derives the financial metrics for a single scenario. It is a pure
// function: the returned record depends only on the input, and evaluating the
// same input twice yields identical values.
//
// Battery cost and battery savings contribute zero unless a battery is
// selected. A scenario whose net annual savings are zero or negative gets the
// unbounded payback variant rather than a division by zero or a meaningless
// non-positive payback.
func Evaluate(input domain.ScenarioInput) (domain.ComputedScenario, error) {
	if err := checkInput(input); err != nil {
		return domain.ComputedScenario{}, err
	}

	turbines := decimal.NewFromInt(int64(input.TurbineCount))

	installCost := turbines.Mul(input.TurbineUnitCost).Add(input.AppliedBatteryCost())
	totalIncome := turbines.Mul(input.IncomePerTurbine).Add(input.AppliedBatterySavings())
	totalMaintenance := turbines.Mul(input.MaintenancePerTurbine)
	netAnnualSavings := totalIncome.Sub(totalMaintenance)

	payback := domain.NeverPayback()
	if netAnnualSavings.IsPositive() {
		payback = domain.FinitePayback(installCost.Div(netAnnualSavings))
	}

	return domain.ComputedScenario{
		ScenarioInput:    input,
		InstallCost:      installCost,
		TotalIncome:      totalIncome,
		TotalMaintenance: totalMaintenance,
		NetAnnualSavings: netAnnualSavings,
		Payback:          payback,
	}, nil
}

// EvaluateAll evaluates every scenario in order. Output position i derives
// from input position i; the ordering is what later labels scenarios
// ("Scenario 1", "Scenario 2", ...) so it must be stable.
func EvaluateAll(inputs []domain.ScenarioInput) ([]domain.ComputedScenario, error) {
	computed := make([]domain.ComputedScenario, len(inputs))
	for i, input := range inputs {
		cs, err := Evaluate(input)
		if err != nil {
			return nil, fmt.Errorf("scenario %d (%s): %w", i+1, input.Name, err)
		}
		computed[i] = cs
	}
	return computed, nil
}

func checkInput(input domain.ScenarioInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}
	if input.TurbineCount < 1 {
		return fmt.Errorf("%w: turbine count must be at least 1, got %d", ErrInvalidScenario, input.TurbineCount)
	}
	for _, f := range []struct {
		label string
		value decimal.Decimal
	}{
		{"turbine unit cost", input.TurbineUnitCost},
		{"maintenance per turbine", input.MaintenancePerTurbine},
		{"income per turbine", input.IncomePerTurbine},
		{"battery cost", input.BatteryCost},
		{"battery extra savings", input.BatteryExtraSavings},
	} {
		if f.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative, got %s", ErrInvalidScenario, f.label, f.value.String())
		}
	}
	return nil
}
