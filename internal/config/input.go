package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/windplan/windfarm-planner/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan-definition files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan definition from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanDefinition, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.PlanDefinition
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan validates the loaded plan definition. Invalid scenario input
// is a caller error and must be rejected here, before evaluation.
func (ip *InputParser) ValidatePlan(plan *domain.PlanDefinition) error {
	if len(plan.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	for i, scenario := range plan.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i+1, err)
		}
	}

	return nil
}

// validateScenario validates a single scenario input.
func (ip *InputParser) validateScenario(scenario *domain.ScenarioInput) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.TurbineCount < 1 {
		return fmt.Errorf("turbine count must be at least 1")
	}
	if scenario.TurbineUnitCost.LessThan(decimal.Zero) {
		return fmt.Errorf("turbine unit cost cannot be negative")
	}
	if scenario.MaintenancePerTurbine.LessThan(decimal.Zero) {
		return fmt.Errorf("maintenance per turbine cannot be negative")
	}
	if scenario.IncomePerTurbine.LessThan(decimal.Zero) {
		return fmt.Errorf("income per turbine cannot be negative")
	}
	if scenario.BatteryCost.LessThan(decimal.Zero) {
		return fmt.Errorf("battery cost cannot be negative")
	}
	if scenario.BatteryExtraSavings.LessThan(decimal.Zero) {
		return fmt.Errorf("battery extra savings cannot be negative")
	}
	// Battery fields on a scenario without a battery are allowed; they are
	// ignored during evaluation.

	return nil
}

// CreateExamplePlan creates an example plan definition with two scenarios.
func (ip *InputParser) CreateExamplePlan() *domain.PlanDefinition {
	return &domain.PlanDefinition{
		Currency: "$",
		Scenarios: []domain.ScenarioInput{
			{
				Name:                  "Plan A",
				TurbineCount:          5,
				TurbineUnitCost:       decimal.NewFromInt(100000),
				MaintenancePerTurbine: decimal.NewFromInt(3000),
				IncomePerTurbine:      decimal.NewFromInt(10000),
				HasBattery:            false,
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
}
