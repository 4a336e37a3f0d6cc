package calculation

import (
	"fmt"

	"github.com/windplan/windfarm-planner/internal/domain"
)

// PlanningEngine orchestrates the evaluation pipeline: evaluate every
// scenario in order, select a recommendation, and package the result for the
// output layer. It holds no per-plan state between runs.
type PlanningEngine struct {
	Logger Logger
}

// NewPlanningEngine creates an engine with a no-op logger.
func NewPlanningEngine() *PlanningEngine {
	return &PlanningEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (pe *PlanningEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// RunPlan evaluates all scenarios of a plan definition and selects the
// recommended one. Scenario ordering from the definition is preserved 1:1 in
// the comparison.
func (pe *PlanningEngine) RunPlan(plan *domain.PlanDefinition) (*domain.PlanComparison, error) {
	computed, err := EvaluateAll(plan.Scenarios)
	if err != nil {
		return nil, fmt.Errorf("evaluation failed: %w", err)
	}

	for i, sc := range computed {
		pe.Logger.Debugf("scenario %d (%s): install=%s net=%s payback=%s",
			i+1, sc.Name, sc.InstallCost.StringFixed(2), sc.NetAnnualSavings.StringFixed(2), sc.Payback)
	}

	rec := SelectRecommendation(computed)
	if !rec.HasWinner {
		pe.Logger.Warnf("no viable plan: all %d scenarios have unbounded payback", len(computed))
	} else {
		pe.Logger.Infof("recommended scenario %d (%s)", rec.WinnerIndex+1, rec.WinnerName)
	}

	return &domain.PlanComparison{
		Scenarios:      computed,
		Recommendation: rec,
		CurrencySymbol: plan.Currency,
	}, nil
}
