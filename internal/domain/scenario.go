package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioInput is one candidate wind-farm investment plan as supplied by the
// user. Names are display-only and may repeat; ordering of scenarios within a
// plan is significant and is preserved through evaluation and reporting.
type ScenarioInput struct {
	Name                  string          `json:"name" yaml:"name"`
	TurbineCount          int             `json:"turbine_count" yaml:"turbine_count"`
	TurbineUnitCost       decimal.Decimal `json:"turbine_unit_cost" yaml:"turbine_unit_cost"`
	MaintenancePerTurbine decimal.Decimal `json:"maintenance_per_turbine" yaml:"maintenance_per_turbine"`
	IncomePerTurbine      decimal.Decimal `json:"income_per_turbine" yaml:"income_per_turbine"`
	HasBattery            bool            `json:"has_battery" yaml:"has_battery"`
	BatteryCost           decimal.Decimal `json:"battery_cost" yaml:"battery_cost"`
	BatteryExtraSavings   decimal.Decimal `json:"battery_extra_savings" yaml:"battery_extra_savings"`
}

// AppliedBatteryCost returns the battery cost that actually enters the
// installation cost: zero whenever no battery is selected, regardless of any
// stored value.
func (si ScenarioInput) AppliedBatteryCost() decimal.Decimal {
	if !si.HasBattery {
		return decimal.Zero
	}
	return si.BatteryCost
}

// AppliedBatterySavings returns the battery contribution to annual income:
// zero whenever no battery is selected.
func (si ScenarioInput) AppliedBatterySavings() decimal.Decimal {
	if !si.HasBattery {
		return decimal.Zero
	}
	return si.BatteryExtraSavings
}

// Payback is the payback period of a scenario. A payback is either finite
// (Years holds the value) or unbounded, meaning the installation cost is
// never recovered because net annual savings are zero or negative. The two
// cases are kept as an explicit variant so an unbounded payback can never be
// compared or formatted as an ordinary number.
type Payback struct {
	Unbounded bool            `json:"unbounded"`
	Years     decimal.Decimal `json:"years"` // zero when Unbounded
}

// FinitePayback constructs a finite payback of the given number of years.
func FinitePayback(years decimal.Decimal) Payback {
	return Payback{Years: years}
}

// NeverPayback constructs the unbounded ("never pays back") variant.
func NeverPayback() Payback {
	return Payback{Unbounded: true}
}

// IsFinite reports whether the payback is a bounded number of years.
func (p Payback) IsFinite() bool { return !p.Unbounded }

// ShorterThan reports whether p is strictly shorter than other. Any finite
// payback is shorter than an unbounded one; an unbounded payback is never
// shorter than anything, including another unbounded payback.
func (p Payback) ShorterThan(other Payback) bool {
	if p.Unbounded {
		return false
	}
	if other.Unbounded {
		return true
	}
	return p.Years.LessThan(other.Years)
}

// String renders the payback for display: the two-decimal number of years,
// or "Not achievable" for the unbounded case.
func (p Payback) String() string {
	if p.Unbounded {
		return "Not achievable"
	}
	return p.Years.StringFixed(2) + " years"
}

// ComputedScenario extends a ScenarioInput with its derived financial fields.
// All derived fields are functions only of the input fields on the same
// record; a ComputedScenario is created once per evaluation pass and never
// mutated afterwards.
type ComputedScenario struct {
	ScenarioInput `yaml:",inline"`

	InstallCost      decimal.Decimal `json:"install_cost"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalMaintenance decimal.Decimal `json:"total_maintenance"`
	NetAnnualSavings decimal.Decimal `json:"net_annual_savings"`
	Payback          Payback         `json:"payback"`
}

// Recommendation identifies the winning scenario of a comparison, or records
// that no scenario ever recovers its installation cost. WinnerIndex refers
// into the ordered computed-scenario slice the recommendation was derived
// from; it is -1 when HasWinner is false.
type Recommendation struct {
	HasWinner     bool   `json:"has_winner"`
	WinnerIndex   int    `json:"winner_index"`
	WinnerName    string `json:"winner_name,omitempty"`
	Justification string `json:"justification"`
}

// PlanComparison is the complete result of evaluating a plan definition: the
// computed scenarios in input order, the recommendation, and the currency
// symbol chosen by the caller for display.
type PlanComparison struct {
	Scenarios      []ComputedScenario `json:"scenarios"`
	Recommendation Recommendation     `json:"recommendation"`
	CurrencySymbol string             `json:"currency_symbol"`
}

// PlanDefinition is the user-supplied input document: a currency symbol and
// an ordered list of candidate scenarios.
type PlanDefinition struct {
	Currency  string          `json:"currency" yaml:"currency"`
	Scenarios []ScenarioInput `json:"scenarios" yaml:"scenarios"`
}
