/*
scenarios.go - Preset submissions for demos and regression checks

PURPOSE:
  Provides ready-made form submissions covering the typical outcomes. The
  API lists and evaluates them, the CLI accepts -scenario, and the tests pin
  their results.

AVAILABLE SCENARIOS:
  eligible-full-time:   permanent employee, all conditions met
  few-weekly-days:      as above but 2 days per week
  short-tenure:         employed five months before the birth
  contract-ends-early:  contract ends a month before the 1.5-year birthday
  contract-continues:   contract ends after the 1.5-year birthday
  working-with-partner: eligible, plans to work during leave, partner on leave
  not-insured:          not enrolled in employment insurance

ADDING NEW SCENARIOS:
  Append to the scenarios slice. IDs must be unique and URL-safe.
*/
package childcare

import (
	"fmt"

	"github.com/warp/leave-eligibility/generic"
)

// Scenario is a named preset submission.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Form        FormData
}

func baseScenarioForm() FormData {
	return FormData{
		ExpectedBirthDate:             "2025-06-01",
		EmploymentType:                string(EmploymentFullTime),
		EmploymentStartDate:           "2023-01-01",
		WeeklyWorkDays:                5,
		EnrolledInEmploymentInsurance: true,
	}
}

var scenarios = []Scenario{
	{
		ID:          "eligible-full-time",
		Name:        "Eligible Full-Time",
		Description: "Permanent full-time employee, insured, 5 days per week",
		Form:        baseScenarioForm(),
	},
	{
		ID:          "few-weekly-days",
		Name:        "Few Weekly Days",
		Description: "Works only 2 days per week",
		Form: func() FormData {
			f := baseScenarioForm()
			f.WeeklyWorkDays = 2
			return f
		}(),
	},
	{
		ID:          "short-tenure",
		Name:        "Short Tenure",
		Description: "Started five months before the expected birth date",
		Form: func() FormData {
			f := baseScenarioForm()
			f.EmploymentStartDate = "2025-01-01"
			return f
		}(),
	},
	{
		ID:          "contract-ends-early",
		Name:        "Contract Ends Early",
		Description: "Contract ends one month before the child's 1.5-year birthday",
		Form: func() FormData {
			f := baseScenarioForm()
			f.EmploymentType = string(EmploymentContract)
			f.ContractEndDate = "2026-11-01"
			return f
		}(),
	},
	{
		ID:          "contract-continues",
		Name:        "Contract Continues",
		Description: "Contract ends after the child's 1.5-year birthday",
		Form: func() FormData {
			f := baseScenarioForm()
			f.EmploymentType = string(EmploymentContract)
			f.ContractEndDate = "2027-03-31"
			return f
		}(),
	},
	{
		ID:          "working-with-partner",
		Name:        "Working With Partner On Leave",
		Description: "Eligible, plans to work during leave, partner also takes leave",
		Form: func() FormData {
			f := baseScenarioForm()
			f.PlanningToWorkDuringLeave = true
			f.PartnerTakingLeave = true
			return f
		}(),
	},
	{
		ID:          "not-insured",
		Name:        "Not Insured",
		Description: "Not enrolled in employment insurance",
		Form: func() FormData {
			f := baseScenarioForm()
			f.EnrolledInEmploymentInsurance = false
			return f
		}(),
	},
}

// Scenarios returns all presets in display order.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

// FindScenario returns the preset with the given ID.
func FindScenario(id string) (Scenario, error) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("scenario %q: %w", id, generic.ErrNotFound)
}
