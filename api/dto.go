/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the evaluator's Go types from the wire contract. Field names are camelCase
  to match the form the requests come from.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Envelope types

VALIDATION:
  Validation is done by childcare.ParseForm, not in DTOs. DTOs are pure
  data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - childcare/form.go: FormData
*/
package api

import (
	"github.com/warp/leave-eligibility/childcare"
	"github.com/warp/leave-eligibility/locale"
)

// EvaluateRequest is the body of POST /api/eligibility.
type EvaluateRequest = childcare.FormData

// ResultDTO is the evaluator output with codes instead of text. The check
// CLI prints the same structure for -json.
type ResultDTO struct {
	IsEligible                            bool     `json:"isEligible"`
	ChildOneYearBirthday                  string   `json:"childOneYearBirthday"`
	ChildOneHalfYearBirthday              string   `json:"childOneHalfYearBirthday"`
	EmploymentPeriodExceedsOneYear        bool     `json:"employmentPeriodExceedsOneYear"`
	EmploymentContinuesBeyondOneHalfYears bool     `json:"employmentContinuesBeyondOneHalfYears"`
	WeeklyWorkDaysLessThanThree           bool     `json:"weeklyWorkDaysLessThanThree"`
	Message                               string   `json:"message"`
	Advice                                []string `json:"advice"`
	TenureAtBirthDays                     string   `json:"tenureAtBirthDays"`
}

// EvaluationResponse is returned for every successful evaluation.
type EvaluationResponse struct {
	EvaluationID string             `json:"evaluationId"`
	ScenarioID   string             `json:"scenarioId,omitempty"`
	Input        childcare.FormData `json:"input"`
	Result       ResultDTO          `json:"result"`
	Report       locale.Report      `json:"report"`
}

// ScenarioDTO describes a preset submission.
type ScenarioDTO struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Form        childcare.FormData `json:"form"`
}

// LocaleDTO describes a supported locale.
type LocaleDTO struct {
	Tag     string `json:"tag"`
	Default bool   `json:"default"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string                `json:"error"`
	Details string                `json:"details,omitempty"`
	Fields  []locale.FieldMessage `json:"fields,omitempty"`
}

// NewResultDTO converts an evaluation result to its wire form.
func NewResultDTO(res childcare.Result) ResultDTO {
	advice := make([]string, len(res.Advice))
	for i, code := range res.Advice {
		advice[i] = string(code)
	}
	return ResultDTO{
		IsEligible:                            res.IsEligible,
		ChildOneYearBirthday:                  res.ChildOneYearBirthday.String(),
		ChildOneHalfYearBirthday:              res.ChildOneHalfYearBirthday.String(),
		EmploymentPeriodExceedsOneYear:        res.EmploymentPeriodExceedsOneYear,
		EmploymentContinuesBeyondOneHalfYears: res.EmploymentContinuesBeyondOneHalfYears,
		WeeklyWorkDaysLessThanThree:           res.WeeklyWorkDaysLessThanThree,
		Message:                               string(res.Message),
		Advice:                                advice,
		TenureAtBirthDays:                     res.TenureAtBirth.StringFixed(2),
	}
}

func toScenarioDTO(s childcare.Scenario) ScenarioDTO {
	return ScenarioDTO{ID: s.ID, Name: s.Name, Description: s.Description, Form: s.Form}
}
