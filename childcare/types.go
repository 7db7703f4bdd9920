// Package childcare implements the childcare leave eligibility check.
// It uses the generic package for dates, quantities and ordered checklists.
package childcare

import (
	"fmt"
	"strings"

	"github.com/warp/leave-eligibility/generic"
)

// =============================================================================
// EMPLOYMENT TYPE
// =============================================================================

// EmploymentType is the declared kind of employment contract.
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full-time"
	EmploymentContract EmploymentType = "contract"
	EmploymentPartTime EmploymentType = "part-time"
	EmploymentTemp     EmploymentType = "temp"
)

// EmploymentTypes lists every accepted employment type in display order.
var EmploymentTypes = []EmploymentType{
	EmploymentFullTime,
	EmploymentContract,
	EmploymentPartTime,
	EmploymentTemp,
}

// ParseEmploymentType accepts the canonical values case-insensitively,
// with "_" or " " in place of "-".
func ParseEmploymentType(s string) (EmploymentType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	for _, t := range EmploymentTypes {
		if string(t) == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: employment type %q", generic.ErrInvalidEnum, s)
}

// HasFixedTerm reports whether this employment type must declare a contract end date.
func (t EmploymentType) HasFixedTerm() bool {
	return t == EmploymentContract || t == EmploymentTemp
}

// =============================================================================
// INPUT / RESULT
// =============================================================================

// Input holds the facts an evaluation is based on. It is assumed valid:
// use ParseForm to build one from raw submitted values.
type Input struct {
	ExpectedBirthDate   generic.TimePoint
	EmploymentType      EmploymentType
	EmploymentStartDate generic.TimePoint
	// ContractEndDate is nil when the employment has no fixed end.
	ContractEndDate               *generic.TimePoint
	WeeklyWorkDays                int
	EnrolledInEmploymentInsurance bool
	PlanningToWorkDuringLeave     bool
	PartnerTakingLeave            bool
}

// EmploymentPeriod returns the employment span. A missing contract end date
// is treated as open-ended employment, whatever the declared type.
func (in Input) EmploymentPeriod() generic.Period {
	return generic.Period{Start: in.EmploymentStartDate, End: in.ContractEndDate}
}

// Result is the outcome of Evaluate. It is never modified after being returned.
type Result struct {
	IsEligible               bool
	ChildOneYearBirthday     generic.TimePoint
	ChildOneHalfYearBirthday generic.TimePoint

	EmploymentPeriodExceedsOneYear        bool
	EmploymentContinuesBeyondOneHalfYears bool
	WeeklyWorkDaysLessThanThree           bool
	// EnrolledInEmploymentInsurance echoes the input so the condition
	// report can be built from the result alone.
	EnrolledInEmploymentInsurance bool

	Message MessageCode
	Advice  []ReasonCode

	// TenureAtBirth is informational only; no predicate reads it.
	TenureAtBirth generic.Amount
}

// =============================================================================
// CODES
// =============================================================================

// MessageCode selects the summary sentence.
type MessageCode string

const (
	MessageEligible    MessageCode = "eligible"
	MessageNotEligible MessageCode = "not_eligible"
)

// MessageCodes lists every summary code.
var MessageCodes = []MessageCode{MessageEligible, MessageNotEligible}

// Key is the catalog key for the summary sentence.
func (c MessageCode) Key() string { return "message." + string(c) }

// ReasonCode identifies one advice entry.
type ReasonCode string

// Advice entries, in the order they are emitted.
const (
	ReasonInsuranceNotEnrolled      ReasonCode = "insurance_not_enrolled"
	ReasonTenureUnderOneYear        ReasonCode = "tenure_under_one_year"
	ReasonEmploymentEndsBeforeLimit ReasonCode = "employment_ends_before_milestone"
	ReasonWeeklyDaysBelowMinimum    ReasonCode = "weekly_days_below_minimum"
	ReasonWorkingDuringLeave        ReasonCode = "working_during_leave"
	ReasonPartnerTakingLeave        ReasonCode = "partner_taking_leave"
	ReasonEligibleCongratulations   ReasonCode = "eligible_congratulations"
	ReasonSubmissionTiming          ReasonCode = "submission_timing"
)

// ReasonCodes lists every advice code in emission order.
var ReasonCodes = []ReasonCode{
	ReasonInsuranceNotEnrolled,
	ReasonTenureUnderOneYear,
	ReasonEmploymentEndsBeforeLimit,
	ReasonWeeklyDaysBelowMinimum,
	ReasonWorkingDuringLeave,
	ReasonPartnerTakingLeave,
	ReasonEligibleCongratulations,
	ReasonSubmissionTiming,
}

// Key is the catalog key for the advice text.
func (c ReasonCode) Key() string { return "advice." + string(c) }

// ConditionCode identifies one core predicate in the condition report.
type ConditionCode string

const (
	ConditionInsuranceEnrolled      ConditionCode = "insurance_enrolled"
	ConditionEmploymentPeriod       ConditionCode = "employment_period"
	ConditionEmploymentContinuation ConditionCode = "employment_continuation"
	ConditionWeeklyWorkDays         ConditionCode = "weekly_work_days"
)

// ConditionCodes lists every core predicate in report order.
var ConditionCodes = []ConditionCode{
	ConditionInsuranceEnrolled,
	ConditionEmploymentPeriod,
	ConditionEmploymentContinuation,
	ConditionWeeklyWorkDays,
}

// Key is the catalog key for the condition label.
func (c ConditionCode) Key() string { return "condition." + string(c) }

// Condition is one line of the condition report: a core predicate stated
// positively, so Met is true when it supports eligibility.
type Condition struct {
	Code ConditionCode
	Met  bool
}

// Conditions returns the four core predicates in report order.
func (r Result) Conditions() []Condition {
	return []Condition{
		{Code: ConditionInsuranceEnrolled, Met: r.EnrolledInEmploymentInsurance},
		{Code: ConditionEmploymentPeriod, Met: r.EmploymentPeriodExceedsOneYear},
		{Code: ConditionEmploymentContinuation, Met: r.EmploymentContinuesBeyondOneHalfYears},
		{Code: ConditionWeeklyWorkDays, Met: !r.WeeklyWorkDaysLessThanThree},
	}
}
