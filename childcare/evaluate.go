/*
evaluate.go - Childcare leave eligibility evaluation

PURPOSE:
  Decides whether a worker qualifies for childcare leave benefits and
  explains why. Evaluate is a pure function: no clock, no I/O, no shared
  state. The same Input always yields an identical Result.

STAGES:
  1. Milestones:  1-year and 1.5-year birthdays from the expected birth date
  2. Predicates:  tenure, continuation, weekly days, insurance
  3. Advice:      ordered reason codes for every triggered condition

ELIGIBILITY:
  Eligible iff ALL of:
  - enrolled in employment insurance
  - employed >= 365 days (fixed length, no leap-year adjustment) at birth
  - no contract end date, or one strictly after the 1.5-year birthday
  - works 3 or more days per week

  The tenure check is a fixed 365-day duration while milestones use
  calendar arithmetic. Both are intentional.

SEE ALSO:
  - types.go: Input, Result, codes
  - form.go: building a valid Input from raw values
  - locale/render.go: turning codes into text
*/
package childcare

import (
	"time"

	"github.com/warp/leave-eligibility/generic"
)

const (
	// MinimumTenure is compared against elapsed time, not calendar years.
	MinimumTenure = 365 * 24 * time.Hour

	// MinimumWeeklyWorkDays is the lowest qualifying number of working days.
	MinimumWeeklyWorkDays = 3
)

// Milestones returns the child's 1st and 1.5-year birthdays.
func Milestones(birth generic.TimePoint) (oneYear, oneHalfYear generic.TimePoint) {
	return birth.AddYears(1), birth.AddMonths(18)
}

// Evaluate runs the eligibility check.
func Evaluate(in Input) Result {
	oneYear, oneHalfYear := Milestones(in.ExpectedBirthDate)

	employment := in.EmploymentPeriod()
	tenure := employment.ElapsedAt(in.ExpectedBirthDate)
	exceedsOneYear := tenure.Milliseconds() >= MinimumTenure.Milliseconds()
	continuesBeyond := employment.ContinuesAfter(oneHalfYear)
	lessThanThree := in.WeeklyWorkDays < MinimumWeeklyWorkDays

	eligible := in.EnrolledInEmploymentInsurance &&
		exceedsOneYear &&
		continuesBeyond &&
		!lessThanThree

	var advice generic.Checklist[ReasonCode]
	advice.AddIf(!in.EnrolledInEmploymentInsurance, ReasonInsuranceNotEnrolled)
	advice.AddIf(!exceedsOneYear, ReasonTenureUnderOneYear)
	advice.AddIf(!continuesBeyond, ReasonEmploymentEndsBeforeLimit)
	advice.AddIf(lessThanThree, ReasonWeeklyDaysBelowMinimum)
	advice.AddIf(in.PlanningToWorkDuringLeave, ReasonWorkingDuringLeave)
	advice.AddIf(in.PartnerTakingLeave, ReasonPartnerTakingLeave)
	advice.AddIf(eligible, ReasonEligibleCongratulations, ReasonSubmissionTiming)

	message := MessageNotEligible
	if eligible {
		message = MessageEligible
	}

	return Result{
		IsEligible:                            eligible,
		ChildOneYearBirthday:                  oneYear,
		ChildOneHalfYearBirthday:              oneHalfYear,
		EmploymentPeriodExceedsOneYear:        exceedsOneYear,
		EmploymentContinuesBeyondOneHalfYears: continuesBeyond,
		WeeklyWorkDaysLessThanThree:           lessThanThree,
		EnrolledInEmploymentInsurance:         in.EnrolledInEmploymentInsurance,
		Message:                               message,
		Advice:                                advice.Items(),
		TenureAtBirth:                         generic.NewAmountFromDuration(tenure, generic.UnitDays),
	}
}
