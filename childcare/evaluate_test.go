package childcare_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-eligibility/childcare"
	"github.com/warp/leave-eligibility/generic"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) generic.TimePoint {
	return generic.NewTimePoint(year, month, day)
}

func datePtr(year int, month time.Month, day int) *generic.TimePoint {
	tp := date(year, month, day)
	return &tp
}

// eligibleInput is the baseline: permanent, insured, 5 days, long tenure.
func eligibleInput() childcare.Input {
	return childcare.Input{
		ExpectedBirthDate:             date(2025, time.June, 1),
		EmploymentType:                childcare.EmploymentFullTime,
		EmploymentStartDate:           date(2023, time.January, 1),
		WeeklyWorkDays:                5,
		EnrolledInEmploymentInsurance: true,
	}
}

var eligibleBranch = []childcare.ReasonCode{
	childcare.ReasonEligibleCongratulations,
	childcare.ReasonSubmissionTiming,
}

// =============================================================================
// SCENARIOS
// =============================================================================

func TestEvaluate_EligibleFullTime(t *testing.T) {
	// GIVEN: birth 2025-06-01, start 2023-01-01, no end date, 5 days, insured
	// WHEN: evaluated
	// THEN: eligible, milestones 2026-06-01 / 2026-12-01, only eligible advice

	res := childcare.Evaluate(eligibleInput())

	assert.True(t, res.IsEligible)
	assert.Equal(t, "2026-06-01", res.ChildOneYearBirthday.String())
	assert.Equal(t, "2026-12-01", res.ChildOneHalfYearBirthday.String())
	assert.True(t, res.EmploymentPeriodExceedsOneYear)
	assert.True(t, res.EmploymentContinuesBeyondOneHalfYears)
	assert.False(t, res.WeeklyWorkDaysLessThanThree)
	assert.Equal(t, childcare.MessageEligible, res.Message)
	assert.Equal(t, eligibleBranch, res.Advice)
	assert.Equal(t, "882", res.TenureAtBirth.Value.String())
}

func TestEvaluate_TwoWeeklyDays(t *testing.T) {
	in := eligibleInput()
	in.WeeklyWorkDays = 2

	res := childcare.Evaluate(in)

	assert.False(t, res.IsEligible)
	assert.True(t, res.WeeklyWorkDaysLessThanThree)
	assert.Equal(t, childcare.MessageNotEligible, res.Message)
	assert.Equal(t, []childcare.ReasonCode{childcare.ReasonWeeklyDaysBelowMinimum}, res.Advice)
}

func TestEvaluate_ShortTenure(t *testing.T) {
	in := eligibleInput()
	in.EmploymentStartDate = date(2025, time.January, 1)

	res := childcare.Evaluate(in)

	assert.False(t, res.EmploymentPeriodExceedsOneYear)
	assert.False(t, res.IsEligible)
	assert.Equal(t, []childcare.ReasonCode{childcare.ReasonTenureUnderOneYear}, res.Advice)
}

func TestEvaluate_ContractEndsBeforeMilestone(t *testing.T) {
	// GIVEN: contract ending 2026-11-01, 1.5-year milestone is 2026-12-01
	in := eligibleInput()
	in.EmploymentType = childcare.EmploymentContract
	in.ContractEndDate = datePtr(2026, time.November, 1)

	res := childcare.Evaluate(in)

	assert.False(t, res.EmploymentContinuesBeyondOneHalfYears)
	assert.False(t, res.IsEligible)
	assert.Equal(t, []childcare.ReasonCode{childcare.ReasonEmploymentEndsBeforeLimit}, res.Advice)
}

func TestEvaluate_PresetScenarios(t *testing.T) {
	want := map[string]bool{
		"eligible-full-time":   true,
		"few-weekly-days":      false,
		"short-tenure":         false,
		"contract-ends-early":  false,
		"contract-continues":   true,
		"working-with-partner": true,
		"not-insured":          false,
	}

	scenarios := childcare.Scenarios()
	require.Len(t, scenarios, len(want))
	for _, s := range scenarios {
		t.Run(s.ID, func(t *testing.T) {
			in, err := childcare.ParseForm(s.Form)
			require.NoError(t, err)
			assert.Equal(t, want[s.ID], childcare.Evaluate(in).IsEligible)
		})
	}
}

// =============================================================================
// MILESTONES
// =============================================================================

func TestMilestones_DependOnlyOnBirthDate(t *testing.T) {
	a := eligibleInput()
	b := childcare.Input{
		ExpectedBirthDate:   a.ExpectedBirthDate,
		EmploymentType:      childcare.EmploymentTemp,
		EmploymentStartDate: date(2025, time.May, 1),
		ContractEndDate:     datePtr(2025, time.July, 1),
		WeeklyWorkDays:      1,
	}

	ra, rb := childcare.Evaluate(a), childcare.Evaluate(b)

	assert.True(t, ra.ChildOneYearBirthday.Equal(rb.ChildOneYearBirthday))
	assert.True(t, ra.ChildOneHalfYearBirthday.Equal(rb.ChildOneHalfYearBirthday))
}

func TestMilestones_LeapDayBirth(t *testing.T) {
	oneYear, oneHalf := childcare.Milestones(date(2024, time.February, 29))
	assert.Equal(t, "2025-03-01", oneYear.String())
	assert.Equal(t, "2025-08-29", oneHalf.String())
}

// =============================================================================
// TENURE THRESHOLD
// =============================================================================

func TestTenure_ExactlyThreshold(t *testing.T) {
	// GIVEN: start exactly 365 days (no leap day in between) before birth
	in := eligibleInput()
	in.EmploymentStartDate = date(2024, time.June, 1)
	require.Equal(t, childcare.MinimumTenure, in.ExpectedBirthDate.Since(in.EmploymentStartDate))

	assert.True(t, childcare.Evaluate(in).EmploymentPeriodExceedsOneYear)
}

func TestTenure_OneMillisecondShort(t *testing.T) {
	in := eligibleInput()
	in.EmploymentStartDate = generic.TimePoint{Time: date(2024, time.June, 1).Time.Add(time.Millisecond)}

	res := childcare.Evaluate(in)

	assert.False(t, res.EmploymentPeriodExceedsOneYear)
	assert.False(t, res.IsEligible)
}

func TestTenure_FixedLengthIgnoresLeapYear(t *testing.T) {
	// GIVEN: birth 2024-06-01; the year before it contains Feb 29
	// WHEN: start is 2023-06-02, less than one calendar year but exactly 365 days
	// THEN: the fixed 365-day threshold is met
	in := eligibleInput()
	in.ExpectedBirthDate = date(2024, time.June, 1)
	in.EmploymentStartDate = date(2023, time.June, 2)
	assert.True(t, childcare.Evaluate(in).EmploymentPeriodExceedsOneYear)

	in.EmploymentStartDate = date(2023, time.June, 3)
	assert.False(t, childcare.Evaluate(in).EmploymentPeriodExceedsOneYear)
}

func TestTenure_StartAfterBirth(t *testing.T) {
	in := eligibleInput()
	in.EmploymentStartDate = date(2025, time.July, 1)

	res := childcare.Evaluate(in)

	assert.False(t, res.EmploymentPeriodExceedsOneYear)
	assert.True(t, res.TenureAtBirth.IsNegative())
}

// =============================================================================
// CONTINUATION
// =============================================================================

func TestContinuation_EndDateBoundaries(t *testing.T) {
	cases := []struct {
		name string
		end  *generic.TimePoint
		want bool
	}{
		{"no end date", nil, true},
		{"day before milestone", datePtr(2026, time.November, 30), false},
		{"on milestone", datePtr(2026, time.December, 1), false},
		{"day after milestone", datePtr(2026, time.December, 2), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := eligibleInput()
			in.ContractEndDate = tc.end
			assert.Equal(t, tc.want, childcare.Evaluate(in).EmploymentContinuesBeyondOneHalfYears)
		})
	}
}

func TestContinuation_IgnoresEmploymentType(t *testing.T) {
	// A temp worker without an end date is treated as open-ended.
	in := eligibleInput()
	in.EmploymentType = childcare.EmploymentTemp
	in.ContractEndDate = nil
	assert.True(t, childcare.Evaluate(in).EmploymentContinuesBeyondOneHalfYears)

	// A full-time worker with an early end date is not.
	in.EmploymentType = childcare.EmploymentFullTime
	in.ContractEndDate = datePtr(2025, time.December, 31)
	assert.False(t, childcare.Evaluate(in).EmploymentContinuesBeyondOneHalfYears)
}

// =============================================================================
// PROPERTIES
// =============================================================================

func TestEvaluate_Deterministic(t *testing.T) {
	in := eligibleInput()
	in.PartnerTakingLeave = true
	in.ContractEndDate = datePtr(2027, time.January, 5)

	first := childcare.Evaluate(in)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, childcare.Evaluate(in))
	}
}

func TestEvaluate_WeeklyDaysMonotonic(t *testing.T) {
	for _, base := range []childcare.Input{eligibleInput(), func() childcare.Input {
		in := eligibleInput()
		in.EnrolledInEmploymentInsurance = false
		return in
	}()} {
		three, two := base, base
		three.WeeklyWorkDays = 3
		two.WeeklyWorkDays = 2

		r3, r2 := childcare.Evaluate(three), childcare.Evaluate(two)

		assert.False(t, r3.WeeklyWorkDaysLessThanThree)
		assert.True(t, r2.WeeklyWorkDaysLessThanThree)
		assert.False(t, r2.IsEligible && !r3.IsEligible, "fewer days must never make a worker eligible")
	}
}

func TestEvaluate_ConjunctionLaw(t *testing.T) {
	flips := map[string]func(*childcare.Input){
		"not insured":       func(in *childcare.Input) { in.EnrolledInEmploymentInsurance = false },
		"short tenure":      func(in *childcare.Input) { in.EmploymentStartDate = date(2025, time.January, 1) },
		"contract ends":     func(in *childcare.Input) { in.ContractEndDate = datePtr(2026, time.November, 1) },
		"two days per week": func(in *childcare.Input) { in.WeeklyWorkDays = 2 },
	}

	require.True(t, childcare.Evaluate(eligibleInput()).IsEligible)
	for name, flip := range flips {
		t.Run(name, func(t *testing.T) {
			in := eligibleInput()
			flip(&in)
			res := childcare.Evaluate(in)

			assert.False(t, res.IsEligible)
			met := 0
			for _, c := range res.Conditions() {
				if c.Met {
					met++
				}
			}
			assert.Equal(t, 3, met, "exactly one core condition should fail")
		})
	}
}

func TestEvaluate_InformationalFlagsDoNotAffectEligibility(t *testing.T) {
	in := eligibleInput()
	in.PlanningToWorkDuringLeave = true
	in.PartnerTakingLeave = true

	res := childcare.Evaluate(in)

	assert.True(t, res.IsEligible)
	assert.Equal(t, []childcare.ReasonCode{
		childcare.ReasonWorkingDuringLeave,
		childcare.ReasonPartnerTakingLeave,
		childcare.ReasonEligibleCongratulations,
		childcare.ReasonSubmissionTiming,
	}, res.Advice)
}

func TestEvaluate_AdviceOrderWhenEverythingFails(t *testing.T) {
	in := childcare.Input{
		ExpectedBirthDate:         date(2025, time.June, 1),
		EmploymentType:            childcare.EmploymentTemp,
		EmploymentStartDate:       date(2025, time.March, 1),
		ContractEndDate:           datePtr(2025, time.September, 30),
		WeeklyWorkDays:            1,
		PlanningToWorkDuringLeave: true,
		PartnerTakingLeave:        true,
	}

	res := childcare.Evaluate(in)

	assert.False(t, res.IsEligible)
	assert.Equal(t, childcare.ReasonCodes[:6], res.Advice)
	assert.NotContains(t, res.Advice, childcare.ReasonEligibleCongratulations)
	assert.NotContains(t, res.Advice, childcare.ReasonSubmissionTiming)
}

func TestEvaluate_AdviceIsSubsequenceOfEmissionOrder(t *testing.T) {
	for _, s := range childcare.Scenarios() {
		in, err := childcare.ParseForm(s.Form)
		require.NoError(t, err)
		res := childcare.Evaluate(in)

		next := 0
		for _, code := range res.Advice {
			for next < len(childcare.ReasonCodes) && childcare.ReasonCodes[next] != code {
				next++
			}
			require.Less(t, next, len(childcare.ReasonCodes), "%s: advice out of order: %v", s.ID, res.Advice)
			next++
		}

		hasBranch := assert.ObjectsAreEqual(eligibleBranch, tail(res.Advice, 2))
		assert.Equal(t, res.IsEligible, hasBranch, s.ID)
	}
}

func tail(codes []childcare.ReasonCode, n int) []childcare.ReasonCode {
	if len(codes) < n {
		return nil
	}
	return codes[len(codes)-n:]
}
