package generic_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-eligibility/generic"
)

// =============================================================================
// CHECKLIST
// =============================================================================

func TestChecklist_KeepsGuardedEntriesInOrder(t *testing.T) {
	var c generic.Checklist[string]
	c.AddIf(true, "a")
	c.AddIf(false, "b")
	c.AddIf(true, "c", "d")

	assert.Equal(t, []string{"a", "c", "d"}, c.Items())
}

func TestChecklist_ItemsIsACopy(t *testing.T) {
	var c generic.Checklist[int]
	c.AddIf(true, 1, 2)

	items := c.Items()
	items[0] = 99

	assert.Equal(t, []int{1, 2}, c.Items())
}

func TestChecklist_EmptyIsNotNil(t *testing.T) {
	var c generic.Checklist[string]
	assert.NotNil(t, c.Items())
	assert.Empty(t, c.Items())
}

// =============================================================================
// AMOUNT
// =============================================================================

func TestAmountFromDuration_Days(t *testing.T) {
	a := generic.NewAmountFromDuration(36*time.Hour, generic.UnitDays)
	assert.Equal(t, generic.UnitDays, a.Unit)
	assert.Equal(t, "1.5", a.Value.String())
}

func TestAmountFromDuration_Hours(t *testing.T) {
	a := generic.NewAmountFromDuration(90*time.Minute, generic.UnitHours)
	assert.Equal(t, "1.5", a.Value.String())
}

func TestAmountFromDuration_Negative(t *testing.T) {
	a := generic.NewAmountFromDuration(-12*time.Hour, generic.UnitDays)
	assert.True(t, a.IsNegative())
	assert.Equal(t, "-0.50", a.StringFixed(2))
	assert.Equal(t, "-0.5", a.Round(1).Value.String())
}

// =============================================================================
// ERRORS
// =============================================================================

func TestValidationErrors_UnwrapsToSentinels(t *testing.T) {
	verrs := generic.ValidationErrors{
		{Field: "expectedBirthDate", Code: "required", Err: generic.ErrRequired},
		{Field: "weeklyWorkDays", Code: "out_of_range", Value: "9", Err: generic.ErrOutOfRange},
	}
	err := verrs.ErrOrNil()
	require.Error(t, err)

	assert.ErrorIs(t, err, generic.ErrRequired)
	assert.ErrorIs(t, err, generic.ErrOutOfRange)
	assert.NotErrorIs(t, err, generic.ErrInvalidDate)
	assert.True(t, generic.IsClientError(err))
	assert.Equal(t, []string{"expectedBirthDate", "weeklyWorkDays"}, verrs.Fields())
	assert.Equal(t, "error.weeklyWorkDays.out_of_range", verrs[1].Key())
	assert.Contains(t, err.Error(), `weeklyWorkDays: value out of range (got "9")`)

	var as generic.ValidationErrors
	assert.True(t, errors.As(err, &as))
	assert.Len(t, as, 2)
}

func TestValidationErrors_EmptyIsNil(t *testing.T) {
	var verrs generic.ValidationErrors
	assert.NoError(t, verrs.ErrOrNil())
}

func TestIsNotFound(t *testing.T) {
	err := errors.Join(errors.New("scenario x"), generic.ErrNotFound)
	assert.True(t, generic.IsNotFound(err))
	assert.False(t, generic.IsClientError(err))
}

// =============================================================================
// PERIOD
// =============================================================================

func TestPeriod(t *testing.T) {
	start := generic.NewTimePoint(2023, time.January, 1)
	end := generic.NewTimePoint(2026, time.December, 1)

	open := generic.Period{Start: start}
	assert.True(t, open.ContinuesAfter(generic.NewTimePoint(2099, time.January, 1)))

	fixed := generic.Period{Start: start, End: &end}
	assert.True(t, fixed.ContinuesAfter(generic.NewTimePoint(2026, time.November, 30)))
	assert.False(t, fixed.ContinuesAfter(end), "ending on the day is not continuing after it")
	assert.False(t, fixed.ContinuesAfter(generic.NewTimePoint(2026, time.December, 2)))
	assert.Equal(t, 365*24*time.Hour, fixed.ElapsedAt(generic.NewTimePoint(2024, time.January, 1)))
	assert.Negative(t, int64(fixed.ElapsedAt(generic.NewTimePoint(2022, time.December, 31))))
}
