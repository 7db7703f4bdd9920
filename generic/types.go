/*
Package generic provides domain-agnostic building blocks for rule evaluation.

PURPOSE:
  The eligibility rules in the childcare package are written against a small
  set of neutral types so that they read like the statute and stay free of
  parsing and formatting concerns.

KEY CONCEPTS:
  - TimePoint: a calendar date with calendar-aware year/month arithmetic
  - Amount: a decimal quantity with a unit (e.g. 882.5 days)
  - Checklist: an ordered, append-only list built from guarded entries
  - FieldError / ValidationErrors: structured input validation failures

DESIGN PRINCIPLES:
  1. Immutability: values are returned by copy, builders hand out copies
  2. Precision: Amount uses decimal.Decimal, never float64 arithmetic
  3. Errors: sentinels for errors.Is, structured types for details

SEE ALSO:
  - time.go: TimePoint
  - checklist.go: Checklist
  - errors.go: sentinel and structured errors
*/
package generic

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Quantity with unit
// =============================================================================

type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const (
	UnitDays  Unit = "days"
	UnitHours Unit = "hours"
)

// NewAmountFromDuration converts an elapsed duration to the given unit at
// millisecond precision. Any unit other than hours is treated as days.
func NewAmountFromDuration(d time.Duration, unit Unit) Amount {
	ms := decimal.NewFromInt(d.Milliseconds())
	perUnit := decimal.NewFromInt(int64(24 * time.Hour / time.Millisecond))
	if unit == UnitHours {
		perUnit = decimal.NewFromInt(int64(time.Hour / time.Millisecond))
	} else {
		unit = UnitDays
	}
	return Amount{Value: ms.Div(perUnit), Unit: unit}
}

func (a Amount) Round(places int32) Amount       { return Amount{Value: a.Value.Round(places), Unit: a.Unit} }
func (a Amount) IsNegative() bool                { return a.Value.IsNegative() }
func (a Amount) IsZero() bool                    { return a.Value.IsZero() }
func (a Amount) Float64() float64                { return a.Value.InexactFloat64() }
func (a Amount) StringFixed(places int32) string { return a.Value.StringFixed(places) }

func (a Amount) String() string {
	return a.Value.String() + " " + string(a.Unit)
}
