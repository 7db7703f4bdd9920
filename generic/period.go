package generic

import "time"

// =============================================================================
// PERIOD - A span of days, possibly open-ended
// =============================================================================

// Period is a span of days starting at Start. A nil End means the period
// has no known end.
//
// Examples:
//   - Permanent employment: Start = hire date, End = nil
//   - Fixed-term contract:  Start = hire date, End = contract end date
type Period struct {
	Start TimePoint
	End   *TimePoint
}

// ElapsedAt returns the time from Start to t. Negative when t is before Start.
func (p Period) ElapsedAt(t TimePoint) time.Duration {
	return t.Since(p.Start)
}

// ContinuesAfter reports whether the period is still running after t:
// either open-ended or ending strictly later than t.
func (p Period) ContinuesAfter(t TimePoint) bool {
	return p.End == nil || p.End.After(t)
}
