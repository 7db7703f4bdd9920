package generic

// Checklist is an ordered, append-only list whose entries are added only when
// their guard holds. Entries are never reordered or removed.
//
//	var advice generic.Checklist[Reason]
//	advice.AddIf(!insured, ReasonInsurance)
//	advice.AddIf(eligible, ReasonCongrats, ReasonSubmitEarly)
type Checklist[T any] struct {
	items []T
}

// AddIf appends items, in order, when cond is true.
func (c *Checklist[T]) AddIf(cond bool, items ...T) {
	if !cond {
		return
	}
	c.items = append(c.items, items...)
}

// Items returns a copy of the entries. Never nil.
func (c *Checklist[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}
