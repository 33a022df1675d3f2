package diag

// Bag collects diagnostics up to a fixed limit.
type Bag struct {
	items []Diagnostic
	max   int
}

func NewBag(limit int) *Bag {
	return &Bag{max: max(limit, 1)}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если лимит уже достигнут.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors reports whether at least one diagnostic is an error.
func (b *Bag) HasErrors() bool {
	_, ok := b.FirstError()
	return ok
}

// FirstError returns the earliest-added error diagnostic. Diagnostics are
// added in source order, so this is also the leftmost one.
func (b *Bag) FirstError() (Diagnostic, bool) {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return d, true
		}
	}
	return Diagnostic{}, false
}

func (b *Bag) Len() int { return len(b.items) }

// Items возвращает read-only slice диагностик.
func (b *Bag) Items() []Diagnostic { return b.items }
