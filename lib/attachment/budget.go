package attachment

import (
	"fmt"
	"math"
)

// DefaultLimit is the combined ceiling the backend enforces across the
// images and files of a single submission.
const DefaultLimit int64 = 20 << 20 // 20 MiB

// Guard enforces a combined byte ceiling over the union of one or more
// sets. Pickers that look separate in the UI (images vs files) still share
// one backend ceiling, so the guard is built over both sets, never each
// one alone.
type Guard struct {
	limit int64
	sets  []*Set
}

func NewGuard(limit int64, sets ...*Set) *Guard {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Guard{limit: limit, sets: sets}
}

func (g *Guard) Limit() int64 {
	return g.limit
}

// Used is the combined byte size across all guarded sets.
func (g *Guard) Used() int64 {
	var total int64
	for _, s := range g.sets {
		total += s.TotalBytes()
	}
	return total
}

// WouldExceed reports whether admitting all candidates would push the union
// over the ceiling. Pure: depends only on current set contents and the
// candidate sizes.
func (g *Guard) WouldExceed(candidates ...Item) bool {
	total := g.Used()
	for _, it := range candidates {
		total += it.ByteSize()
	}
	return total > g.limit
}

// Admit appends the whole candidate batch to target, or none of it. A batch
// whose files individually fit but jointly exceed the ceiling is rejected
// as a whole, leaving target untouched.
func (g *Guard) Admit(target *Set, candidates ...Item) error {
	var attempted int64
	for _, it := range candidates {
		attempted += it.ByteSize()
	}

	used := g.Used()
	if used+attempted > g.limit {
		return &BudgetError{Used: used, Attempted: attempted, Limit: g.limit}
	}

	target.Append(candidates...)
	return nil
}

// BudgetError carries the sizes the UI needs for its inline message.
type BudgetError struct {
	Used      int64
	Attempted int64
	Limit     int64
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("combined size over %s limit: current %s, adding %s, total %s",
		FormatBytes(e.Limit), FormatBytes(e.Used), FormatBytes(e.Attempted),
		FormatBytes(e.Used+e.Attempted))
}

// FormatBytes renders a byte count the way the site displays it.
func FormatBytes(n int64) string {
	if n == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	v := float64(n) / math.Pow(1024, float64(i))
	return fmt.Sprintf("%g %s", math.Round(v*100)/100, units[i])
}
