package attachment

import "errors"

var (
	ErrOutOfRange = errors.New("position out of range")
)

// Item is one entry of an ordered attachment collection. An item is either
// kept (already persisted server side, referenced by identifier) or pending
// (a locally selected file carried as raw bytes until submission).
type Item struct {
	// Kept item fields.
	Identifier string
	RemoteURL  string
	// KnownSize is the server reported byte size, 0 for collections where
	// the backend does not report one (e.g. images).
	KnownSize int64

	// Pending item fields.
	Name       string
	Data       []byte
	PreviewURL string

	pending bool
}

func Kept(identifier, remoteURL string, knownSize int64) Item {
	return Item{
		Identifier: identifier,
		RemoteURL:  remoteURL,
		KnownSize:  knownSize,
	}
}

func Pending(name string, data []byte) Item {
	return Item{
		Name:    name,
		Data:    data,
		pending: true,
	}
}

func (it Item) IsPending() bool {
	return it.pending
}

// ByteSize is the item's contribution to the combined upload budget.
func (it Item) ByteSize() int64 {
	if it.pending {
		return int64(len(it.Data))
	}
	return it.KnownSize
}

// Set is one ordered attachment collection (one post's images, one post's
// files, or the site banner set). The position of an item is its index;
// every mutation renumbers so positions are always exactly 0..n-1.
//
// Removing a kept item does not delete it from storage. Its identifier is
// recorded in a side list so the deletion instruction survives until
// submission even though the item is gone from the visible sequence.
type Set struct {
	items     []Item
	deletions []string
	deleted   map[string]struct{}
}

func NewSet(items ...Item) *Set {
	s := &Set{
		deleted: make(map[string]struct{}),
	}
	s.items = append(s.items, items...)
	return s
}

func (s *Set) Len() int {
	return len(s.items)
}

// Items returns the collection in position order, which is exactly the
// visual order. The returned slice is a copy.
func (s *Set) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Set) At(position int) (Item, error) {
	if position < 0 || position >= len(s.items) {
		return Item{}, ErrOutOfRange
	}
	return s.items[position], nil
}

// Append adds items at the end, taking the next contiguous positions.
func (s *Set) Append(items ...Item) {
	s.items = append(s.items, items...)
}

// RemoveAt deletes the item at position and shifts everything after it down
// by one. A kept item's identifier goes into the pending deletion list,
// exactly once even if the position is later reused.
func (s *Set) RemoveAt(position int) error {
	if position < 0 || position >= len(s.items) {
		return ErrOutOfRange
	}

	it := s.items[position]
	if !it.pending {
		if _, ok := s.deleted[it.Identifier]; !ok {
			s.deleted[it.Identifier] = struct{}{}
			s.deletions = append(s.deletions, it.Identifier)
		}
	}

	s.items = append(s.items[:position], s.items[position+1:]...)
	return nil
}

// MoveTo removes the item at from and reinserts it at to, renumbering every
// item in between in one step. Moving an item onto its own position is a
// no-op. The item is never dropped: after the call the set holds exactly the
// same items at positions 0..n-1.
func (s *Set) MoveTo(from, to int) error {
	if from < 0 || from >= len(s.items) {
		return ErrOutOfRange
	}
	if to < 0 || to >= len(s.items) {
		return ErrOutOfRange
	}
	if from == to {
		return nil
	}

	it := s.items[from]
	rest := append(s.items[:from], s.items[from+1:]...)
	s.items = append(rest[:to], append([]Item{it}, rest[to:]...)...)
	return nil
}

// TotalBytes is the combined byte size of the collection: raw bytes of
// pending items plus the server reported size of kept items.
func (s *Set) TotalBytes() int64 {
	var total int64
	for _, it := range s.items {
		total += it.ByteSize()
	}
	return total
}

// PendingDeletions lists identifiers of kept items removed from the
// collection, in removal order.
func (s *Set) PendingDeletions() []string {
	out := make([]string, len(s.deletions))
	copy(out, s.deletions)
	return out
}

// Dirty reports whether the set diverged from its loaded state: something
// was added, removed, or the kept items no longer sit at their original
// positions relative to each other.
func (s *Set) Dirty(loaded []string) bool {
	if len(s.deletions) > 0 {
		return true
	}
	var kept []string
	for _, it := range s.items {
		if it.pending {
			return true
		}
		kept = append(kept, it.Identifier)
	}
	if len(kept) != len(loaded) {
		return true
	}
	for i := range kept {
		if kept[i] != loaded[i] {
			return true
		}
	}
	return false
}
