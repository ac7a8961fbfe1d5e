package attachment

import "fmt"

// File is a pending blob as it goes on the wire.
type File struct {
	Name string
	Data []byte
}

// KeepNew is the reconciliation payload for collections with a display order
// (post images, banners). Kept identifiers and new files each carry their
// current positions; the backend merges the two pairs by position. Together
// the two order lists cover 0..n-1 exactly, with no overlap.
type KeepNew struct {
	KeepIdentifiers []string
	KeepOrders      []int
	NewFiles        []File
	NewOrders       []int
}

// KeepDelete is the reconciliation payload for collections without a display
// order (post file attachments). Deletions are explicit; new files are
// appended unordered relative to kept ones.
type KeepDelete struct {
	DeleteIdentifiers []string
	NewFiles          []File
}

// Options control payload shaping per collection. The backend distinguishes
// "field absent" from "field present but empty" for some endpoints, so the
// choice is explicit rather than a hidden default.
type Options struct {
	// OmitWhenEmpty leaves a zero-length group nil (field absent on the
	// wire) instead of an allocated empty slice (present but empty, which
	// the board update endpoint reads as "clear everything").
	OmitWhenEmpty bool
}

// EncodeKeepNew serializes the set into the keep/new four array shape.
// A position collision or gap means the Set invariants were broken, which is
// an internal consistency failure, not an input error.
func EncodeKeepNew(s *Set, opt Options) KeepNew {
	var out KeepNew
	if !opt.OmitWhenEmpty {
		out.KeepIdentifiers = []string{}
		out.KeepOrders = []int{}
		out.NewFiles = []File{}
		out.NewOrders = []int{}
	}

	covered := 0
	for position, it := range s.Items() {
		if it.IsPending() {
			out.NewFiles = append(out.NewFiles, File{Name: it.Name, Data: it.Data})
			out.NewOrders = append(out.NewOrders, position)
		} else {
			out.KeepIdentifiers = append(out.KeepIdentifiers, it.Identifier)
			out.KeepOrders = append(out.KeepOrders, position)
		}
		covered++
	}

	if covered != s.Len() || len(out.KeepOrders)+len(out.NewOrders) != s.Len() {
		panic(fmt.Sprintf("attachment: order coverage broken: %d kept + %d new != %d items",
			len(out.KeepOrders), len(out.NewOrders), s.Len()))
	}

	return out
}

// EncodeKeepDelete serializes the set into the delete list shape.
func EncodeKeepDelete(s *Set, opt Options) KeepDelete {
	var out KeepDelete
	if !opt.OmitWhenEmpty {
		out.DeleteIdentifiers = []string{}
		out.NewFiles = []File{}
	}

	for _, id := range s.PendingDeletions() {
		out.DeleteIdentifiers = append(out.DeleteIdentifiers, id)
	}
	for _, it := range s.Items() {
		if it.IsPending() {
			out.NewFiles = append(out.NewFiles, File{Name: it.Name, Data: it.Data})
		}
	}

	return out
}
