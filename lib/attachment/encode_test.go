package attachment

import (
	"reflect"
	"testing"
)

func Test_EncodeKeepNew(t *testing.T) {
	tests := []struct {
		name string
		prep func() *Set
		opt  Options
		want KeepNew
	}{
		{
			name: "drag, add, remove",
			prep: func() *Set {
				s := NewSet(Kept("A", "", 0), Kept("B", "", 0), Kept("C", "", 0))
				s.MoveTo(0, 2)                      // B C A
				s.Append(Pending("D", []byte{1}))   // B C A D
				s.RemoveAt(1)                       // B A D
				return s
			},
			opt: Options{OmitWhenEmpty: true},
			want: KeepNew{
				KeepIdentifiers: []string{"B", "A"},
				KeepOrders:      []int{0, 1},
				NewFiles:        []File{{Name: "D", Data: []byte{1}}},
				NewOrders:       []int{2},
			},
		},
		{
			name: "interleaved kept and new",
			prep: func() *Set {
				s := NewSet(Kept("A", "", 0), Kept("B", "", 0))
				s.Append(Pending("X", []byte{1}))
				s.MoveTo(2, 1) // A X B
				return s
			},
			opt: Options{OmitWhenEmpty: true},
			want: KeepNew{
				KeepIdentifiers: []string{"A", "B"},
				KeepOrders:      []int{0, 2},
				NewFiles:        []File{{Name: "X", Data: []byte{1}}},
				NewOrders:       []int{1},
			},
		},
		{
			name: "empty set omits all fields",
			prep: func() *Set { return NewSet() },
			opt:  Options{OmitWhenEmpty: true},
			want: KeepNew{},
		},
		{
			name: "empty set keeps empty arrays when configured",
			prep: func() *Set { return NewSet() },
			opt:  Options{},
			want: KeepNew{
				KeepIdentifiers: []string{},
				KeepOrders:      []int{},
				NewFiles:        []File{},
				NewOrders:       []int{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeKeepNew(tt.prep(), tt.opt)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EncodeKeepNew() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// keepOrders and newOrders together must cover 0..n-1 exactly, with no
// position in both.
func Test_EncodeKeepNew_Coverage(t *testing.T) {
	s := NewSet(Kept("A", "", 0), Kept("B", "", 0), Kept("C", "", 0))
	s.Append(Pending("P1", []byte{1}), Pending("P2", []byte{2}))
	s.MoveTo(4, 0)
	s.MoveTo(2, 3)
	s.RemoveAt(1)
	s.Append(Pending("P3", []byte{3}))

	got := EncodeKeepNew(s, Options{OmitWhenEmpty: true})

	seen := map[int]bool{}
	for _, o := range append(append([]int{}, got.KeepOrders...), got.NewOrders...) {
		if seen[o] {
			t.Fatalf("position %d covered twice", o)
		}
		seen[o] = true
	}
	if len(seen) != s.Len() {
		t.Fatalf("covered %d positions, want %d", len(seen), s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		if !seen[i] {
			t.Fatalf("position %d not covered", i)
		}
	}
	if len(got.KeepIdentifiers) != len(got.KeepOrders) {
		t.Fatalf("keep pair lengths differ: %d vs %d", len(got.KeepIdentifiers), len(got.KeepOrders))
	}
	if len(got.NewFiles) != len(got.NewOrders) {
		t.Fatalf("new pair lengths differ: %d vs %d", len(got.NewFiles), len(got.NewOrders))
	}
}

func Test_EncodeKeepDelete(t *testing.T) {
	tests := []struct {
		name string
		prep func() *Set
		opt  Options
		want KeepDelete
	}{
		{
			name: "removed kept file plus new file",
			prep: func() *Set {
				s := NewSet(Kept("F1", "", 100), Kept("F2", "", 200))
				s.RemoveAt(0)
				s.Append(Pending("new.pdf", []byte{9}))
				return s
			},
			opt: Options{OmitWhenEmpty: true},
			want: KeepDelete{
				DeleteIdentifiers: []string{"F1"},
				NewFiles:          []File{{Name: "new.pdf", Data: []byte{9}}},
			},
		},
		{
			name: "no changes omits both fields",
			prep: func() *Set {
				return NewSet(Kept("F1", "", 100))
			},
			opt:  Options{OmitWhenEmpty: true},
			want: KeepDelete{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeKeepDelete(tt.prep(), tt.opt)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EncodeKeepDelete() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
