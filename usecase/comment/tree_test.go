package comment

import (
	"reflect"
	"testing"

	"github.com/hosanna-web/webclient/types/entity"
)

func Test_Build_PreservesServerOrder(t *testing.T) {
	payload := []entity.Comment{
		{
			Identifier: "c1",
			Replies: []entity.Comment{
				{Identifier: "c1-1"},
				{
					Identifier: "c1-2",
					Replies: []entity.Comment{
						{Identifier: "c1-2-1"},
					},
				},
			},
		},
		{Identifier: "c2"},
	}

	nodes := Build(payload)

	var ids []string
	for _, item := range Render(nodes, Viewer{}, 0) {
		ids = append(ids, item.Identifier)
	}
	want := []string{"c1", "c1-1", "c1-2", "c1-2-1", "c2"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("traversal = %v, want %v", ids, want)
	}
	if got := Count(nodes); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
}

func Test_BuildFlat(t *testing.T) {
	tests := []struct {
		name    string
		payload []entity.Comment
		want    []string // depth-first identifiers
	}{
		{
			name: "reply to reply",
			payload: []entity.Comment{
				{Identifier: "a"},
				{Identifier: "b", ParentCommentIdentifier: "a"},
				{Identifier: "c", ParentCommentIdentifier: "b"},
				{Identifier: "d"},
			},
			want: []string{"a", "b", "c", "d"},
		},
		{
			name: "siblings keep payload order",
			payload: []entity.Comment{
				{Identifier: "a"},
				{Identifier: "r2", ParentCommentIdentifier: "a"},
				{Identifier: "r1", ParentCommentIdentifier: "a"},
			},
			want: []string{"a", "r2", "r1"},
		},
		{
			name: "orphan surfaces as root",
			payload: []entity.Comment{
				{Identifier: "a"},
				{Identifier: "x", ParentCommentIdentifier: "gone"},
			},
			want: []string{"a", "x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := BuildFlat(tt.payload)
			var ids []string
			for _, item := range Render(nodes, Viewer{}, 0) {
				ids = append(ids, item.Identifier)
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("traversal = %v, want %v", ids, tt.want)
			}
		})
	}
}

// canEdit=false never yields an edit action, even when the viewer wrote the
// comment.
func Test_ActionsFor_PermissionFidelity(t *testing.T) {
	tests := []struct {
		name   string
		node   entity.Comment
		viewer Viewer
		want   Actions
	}{
		{
			name:   "own comment without server grant",
			node:   entity.Comment{AuthorIdentifier: "me", CanEdit: false, CanDelete: false},
			viewer: Viewer{Authenticated: true},
			want:   Actions{CanReply: true},
		},
		{
			name:   "moderator grant on someone else's comment",
			node:   entity.Comment{AuthorIdentifier: "other", CanEdit: true, CanDelete: true},
			viewer: Viewer{Authenticated: true},
			want:   Actions{CanReply: true, CanEdit: true, CanDelete: true},
		},
		{
			name:   "anonymous viewer cannot reply",
			node:   entity.Comment{CanEdit: false, CanDelete: false},
			viewer: Viewer{},
			want:   Actions{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActionsFor(&Node{Comment: tt.node}, tt.viewer)
			if got != tt.want {
				t.Errorf("ActionsFor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_Render_DepthClamp(t *testing.T) {
	payload := []entity.Comment{
		{Identifier: "d0", Replies: []entity.Comment{
			{Identifier: "d1", Replies: []entity.Comment{
				{Identifier: "d2", Replies: []entity.Comment{
					{Identifier: "d3"},
				}},
			}},
		}},
	}

	items := Render(Build(payload), Viewer{}, 2)

	wantDepths := map[string]int{"d0": 0, "d1": 1, "d2": 2, "d3": 2}
	if len(items) != len(wantDepths) {
		t.Fatalf("rendered %d items", len(items))
	}
	for _, item := range items {
		if item.Depth != wantDepths[item.Identifier] {
			t.Errorf("%v depth = %d, want %d", item.Identifier, item.Depth, wantDepths[item.Identifier])
		}
	}
}
