// Package comment builds the permission annotated reply tree for a board
// detail. The tree is rebuilt wholesale from a fresh fetch after every
// mutation; there is deliberately no way to splice a single node, so the
// client can never drift from the server computed permission flags.
package comment

import (
	"github.com/hosanna-web/webclient/types/entity"
)

// Node is one comment with its resolved replies. Server order is preserved
// at every level and depth is unbounded in the model even when the UI
// flattens deep threads visually.
type Node struct {
	entity.Comment
	Replies []*Node
}

// Build converts a pre-nested payload, keeping the server's order at every
// level.
func Build(comments []entity.Comment) []*Node {
	nodes := make([]*Node, 0, len(comments))
	for _, c := range comments {
		replies := Build(c.Replies)
		n := &Node{Comment: c, Replies: replies}
		n.Comment.Replies = nil
		nodes = append(nodes, n)
	}
	return nodes
}

// BuildFlat assembles the tree from a flat payload where each comment names
// its parent. Order within one parent follows the payload order. A comment
// whose parent is missing from the payload surfaces as a root rather than
// being dropped.
func BuildFlat(comments []entity.Comment) []*Node {
	byID := make(map[string]*Node, len(comments))
	ordered := make([]*Node, 0, len(comments))
	for _, c := range comments {
		n := &Node{Comment: c}
		n.Comment.Replies = nil
		byID[c.Identifier] = n
		ordered = append(ordered, n)
	}

	var roots []*Node
	for _, n := range ordered {
		parent := n.ParentCommentIdentifier
		if parent == "" {
			roots = append(roots, n)
			continue
		}
		p, ok := byID[parent]
		if !ok || p == n {
			roots = append(roots, n)
			continue
		}
		p.Replies = append(p.Replies, n)
	}
	return roots
}

// Count is the total number of comments in the forest.
func Count(nodes []*Node) int {
	total := 0
	for _, n := range nodes {
		total += 1 + Count(n.Replies)
	}
	return total
}

// Viewer is what the action computation may know about the reader.
type Viewer struct {
	Authenticated bool
}

// Actions are the affordances one node offers one viewer.
type Actions struct {
	CanReply  bool
	CanEdit   bool
	CanDelete bool
}

// ActionsFor offers reply to any authenticated viewer, and edit/delete
// strictly as the server granted them for this viewer. Authorship is never
// consulted here: the server may grant a moderator rights the client cannot
// derive, and the reverse.
func ActionsFor(n *Node, v Viewer) Actions {
	return Actions{
		CanReply:  v.Authenticated,
		CanEdit:   n.CanEdit,
		CanDelete: n.CanDelete,
	}
}

// RenderItem is one flat render instruction. Handlers key off Identifier
// rather than captured node state, so re-renders cannot go stale.
type RenderItem struct {
	Identifier string
	Depth      int // visual depth, clamped
	Node       *Node
	Actions    Actions
}

// Render flattens the forest depth first into render instructions. Visual
// depth stops growing at maxDepth while the traversal still descends the
// full model, so arbitrarily deep threads render as siblings beyond the cap.
// maxDepth <= 0 means no cap.
func Render(nodes []*Node, v Viewer, maxDepth int) []RenderItem {
	var out []RenderItem
	var walk func(ns []*Node, depth int)
	walk = func(ns []*Node, depth int) {
		visual := depth
		if maxDepth > 0 && visual > maxDepth {
			visual = maxDepth
		}
		for _, n := range ns {
			out = append(out, RenderItem{
				Identifier: n.Identifier,
				Depth:      visual,
				Node:       n,
				Actions:    ActionsFor(n, v),
			})
			walk(n.Replies, depth+1)
		}
	}
	walk(nodes, 0)
	return out
}
