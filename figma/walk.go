package figma

import (
	"iter"
	"slices"
)

// Walk yields n and all of its descendants in pre-order.
func Walk(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walk(n, yield)
	}
}

func walk(n *Node, yield func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !yield(n) {
		return false
	}
	for _, child := range n.Children {
		if !walk(child, yield) {
			return false
		}
	}
	return true
}

// Canvases yields the CANVAS nodes below n. A canvas needs children and a
// background color; the walk does not descend into canvases.
func Canvases(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		canvases(n, yield)
	}
}

func canvases(n *Node, yield func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if n.Type == TypeCanvas && n.HasChildren() && n.HasBackgroundColor() {
		return yield(n)
	}
	for _, child := range n.Children {
		if !canvases(child, yield) {
			return false
		}
	}
	return true
}

// FindByID returns the node with the given id below root, or nil.
func FindByID(root *Node, id string) *Node {
	for n := range Walk(root) {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n *Node) int {
	count := 0
	for range Walk(n) {
		count++
	}
	return count
}

var renderable = map[string]struct{}{
	TypeCanvas:       {},
	TypeFrame:        {},
	TypeGroup:        {},
	TypeComponent:    {},
	TypeComponentSet: {},
}

// FindMainNode picks the node a frame viewer renders from a file nodes
// response. Node ids are visited in sorted order so the choice is stable.
func FindMainNode(resp *FileNodesResponse) *Node {
	if resp == nil {
		return nil
	}
	ids := make([]string, 0, len(resp.Nodes))
	for id := range resp.Nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		doc := resp.Nodes[id].Document
		if doc == nil {
			continue
		}
		if _, ok := renderable[doc.Type]; ok {
			return doc
		}
	}
	return nil
}
