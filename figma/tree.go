package figma

import (
	"github.com/xlab/treeprint"
)

// Tree renders the outline of the tree rooted at n, one "name (TYPE #id)"
// label per node. Hidden nodes are marked.
func Tree(n *Node) string {
	tp := treeprint.New()
	if n != nil {
		addTree(tp, n)
	}
	return tp.String()
}

func addTree(parent treeprint.Tree, n *Node) {
	label := n.String()
	if !n.IsVisible() {
		label += " [hidden]"
	}
	if len(n.Children) == 0 {
		parent.AddNode(label)
		return
	}
	branch := parent.AddBranch(label)
	for _, child := range n.Children {
		addTree(branch, child)
	}
}
