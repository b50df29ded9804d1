package menu

import "fmt"

// Node represents a single entry in the menu tree. A node is either a
// submenu (it has children) or a leaf bound to an action; never both.
type Node struct {
	ID        string
	Label     string
	Binding   string
	Alias     string
	Parent    string
	Children  []string
	HasAction bool
}

// Submenu reports whether the node leads to a deeper menu level.
func (n *Node) Submenu() bool {
	return !n.HasAction
}

// Tree is an arena of menu nodes addressed by stable string IDs. The shape
// is fixed once Build returns; navigation state lives elsewhere.
type Tree struct {
	nodes map[string]*Node
	root  string
}

// Root returns the ID of the root node.
func (t *Tree) Root() string {
	return t.root
}

// IsRoot reports whether the given ID names the root node.
func (t *Tree) IsRoot(id string) bool {
	return id == t.root
}

// Node returns the node for the given ID. Looking up an unknown ID is a
// programming error and panics.
func (t *Tree) Node(id string) *Node {
	node, ok := t.nodes[id]
	if !ok {
		panic(fmt.Sprintf("menu: unknown node id %q", id))
	}
	return node
}

// Lookup returns the node for the given ID without the fatal contract.
func (t *Tree) Lookup(id string) (*Node, bool) {
	node, ok := t.nodes[id]
	return node, ok
}

// ParentOf returns the parent ID of the given node. The root has no parent
// and returns the empty string.
func (t *Tree) ParentOf(id string) string {
	return t.Node(id).Parent
}

// ChildrenOf returns the children of the given node in definition order.
func (t *Tree) ChildrenOf(id string) []*Node {
	node := t.Node(id)
	children := make([]*Node, 0, len(node.Children))
	for _, childID := range node.Children {
		children = append(children, t.Node(childID))
	}
	return children
}

// Resolve matches a token against the children of parentID. Key bindings are
// checked across all siblings before any alias comparison, so a binding
// always wins over another sibling's alias. Aliases are case-sensitive.
func (t *Tree) Resolve(parentID, token string) (*Node, bool) {
	if token == "" {
		return nil, false
	}
	parent := t.Node(parentID)
	for _, childID := range parent.Children {
		child := t.Node(childID)
		if child.Binding != "" && child.Binding == token {
			return child, true
		}
	}
	for _, childID := range parent.Children {
		child := t.Node(childID)
		if child.Alias != "" && child.Alias == token {
			return child, true
		}
	}
	return nil, false
}
