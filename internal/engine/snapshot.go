package engine

import (
	"github.com/atomicstack/menukit/internal/menu"
	"github.com/atomicstack/menukit/internal/session"
)

// Crumb is one breadcrumb segment from root to the active node.
type Crumb struct {
	ID    string
	Label string
}

// Child is the display view of one selectable menu entry.
type Child struct {
	ID      string
	Binding string
	Alias   string
	Label   string
	Submenu bool
}

// Snapshot is the read-only projection handed to renderers. Both renderer
// variants consume the same snapshot; the engine never inspects what they
// do with it.
type Snapshot struct {
	CurrentID  string
	Title      string
	AtRoot     bool
	Breadcrumb []Crumb
	Children   []Child
	Mode       session.Mode
	Entries    []session.Entry
	Cursor     int
	Pending    int
	Tokens     menu.Tokens
}

// Snapshot projects the current session state for one display update.
func (e *Engine) Snapshot() Snapshot {
	path := e.sess.Path()
	crumbs := make([]Crumb, 0, len(path))
	for _, id := range path {
		crumbs = append(crumbs, Crumb{ID: id, Label: e.tree.Node(id).Label})
	}
	leaf := e.tree.Node(e.sess.Leaf())
	children := e.tree.ChildrenOf(leaf.ID)
	views := make([]Child, 0, len(children))
	for _, child := range children {
		views = append(views, Child{
			ID:      child.ID,
			Binding: child.Binding,
			Alias:   child.Alias,
			Label:   child.Label,
			Submenu: child.Submenu(),
		})
	}
	history := e.sess.History()
	return Snapshot{
		CurrentID:  leaf.ID,
		Title:      leaf.Label,
		AtRoot:     e.sess.AtRoot(),
		Breadcrumb: crumbs,
		Children:   views,
		Mode:       e.sess.Mode(),
		Entries:    history.Entries(),
		Cursor:     history.Cursor(),
		Pending:    e.dispatcher.Pending(),
		Tokens:     e.tokens,
	}
}
