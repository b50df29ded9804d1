package menu

import (
	"errors"
	"testing"
)

func buildTestTree(t *testing.T) *Tree {
	t.Helper()
	b := NewBuilder("Main Menu")
	b.AddAction("root", Spec{Binding: "i", Alias: "inc", Label: "Increment"})
	b.AddAction("root", Spec{Binding: "d", Alias: "dec", Label: "Decrement"})
	tools := b.AddSubmenu("root", Spec{Binding: "t", Alias: "tools", Label: "Tools"})
	b.AddAction(tools, Spec{Binding: "w", Alias: "work", Label: "Background Work"})
	b.AddAction(tools, Spec{Binding: "s", Alias: "status", Label: "Status"})
	tree, err := b.Build(DefaultTokens())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	return tree
}

func TestBuilderAssignsHierarchicalIDs(t *testing.T) {
	tree := buildTestTree(t)
	node := tree.Node("tools:work")
	if node.Parent != "tools" {
		t.Fatalf("expected parent tools, got %q", node.Parent)
	}
	if !node.HasAction {
		t.Fatalf("expected tools:work to carry an action")
	}
	if tree.ParentOf("tools") != "root" {
		t.Fatalf("expected tools parented at root, got %q", tree.ParentOf("tools"))
	}
	if !tree.IsRoot(tree.Root()) {
		t.Fatalf("expected root to be root")
	}
}

func TestChildrenOfPreservesOrder(t *testing.T) {
	tree := buildTestTree(t)
	children := tree.ChildrenOf("root")
	want := []string{"inc", "dec", "tools"}
	if len(children) != len(want) {
		t.Fatalf("expected %d children, got %d", len(want), len(children))
	}
	for i, id := range want {
		if children[i].ID != id {
			t.Fatalf("expected child %d to be %q, got %q", i, id, children[i].ID)
		}
	}
}

func TestResolveBindingAndAlias(t *testing.T) {
	tree := buildTestTree(t)
	for _, token := range []string{"i", "inc"} {
		node, ok := tree.Resolve("root", token)
		if !ok || node.ID != "inc" {
			t.Fatalf("expected token %q to resolve to inc, got %v %v", token, node, ok)
		}
	}
	if _, ok := tree.Resolve("root", "zzz"); ok {
		t.Fatalf("expected zzz to be unresolved")
	}
	if _, ok := tree.Resolve("root", ""); ok {
		t.Fatalf("expected empty token to be unresolved")
	}
}

func TestResolveBindingBeatsSiblingAlias(t *testing.T) {
	b := NewBuilder("Main Menu")
	// One sibling aliases "x", another binds the key "x": the binding wins.
	b.AddAction("root", Spec{Alias: "x", Label: "Alias Item"})
	b.AddAction("root", Spec{Slug: "bound", Binding: "x", Label: "Bound Item"})
	tree, err := b.Build(DefaultTokens())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	node, ok := tree.Resolve("root", "x")
	if !ok {
		t.Fatalf("expected x to resolve")
	}
	if node.ID != "bound" {
		t.Fatalf("expected binding to win, resolved %q", node.ID)
	}
}

func TestBuildRejectsDuplicateSiblingBinding(t *testing.T) {
	b := NewBuilder("Main Menu")
	b.AddAction("root", Spec{Binding: "a", Alias: "first", Label: "First"})
	b.AddAction("root", Spec{Binding: "a", Alias: "second", Label: "Second"})
	if _, err := b.Build(DefaultTokens()); !errors.Is(err, ErrDuplicateCommand) {
		t.Fatalf("expected ErrDuplicateCommand, got %v", err)
	}
}

func TestBuildAllowsSameBindingInDifferentMenus(t *testing.T) {
	b := NewBuilder("Main Menu")
	b.AddAction("root", Spec{Binding: "a", Alias: "first", Label: "First"})
	sub := b.AddSubmenu("root", Spec{Binding: "s", Alias: "sub", Label: "Sub"})
	b.AddAction(sub, Spec{Binding: "a", Alias: "nested", Label: "Nested"})
	if _, err := b.Build(DefaultTokens()); err != nil {
		t.Fatalf("per-sibling uniqueness should allow reuse across menus: %v", err)
	}
}

func TestBuildRejectsReservedToken(t *testing.T) {
	b := NewBuilder("Main Menu")
	b.AddAction("root", Spec{Binding: "q", Alias: "quitish", Label: "Bad"})
	if _, err := b.Build(DefaultTokens()); !errors.Is(err, ErrReservedCommand) {
		t.Fatalf("expected ErrReservedCommand, got %v", err)
	}
}

func TestBuildRejectsChildUnderAction(t *testing.T) {
	b := NewBuilder("Main Menu")
	leaf := b.AddAction("root", Spec{Binding: "a", Alias: "leaf", Label: "Leaf"})
	b.AddAction(leaf, Spec{Binding: "c", Alias: "child", Label: "Child"})
	if _, err := b.Build(DefaultTokens()); !errors.Is(err, ErrLeafConflict) {
		t.Fatalf("expected ErrLeafConflict, got %v", err)
	}
}

func TestBuildRejectsUnknownParent(t *testing.T) {
	b := NewBuilder("Main Menu")
	b.AddAction("missing", Spec{Binding: "a", Alias: "orphan", Label: "Orphan"})
	if _, err := b.Build(DefaultTokens()); !errors.Is(err, ErrUnknownParent) {
		t.Fatalf("expected ErrUnknownParent, got %v", err)
	}
}

func TestNodePanicsOnUnknownID(t *testing.T) {
	tree := buildTestTree(t)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown id")
		}
	}()
	tree.Node("no-such-node")
}
