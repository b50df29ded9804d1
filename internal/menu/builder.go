package menu

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Tokens holds the reserved command words the interpreter claims for itself.
// Menu items may not shadow them.
type Tokens struct {
	Back   string
	Quit   string
	Switch string
}

// DefaultTokens returns the stock reserved tokens.
func DefaultTokens() Tokens {
	return Tokens{Back: "b", Quit: "q", Switch: "tab"}
}

// Structural violations reported by Build. All of them are fatal: the
// application must not start with a malformed tree.
var (
	ErrDuplicateCommand = errors.New("menu: duplicate command token among siblings")
	ErrReservedCommand  = errors.New("menu: reserved command token used by item")
	ErrUnknownParent    = errors.New("menu: unknown parent id")
	ErrLeafConflict     = errors.New("menu: action node cannot have children")
	ErrEmptyItem        = errors.New("menu: item needs a binding or an alias")
	ErrBadBinding       = errors.New("menu: binding must be a single character")
)

// Spec describes one item added to the tree. Binding is an optional
// single-character key, Alias an optional text command; at least one must be
// set. Slug overrides the ID segment derived from Alias/Binding.
type Spec struct {
	Slug    string
	Binding string
	Alias   string
	Label   string
}

func (s Spec) slug() string {
	if s.Slug != "" {
		return s.Slug
	}
	if s.Alias != "" {
		return s.Alias
	}
	return s.Binding
}

// Builder assembles a Tree before the application loop starts. Errors are
// collected and reported once by Build, so call sites can chain adds without
// per-call checks.
type Builder struct {
	nodes map[string]*Node
	root  string
	errs  []error
}

// NewBuilder starts a tree with a root node labelled rootLabel.
func NewBuilder(rootLabel string) *Builder {
	root := &Node{ID: "root", Label: rootLabel}
	return &Builder{
		nodes: map[string]*Node{root.ID: root},
		root:  root.ID,
	}
}

// AddSubmenu registers a submenu item under parentID and returns its ID.
func (b *Builder) AddSubmenu(parentID string, spec Spec) string {
	return b.add(parentID, spec, false)
}

// AddAction registers an action leaf under parentID and returns its ID. The
// handler itself is bound separately in the action registry, keyed by the
// returned ID.
func (b *Builder) AddAction(parentID string, spec Spec) string {
	return b.add(parentID, spec, true)
}

func (b *Builder) add(parentID string, spec Spec, hasAction bool) string {
	parent, ok := b.nodes[parentID]
	if !ok {
		b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrUnknownParent, parentID))
		return ""
	}
	if parent.HasAction {
		b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrLeafConflict, parentID))
		return ""
	}
	if spec.Binding == "" && spec.Alias == "" {
		b.errs = append(b.errs, fmt.Errorf("%w: under %q", ErrEmptyItem, parentID))
		return ""
	}
	if spec.Binding != "" && utf8.RuneCountInString(spec.Binding) != 1 {
		b.errs = append(b.errs, fmt.Errorf("%w: %q under %q", ErrBadBinding, spec.Binding, parentID))
		return ""
	}
	id := childID(parentID, spec.slug())
	if _, exists := b.nodes[id]; exists {
		b.errs = append(b.errs, fmt.Errorf("%w: id %q", ErrDuplicateCommand, id))
		return id
	}
	node := &Node{
		ID:        id,
		Label:     spec.Label,
		Binding:   spec.Binding,
		Alias:     spec.Alias,
		Parent:    parentID,
		HasAction: hasAction,
	}
	b.nodes[id] = node
	parent.Children = append(parent.Children, id)
	return id
}

// Build validates the assembled structure against the reserved tokens and
// returns the immutable tree. Any violation aborts the build.
func (b *Builder) Build(tokens Tokens) (*Tree, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	reserved := map[string]struct{}{}
	for _, tok := range []string{tokens.Back, tokens.Quit, tokens.Switch} {
		if tok != "" {
			reserved[tok] = struct{}{}
		}
	}
	for _, node := range b.nodes {
		if err := validateSiblings(b, node, reserved); err != nil {
			return nil, err
		}
	}
	return &Tree{nodes: b.nodes, root: b.root}, nil
}

func validateSiblings(b *Builder, parent *Node, reserved map[string]struct{}) error {
	bindings := map[string]string{}
	aliases := map[string]string{}
	for _, childID := range parent.Children {
		child := b.nodes[childID]
		for _, tok := range []string{child.Binding, child.Alias} {
			if tok == "" {
				continue
			}
			if _, ok := reserved[tok]; ok {
				return fmt.Errorf("%w: %q in menu %q", ErrReservedCommand, tok, parent.Label)
			}
		}
		if child.Binding != "" {
			if prev, ok := bindings[child.Binding]; ok {
				return fmt.Errorf("%w: binding %q on %q and %q", ErrDuplicateCommand, child.Binding, prev, child.ID)
			}
			bindings[child.Binding] = child.ID
		}
		if child.Alias != "" {
			if prev, ok := aliases[child.Alias]; ok {
				return fmt.Errorf("%w: alias %q on %q and %q", ErrDuplicateCommand, child.Alias, prev, child.ID)
			}
			aliases[child.Alias] = child.ID
		}
	}
	return nil
}

// childID forms colon-delimited IDs so a node's ancestry reads directly from
// its identifier, e.g. "tools:work".
func childID(parentID, slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if parentID == "root" {
		return slug
	}
	return parentID + ":" + slug
}
