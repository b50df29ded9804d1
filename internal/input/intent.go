package input

// Kind classifies the structured result of interpreting one raw input unit.
type Kind int

const (
	// KindNone means the input is ignored outright (empty line, or a token
	// with no meaning in scroll mode).
	KindNone Kind = iota
	// KindNavigate descends into the submenu named by NodeID.
	KindNavigate
	// KindBack ascends one menu level.
	KindBack
	// KindQuit requests application shutdown.
	KindQuit
	// KindSwitchMode flips between command and scroll mode.
	KindSwitchMode
	// KindScroll moves the output-history cursor.
	KindScroll
	// KindInvoke dispatches the action bound to NodeID.
	KindInvoke
	// KindUnresolved reports an unknown command.
	KindUnresolved
)

// ScrollOp enumerates the cursor movements available in scroll mode.
type ScrollOp int

const (
	ScrollUp ScrollOp = iota
	ScrollDown
	ScrollPageUp
	ScrollPageDown
	ScrollTop
	ScrollBottom
)

func (op ScrollOp) String() string {
	switch op {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	case ScrollPageUp:
		return "page-up"
	case ScrollPageDown:
		return "page-down"
	case ScrollTop:
		return "top"
	case ScrollBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Intent is the single structured outcome of interpreting one input unit.
// Param is nil when the command carried no parameter; an empty remainder is
// not the same as an absent one.
type Intent struct {
	Kind       Kind
	NodeID     string
	Label      string
	Param      *string
	Raw        string
	Suggestion string
	Scroll     ScrollOp
}
