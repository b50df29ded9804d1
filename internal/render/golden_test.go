package render

import (
	"testing"

	"github.com/atomicstack/menukit/internal/testutil"
)

func TestPlainFrameGoldenRootMenu(t *testing.T) {
	e := newRenderEngine(t)
	testutil.Golden(t, "plain_root_menu.golden", PlainFrame(e.Snapshot()))
}

func TestPlainFrameGoldenAfterIncrement(t *testing.T) {
	e := newRenderEngine(t)
	e.HandleInput("inc")
	testutil.Golden(t, "plain_after_inc.golden", PlainFrame(e.Snapshot()))
}
