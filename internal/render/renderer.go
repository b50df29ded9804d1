// Package render holds the display layer: a Renderer abstraction over the
// engine's snapshots plus the plain linear and rich interactive variants.
// Renderers only consume snapshots; they never reach into the engine state.
package render

import "github.com/atomicstack/menukit/internal/engine"

// Renderer draws one display update from a read-only snapshot.
type Renderer interface {
	Render(engine.Snapshot) error
}

const breadcrumbSeparator = " → "
