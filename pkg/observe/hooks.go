// Package observe provides ready-made lifecycle observers: a func-struct
// Hooks adapter for ad hoc callbacks and a structured-logging observer.
package observe

import "github.com/aretw0/canopy"

// Hooks adapts plain functions to the canopy.Observer contract. Nil fields
// are simply skipped, so callers wire only the notifications they care
// about.
type Hooks struct {
	OnContextEnding      func(ctx *canopy.Context)
	OnContextEnded       func(ctx *canopy.Context)
	OnChildContextEnding func(child *canopy.Context)
	OnChildContextEnded  func(child *canopy.Context)
}

// ContextEnding invokes OnContextEnding if set.
func (h *Hooks) ContextEnding(ctx *canopy.Context) {
	if h.OnContextEnding != nil {
		h.OnContextEnding(ctx)
	}
}

// ContextEnded invokes OnContextEnded if set.
func (h *Hooks) ContextEnded(ctx *canopy.Context) {
	if h.OnContextEnded != nil {
		h.OnContextEnded(ctx)
	}
}

// ChildContextEnding invokes OnChildContextEnding if set.
func (h *Hooks) ChildContextEnding(child *canopy.Context) {
	if h.OnChildContextEnding != nil {
		h.OnChildContextEnding(child)
	}
}

// ChildContextEnded invokes OnChildContextEnded if set.
func (h *Hooks) ChildContextEnded(child *canopy.Context) {
	if h.OnChildContextEnded != nil {
		h.OnChildContextEnded(child)
	}
}
