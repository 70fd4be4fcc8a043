// Package observability provides hooks for render metrics and logging.
//
// The layout engine reports every render through the registered
// [RenderHooks]. The default implementation does nothing, so libraries pay
// only for a function call unless an application opts in.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// The engine emits events around each render:
//
//	observability.Render().OnRenderStart(width)
//	// ... layout ...
//	observability.Render().OnRenderComplete(width, stats, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Render Statistics
// =============================================================================

// Stats summarizes the layout decisions of one render.
type Stats struct {
	Lines        int // line breaks written, soft and hard
	FlatGroups   int // groups rendered on one line
	BrokenGroups int // groups rendered with their soft breaks as newlines
	Rebreaks     int // times a hard break forced committed flat content to break
	Annotations  int // annotation regions opened
	PeakDepth    int // largest number of pending work items
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the layout engine.
type RenderHooks interface {
	OnRenderStart(width int)
	OnRenderComplete(width int, stats Stats, duration time.Duration, err error)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(int)                                {}
func (NoopRenderHooks) OnRenderComplete(int, Stats, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any renders.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
