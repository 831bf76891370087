// Package control holds the two process-wide pieces of mutable state
// shared across a search: the cooperative abort flag and the
// iterative-deepening status registry (§4.8, C8).
//
// Both are level-triggered, most-recent-writer-wins values, and neither
// side ever blocks. External callers set the abort flag and engines poll
// it (MM's IterateMinimax also clears it when it starts); the status
// registry is written by the engine and read by callers. abort_computation is documented safe only when a single search
// is in flight at a time (§9); with more than one, a single flag aborts
// all of them, matching the original source's guarantee.
package control

import "sync/atomic"

// AbortFlag is a single cooperative cancellation flag. Engines poll it
// at BFS dequeue (EXH) or before each child expansion (MM); worst case
// one additional node is expanded after it is set.
type AbortFlag struct {
	aborted atomic.Bool
}

// Abort sets the flag.
func (f *AbortFlag) Abort() { f.aborted.Store(true) }

// Clear resets the flag, typically at the start of a new search.
func (f *AbortFlag) Clear() { f.aborted.Store(false) }

// IsAborted reports the flag's current value.
func (f *AbortFlag) IsAborted() bool { return f.aborted.Load() }

// SearchStatus reports the outermost iterative-deepening loop's
// progress: the depth currently (or most recently) being searched, and
// whether that search's result was terminal.
type SearchStatus struct {
	CurrentDepth int
	IsTerminal   bool
}

// StatusRegistry publishes the most recent SearchStatus for a family of
// concurrently-describable iterative-deepening searches. "Concurrently
// running searches form a registry so that get_search_status can report
// the most recent in-flight depth" (§4.7) — a single registry instance
// is enough since there is at most one MM search per process by
// convention (§9).
type StatusRegistry struct {
	depth    atomic.Int32
	terminal atomic.Bool
}

// Publish records the current status. Called once per completed or
// in-progress depth.
func (r *StatusRegistry) Publish(s SearchStatus) {
	r.depth.Store(int32(s.CurrentDepth))
	r.terminal.Store(s.IsTerminal)
}

// Status returns the most recently published status.
func (r *StatusRegistry) Status() SearchStatus {
	return SearchStatus{
		CurrentDepth: int(r.depth.Load()),
		IsTerminal:   r.terminal.Load(),
	}
}
