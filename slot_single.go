// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unsafe_single_unit

package futures

// Single-execution-unit mode: the per-goroutine slot table collapses to
// one unsynchronized package-level cell. Sound only when the whole
// program polls from exactly one goroutine for its entire lifetime.
// Violating that precondition is deliberately undetected; checking would
// defeat the point of this build.
var tlsCX *Context

// guard owns the value removed from the slot by install or take and
// writes it back exactly once when released. Release via defer so the
// slot is restored on panic as well as on return.
type guard struct {
	prev *Context
	done bool
}

// install unconditionally stores cx in the slot and returns a guard
// holding the previous occupant, if any.
func install(cx *Context) guard {
	g := guard{prev: tlsCX}
	tlsCX = cx
	return g
}

// take removes and returns the current context together with a guard
// that restores it. The slot stays empty until the guard fires, so a
// nested take fails: at most one retrieval may hold the context at any
// instant.
//
// Panics if the slot is empty. Retrieval outside an active Poll, or
// while a surrounding take still holds the context, breaks the poll
// protocol and is not recoverable.
func take() (*Context, guard) {
	cx := tlsCX
	if cx == nil {
		panic("futures: no ambient task context on this goroutine")
	}
	tlsCX = nil
	return cx, guard{prev: cx}
}

// restore writes the owned value back into the slot. Idempotent.
func (g *guard) restore() {
	if g.done {
		return
	}
	g.done = true
	tlsCX = g.prev
}
