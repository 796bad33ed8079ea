// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !unsafe_single_unit

package futures

import (
	"sync"

	"github.com/petermattis/goid"
)

// tls maps goroutine ID to the context installed on that goroutine.
// One entry exists per goroutine with a poll in progress; the outermost
// guard removes it, so the table grows with concurrent polls, not with
// the number of futures.
var tls sync.Map // int64 -> *Context

// guard owns the value removed from the slot by install or take and
// writes it back exactly once when released. Release via defer so the
// slot is restored on panic as well as on return.
type guard struct {
	prev *Context
	gid  int64
	had  bool
	done bool
}

// install unconditionally stores cx in the calling goroutine's slot and
// returns a guard holding the previous occupant, if any.
func install(cx *Context) guard {
	gid := goid.Get()
	prev, had := tls.Swap(gid, cx)
	g := guard{gid: gid, had: had}
	if had {
		g.prev = prev.(*Context)
	}
	return g
}

// take removes and returns the calling goroutine's current context
// together with a guard that restores it. The slot stays empty until the
// guard fires, so a nested take fails: at most one retrieval may hold
// the context at any instant.
//
// Panics if the slot is empty. Retrieval outside an active Poll, or
// while a surrounding take still holds the context, breaks the poll
// protocol and is not recoverable.
func take() (*Context, guard) {
	gid := goid.Get()
	v, ok := tls.LoadAndDelete(gid)
	if !ok {
		panic("futures: no ambient task context on this goroutine")
	}
	cx := v.(*Context)
	return cx, guard{prev: cx, gid: gid, had: true}
}

// restore writes the owned value back into the slot. Idempotent.
func (g *guard) restore() {
	if g.done {
		return
	}
	g.done = true
	if g.had {
		tls.Store(g.gid, g.prev)
	} else {
		tls.Delete(g.gid)
	}
}
