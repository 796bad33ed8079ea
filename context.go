// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futures

// Waker is the wake capability carried by a poll [Context]. Wake signals
// the driver that owns a suspended future that polling again may make
// progress. Wake must be safe to call from any goroutine and may be
// called more than once per suspension.
type Waker interface {
	Wake()
}

// WakerFunc adapts a plain function to the Waker interface.
type WakerFunc func()

// Wake calls f.
func (f WakerFunc) Wake() { f() }

type noopWaker struct{}

func (noopWaker) Wake() {}

// NoopWaker returns a Waker whose Wake does nothing.
// Suits busy-poll drivers and tests that re-poll unconditionally.
func NoopWaker() Waker { return noopWaker{} }

// Context carries the wake capability the driver supplies for a single
// Poll call. A Context is owned by the driver and borrowed by the future
// for the duration of that call only; it must not be retained past it.
// Retain the Waker instead: wakers outlive the Poll call that carried them.
type Context struct {
	waker Waker
}

// NewContext creates a Context carrying w.
func NewContext(w Waker) *Context {
	return &Context{waker: w}
}

// Waker returns the wake capability carried by the context.
func (cx *Context) Waker() Waker {
	return cx.waker
}
