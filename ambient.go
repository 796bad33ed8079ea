// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futures

// WithContext installs cx as the ambient context of the calling
// goroutine for the duration of op and returns op's result. The previous
// occupant, if any, is restored when op returns or panics. Poll does
// this internally; WithContext is the hook for adapters that resume a
// coroutine by other means.
func WithContext[R any](cx *Context, op func() R) R {
	g := install(cx)
	defer g.restore()
	return op()
}

// WithCurrentContext removes the ambient context from the calling
// goroutine's slot, invokes op with exclusive access to it, and returns
// op's result. The slot stays empty while op runs — a nested
// WithCurrentContext panics — and is restored immediately after, on
// normal return or panic. Code inside a computation uses this to reach
// the Waker of whichever Poll is currently driving it.
//
// Panics if no context is installed: calling outside an active Poll, or
// while a surrounding WithCurrentContext holds the context, breaks the
// poll protocol and is not recoverable.
func WithCurrentContext[R any](op func(*Context) R) R {
	cx, g := take()
	defer g.restore()
	return op(cx)
}

// PollCurrent polls f with the ambient context. This is how a
// computation drives a nested future: whatever context the enclosing
// Poll installed is forwarded without being threaded through every call.
func PollCurrent[R any](f *Future[R]) (r R, err error) {
	WithCurrentContext(func(cx *Context) struct{} {
		r, err = f.Poll(cx)
		return struct{}{}
	})
	return r, err
}
