// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futures_test

import (
	"testing"

	"code.hybscloud.com/futures"
	"code.hybscloud.com/iox"
)

// pollToReady drives f to completion with cx, returning the result and
// the total number of Poll calls. Fails the test if the future does not
// complete within a bounded number of polls.
func pollToReady[R any](tb testing.TB, f *futures.Future[R], cx *futures.Context) (R, int) {
	tb.Helper()
	for polls := 1; ; polls++ {
		r, err := f.Poll(cx)
		if err == nil {
			return r, polls
		}
		if err != iox.ErrWouldBlock {
			tb.Fatalf("Poll error: %v", err)
		}
		if polls >= 1000 {
			tb.Fatalf("future %d did not complete within %d polls", f.Serial(), polls)
		}
	}
}

// resumeFunc adapts a closure to the Coroutine interface, letting tests
// run arbitrary code inside a poll.
type resumeFunc[R any] func() (R, bool)

func (f resumeFunc[R]) Resume() (R, bool) { return f() }

// pendTimes is a hand-written coroutine that suspends n times and then
// completes with value.
type pendTimes struct {
	n     int
	value int
}

func (c *pendTimes) Resume() (int, bool) {
	if c.n > 0 {
		c.n--
		return 0, false
	}
	return c.value, true
}

// mustPanic asserts that fn panics and returns the recovered value.
func mustPanic(tb testing.TB, fn func()) (recovered any) {
	tb.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			tb.Fatal("expected panic")
		}
	}()
	fn()
	return nil
}

// currentContext returns the ambient context of the calling goroutine.
// Panics, like WithCurrentContext, if none is installed.
func currentContext() *futures.Context {
	return futures.WithCurrentContext(func(cx *futures.Context) *futures.Context {
		return cx
	})
}

// noAmbient asserts that no ambient context is installed on the calling
// goroutine, i.e. that every guard of the preceding polls has fired.
func noAmbient(tb testing.TB) {
	tb.Helper()
	mustPanic(tb, func() {
		futures.WithCurrentContext(func(*futures.Context) struct{} {
			return struct{}{}
		})
	})
}

// ambientInstalled reports whether an ambient context is installed,
// without failing the test when it is not.
func ambientInstalled() (installed bool) {
	defer func() { _ = recover() }()
	futures.WithCurrentContext(func(*futures.Context) struct{} {
		installed = true
		return struct{}{}
	})
	return installed
}
