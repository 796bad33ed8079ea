// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futures

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Coroutine is a suspendable computation: a state machine resumable
// multiple times that suspends at defined points and eventually produces
// a terminal result. Resume advances it by exactly one step, returning
// (zero, false) while suspended and (result, true) on completion.
// Coroutines are affine: resuming after completion is a contract
// violation (kont-backed coroutines panic).
type Coroutine[R any] interface {
	Resume() (R, bool)
}

// noCopy triggers go vet copylocks on values copied after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Future adapts a [Coroutine] to the poll contract. A Future wraps
// exactly one coroutine and holds no mutable state beyond what the
// coroutine itself holds.
//
// Futures are address-stable: constructors return a pointer and the
// value must not be copied once polled, because the wrapped coroutine
// may hold internal references established across a suspension point.
// Abandoning a future before completion is always safe; any slot guard
// active during a poll has fired before the future can be dropped.
type Future[R any] struct {
	noCopy noCopy
	co     Coroutine[R]
	serial Serial
}

// FromCoroutine wraps a resumable state machine in a Future, taking
// ownership of it.
func FromCoroutine[R any](co Coroutine[R]) *Future[R] {
	return &Future[R]{co: co, serial: nextSerial()}
}

// FromExpr wraps an Expr-world computation in a Future. The computation
// may suspend only through the [Pend] effect; any other operation
// reaching Poll panics as an unhandled effect. For computations that
// also throw, use [FromExprError].
func FromExpr[R any](expr kont.Expr[R]) *Future[R] {
	return FromCoroutine[R](&exprCoroutine[R]{expr: expr})
}

// FromEff wraps a Cont-world computation in a Future.
// Reifies to Expr-world first so stepping runs on the defunctionalized
// evaluator.
func FromEff[R any](m kont.Eff[R]) *Future[R] {
	return FromExpr(kont.Reify(m))
}

// Serial returns the serial number assigned to this future.
func (f *Future[R]) Serial() Serial {
	return f.serial
}

// Poll advances the wrapped coroutine by exactly one resume, with cx
// installed as the ambient context of the calling goroutine for the
// duration of the call.
//
// Returns (result, nil) on completion, or (zero, iox.ErrWouldBlock)
// while suspended; re-poll after the Waker carried by cx fires. Poll
// never blocks and never fails on its own account. The ambient slot is
// restored to its pre-call content on every exit path, including a
// panic propagating out of the coroutine.
func (f *Future[R]) Poll(cx *Context) (R, error) {
	g := install(cx)
	defer g.restore()
	r, done := f.co.Resume()
	if !done {
		var zero R
		return zero, iox.ErrWouldBlock
	}
	return r, nil
}

// exprCoroutine steps a kont.Expr one effect at a time. The held
// suspension is the paused state machine between polls.
type exprCoroutine[R any] struct {
	expr    kont.Expr[R]
	susp    *kont.Suspension[R]
	started bool
	ended   bool
}

func (c *exprCoroutine[R]) Resume() (R, bool) {
	var (
		r    R
		next *kont.Suspension[R]
	)
	switch {
	case !c.started:
		c.started = true
		r, next = kont.StepExpr(c.expr)
	case c.ended:
		panic("futures: coroutine resumed after completion")
	default:
		susp := c.susp
		c.susp = nil
		r, next = susp.Resume(struct{}{})
	}
	if next == nil {
		c.ended = true
		return r, true
	}
	if _, ok := next.Op().(Pend); !ok {
		panic("futures: unhandled effect in Poll")
	}
	c.susp = next
	var zero R
	return zero, false
}
