// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futures

import (
	"code.hybscloud.com/kont"
)

// FromExprError wraps an Expr-world computation that may Throw in a
// Future completing with Either[E, R]: Right on success, Left on Throw.
// Error effects dispatch eagerly during Poll without suspending; only
// [Pend] suspends. Poll passes the Either through unexamined — a Left is
// still a completion, never a Poll failure.
func FromExprError[E, R any](expr kont.Expr[R]) *Future[kont.Either[E, R]] {
	wrapped := kont.ExprMap(expr, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	return FromCoroutine[kont.Either[E, R]](&errorCoroutine[E, R]{expr: wrapped})
}

// FromEffError wraps a Cont-world computation that may Throw in a Future
// completing with Either[E, R]: Right on success, Left on Throw.
func FromEffError[E, R any](m kont.Eff[R]) *Future[kont.Either[E, R]] {
	return FromExprError[E](kont.Reify(m))
}

// errorDispatcher is the structural interface for error effects.
type errorDispatcher[E any] interface {
	DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
}

// errorCoroutine steps a kont.Expr whose effects are Pend and the error
// family. Error ops are eager: Throw discards the suspension and
// completes with Left. Only a Pend op suspends the coroutine, so one
// Resume still maps to exactly one suspension point.
type errorCoroutine[E, R any] struct {
	expr    kont.Expr[kont.Either[E, R]]
	susp    *kont.Suspension[kont.Either[E, R]]
	started bool
	ended   bool
}

func (c *errorCoroutine[E, R]) Resume() (kont.Either[E, R], bool) {
	var (
		r    kont.Either[E, R]
		next *kont.Suspension[kont.Either[E, R]]
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
	for next != nil {
		if _, ok := next.Op().(Pend); ok {
			c.susp = next
			var zero kont.Either[E, R]
			return zero, false
		}
		eop, ok := next.Op().(errorDispatcher[E])
		if !ok {
			panic("futures: unhandled effect in Poll")
		}
		var ectx kont.ErrorContext[E]
		v, _ := eop.DispatchError(&ectx)
		if ectx.HasErr {
			next.Discard()
			c.ended = true
			return kont.Left[E, R](ectx.Err), true
		}
		r, next = next.Resume(v)
	}
	c.ended = true
	return r, true
}
