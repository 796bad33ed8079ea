// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futures

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated erased operation and frame to eliminate heap escapes
// when boxing empty structs into any/kont.Frame during Expr-world
// construction.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprPend        kont.Erased = Pend{}
)

// identityResume is the identity resume function for EffectFrame
// construction. Named function produces a static function value,
// consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprPendThen yields to the driver once and then continues with next.
// Fuses ExprPerform(Pend{}) + ExprThen.
func ExprPendThen[B any](next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprPend
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprPendDone yields to the driver once and then completes with a.
// Fuses ExprPerform(Pend{}) + ExprThen + ExprReturn.
func ExprPendDone[A any](a A) kont.Expr[A] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(a), Frame: exprReturnFrame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprPend
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[A](ef)
}

// ExprAwait polls f with the ambient context until it completes,
// yielding between attempts. Built on the Reify bridge: the poll loop is
// closure-shaped, so there is no frame-fused variant.
func ExprAwait[T any](f *Future[T]) kont.Expr[T] {
	return kont.Reify(Await(f))
}

// ExprAwaitBind polls f to completion and passes the result to k.
func ExprAwaitBind[T, B any](f *Future[T], k func(T) kont.Expr[B]) kont.Expr[B] {
	return kont.Reify(kont.Bind(Await(f), func(v T) kont.Eff[B] {
		return kont.Reflect(k(v))
	}))
}
