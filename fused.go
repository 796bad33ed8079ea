// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futures

import (
	"code.hybscloud.com/kont"
)

// PendThen yields to the driver once and then continues with next.
// Fuses Perform(Pend{}) + Then.
func PendThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Pend{}), next)
}

// PendDone yields to the driver once and then completes with a.
// Fuses Perform(Pend{}) + Then + Pure.
func PendDone[A any](a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Pend{}), kont.Pure(a))
}

// Await polls f with the ambient context until it completes, yielding to
// the driver between attempts. The poll happens at evaluation time,
// inside whichever Poll is driving the enclosing computation, so the
// nested future observes the driver's context without explicit plumbing.
func Await[T any](f *Future[T]) kont.Eff[T] {
	return kont.Bind(kont.Pure(struct{}{}), func(struct{}) kont.Eff[T] {
		v, err := PollCurrent(f)
		if err == nil {
			return kont.Pure(v)
		}
		return PendThen(Await(f))
	})
}

// AwaitBind polls f to completion and passes the result to k.
// Fuses Await + Bind.
func AwaitBind[T, B any](f *Future[T], k func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(Await(f), k)
}
