// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package futures adapts suspendable computations on
// [code.hybscloud.com/kont] to a non-blocking poll contract, handing the
// driver-supplied task context to code inside the computation through a
// goroutine-scoped ambient slot.
//
// # Architecture
//
//   - Adapter: [FromCoroutine], [FromExpr] and [FromEff] wrap a resumable
//     state machine in a [Future]. [Future.Poll] resumes it exactly once and
//     returns [code.hybscloud.com/iox.ErrWouldBlock] while it is suspended.
//   - Ambient context: Poll installs its [Context] into a per-goroutine
//     single-occupant slot with strict nested install/restore.
//     [WithCurrentContext] grants code running inside the computation
//     exclusive access to that context; [PollCurrent] forwards it into a
//     nested future's Poll without explicit plumbing.
//   - Suspension: the [Pend] effect marks one suspension point. [Await] and
//     [AwaitBind] fuse nested polling with pending, so a computation can
//     wait on another future without blocking its driver.
//   - Wakes: [Waker] is the wake capability carried by a Context.
//     [QueueWaker] delivers wakes as readiness tokens on a bounded lock-free
//     SPSC queue via [code.hybscloud.com/lfq] for proactor-style drivers.
//
// # Execution Units
//
// The goroutine is the isolation unit: each goroutine has its own context
// slot, so unrelated concurrent pollers never interfere and the slot needs
// no locking. Retrieving the ambient context while the slot is empty — from
// outside any active Poll, or re-entrantly while a surrounding
// [WithCurrentContext] holds it — is a protocol violation and panics.
//
// Programs that poll from exactly one goroutine for their entire lifetime
// may build with the unsafe_single_unit tag, collapsing the slot table to a
// single unsynchronized cell. That mode is unsound under any concurrent
// access; the precondition is deliberately unchecked.
//
// # Integration
//
// Poll never blocks and never schedules: it is the whole drive surface.
// The driver decides when to re-poll, typically upon the Waker it supplied
// firing. Dropping a future before completion is always safe.
//
// # Example
//
//	fut := futures.FromEff(futures.PendDone(42))
//	cx := futures.NewContext(futures.NoopWaker())
//	if _, err := fut.Poll(cx); err != nil {
//		// suspended; the waker carried by cx decides when to poll again
//	}
//	v, _ := fut.Poll(cx) // v == 42
package futures
