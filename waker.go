// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futures

import (
	"code.hybscloud.com/lfq"
)

// QueueWaker delivers wake notifications as readiness tokens on a bounded
// lock-free SPSC queue, for drivers structured as a proactor loop: the
// loop dequeues tokens and re-polls the futures they identify.
//
// The queue is single-producer single-consumer: all wakers enqueuing on
// one queue must wake from a single goroutine at a time, with the driver
// as the sole consumer.
type QueueWaker[T any] struct {
	q     *lfq.SPSC[T]
	token T
}

// NewQueueWaker creates a QueueWaker that enqueues token on q when woken.
func NewQueueWaker[T any](q *lfq.SPSC[T], token T) *QueueWaker[T] {
	return &QueueWaker[T]{q: q, token: token}
}

// Wake enqueues the readiness token. Non-blocking: a full queue coalesces
// the wake, since a token is already pending and the driver will drain
// the queue before sleeping again.
func (w *QueueWaker[T]) Wake() {
	_ = w.q.Enqueue(&w.token)
}
