// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futures

import "code.hybscloud.com/kont"

// Pend is the effect operation marking one suspension point.
// Perform(Pend{}) yields control to the driver: the enclosing Future's
// Poll reports iox.ErrWouldBlock and the computation resumes on the next
// Poll. Register a wake on the ambient context before pending, or the
// driver has no reason to come back.
type Pend struct {
	kont.Phantom[struct{}]
}
