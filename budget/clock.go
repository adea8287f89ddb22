// SPDX-License-Identifier: MIT

package budget

import "time"

// Clock supplies monotonic time in seconds. Only differences matter.
type Clock interface {
	Now() float64
}

// monotonicClock measures seconds since its creation on the runtime's
// monotonic clock.
type monotonicClock struct{ start time.Time }

func (c monotonicClock) Now() float64 { return time.Since(c.start).Seconds() }

// SystemClock returns the default monotonic clock.
func SystemClock() Clock { return monotonicClock{start: processStart} }

var processStart = time.Now()
