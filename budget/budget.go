// SPDX-License-Identifier: MIT

// Package budget implements an adaptive deadline estimator for hot loops.
//
// What & Why:
//
//	An enumeration that reads the clock on every step pays more for the
//	clock than for the step. A Budget counts steps instead and reads the
//	clock only every `interval` steps. After each read it estimates the
//	average step cost from two anchor samples and grows or shrinks the
//	interval so that the next read lands well before the deadline.
//
// Contract:
//
//   - IsTimedOut never reports true before the trigger time.
//   - Any IsTimedOut call made after the trigger time reports true.
//   - Tick is the fast path: it decrements a countdown and consults the
//     clock only when the countdown reaches zero.
//   - A Budget is owned by one loop. Workers get their own estimator
//     through Fork; forks share the read-only trigger time.
//
// Tuning constants are empirical; they are kept exactly as named below.
package budget

import (
	"fmt"
)

// Tuning constants.
const (
	// DefaultVariability is the pessimism multiplier applied to the cost
	// estimate of the next interval.
	DefaultVariability = 64

	// MinVariability and MaxVariability bound PrepareForNewLoop.
	MinVariability = 1
	MaxVariability = 256

	// MaxInterval caps the number of steps between clock reads.
	MaxInterval = 65536

	// AnchorRefresh is the age, in counted steps, after which the older
	// anchor sample is replaced by the newer one.
	AnchorRefresh = 15

	// EpsilonFraction and EpsilonFloor define the safety margin
	// limit·EpsilonFraction + EpsilonFloor used for growth decisions.
	EpsilonFraction = 1.0 / 16
	EpsilonFloor    = 0.0625

	// HalvingFloor stops interval halving once the estimate drops below it
	// (seconds).
	HalvingFloor = 0.1

	// MaxLimit is the largest accepted limit (seconds).
	MaxLimit = 1_000_000

	// unlimitedMark fills every counter of the Unlimited budget.
	unlimitedMark = -1
)

// Budget is the adaptive deadline state. Not safe for concurrent use.
type Budget struct {
	countdown   int64
	interval    int64
	totalCount  int64
	refCount    int64
	ref2Count   int64
	refTime     float64
	ref2Time    float64
	trigger     float64
	triggerEps  float64
	variability int64
	clock       Clock
}

// New returns a Budget that expires limit seconds from now.
// Errors: ErrInvalidBudget if limit is outside [0, MaxLimit].
func New(limit float64, opts ...Option) (*Budget, error) {
	if !(limit >= 0 && limit <= MaxLimit) { // also rejects NaN
		return nil, fmt.Errorf("limit %g: %w", limit, ErrInvalidBudget)
	}
	cfg := gatherOptions(opts...)
	now := cfg.clock.Now()
	b := &Budget{
		countdown:   1,
		interval:    1,
		refTime:     now,
		ref2Time:    now,
		trigger:     now + limit,
		triggerEps:  now + limit + limit*EpsilonFraction + EpsilonFloor,
		variability: DefaultVariability,
		clock:       cfg.clock,
	}

	return b, nil
}

// Unlimited returns the budget that never times out. Every counter holds a
// negative mark and reconfiguration is ignored.
func Unlimited() *Budget {
	return &Budget{
		countdown:   unlimitedMark,
		interval:    unlimitedMark,
		totalCount:  unlimitedMark,
		refCount:    unlimitedMark,
		ref2Count:   unlimitedMark,
		refTime:     unlimitedMark,
		ref2Time:    unlimitedMark,
		trigger:     unlimitedMark,
		triggerEps:  unlimitedMark,
		variability: unlimitedMark,
	}
}

// IsUnlimited reports whether b is an Unlimited budget.
func (b *Budget) IsUnlimited() bool { return b == nil || b.interval < 0 }

// Tick counts one step and reports whether the deadline has passed. The
// clock is read only when the countdown runs out.
func (b *Budget) Tick() bool {
	if b.IsUnlimited() {
		return false
	}
	b.countdown--
	if b.countdown > 0 {
		return false
	}

	return b.IsTimedOut()
}

// IsTimedOut reads the clock and reports whether the trigger time has passed.
// When it has not, the interval is retuned and the countdown restarted.
func (b *Budget) IsTimedOut() bool {
	if b.IsUnlimited() {
		return false
	}
	b.totalCount += b.interval
	now := b.clock.Now()
	if now > b.trigger {
		return true
	}
	if b.totalCount-b.ref2Count > AnchorRefresh {
		b.refCount, b.refTime = b.ref2Count, b.ref2Time
		b.ref2Count, b.ref2Time = b.totalCount, now
	}

	aveTime := (now - b.refTime) / float64(b.totalCount-b.refCount)
	toDeadline := b.triggerEps - now
	est := float64(b.variability) * float64(b.interval) * aveTime
	switch {
	case est < toDeadline/4:
		if b.interval < MaxInterval {
			b.interval *= 2
		}
	case est > toDeadline:
		for est > HalvingFloor && est > toDeadline && b.interval > 1 {
			est /= 2
			b.interval /= 2
		}
	}
	b.countdown = b.interval

	return false
}

// PrepareForNewLoop restarts the interval at 1, moves both anchors to now
// and installs a new variability. No-op on Unlimited.
// Errors: ErrInvalidBudget if variability is outside [MinVariability, MaxVariability].
func (b *Budget) PrepareForNewLoop(variability int) error {
	if b.IsUnlimited() {
		return nil
	}
	if variability < MinVariability || variability > MaxVariability {
		return fmt.Errorf("variability %d: %w", variability, ErrInvalidBudget)
	}
	b.interval = 1
	b.countdown = 1
	b.refCount = b.totalCount
	b.ref2Count = b.totalCount
	now := b.clock.Now()
	b.refTime = now
	b.ref2Time = now
	b.variability = int64(variability)

	return nil
}

// Fork returns an independent estimator with the same trigger time and
// variability, and fresh counters. Forks of Unlimited are Unlimited.
func (b *Budget) Fork() *Budget {
	if b.IsUnlimited() {
		return Unlimited()
	}
	now := b.clock.Now()

	return &Budget{
		countdown:   1,
		interval:    1,
		refTime:     now,
		ref2Time:    now,
		trigger:     b.trigger,
		triggerEps:  b.triggerEps,
		variability: b.variability,
		clock:       b.clock,
	}
}

// Expired reads the clock once and reports whether the trigger time has
// passed, without touching the estimator state.
func (b *Budget) Expired() bool {
	if b.IsUnlimited() {
		return false
	}

	return b.clock.Now() > b.trigger
}

// Interval returns the current number of steps between clock reads.
func (b *Budget) Interval() int64 { return b.interval }

// Variability returns the current pessimism multiplier.
func (b *Budget) Variability() int { return int(b.variability) }

// String renders the state for debug logs.
func (b *Budget) String() string {
	if b.IsUnlimited() {
		return "Budget(UNLIMITED)"
	}

	return fmt.Sprintf("Budget(trigger=%.3f, countdown=%d, interval=%d)", b.trigger, b.countdown, b.interval)
}
