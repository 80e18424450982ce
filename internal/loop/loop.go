// Package loop drives the simulation at a fixed physics rate independent of the
// render rate.
package loop

import (
	"context"
	"time"
)

// Loop is a fixed-timestep accumulator. Real elapsed time is accumulated on
// every frame and drained in constant steps.
type Loop struct {
	step        float64 // Seconds per physics step
	maxFrame    float64 // Largest elapsed time accepted per frame, seconds (0 = unbounded)
	accumulator float64
	last        time.Time
	started     bool
}

// New creates a loop stepping rate times per second. Frames longer than maxFrame
// are clamped; pass 0 to accept any frame length.
func New(rate float64, maxFrame time.Duration) *Loop {
	if rate <= 0 {
		rate = 1
	}
	return &Loop{
		step:     1 / rate,
		maxFrame: maxFrame.Seconds(),
	}
}

// Step returns the physics step length in seconds.
func (l *Loop) Step() float64 {
	return l.step
}

// Advance accounts for the time elapsed since the previous call and invokes
// update once per whole step. It returns the number of steps run.
// The first call only records the timestamp.
func (l *Loop) Advance(now time.Time, update func(dt float64)) int {
	if !l.started {
		l.last = now
		l.started = true
		return 0
	}

	elapsed := now.Sub(l.last).Seconds()
	l.last = now
	if elapsed <= 0 {
		return 0
	}
	if l.maxFrame > 0 && elapsed > l.maxFrame {
		elapsed = l.maxFrame
	}
	l.accumulator += elapsed

	steps := 0
	for l.accumulator >= l.step {
		update(l.step)
		l.accumulator -= l.step
		steps++
	}
	return steps
}

// Pending returns the undrained time in seconds.
func (l *Loop) Pending() float64 {
	return l.accumulator
}

// Restart forgets the previous timestamp and any pending time, so the next
// Advance starts fresh. Use after the loop was paused.
func (l *Loop) Restart() {
	l.started = false
	l.accumulator = 0
}

// Run calls frame fps times per second until ctx is cancelled or frame fails.
// It stands in for a host animation-frame callback.
func Run(ctx context.Context, fps int, frame func(now time.Time) error) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := frame(now); err != nil {
				return err
			}
		}
	}
}
