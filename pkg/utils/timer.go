package utils

// TimerMode controls what happens when a Timer reaches its duration.
type TimerMode int

const (
	// TimerOnce stops at completion and stays finished until Reset is called.
	TimerOnce TimerMode = iota
	// TimerRepeating wraps back to zero and keeps running.
	TimerRepeating
)

// Timer is a reusable countdown driven by per-frame delta time.
//
// Every timed behavior in the game (house interaction, ghost fade cycle,
// trail spawning, particle lifetimes, floating text) composes from this
// type, so its contract is strict: JustFinished reports true on exactly
// the tick where the timer crosses its duration, and never again until
// the next completion.
type Timer struct {
	Duration float64 // 目标时间（秒）
	Elapsed  float64 // 当前已过时间（秒）
	Mode     TimerMode

	finished     bool
	justFinished bool
}

// NewTimer creates a timer with the given duration in seconds.
func NewTimer(duration float64, mode TimerMode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// Tick advances the timer by deltaTime seconds.
func (t *Timer) Tick(deltaTime float64) {
	t.justFinished = false

	if t.Mode == TimerOnce && t.finished {
		return
	}
	if t.Duration <= 0 {
		// Zero-duration timers complete on every tick.
		t.finished = true
		t.justFinished = true
		return
	}

	t.Elapsed += deltaTime
	if t.Elapsed >= t.Duration {
		t.finished = true
		t.justFinished = true
		if t.Mode == TimerRepeating {
			// Wrap, keeping the overshoot so long frames stay accurate.
			for t.Elapsed >= t.Duration {
				t.Elapsed -= t.Duration
			}
		} else {
			t.Elapsed = t.Duration
		}
	}
}

// Fraction returns the progress through the current period in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	if t.Mode == TimerOnce && t.finished {
		return 1
	}
	return Clamp(t.Elapsed/t.Duration, 0, 1)
}

// JustFinished reports whether the timer completed on the most recent Tick.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished reports whether the timer has ever completed. For TimerRepeating
// this is only true on completion ticks, matching JustFinished.
func (t *Timer) Finished() bool {
	if t.Mode == TimerRepeating {
		return t.justFinished
	}
	return t.finished
}

// Reset rewinds the timer to zero so it can run again.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.justFinished = false
}
