package config

import "time"

// SpawnRamp shortens the enemy spawn interval as the score climbs.
// Every time the score lands on a multiple of MilestoneEvery the interval
// drops by StepMS, never below MinIntervalMS.
type SpawnRamp struct {
	cfg      SpawnConfig
	interval time.Duration
}

// NewSpawnRamp creates a ramp starting at the base interval.
func NewSpawnRamp(cfg SpawnConfig) *SpawnRamp {
	r := &SpawnRamp{cfg: cfg}
	r.Reset()
	return r
}

// Reset returns the interval to its base value.
func (r *SpawnRamp) Reset() {
	r.interval = ms(r.cfg.BaseIntervalMS)
}

// IsEnabled returns whether the ramp reacts to score.
func (r *SpawnRamp) IsEnabled() bool {
	return r.cfg.RampEnabled && r.cfg.MilestoneEvery > 0
}

// Interval returns the current spawn interval.
func (r *SpawnRamp) Interval() time.Duration {
	return r.interval
}

// Floor returns the minimum interval.
func (r *SpawnRamp) Floor() time.Duration {
	return ms(r.cfg.MinIntervalMS)
}

// OnScore must be called right after each score increment.
// It returns true when the interval actually got shorter.
func (r *SpawnRamp) OnScore(score int) bool {
	if !r.IsEnabled() || score <= 0 || score%r.cfg.MilestoneEvery != 0 {
		return false
	}
	next := max(r.interval-ms(r.cfg.StepMS), r.Floor())
	if next == r.interval {
		return false
	}
	r.interval = next
	return true
}

// IntervalFor returns the interval the ramp reaches at a given score,
// independent of the current state.
func (r *SpawnRamp) IntervalFor(score int) time.Duration {
	base := ms(r.cfg.BaseIntervalMS)
	if !r.IsEnabled() || score <= 0 {
		return base
	}
	milestones := score / r.cfg.MilestoneEvery
	return max(base-time.Duration(milestones)*ms(r.cfg.StepMS), r.Floor())
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
