package services

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invitepages/internal/domain"
)

func TestResolveCountdown(t *testing.T) {
	now := time.Date(2027, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   domain.Countdown
	}{
		{
			name:   "one day one hour one minute one second",
			target: now.Add(90061 * time.Second),
			want:   domain.Countdown{Days: 1, Hours: 1, Minutes: 1, Seconds: 1},
		},
		{
			name:   "one second in the past",
			target: now.Add(-time.Second),
			want:   domain.Countdown{Expired: true},
		},
		{
			name:   "exactly now",
			target: now,
			want:   domain.Countdown{Expired: true},
		},
		{
			name:   "under a minute",
			target: now.Add(42 * time.Second),
			want:   domain.Countdown{Seconds: 42},
		},
		{
			name:   "remainders roll over within their units",
			target: now.Add(2*24*time.Hour + 23*time.Hour + 59*time.Minute + 59*time.Second),
			want:   domain.Countdown{Days: 2, Hours: 23, Minutes: 59, Seconds: 59},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCountdown(tt.target, now))
		})
	}
}

func TestResolveCountdown_reproducible(t *testing.T) {
	now := time.Date(2027, 6, 1, 12, 0, 0, 0, time.UTC)
	target := now.Add(90061 * time.Second)
	first := ResolveCountdown(target, now)
	second := ResolveCountdown(target, now)
	assert.Equal(t, first, second)
}

func TestCountdownTimer_ticks_and_expires_once(t *testing.T) {
	var ticks, expires atomic.Int32

	// Target a few ticks away so the timer crosses expiry mid-run.
	target := time.Now().Add(30 * time.Millisecond)
	timer := StartCountdown(target, 10*time.Millisecond,
		func(domain.Countdown) { ticks.Add(1) },
		func() { expires.Add(1) },
	)
	time.Sleep(120 * time.Millisecond)
	timer.Stop()

	require.GreaterOrEqual(t, ticks.Load(), int32(3), "expected several ticks")
	// Edge-triggered: later ticks while already expired must not re-fire.
	assert.Equal(t, int32(1), expires.Load())
}

func TestCountdownTimer_stop_halts_ticks(t *testing.T) {
	var ticks atomic.Int32
	timer := StartCountdown(time.Now().Add(time.Hour), 10*time.Millisecond,
		func(domain.Countdown) { ticks.Add(1) }, nil)

	time.Sleep(35 * time.Millisecond)
	timer.Stop()
	after := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, ticks.Load(), "ticks after Stop")
}

func TestCountdownTimer_stop_is_idempotent(t *testing.T) {
	timer := StartCountdown(time.Now().Add(time.Hour), 10*time.Millisecond, nil, nil)
	timer.Stop()
	assert.NotPanics(t, func() { timer.Stop() })
}

func TestCountdownTimer_independent_timers(t *testing.T) {
	var ticksA, ticksB atomic.Int32
	a := StartCountdown(time.Now().Add(time.Hour), 10*time.Millisecond,
		func(domain.Countdown) { ticksA.Add(1) }, nil)
	b := StartCountdown(time.Now().Add(time.Hour), 10*time.Millisecond,
		func(domain.Countdown) { ticksB.Add(1) }, nil)

	time.Sleep(35 * time.Millisecond)
	// Stopping one timer must not halt the other.
	a.Stop()
	before := ticksB.Load()
	time.Sleep(50 * time.Millisecond)
	b.Stop()
	assert.Greater(t, ticksB.Load(), before)
}
