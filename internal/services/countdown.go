package services

import (
	"sync"
	"time"

	"invitepages/internal/domain"
)

// ResolveCountdown decomposes the time remaining until target into whole
// days, then remainder hours, minutes, and seconds within the current
// day, hour, and minute. A target at or before now yields all zeros and
// the expired flag. Pure: each call is reproducible from (target, now).
func ResolveCountdown(target, now time.Time) domain.Countdown {
	delta := target.Sub(now)
	if delta <= 0 {
		return domain.Countdown{Expired: true}
	}
	secs := int(delta / time.Second)
	return domain.Countdown{
		Days:    secs / 86400,
		Hours:   secs % 86400 / 3600,
		Minutes: secs % 3600 / 60,
		Seconds: secs % 60,
	}
}

// CountdownTimer re-evaluates a countdown on a fixed cadence until
// stopped. Each timer owns one goroutine, so ticks never overlap and
// stopping one timer never affects another.
type CountdownTimer struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// StartCountdown begins ticking every interval, invoking onTick with a
// fresh countdown snapshot. onExpire fires exactly once, on the first
// tick where the countdown transitions to expired; ticks while already
// expired do not re-fire it. Either callback may be nil. The returned
// timer must be stopped with Stop when observation ends.
func StartCountdown(target time.Time, interval time.Duration, onTick func(domain.Countdown), onExpire func()) *CountdownTimer {
	t := &CountdownTimer{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go t.run(target, interval, onTick, onExpire)
	return t
}

// Stop halts the timer and waits for the in-flight tick, if any, to
// finish. Idempotent.
func (t *CountdownTimer) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
	<-t.done
}

func (t *CountdownTimer) run(target time.Time, interval time.Duration, onTick func(domain.Countdown), onExpire func()) {
	defer close(t.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	expired := false
	for {
		select {
		case <-t.stop:
			return
		case now := <-ticker.C:
			cd := ResolveCountdown(target, now)
			if onTick != nil {
				onTick(cd)
			}
			if cd.Expired && !expired {
				expired = true
				if onExpire != nil {
					onExpire()
				}
			}
		}
	}
}
