package clock

import (
	"sort"
	"time"
)

// Manual is a simulated clock. Time only moves when Advance or Step is called,
// and due callbacks run synchronously on the caller's goroutine in deadline
// order. It is not safe for concurrent use.
type Manual struct {
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

// NewManual creates a manual clock starting at start
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the simulated time
func (m *Manual) Now() time.Time {
	return m.now
}

// AfterFunc schedules f once after d of simulated time
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	return m.schedule(d, 0, f)
}

// TickFunc schedules f every interval of simulated time
func (m *Manual) TickFunc(interval time.Duration, f func()) Timer {
	if interval <= 0 {
		panic("clock: non-positive interval for TickFunc")
	}
	return m.schedule(interval, interval, f)
}

// Pending returns the number of timers that are still scheduled
func (m *Manual) Pending() int {
	return len(m.timers)
}

// Advance moves time forward by d, firing every callback that becomes due.
// It returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now.Add(d)
	fired := 0
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.deadline
		if next.interval > 0 {
			next.deadline = next.deadline.Add(next.interval)
		} else {
			m.remove(next)
		}
		fired++
		next.f()
	}
	m.now = target
	return fired
}

// Step jumps to the earliest pending deadline and fires what is due there.
// It returns false when nothing is scheduled.
func (m *Manual) Step() bool {
	if len(m.timers) == 0 {
		return false
	}
	earliest := m.timers[0]
	for _, t := range m.timers[1:] {
		if t.before(earliest) {
			earliest = t
		}
	}
	m.Advance(earliest.deadline.Sub(m.now))
	return true
}

func (m *Manual) schedule(d, interval time.Duration, f func()) *manualTimer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{
		clock:    m,
		deadline: m.now.Add(d),
		interval: interval,
		seq:      m.seq,
		f:        f,
	}
	m.timers = append(m.timers, t)
	return t
}

func (m *Manual) nextDue(target time.Time) *manualTimer {
	var due []*manualTimer
	for _, t := range m.timers {
		if !t.deadline.After(target) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool { return due[i].before(due[j]) })
	return due[0]
}

func (m *Manual) remove(target *manualTimer) bool {
	for i, t := range m.timers {
		if t == target {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return true
		}
	}
	return false
}

type manualTimer struct {
	clock    *Manual
	deadline time.Time
	interval time.Duration
	seq      uint64
	f        func()
}

func (t *manualTimer) before(other *manualTimer) bool {
	if t.deadline.Equal(other.deadline) {
		return t.seq < other.seq
	}
	return t.deadline.Before(other.deadline)
}

func (t *manualTimer) Stop() bool {
	return t.clock.remove(t)
}
