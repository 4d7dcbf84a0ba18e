package lifecycle

import (
	"math/rand"
	"sync"
	"time"

	"github.com/avelarde/daybook/internal/domain"
)

// ReplyScheduler defers a composed reply to simulate companion latency.
// At most one task is pending per day: scheduling again replaces the earlier
// task, so a newer user message cancels the stale reply instead of letting
// replies pile up out of pairing.
type ReplyScheduler interface {
	Schedule(day domain.DayKey, fn func())
	Cancel(day domain.DayKey)
}

// TimerScheduler runs tasks on time.AfterFunc with a random delay in
// [min, max].
type TimerScheduler struct {
	mu       sync.Mutex
	min, max time.Duration
	rng      *rand.Rand
	timers   map[domain.DayKey]*time.Timer
}

func NewTimerScheduler(min, max time.Duration, seed int64) *TimerScheduler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if max < min {
		max = min
	}
	return &TimerScheduler{
		min:    min,
		max:    max,
		rng:    rand.New(rand.NewSource(seed)),
		timers: make(map[domain.DayKey]*time.Timer),
	}
}

func (s *TimerScheduler) Schedule(day domain.DayKey, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[day]; ok {
		t.Stop()
	}

	d := s.min
	if s.max > s.min {
		d += time.Duration(s.rng.Int63n(int64(s.max - s.min)))
	}

	s.timers[day] = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, day)
		s.mu.Unlock()
		fn()
	})
}

func (s *TimerScheduler) Cancel(day domain.DayKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[day]; ok {
		t.Stop()
		delete(s.timers, day)
	}
}
