package lifecycle

import (
	"sync"

	"github.com/avelarde/daybook/internal/domain"
	"github.com/avelarde/daybook/internal/observability"
)

// FanOut broadcasts store mutations to an explicit observer list. Every call
// is synchronous: all observers have run before the mutating operation
// returns. There is no queue and no backpressure.
type FanOut struct {
	mu        sync.RWMutex
	observers []domain.Notifier
}

func NewFanOut(observers ...domain.Notifier) *FanOut {
	return &FanOut{observers: observers}
}

func (f *FanOut) Register(o domain.Notifier) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observers = append(f.observers, o)
}

func (f *FanOut) SessionChanged(day domain.DayKey) {
	f.each(func(o domain.Notifier) { o.SessionChanged(day) })
}

func (f *FanOut) EntryStatusChanged(day domain.DayKey) {
	f.each(func(o domain.Notifier) { o.EntryStatusChanged(day) })
}

func (f *FanOut) SummaryStatusChanged(day domain.DayKey) {
	f.each(func(o domain.Notifier) { o.SummaryStatusChanged(day) })
}

func (f *FanOut) each(fn func(domain.Notifier)) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, o := range f.observers {
		fn(o)
	}
}

// LoggingObserver writes every state change to the structured log. The
// binary registers it so changes are visible regardless of which surface
// triggered them.
type LoggingObserver struct{}

func (LoggingObserver) SessionChanged(day domain.DayKey) {
	observability.Logger().Info("session changed", "day", day.String())
}

func (LoggingObserver) EntryStatusChanged(day domain.DayKey) {
	observability.Logger().Info("entry status changed", "day", day.String())
}

func (LoggingObserver) SummaryStatusChanged(day domain.DayKey) {
	observability.Logger().Info("summary status changed", "day", day.String())
}
