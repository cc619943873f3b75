package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event names a kind of cache change.
type Event string

const (
	QueueTimeUpdated       Event = "queue_time_updated"
	PerformanceTimeUpdated Event = "performance_time_updated"
)

// Signal announces that a sync cycle changed one park cache.
type Signal struct {
	Park    string    `json:"parkId"`
	Event   Event     `json:"event"`
	CycleID string    `json:"cycleId"`
	Count   int       `json:"count"`
	At      time.Time `json:"at"`
}

// Listener receives signals. It runs on the publishing goroutine.
type Listener func(Signal)

type registration struct {
	id    uint64
	event Event
	fn    Listener
}

// Bus is a typed publish/subscribe registry.
type Bus struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners []registration
	logger    *zap.Logger
}

// NewBus creates an empty bus.
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{logger: logger}
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	bus  *Bus
	id   uint64
	once sync.Once
}

// Unsubscribe removes the listener. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.remove(s.id)
	})
}

// Subscribe registers fn for one event.
func (b *Bus) Subscribe(event Event, fn Listener) *Subscription {
	return b.add(event, fn)
}

// SubscribeAll registers fn for every event.
func (b *Bus) SubscribeAll(fn Listener) *Subscription {
	return b.add("", fn)
}

func (b *Bus) add(event Event, fn Listener) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.listeners = append(b.listeners, registration{id: b.nextID, event: event, fn: fn})
	return &Subscription{bus: b, id: b.nextID}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, r := range b.listeners {
		if r.id == id {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}

// Publish delivers sig to matching listeners in registration order.
// A panicking listener is logged and does not stop delivery.
func (b *Bus) Publish(sig Signal) {
	b.mu.RLock()
	targets := make([]registration, 0, len(b.listeners))
	for _, r := range b.listeners {
		if r.event == "" || r.event == sig.Event {
			targets = append(targets, r)
		}
	}
	b.mu.RUnlock()

	for _, r := range targets {
		b.deliver(r, sig)
	}
}

func (b *Bus) deliver(r registration, sig Signal) {
	defer func() {
		if rec := recover(); rec != nil {
			b.logger.Error("Listener panicked",
				zap.String("event", string(sig.Event)),
				zap.String("park_id", sig.Park),
				zap.Any("panic", rec))
		}
	}()
	r.fn(sig)
}
