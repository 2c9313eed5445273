package viewmodel

import (
	"sync"

	"github.com/google/uuid"
)

// PropertyChangeHandler receives the name of the property that changed.
// Handlers run synchronously on the goroutine that performed the write and
// may read the view-model's properties.
type PropertyChangeHandler func(property string)

// Subscription represents a registered change handler
type Subscription struct {
	ID       string
	Property string // property name to watch, empty for all properties
	handler  PropertyChangeHandler
	closed   bool
	mu       sync.RWMutex
}

// IsClosed returns whether the subscription has been released
func (s *Subscription) IsClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// matches reports whether the subscription wants events for property
func (s *Subscription) matches(property string) bool {
	return s.Property == "" || s.Property == property
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Subscribe registers a handler for changes to one property, or to all
// properties when property is empty. Handlers are invoked in registration
// order. A nil handler yields an already-released subscription.
func (vm *NotifyingViewModel) Subscribe(property string, handler PropertyChangeHandler) *Subscription {
	subscription := &Subscription{
		ID:       uuid.NewString() + "_sub",
		Property: property,
		handler:  handler,
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.closed || handler == nil {
		subscription.closed = true
		return subscription
	}

	vm.subscriptions = append(vm.subscriptions, subscription)
	vm.metrics.TotalSubscriptions++
	vm.metrics.ActiveSubscriptions++

	return subscription
}

// Unsubscribe releases a subscription. Releasing one twice is harmless.
func (vm *NotifyingViewModel) Unsubscribe(subscription *Subscription) {
	if subscription == nil {
		return
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()

	for i, existing := range vm.subscriptions {
		if existing.ID == subscription.ID {
			vm.subscriptions = append(vm.subscriptions[:i], vm.subscriptions[i+1:]...)
			vm.metrics.ActiveSubscriptions--
			break
		}
	}
	subscription.close()
}
