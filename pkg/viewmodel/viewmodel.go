package viewmodel

import (
	"sync"
	"time"
)

// Property names delivered to change handlers.
const (
	PropertyLogDetails          = "LogDetails"
	PropertyNotificationMessage = "NotificationMessage"
	PropertyNotificationVisible = "NotificationVisible"
)

// DefaultHideAfter is how long a notification stays visible unless a newer
// one replaces it.
const DefaultHideAfter = 5 * time.Second

// LogSink receives every message appended to the view-model's log. A sink
// must handle its own failures; callers never see them.
type LogSink interface {
	LogMessage(message string)
}

// NopSink is a LogSink that discards everything.
type NopSink struct{}

// LogMessage implements LogSink.
func (NopSink) LogMessage(message string) {}

// NotifyingViewModel holds the observable board state: the accumulated log
// text, the current notification message, and the notification's visibility
// flag. All mutations are serialized under one mutex; change handlers run
// after the write, outside the lock, on the mutating goroutine.
type NotifyingViewModel struct {
	logDetails          string
	notificationMessage string
	notificationVisible bool

	sink      LogSink
	hideAfter time.Duration

	// hideGen guards the pending hide: a timer that was cancelled after its
	// callback already started finds a newer generation and does nothing.
	hideTimer *time.Timer
	hideGen   uint64

	subscriptions []*Subscription // registration order
	metrics       Metrics
	closed        bool
	mu            sync.RWMutex
}

// Metrics tracks view-model usage
type Metrics struct {
	LogAppends          int64
	NotificationsShown  int64
	NotificationsHidden int64
	TotalSubscriptions  int
	ActiveSubscriptions int
	HandlersInvoked     int64
	LastChange          time.Time
}

// Option configures a NotifyingViewModel at construction time.
type Option func(*NotifyingViewModel)

// WithHideAfter overrides how long notifications stay visible.
func WithHideAfter(d time.Duration) Option {
	return func(vm *NotifyingViewModel) {
		if d > 0 {
			vm.hideAfter = d
		}
	}
}

// New creates a view-model that forwards log messages to the given sink.
// A nil sink is replaced with NopSink.
func New(sink LogSink, opts ...Option) *NotifyingViewModel {
	if sink == nil {
		sink = NopSink{}
	}
	vm := &NotifyingViewModel{
		sink:      sink,
		hideAfter: DefaultHideAfter,
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// UpdateLogDetails appends message to the log text and forwards it unchanged
// to the sink. Every entry is prefixed with a newline, including the first,
// so the log always starts with a blank line.
func (vm *NotifyingViewModel) UpdateLogDetails(message string) {
	vm.mu.Lock()
	vm.logDetails += "\n" + message
	vm.metrics.LogAppends++
	subs := vm.matchSubscriptions(PropertyLogDetails)
	vm.noteDispatch(len(subs))
	vm.mu.Unlock()

	vm.invoke(subs, PropertyLogDetails)
	vm.sink.LogMessage(message)
}

// ShowNotification sets the notification message, makes it visible, and
// schedules a one-shot hide. Any previously scheduled hide is cancelled
// first, so repeated calls keep the notification visible for a full
// hide-after interval from the latest call.
func (vm *NotifyingViewModel) ShowNotification(message string) {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return
	}
	vm.notificationMessage = message
	vm.notificationVisible = true

	// Cancel the pending hide and schedule a fresh one
	if vm.hideTimer != nil {
		vm.hideTimer.Stop()
	}
	vm.hideGen++
	gen := vm.hideGen
	vm.hideTimer = time.AfterFunc(vm.hideAfter, func() {
		vm.hideNotification(gen)
	})

	vm.metrics.NotificationsShown++
	msgSubs := vm.matchSubscriptions(PropertyNotificationMessage)
	visSubs := vm.matchSubscriptions(PropertyNotificationVisible)
	vm.noteDispatch(len(msgSubs) + len(visSubs))
	vm.mu.Unlock()

	vm.invoke(msgSubs, PropertyNotificationMessage)
	vm.invoke(visSubs, PropertyNotificationVisible)
}

// hideNotification clears the visibility flag when the scheduled hide fires.
// A stale generation means a newer notification replaced this one and its
// hide must not apply.
func (vm *NotifyingViewModel) hideNotification(gen uint64) {
	vm.mu.Lock()
	if vm.closed || gen != vm.hideGen {
		vm.mu.Unlock()
		return
	}
	vm.notificationVisible = false
	vm.hideTimer = nil
	vm.metrics.NotificationsHidden++
	subs := vm.matchSubscriptions(PropertyNotificationVisible)
	vm.noteDispatch(len(subs))
	vm.mu.Unlock()

	vm.invoke(subs, PropertyNotificationVisible)
}

// GetLogDetails returns the accumulated log text.
func (vm *NotifyingViewModel) GetLogDetails() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.logDetails
}

// SetLogDetails replaces the log text. The change notification fires even
// when the new value equals the old one.
func (vm *NotifyingViewModel) SetLogDetails(value string) {
	vm.mu.Lock()
	vm.logDetails = value
	subs := vm.matchSubscriptions(PropertyLogDetails)
	vm.noteDispatch(len(subs))
	vm.mu.Unlock()

	vm.invoke(subs, PropertyLogDetails)
}

// GetNotificationMessage returns the current notification message.
func (vm *NotifyingViewModel) GetNotificationMessage() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.notificationMessage
}

// SetNotificationMessage replaces the notification message without touching
// visibility or the pending hide. The change notification fires even when
// the new value equals the old one.
func (vm *NotifyingViewModel) SetNotificationMessage(value string) {
	vm.mu.Lock()
	vm.notificationMessage = value
	subs := vm.matchSubscriptions(PropertyNotificationMessage)
	vm.noteDispatch(len(subs))
	vm.mu.Unlock()

	vm.invoke(subs, PropertyNotificationMessage)
}

// IsNotificationVisible returns whether the notification is shown.
func (vm *NotifyingViewModel) IsNotificationVisible() bool {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.notificationVisible
}

// SetNotificationVisible sets the visibility flag directly without touching
// the pending hide. The change notification fires even when the new value
// equals the old one.
func (vm *NotifyingViewModel) SetNotificationVisible(value bool) {
	vm.mu.Lock()
	vm.notificationVisible = value
	subs := vm.matchSubscriptions(PropertyNotificationVisible)
	vm.noteDispatch(len(subs))
	vm.mu.Unlock()

	vm.invoke(subs, PropertyNotificationVisible)
}

// Close cancels any pending hide and releases all subscriptions. The
// view-model stays readable but raises no further notifications.
func (vm *NotifyingViewModel) Close() {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return
	}
	vm.closed = true
	if vm.hideTimer != nil {
		vm.hideTimer.Stop()
		vm.hideTimer = nil
	}
	vm.hideGen++
	subs := vm.subscriptions
	vm.subscriptions = nil
	vm.metrics.ActiveSubscriptions = 0
	vm.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}

// GetMetrics returns a copy of the current metrics.
func (vm *NotifyingViewModel) GetMetrics() Metrics {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.metrics
}

// matchSubscriptions snapshots, in registration order, the live
// subscriptions watching property. Caller holds vm.mu.
func (vm *NotifyingViewModel) matchSubscriptions(property string) []*Subscription {
	matched := make([]*Subscription, 0, len(vm.subscriptions))
	for _, sub := range vm.subscriptions {
		if sub.matches(property) && !sub.IsClosed() {
			matched = append(matched, sub)
		}
	}
	return matched
}

// noteDispatch records dispatch activity. Caller holds vm.mu.
func (vm *NotifyingViewModel) noteDispatch(handlers int) {
	vm.metrics.HandlersInvoked += int64(handlers)
	vm.metrics.LastChange = time.Now()
}

// invoke runs the matched handlers in registration order. Runs outside the
// lock so handlers may call back into the view-model.
func (vm *NotifyingViewModel) invoke(subs []*Subscription, property string) {
	for _, sub := range subs {
		if sub.IsClosed() {
			continue
		}
		sub.handler(property)
	}
}
