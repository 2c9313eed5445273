package viewmodel

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// captureSink records every message it receives
type captureSink struct {
	mu       sync.Mutex
	messages []string
}

func (s *captureSink) LogMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
}

func (s *captureSink) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.messages...)
}

func TestUpdateLogDetails_AppendsAndForwards(t *testing.T) {
	sink := &captureSink{}
	vm := New(sink)
	defer vm.Close()

	vm.UpdateLogDetails("build failed")
	assert.Equal(t, "\nbuild failed", vm.GetLogDetails())
	assert.Equal(t, []string{"build failed"}, sink.Messages())

	vm.UpdateLogDetails("deploy ok")
	assert.Equal(t, "\nbuild failed\ndeploy ok", vm.GetLogDetails())
	assert.Equal(t, []string{"build failed", "deploy ok"}, sink.Messages())

	// Empty messages still append a newline and reach the sink
	vm.UpdateLogDetails("")
	assert.Equal(t, "\nbuild failed\ndeploy ok\n", vm.GetLogDetails())
	assert.Equal(t, []string{"build failed", "deploy ok", ""}, sink.Messages())
}

func TestUpdateLogDetails_NotifiesBeforeSinkForward(t *testing.T) {
	var order []string
	var mu sync.Mutex

	sink := sinkFunc(func(message string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, "sink:"+message)
	})
	vm := New(sink)
	defer vm.Close()

	vm.Subscribe(PropertyLogDetails, func(property string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, "notify:"+property)
	})

	vm.UpdateLogDetails("hello")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"notify:" + PropertyLogDetails, "sink:hello"}, order)
}

// sinkFunc adapts a function to the LogSink interface
type sinkFunc func(message string)

func (f sinkFunc) LogMessage(message string) { f(message) }

func TestShowNotification_SetsMessageAndVisibility(t *testing.T) {
	vm := New(nil, WithHideAfter(100*time.Millisecond))
	defer vm.Close()

	vm.ShowNotification("saved")
	assert.True(t, vm.IsNotificationVisible())
	assert.Equal(t, "saved", vm.GetNotificationMessage())

	// After the hide interval the flag drops, the message stays
	time.Sleep(250 * time.Millisecond)
	assert.False(t, vm.IsNotificationVisible())
	assert.Equal(t, "saved", vm.GetNotificationMessage())
}

func TestShowNotification_RestartsHideTimer(t *testing.T) {
	vm := New(nil, WithHideAfter(200*time.Millisecond))
	defer vm.Close()

	vm.ShowNotification("first")
	time.Sleep(100 * time.Millisecond)
	vm.ShowNotification("second")

	// Past the first deadline, before the second one
	time.Sleep(150 * time.Millisecond)
	assert.True(t, vm.IsNotificationVisible(), "first hide should have been cancelled")
	assert.Equal(t, "second", vm.GetNotificationMessage())

	// Past the second deadline
	time.Sleep(200 * time.Millisecond)
	assert.False(t, vm.IsNotificationVisible())
}

func TestHideNotification_FiresExactlyOnce(t *testing.T) {
	vm := New(nil, WithHideAfter(50*time.Millisecond))
	defer vm.Close()

	var visibilityEvents int
	var mu sync.Mutex
	vm.Subscribe(PropertyNotificationVisible, func(property string) {
		mu.Lock()
		defer mu.Unlock()
		visibilityEvents++
	})

	vm.ShowNotification("once")
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	count := visibilityEvents
	mu.Unlock()

	// One event for showing, one for hiding, nothing after
	assert.Equal(t, 2, count)
	assert.False(t, vm.IsNotificationVisible())

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, visibilityEvents)
}

func TestShowNotification_DispatchOrder(t *testing.T) {
	vm := New(nil)
	defer vm.Close()

	var received []string
	vm.Subscribe("", func(property string) {
		received = append(received, property)
	})

	vm.ShowNotification("hello")
	assert.Equal(t, []string{PropertyNotificationMessage, PropertyNotificationVisible}, received)
}

func TestSetters_AlwaysNotify(t *testing.T) {
	vm := New(nil)
	defer vm.Close()

	var received []string
	vm.Subscribe("", func(property string) {
		received = append(received, property)
	})

	// Writing the same value twice still notifies twice
	vm.SetNotificationMessage("same")
	vm.SetNotificationMessage("same")
	assert.Equal(t, []string{PropertyNotificationMessage, PropertyNotificationMessage}, received)

	received = nil
	vm.SetNotificationVisible(false)
	vm.SetNotificationVisible(false)
	assert.Equal(t, []string{PropertyNotificationVisible, PropertyNotificationVisible}, received)

	received = nil
	vm.SetLogDetails(vm.GetLogDetails())
	assert.Equal(t, []string{PropertyLogDetails}, received)
}

func TestNotification_HandlerSeesNewValue(t *testing.T) {
	vm := New(nil)
	defer vm.Close()

	var observed string
	vm.Subscribe(PropertyNotificationMessage, func(property string) {
		observed = vm.GetNotificationMessage()
	})

	vm.SetNotificationMessage("fresh")
	assert.Equal(t, "fresh", observed)
}

func TestClose_CancelsPendingHide(t *testing.T) {
	vm := New(nil, WithHideAfter(50*time.Millisecond))

	sub := vm.Subscribe("", func(property string) {})
	vm.ShowNotification("pending")
	vm.Close()

	// The scheduled hide must not fire after Close
	time.Sleep(150 * time.Millisecond)
	assert.True(t, vm.IsNotificationVisible())
	assert.True(t, sub.IsClosed())

	// Showing after Close is a no-op
	vm.ShowNotification("ignored")
	assert.Equal(t, "pending", vm.GetNotificationMessage())

	// Closing again should be safe
	vm.Close()
}

func TestGetMetrics(t *testing.T) {
	sink := &captureSink{}
	vm := New(sink, WithHideAfter(50*time.Millisecond))
	defer vm.Close()

	sub := vm.Subscribe("", func(property string) {})

	vm.UpdateLogDetails("one")
	vm.UpdateLogDetails("two")
	vm.ShowNotification("hello")
	time.Sleep(150 * time.Millisecond)

	metrics := vm.GetMetrics()
	assert.Equal(t, int64(2), metrics.LogAppends)
	assert.Equal(t, int64(1), metrics.NotificationsShown)
	assert.Equal(t, int64(1), metrics.NotificationsHidden)
	assert.Equal(t, 1, metrics.ActiveSubscriptions)
	// Two appends, show raises two properties, hide raises one
	assert.Equal(t, int64(5), metrics.HandlersInvoked)
	assert.False(t, metrics.LastChange.IsZero())

	vm.Unsubscribe(sub)
	metrics = vm.GetMetrics()
	assert.Equal(t, 0, metrics.ActiveSubscriptions)
	assert.Equal(t, 1, metrics.TotalSubscriptions)
}

func TestViewModel_ConcurrentAppends(t *testing.T) {
	sink := &captureSink{}
	vm := New(sink)
	defer vm.Close()

	const writers = 10
	const appendsPerWriter = 20

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < appendsPerWriter; j++ {
				vm.UpdateLogDetails(fmt.Sprintf("writer-%d-%d", id, j))
			}
		}(i)
	}
	wg.Wait()

	// Every append contributes exactly one line
	lines := strings.Split(vm.GetLogDetails(), "\n")
	assert.Len(t, lines, writers*appendsPerWriter+1) // leading newline yields an empty first element
	assert.Empty(t, lines[0])
	assert.Len(t, sink.Messages(), writers*appendsPerWriter)
}

func TestNew_NilSink(t *testing.T) {
	vm := New(nil)
	defer vm.Close()

	// Appends must not panic without a sink
	vm.UpdateLogDetails("quiet")
	assert.Equal(t, "\nquiet", vm.GetLogDetails())
}
