package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribe_RegistrationOrder(t *testing.T) {
	vm := New(nil)
	defer vm.Close()

	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		vm.Subscribe("", func(property string) {
			order = append(order, i)
		})
	}

	vm.SetNotificationMessage("ping")
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestSubscribe_PropertyFilter(t *testing.T) {
	vm := New(nil)
	defer vm.Close()

	var logEvents, msgEvents, allEvents []string
	vm.Subscribe(PropertyLogDetails, func(property string) {
		logEvents = append(logEvents, property)
	})
	vm.Subscribe(PropertyNotificationMessage, func(property string) {
		msgEvents = append(msgEvents, property)
	})
	allSub := vm.Subscribe("", func(property string) {
		allEvents = append(allEvents, property)
	})

	assert.NotEmpty(t, allSub.ID)
	assert.Empty(t, allSub.Property)
	assert.False(t, allSub.IsClosed())

	vm.UpdateLogDetails("entry")
	vm.SetNotificationMessage("note")

	// Handlers registered for one property never see the other
	assert.Equal(t, []string{PropertyLogDetails}, logEvents)
	assert.Equal(t, []string{PropertyNotificationMessage}, msgEvents)
	assert.Equal(t, []string{PropertyLogDetails, PropertyNotificationMessage}, allEvents)
}

func TestUnsubscribe(t *testing.T) {
	vm := New(nil)
	defer vm.Close()

	var first, second int
	subFirst := vm.Subscribe("", func(property string) { first++ })
	vm.Subscribe("", func(property string) { second++ })

	vm.SetNotificationVisible(true)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	vm.Unsubscribe(subFirst)
	assert.True(t, subFirst.IsClosed())

	vm.SetNotificationVisible(true)
	assert.Equal(t, 1, first, "released handler must not run again")
	assert.Equal(t, 2, second)

	// Unsubscribing twice should be safe
	vm.Unsubscribe(subFirst)
	vm.Unsubscribe(nil)

	metrics := vm.GetMetrics()
	assert.Equal(t, 1, metrics.ActiveSubscriptions)
	assert.Equal(t, 2, metrics.TotalSubscriptions)
}

func TestSubscribe_NilHandler(t *testing.T) {
	vm := New(nil)
	defer vm.Close()

	sub := vm.Subscribe("", nil)
	assert.True(t, sub.IsClosed())

	// Dispatch must not panic with a nil-handler subscription around
	vm.SetNotificationMessage("ping")

	metrics := vm.GetMetrics()
	assert.Equal(t, 0, metrics.ActiveSubscriptions)
}

func TestSubscribe_EmptyHandlerSet(t *testing.T) {
	vm := New(nil)
	defer vm.Close()

	// Writes with no subscribers are legal
	vm.UpdateLogDetails("nobody listening")
	vm.ShowNotification("still nobody")
	assert.Equal(t, "\nnobody listening", vm.GetLogDetails())
	assert.True(t, vm.IsNotificationVisible())
}

func TestSubscribe_AfterClose(t *testing.T) {
	vm := New(nil)
	vm.Close()

	sub := vm.Subscribe("", func(property string) {
		t.Error("handler must not run on a closed view-model")
	})
	assert.True(t, sub.IsClosed())

	vm.SetNotificationMessage("ping")
}

func TestSubscription_HandlerReentry(t *testing.T) {
	vm := New(nil)
	defer vm.Close()

	// Handlers may read properties while a write is being dispatched
	var seen string
	vm.Subscribe(PropertyLogDetails, func(property string) {
		seen = vm.GetLogDetails()
	})

	vm.UpdateLogDetails("reentrant")
	assert.Equal(t, "\nreentrant", seen)
}
