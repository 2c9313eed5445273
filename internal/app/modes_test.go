package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"logboard/pkg/viewmodel"
)

func TestFeedLine_AppendsLogEntries(t *testing.T) {
	vm := viewmodel.New(nil)
	defer vm.Close()

	feedLine(vm, "deploy finished")
	feedLine(vm, "  cache warmed  ")

	assert.Equal(t, "\ndeploy finished\ncache warmed", vm.GetLogDetails())
}

func TestFeedLine_NotificationPrefix(t *testing.T) {
	vm := viewmodel.New(nil)
	defer vm.Close()

	feedLine(vm, "!disk almost full")

	assert.Equal(t, "disk almost full", vm.GetNotificationMessage())
	assert.True(t, vm.IsNotificationVisible())
	assert.Empty(t, vm.GetLogDetails(), "notification lines must not land in the log")
}

func TestFeedLine_SkipsBlankInput(t *testing.T) {
	vm := viewmodel.New(nil)
	defer vm.Close()

	feedLine(vm, "")
	feedLine(vm, "   ")
	feedLine(vm, "!")
	feedLine(vm, "!   ")

	assert.Empty(t, vm.GetLogDetails())
	assert.Empty(t, vm.GetNotificationMessage())
	assert.False(t, vm.IsNotificationVisible())
}
