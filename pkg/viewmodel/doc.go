// Package viewmodel provides the observable state container at the heart of
// logboard.
//
// A NotifyingViewModel holds three observable properties: the accumulated
// log text, the current notification message, and the notification's
// visibility flag. Interested parties register PropertyChangeHandler
// functions and are invoked whenever a property is written.
//
// # Change Notification
//
// Every setter assignment raises a change notification for its property,
// even when the new value equals the old one. Handlers run synchronously in
// registration order on the goroutine that performed the write, after the
// write has landed, outside the internal lock. A handler reading the
// view-model therefore always observes the value that triggered it.
//
// # Notifications and the Hide Timer
//
// ShowNotification sets the message, flips the visibility flag on, and
// schedules a one-shot hide. Showing again before the hide fires cancels the
// pending hide and schedules a fresh one, so the visible duration always
// restarts from the latest call. Only the most recently scheduled hide can
// flip the flag back off.
//
// # Log Sink
//
// Every message appended through UpdateLogDetails is forwarded unchanged to
// the injected LogSink. Sinks never report failure to the caller. NopSink is
// the reference implementation and discards everything.
package viewmodel
