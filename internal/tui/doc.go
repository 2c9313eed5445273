// Package tui provides the interactive terminal board for logboard.
//
// The board is a Bubble Tea program layered on top of the observable view
// model in pkg/viewmodel. It renders the accumulated log details in a
// scrollable viewport, shows transient notifications while the view model
// reports them visible, and offers a one line composer for publishing new
// entries.
//
// # Architecture
//
// The package follows the usual Bubble Tea split:
//
//   - Model: holds widget state plus a cached mirror of the view model
//   - Update: the dispatch function routes messages to handlers
//   - View: renders panels, the notification banner and the status bar
//
// Property change notifications cross from the view model into the event
// loop through a buffered channel. The subscription handler only forwards
// the property name; all state reads happen inside the loop, so handlers
// stay cheap and never block a writer.
//
// # Activity Panel
//
// Internal diagnostics emitted through pkg/logging arrive on a second
// channel and feed the activity panel at the bottom of the screen. The
// panel keeps a bounded number of lines and always scrolls to the newest
// entry.
package tui
