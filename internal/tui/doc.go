// Package tui renders the carousel in a terminal with Bubble Tea.
//
// The model holds a carousel controller and redraws from its snapshot.
// Controller notifications (accepted navigations and settles) arrive as
// messages on the program loop, so every state change is handled on that
// single sequential event stream.
package tui
