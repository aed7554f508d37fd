// Package present runs the terminal presenter: it loads the settings and the
// deck, owns the carousel controller and hands it to the Bubble Tea program.
package present
