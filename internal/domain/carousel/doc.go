// Package carousel contains the core domain types of the presentation.
//
// A Deck is the immutable, ordered list of Slides fixed at startup. The
// Controller owns the only mutable state: the active slide index and the
// transition flag that stays raised for a settle window after every accepted
// navigation. Out-of-range targets are resolved by a Policy (wrap or clamp)
// and never produce an error.
package carousel
