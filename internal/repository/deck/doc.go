// Package deck loads the slide deck shown by the carousel.
//
// Decks are described in YAML. The FileRepository reads and writes deck
// files on disk, and Default returns the built-in deck embedded in the binary.
// A loaded deck is validated once and never changes afterwards.
package deck
