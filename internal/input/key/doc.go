// Package key provides integer-encoded key chords and chord spec parsing.
//
// A Chord packs a key code and its modifiers into one uint32, which keeps
// binding tables flat and comparison cheap. Specs parse from both
// "Ctrl+Shift+P" and vim-style "<C-S-p>" notation.
package key
