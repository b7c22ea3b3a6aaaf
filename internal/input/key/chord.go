package key

import "strings"

// Chord packs one key press, modifiers included, into a single integer.
// It is the primary match key for keybindings.
//
// Layout: the Modifier bits occupy bits 24 and up, bits 0-23 hold the Key
// code.
// Unicode code points fit in 21 bits, so the key field holds both
// character keys and the special-key range without collision.
type Chord uint32

const keyMask = 0x00FFFFFF

// NewChord builds a chord from modifiers and a key.
func NewChord(mods Modifier, k Key) Chord {
	return Chord(uint32(mods)<<24 | uint32(k)&keyMask)
}

// Rune builds an unmodified chord for a character key.
func Rune(r rune) Chord {
	return NewChord(ModNone, KeyOf(r))
}

// Ctrl builds a Ctrl-modified chord for a character key.
func Ctrl(r rune) Chord {
	return NewChord(ModCtrl, KeyOf(r))
}

// Key returns the key component of the chord.
func (c Chord) Key() Key {
	return Key(uint32(c) & keyMask)
}

// Modifiers returns the modifier component of the chord.
func (c Chord) Modifiers() Modifier {
	return Modifier(uint32(c) >> 24)
}

// IsZero returns true for the zero chord (no key, no modifiers).
func (c Chord) IsZero() bool {
	return c == 0
}

// String returns a canonical representation like "Ctrl+Shift+P" or "j".
func (c Chord) String() string {
	mods := c.Modifiers().String()
	name := c.Key().String()
	if c.Key().IsRune() && c.Modifiers() != ModNone {
		// Canonical form shows modified letters uppercase.
		name = strings.ToUpper(name)
	}
	if mods == "" {
		return name
	}
	return mods + "+" + name
}
