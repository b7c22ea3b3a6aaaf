package key

import (
	"github.com/gdamore/tcell/v2"
)

// tcellKeys maps tcell special keys to our key codes.
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

// FromTcell converts a tcell key event into a Chord.
// Returns the zero Chord for events that do not map to a key.
func FromTcell(ev *tcell.EventKey) Chord {
	if ev == nil {
		return 0
	}

	var mods Modifier
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if ev.Modifiers()&tcell.ModMeta != 0 {
		mods = mods.With(ModMeta)
	}

	if ev.Key() == tcell.KeyRune {
		return NewChord(mods, KeyOf(ev.Rune()))
	}

	// Named keys first: Enter and Tab share codes with Ctrl+M and Ctrl+I.
	if k, ok := tcellKeys[ev.Key()]; ok {
		return NewChord(mods, k)
	}

	// Ctrl+letter arrives as a control key code; recover the letter.
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		r := rune('a' + ev.Key() - tcell.KeyCtrlA)
		return NewChord(mods.With(ModCtrl), KeyOf(r))
	}

	return 0
}
