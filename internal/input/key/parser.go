package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a chord specification string into a Chord.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Space"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
func Parse(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if strings.Contains(spec, "+") && utf8.RuneCountInString(spec) > 1 {
		return parseModifierStyle(spec)
	}

	return parseSingle(spec, ModNone)
}

// parseVimStyle parses notation like "C-s", "A-F4", "CR", "Esc".
func parseVimStyle(inner string) (Chord, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return 0, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.ToLower(strings.TrimSpace(p)))
		if mod == ModNone {
			return 0, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseSingle(keyPart, mods)
}

// parseModifierStyle parses notation like "Ctrl+S" or "Ctrl+Shift+P".
func parseModifierStyle(spec string) (Chord, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return 0, ErrInvalidSpec
	}

	// A trailing empty part means the key itself is "+", as in "Ctrl++".
	keyPart := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]
	if keyPart == "" {
		keyPart = "+"
		modParts = parts[:len(parts)-2]
	}

	var mods Modifier
	for _, p := range modParts {
		mod := ModifierFromName(strings.ToLower(strings.TrimSpace(p)))
		if mod == ModNone {
			return 0, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseSingle(keyPart, mods)
}

// parseSingle parses a bare key name or single character with the given
// modifiers already collected.
func parseSingle(keyPart string, mods Modifier) (Chord, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return 0, ErrInvalidSpec
	}

	if k, ok := keyNames[strings.ToLower(keyPart)]; ok {
		return NewChord(mods, k), nil
	}

	r, size := utf8.DecodeRuneInString(keyPart)
	if size != len(keyPart) || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}

	// Letters normalize to lowercase; an uppercase letter in a modified
	// spec like "Ctrl+S" is a presentation convention, not Shift.
	if unicode.IsUpper(r) {
		r = unicode.ToLower(r)
	}

	return NewChord(mods, KeyOf(r)), nil
}

// MustParse parses a chord spec and panics on error.
// Intended for statically known specs such as default binding tables.
func MustParse(spec string) Chord {
	c, err := Parse(spec)
	if err != nil {
		panic(fmt.Sprintf("key: MustParse(%q): %v", spec, err))
	}
	return c
}
