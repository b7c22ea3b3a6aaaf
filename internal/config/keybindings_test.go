package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/edithost/internal/input/key"
	"github.com/dshills/edithost/internal/input/keybinding"
	"github.com/dshills/edithost/internal/input/when"
)

const sampleConfig = `
[[binding]]
keys = "Ctrl+S"
command = "file.save"

[[binding]]
keys = "Ctrl+Shift+P"
command = "palette.open"
when = "editorTextFocus"
weight = 10

[[binding]]
keys = "<C-q>"
command = "host.quit"
`

func TestParse(t *testing.T) {
	entries, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}

	if entries[0].Chord != key.Ctrl('s') || entries[0].Command != "file.save" {
		t.Errorf("entries[0] = %v", entries[0])
	}
	if entries[0].WeightPrimary != 0 {
		t.Errorf("unweighted binding WeightPrimary = %d, want 0", entries[0].WeightPrimary)
	}

	if entries[1].WeightPrimary != 10 {
		t.Errorf("entries[1].WeightPrimary = %d, want 10", entries[1].WeightPrimary)
	}
	ctx := when.NewContext()
	if entries[1].Matches(ctx) {
		t.Error("guarded binding should not match without its condition")
	}
	ctx.Conditions["editorTextFocus"] = true
	if !entries[1].Matches(ctx) {
		t.Error("guarded binding should match with its condition")
	}

	if entries[2].Chord != key.Ctrl('q') {
		t.Errorf("vim-style spec parsed to %v", entries[2].Chord)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"missing command", "[[binding]]\nkeys = \"Ctrl+S\"\n"},
		{"bad keys", "[[binding]]\nkeys = \"Hyper+S\"\ncommand = \"x\"\n"},
		{"bad when", "[[binding]]\nkeys = \"Ctrl+S\"\ncommand = \"x\"\nwhen = \"a &&\"\n"},
		{"bad toml", "[[binding\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.toml)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	entries, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if entries != nil {
		t.Errorf("missing file should yield no entries, got %v", entries)
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybindings.toml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan []keybinding.Entry, 4)
	w, err := NewWatcher(path, func(entries []keybinding.Entry, err error) {
		if err != nil {
			t.Errorf("reload error = %v", err)
			return
		}
		reloaded <- entries
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	updated := strings.Replace(sampleConfig, "file.save", "file.saveAll", 1)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case entries := <-reloaded:
		if len(entries) != 3 || entries[0].Command != "file.saveAll" {
			t.Errorf("reloaded entries = %v", entries)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not reload after file change")
	}
}
