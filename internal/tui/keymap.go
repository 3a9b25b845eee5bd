package tui

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/bubbles/key"
)

// Keymap holds the app-level bindings. Tab-local editing keys stay hardcoded;
// only the action keys are rebindable.
type Keymap struct {
	Quit       key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Add        key.Binding
	Delete     key.Binding
	Clear      key.Binding
	Export     key.Binding
	Copy       key.Binding
	Stats      key.Binding
	History    key.Binding
	ToggleUnit key.Binding
}

// keymapFile is the on-disk override format.
type keymapFile struct {
	Bindings map[string][]string `toml:"bindings"`
}

func defaultKeymap() Keymap {
	return Keymap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:     key.NewBinding(key.WithKeys("d", "backspace"), key.WithHelp("d", "delete")),
		Clear:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export CSV")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Stats:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats")),
		History:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		ToggleUnit: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unit")),
	}
}

// LoadKeymap reads keybindings.toml from dir and applies any overrides on top
// of the defaults. A missing or invalid file just yields the defaults.
func LoadKeymap(dir string) Keymap {
	km := defaultKeymap()
	data, err := os.ReadFile(filepath.Join(dir, "keybindings.toml"))
	if err != nil {
		return km
	}
	var f keymapFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return km
	}
	apply := func(b *key.Binding, action string) {
		if keys, ok := f.Bindings[action]; ok && len(keys) > 0 {
			b.SetKeys(keys...)
		}
	}
	apply(&km.Quit, "quit")
	apply(&km.NextTab, "next_tab")
	apply(&km.PrevTab, "prev_tab")
	apply(&km.Add, "add")
	apply(&km.Delete, "delete")
	apply(&km.Clear, "clear")
	apply(&km.Export, "export")
	apply(&km.Copy, "copy")
	apply(&km.Stats, "stats")
	apply(&km.History, "history")
	apply(&km.ToggleUnit, "toggle_unit")
	return km
}
