package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadKeymapDefaultsWhenFileMissing(t *testing.T) {
	km := LoadKeymap(t.TempDir())
	require.Equal(t, []string{"a"}, km.Add.Keys())
	require.Equal(t, []string{"d", "backspace"}, km.Delete.Keys())
}

func TestLoadKeymapAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `[bindings]
add = ["n"]
export = ["ctrl+e", "E"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keybindings.toml"), []byte(content), 0o644))

	km := LoadKeymap(dir)
	require.Equal(t, []string{"n"}, km.Add.Keys())
	require.Equal(t, []string{"ctrl+e", "E"}, km.Export.Keys())
	// untouched actions keep their defaults
	require.Equal(t, []string{"x"}, km.Clear.Keys())
}

func TestLoadKeymapIgnoresInvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keybindings.toml"), []byte("not [valid"), 0o644))

	km := LoadKeymap(dir)
	require.Equal(t, []string{"a"}, km.Add.Keys())
}
