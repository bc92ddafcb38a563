package gui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/blockfall/pkg/mino"
)

func TestThemeHexRoundTrip(t *testing.T) {
	hex := ThemeBasic.Hex()
	assert.Equal(t, "#00ffff", hex.Cyan)
	assert.Equal(t, "#0", hex.Text, "default color must survive export")

	assert.Equal(t, ThemeBasic, hex.Theme())
}

func TestImportThemes(t *testing.T) {
	custom := ThemeBasic.Hex()
	custom.Name = "basic"
	custom.Red = "#800000"

	theme, err := ImportThemes("basic", []ThemeHex{custom})
	require.NoError(t, err)
	assert.Equal(t, tcell.GetColor("#800000"), theme.Red, "config themes override built-ins")

	theme, err = ImportThemes("xterm", nil)
	require.NoError(t, err)
	assert.Equal(t, ThemeXterm, theme)

	_, err = ImportThemes("solarized", []ThemeHex{custom})
	assert.Error(t, err)
}

func TestLoadThemes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "themes.json")

	custom := ThemeXterm.Hex()
	custom.Name = "mine"
	data, err := json.Marshal([]ThemeHex{custom})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	themes, err := LoadThemes(path)
	require.NoError(t, err)
	require.Len(t, themes, 1)

	theme, err := ImportThemes("mine", themes)
	require.NoError(t, err)
	assert.Equal(t, "mine", theme.Name)

	_, err = LoadThemes(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestThemeBlock(t *testing.T) {
	assert.Equal(t, ThemeBasic.Cyan, ThemeBasic.Block(mino.KindI.Block()))
	assert.Equal(t, ThemeBasic.Red, ThemeBasic.Block(mino.KindZ.Block()))
	assert.Equal(t, ThemeBasic.Empty, ThemeBasic.Block(mino.BlockNone))
	for _, b := range mino.Blocks {
		assert.NotEqual(t, ThemeBasic.Empty, ThemeBasic.Block(b), "block %s", b)
	}
}
