package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/blockfall/pkg/mino"
)

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name   string      `json:"name"`
	Border tcell.Color `json:"border"`
	Text   tcell.Color `json:"text"`
	Label  tcell.Color `json:"label"`
	Empty  tcell.Color `json:"empty"`
	Ghost  tcell.Color `json:"ghost"`
	Flash  tcell.Color `json:"flash"`
	Cyan   tcell.Color `json:"cyan"`
	Yellow tcell.Color `json:"yellow"`
	Purple tcell.Color `json:"purple"`
	Orange tcell.Color `json:"orange"`
	Blue   tcell.Color `json:"blue"`
	Green  tcell.Color `json:"green"`
	Red    tcell.Color `json:"red"`
}

// ThemeHex is the JSON form of a Theme
type ThemeHex struct {
	Name   string `json:"name"`
	Border string `json:"border"`
	Text   string `json:"text"`
	Label  string `json:"label"`
	Empty  string `json:"empty"`
	Ghost  string `json:"ghost"`
	Flash  string `json:"flash"`
	Cyan   string `json:"cyan"`
	Yellow string `json:"yellow"`
	Purple string `json:"purple"`
	Orange string `json:"orange"`
	Blue   string `json:"blue"`
	Green  string `json:"green"`
	Red    string `json:"red"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Border.Hex()),
		fmtHex(t.Text.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Empty.Hex()),
		fmtHex(t.Ghost.Hex()),
		fmtHex(t.Flash.Hex()),
		fmtHex(t.Cyan.Hex()),
		fmtHex(t.Yellow.Hex()),
		fmtHex(t.Purple.Hex()),
		fmtHex(t.Orange.Hex()),
		fmtHex(t.Blue.Hex()),
		fmtHex(t.Green.Hex()),
		fmtHex(t.Red.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.Border),
		tcell.GetColor(t.Text),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.Empty),
		tcell.GetColor(t.Ghost),
		tcell.GetColor(t.Flash),
		tcell.GetColor(t.Cyan),
		tcell.GetColor(t.Yellow),
		tcell.GetColor(t.Purple),
		tcell.GetColor(t.Orange),
		tcell.GetColor(t.Blue),
		tcell.GetColor(t.Green),
		tcell.GetColor(t.Red),
	}
}

// Block returns the color a grid block is drawn with
func (t Theme) Block(b mino.Block) tcell.Color {
	switch b {
	case mino.BlockCyan:
		return t.Cyan
	case mino.BlockYellow:
		return t.Yellow
	case mino.BlockPurple:
		return t.Purple
	case mino.BlockOrange:
		return t.Orange
	case mino.BlockBlue:
		return t.Blue
	case mino.BlockGreen:
		return t.Green
	case mino.BlockRed:
		return t.Red
	default:
		return t.Empty
	}
}

// LoadThemes reads a JSON array of ThemeHex from path
func LoadThemes(path string) ([]ThemeHex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	var themes []ThemeHex
	if err := json.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("theme: failed to parse %s: %w", path, err)
	}
	return themes, nil
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, errors.New("theme: no theme found")
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",                          // Name
	tcell.NewRGBColor(128, 128, 128), // Border
	tcell.ColorDefault,               // Text
	tcell.NewRGBColor(160, 160, 160), // Label
	tcell.NewRGBColor(48, 48, 48),    // Empty
	tcell.NewRGBColor(96, 96, 96),    // Ghost
	tcell.NewRGBColor(255, 255, 255), // Flash
	tcell.NewRGBColor(0, 255, 255),   // Cyan
	tcell.NewRGBColor(255, 255, 0),   // Yellow
	tcell.NewRGBColor(128, 0, 128),   // Purple
	tcell.NewRGBColor(255, 165, 0),   // Orange
	tcell.NewRGBColor(0, 0, 255),     // Blue
	tcell.NewRGBColor(0, 255, 0),     // Green
	tcell.NewRGBColor(255, 0, 0),     // Red
}

// ThemeXterm sticks to the 256 color palette for terminals without true color
var ThemeXterm = Theme{
	"xterm",            // Name
	tcell.Color244,     // Border
	tcell.ColorDefault, // Text
	tcell.Color247,     // Label
	tcell.Color236,     // Empty
	tcell.Color240,     // Ghost
	tcell.Color231,     // Flash
	tcell.Color51,      // Cyan
	tcell.Color226,     // Yellow
	tcell.Color90,      // Purple
	tcell.Color214,     // Orange
	tcell.Color21,      // Blue
	tcell.Color46,      // Green
	tcell.Color196,     // Red
}

// Themes are the built-in themes
var Themes = []Theme{ThemeBasic, ThemeXterm}
