package window

import (
	"image/color"

	"github.com/qnkhuat/blockfall/pkg/mino"
)

type Palette struct {
	Background color.RGBA
	Well       color.RGBA
	Grid       color.RGBA
	Text       color.RGBA
	Flash      color.RGBA
	Overlay    color.RGBA

	// Ghost cells use the piece color at this alpha.
	GhostAlpha uint8

	Blocks map[mino.Block]color.RGBA
}

var DefaultPalette = Palette{
	Background: color.RGBA{16, 16, 24, 255},
	Well:       color.RGBA{0, 0, 0, 255},
	Grid:       color.RGBA{32, 32, 40, 255},
	Text:       color.RGBA{220, 220, 220, 255},
	Flash:      color.RGBA{255, 255, 255, 255},
	Overlay:    color.RGBA{0, 0, 0, 180},
	GhostAlpha: 70,
	Blocks: map[mino.Block]color.RGBA{
		mino.BlockCyan:   {0, 255, 255, 255},
		mino.BlockYellow: {255, 255, 0, 255},
		mino.BlockPurple: {128, 0, 128, 255},
		mino.BlockOrange: {255, 165, 0, 255},
		mino.BlockBlue:   {0, 0, 255, 255},
		mino.BlockGreen:  {0, 255, 0, 255},
		mino.BlockRed:    {255, 0, 0, 255},
	},
}

func (p Palette) Block(b mino.Block) color.RGBA {
	if c, ok := p.Blocks[b]; ok {
		return c
	}

	return p.Well
}

// Ghost returns the block color faded for the landing preview. Colors are
// premultiplied so every channel is scaled.
func (p Palette) Ghost(b mino.Block) color.RGBA {
	c := p.Block(b)
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(p.GhostAlpha) / 255) }

	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), p.GhostAlpha}
}
