package mino

// Block is the content of a grid cell: empty or the color of the piece
// that was locked there.
type Block int

func (b Block) String() string {
	switch b {
	case BlockNone:
		return "none"
	case BlockCyan:
		return "cyan"
	case BlockYellow:
		return "yellow"
	case BlockPurple:
		return "purple"
	case BlockOrange:
		return "orange"
	case BlockBlue:
		return "blue"
	case BlockGreen:
		return "green"
	case BlockRed:
		return "red"
	default:
		return "unknown"
	}
}

func (b Block) Rune() rune {
	switch b {
	case BlockNone:
		return '.'
	case BlockCyan, BlockYellow, BlockPurple, BlockOrange, BlockBlue, BlockGreen, BlockRed:
		return '█'
	default:
		return '?'
	}
}

const (
	BlockNone Block = iota
	BlockCyan
	BlockYellow
	BlockPurple
	BlockOrange
	BlockBlue
	BlockGreen
	BlockRed
)

// Blocks lists every non-empty block, in Kind order.
var Blocks = []Block{BlockCyan, BlockYellow, BlockPurple, BlockOrange, BlockBlue, BlockGreen, BlockRed}
