package mino

var lineScores = [...]int{0, 100, 235, 370, 550}

// Score returns the points awarded for clearing rows rows at once.
func Score(rows int) int {
	if rows < 0 || rows >= len(lineScores) {
		return 0
	}

	return lineScores[rows]
}
