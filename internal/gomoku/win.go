package gomoku

// axes - horizontal, vertical, main diagonal, anti-diagonal.
var axes = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// HasFiveInLine - checks whether the stone of player at (x, y) completes a line of at least five.
func HasFiveInLine(board *Board, x, y int, player string) bool {
	if player == EmptyCell || !InBounds(x, y) {
		return false
	}

	for _, axis := range axes {
		count := 1 + countDirection(board, x, y, axis[0], axis[1], player) +
			countDirection(board, x, y, -axis[0], -axis[1], player)

		if count >= WinLength {
			return true
		}
	}

	return false
}

// countDirection - counts contiguous stones of player from (x, y) exclusive, at most WinLength-1 cells.
func countDirection(board *Board, x, y, dx, dy int, player string) int {
	count := 0

	for step := 1; step < WinLength; step++ {
		cx, cy := x+dx*step, y+dy*step
		if !InBounds(cx, cy) || board[cy][cx] != player {
			break
		}
		count++
	}

	return count
}
