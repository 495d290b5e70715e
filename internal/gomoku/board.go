package gomoku

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	BoardSize = 15
	WinLength = 5

	EmptyCell = ""
)

// Board - a 15x15 grid addressed as board[y][x]. A cell holds the id of the user that placed a stone or EmptyCell.
type Board [BoardSize][BoardSize]string

// InBounds - reports whether (x, y) addresses a cell of the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

func (that *Board) Get(x, y int) string {
	return that[y][x]
}

func (that *Board) Set(x, y int, player string) {
	that[y][x] = player
}

func (that *Board) IsEmpty(x, y int) bool {
	return that[y][x] == EmptyCell
}

// MarshalJSON - empty cells are written as null.
func (that Board) MarshalJSON() ([]byte, error) {
	rows := make([][]*string, BoardSize)
	for y := range that {
		rows[y] = make([]*string, BoardSize)
		for x := range that[y] {
			if that[y][x] != EmptyCell {
				cell := that[y][x]
				rows[y][x] = &cell
			}
		}
	}

	return json.Marshal(rows)
}

func (that *Board) UnmarshalJSON(data []byte) error {
	*that = Board{}

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var rows [][]*string
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	if len(rows) > BoardSize {
		return fmt.Errorf("board has %d rows, want at most %d", len(rows), BoardSize)
	}

	for y, row := range rows {
		if len(row) > BoardSize {
			return fmt.Errorf("board row %d has %d cells, want at most %d", y, len(row), BoardSize)
		}

		for x, cell := range row {
			if cell != nil {
				that[y][x] = *cell
			}
		}
	}

	return nil
}
