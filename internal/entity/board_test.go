package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinner(t *testing.T) {
	t.Run("Returns PlayerX for a completed column", func(t *testing.T) {
		// Given: a board where X holds the left column
		board := Board{
			PlayerX, PlayerO, EmptyCell,
			PlayerX, PlayerO, EmptyCell,
			PlayerX, EmptyCell, EmptyCell,
		}

		// When: looking for a winner
		winner := Winner(board)

		// Then: X should be the winner
		assert.Equal(t, PlayerX, winner)
	})

	t.Run("Returns PlayerO for a completed diagonal", func(t *testing.T) {
		// Given: a board where O holds the anti-diagonal
		board := Board{
			PlayerX, PlayerX, PlayerO,
			EmptyCell, PlayerO, EmptyCell,
			PlayerO, EmptyCell, PlayerX,
		}

		// When: looking for a winner
		winner := Winner(board)

		// Then: O should be the winner
		assert.Equal(t, PlayerO, winner)
	})

	t.Run("Returns EmptyCell for a full board without a line", func(t *testing.T) {
		// Given: a drawn board
		board := Board{
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerX,
			PlayerX, PlayerO, PlayerX,
		}

		// When: looking for a winner
		winner := Winner(board)

		// Then: there should be no winner
		assert.Equal(t, EmptyCell, winner)
	})

	t.Run("Returns the first line in evaluation order", func(t *testing.T) {
		// Given: a board where X holds the top row and O the bottom row
		board := Board{
			PlayerX, PlayerX, PlayerX,
			EmptyCell, EmptyCell, EmptyCell,
			PlayerO, PlayerO, PlayerO,
		}

		// When: looking for a winner
		winner := Winner(board)

		// Then: the top row is evaluated first
		assert.Equal(t, PlayerX, winner)
	})

	t.Run("Matches a completed line on every board", func(t *testing.T) {
		marks := []string{EmptyCell, PlayerX, PlayerO}

		total := 1
		for range BoardSize {
			total *= len(marks)
		}

		for n := range total {
			// Given: one of the 3^9 cell assignments
			var board Board
			rest := n
			for cell := range board {
				board[cell] = marks[rest%len(marks)]
				rest /= len(marks)
			}

			// When: looking for a winner
			winner := Winner(board)

			// Then: a mark is returned iff some line is filled with it
			hasLine := holdsLine(board, PlayerX) || holdsLine(board, PlayerO)

			if !hasLine {
				assert.Equal(t, EmptyCell, winner, "board %v", board)
				continue
			}

			if assert.NotEqual(t, EmptyCell, winner, "board %v", board) {
				assert.True(t, holdsLine(board, winner), "board %v, winner %s", board, winner)
			}
		}
	})
}

func holdsLine(board Board, mark string) bool {
	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}
	return false
}

func TestStatusText(t *testing.T) {
	t.Run("Shows the next player on an empty board", func(t *testing.T) {
		assert.Equal(t, "Next player: X", StatusText(Board{}, true))
		assert.Equal(t, "Next player: O", StatusText(Board{}, false))
	})

	t.Run("Shows the winner regardless of the turn", func(t *testing.T) {
		// Given: a board won by O
		board := Board{
			PlayerO, PlayerO, PlayerO,
			PlayerX, PlayerX, EmptyCell,
			PlayerX, EmptyCell, EmptyCell,
		}

		// Then: the status should announce O for both turn values
		assert.Equal(t, "Winner: O", StatusText(board, true))
		assert.Equal(t, "Winner: O", StatusText(board, false))
	})
}
