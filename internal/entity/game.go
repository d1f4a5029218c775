package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

// Game - board snapshots from the start of the game and the move being displayed.
type Game struct {
	ID          string  `json:"id"`
	History     []Board `json:"history"`
	CurrentMove int     `json:"current_move"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		History:     []Board{{}},
		CurrentMove: 0,
	}
}

func (that *Game) CurrentBoard() Board {
	return that.History[that.CurrentMove]
}

// XIsNext - X moves on even indexes, O on odd ones.
func (that *Game) XIsNext() bool {
	return that.CurrentMove%2 == 0
}

func (that *Game) Winner() string {
	return Winner(that.CurrentBoard())
}

func (that *Game) HasWinner() bool {
	return that.Winner() != EmptyCell
}

func (that *Game) Status() string {
	return StatusText(that.CurrentBoard(), that.XIsNext())
}

// CanPlay - reports whether cell accepts a mark on the current board.
func (that *Game) CanPlay(cell int) bool {
	if !IsValidCell(cell) {
		return false
	}

	board := that.CurrentBoard()

	return !board.IsOccupied(cell) && Winner(board) == EmptyCell
}

// ApplyMove - places the next mark on cell, dropping any snapshots after the current move.
// Occupied cells and moves on a won board are ignored and false is returned.
func (that *Game) ApplyMove(cell int) bool {
	if !that.CanPlay(cell) {
		return false
	}

	next := that.CurrentBoard()
	next[cell] = NextMark(that.XIsNext())

	history := make([]Board, that.CurrentMove+1, that.CurrentMove+2)
	copy(history, that.History[:that.CurrentMove+1])

	that.History = append(history, next)
	that.CurrentMove = len(that.History) - 1

	return true
}

// JumpTo - selects a recorded snapshot, history is left untouched.
func (that *Game) JumpTo(move int) error {
	if move < 0 || move >= len(that.History) {
		return fmt.Errorf("%w: move %d of %d", apperror.ErrMoveOutOfRange, move, len(that.History))
	}

	that.CurrentMove = move

	return nil
}

// Validate - history must hold the start board and CurrentMove must point into it.
func (that *Game) Validate() error {
	if len(that.History) == 0 {
		return fmt.Errorf("%w: empty history", apperror.ErrCorruptedGame)
	}

	if that.CurrentMove < 0 || that.CurrentMove >= len(that.History) {
		return fmt.Errorf("%w: move %d of %d", apperror.ErrCorruptedGame, that.CurrentMove, len(that.History))
	}

	return nil
}

func (that *Game) Restart() {
	that.History = []Board{{}}
	that.CurrentMove = 0
}
