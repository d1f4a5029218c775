package entity

import "strconv"

type MoveEntry struct {
	Move        int    `json:"move"`
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

// View - what every front end renders.
type View struct {
	Board       Board       `json:"board"`
	Status      string      `json:"status"`
	Winner      string      `json:"winner,omitempty"`
	XIsNext     bool        `json:"x_is_next"`
	CurrentMove int         `json:"current_move"`
	Moves       []MoveEntry `json:"moves"`
}

func (that *Game) View() View {
	moves := make([]MoveEntry, 0, len(that.History))
	for move := range that.History {
		moves = append(moves, MoveEntry{
			Move:        move,
			Description: MoveDescription(move),
			Current:     move == that.CurrentMove,
		})
	}

	return View{
		Board:       that.CurrentBoard(),
		Status:      that.Status(),
		Winner:      that.Winner(),
		XIsNext:     that.XIsNext(),
		CurrentMove: that.CurrentMove,
		Moves:       moves,
	}
}

func MoveDescription(move int) string {
	if move > 0 {
		return "Go to move #" + strconv.Itoa(move)
	}

	return "Go to game start"
}
