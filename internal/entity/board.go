package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	BoardSize = 9
)

// WinCombos - lines checked for a winner, in evaluation order: rows, columns, diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - 9 cells in row-major order.
type Board [BoardSize]string

// Winner - returns the mark of the first completed line, or EmptyCell.
func Winner(board Board) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// StatusText - the status line shown above the board.
func StatusText(board Board, xIsNext bool) string {
	if winner := Winner(board); winner != EmptyCell {
		return "Winner: " + winner
	}

	return "Next player: " + NextMark(xIsNext)
}

func NextMark(xIsNext bool) string {
	if xIsNext {
		return PlayerX
	}
	return PlayerO
}

func (that Board) IsOccupied(cell int) bool {
	return that[cell] != EmptyCell
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}
