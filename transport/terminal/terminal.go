// Package terminal renders the game as a tview application: the board, a status line and the history list.
package terminal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const (
	cellWidth  = 7
	cellHeight = 3
	boardSide  = 3
)

type gameUseCase interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error)
	Play(ctx context.Context, sessionID string, cell int) (*entity.Game, error)
	JumpTo(ctx context.Context, sessionID string, move int) (*entity.Game, error)
	Restart(ctx context.Context, sessionID string) (*entity.Game, error)
}

type Terminal struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	sessionID   string

	app    *tview.Application
	cells  [entity.BoardSize]*tview.Button
	status *tview.TextView
	moves  *tview.List
	hint   *tview.TextView
}

func New(logger *slog.Logger, gameUseCase gameUseCase, sessionID string) *Terminal {
	that := &Terminal{
		logger:      logger.With("component", "terminal"),
		gameUseCase: gameUseCase,
		sessionID:   sessionID,

		app:    tview.NewApplication(),
		status: tview.NewTextView().SetTextAlign(tview.AlignCenter),
		moves:  tview.NewList().ShowSecondaryText(false),
		hint:   tview.NewTextView().SetDynamicColors(true),
	}

	for cell := range that.cells {
		button := tview.NewButton("")
		button.SetSelectedFunc(func() { that.play(cell) })
		button.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			return that.moveFocus(cell, event)
		})
		that.cells[cell] = button
	}

	that.moves.SetBorder(true).SetTitle(" History ")
	that.moves.SetSelectedFunc(func(move int, _, _ string, _ rune) { that.jumpTo(move) })
	that.moves.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyTab || event.Key() == tcell.KeyBacktab {
			that.app.SetFocus(that.cells[boardSide+1])
			return nil
		}
		return event
	})

	that.app.SetInputCapture(that.captureGlobal)

	return that
}

// Run - blocks until the user quits or ctx is canceled.
func (that *Terminal) Run(ctx context.Context) error {
	game, err := that.gameUseCase.GetOrCreateGame(ctx, that.sessionID)
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}

	that.render(game)

	go func() {
		<-ctx.Done()
		that.app.Stop()
	}()

	that.app.SetRoot(that.layout(), true).SetFocus(that.cells[boardSide+1])

	if err = that.app.Run(); err != nil {
		return fmt.Errorf("terminal ui failed: %w", err)
	}

	return nil
}

func (that *Terminal) layout() tview.Primitive {
	grid := tview.NewGrid().
		SetRows(cellHeight, cellHeight, cellHeight).
		SetColumns(cellWidth, cellWidth, cellWidth).
		SetGap(0, 1)

	for cell, button := range that.cells {
		grid.AddItem(button, cell/boardSide, cell%boardSide, 1, 1, 0, 0, false)
	}

	board := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(that.status, 1, 0, false).
		AddItem(grid, boardSide*cellHeight, 0, true)

	game := tview.NewFlex().
		AddItem(board, boardSide*(cellWidth+1), 0, true).
		AddItem(that.moves, 0, 1, false)

	that.hint.SetText("[gray]arrows: move  enter: play  tab: history  r: new game  q: quit")

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(game, 0, 1, true).
		AddItem(that.hint, 1, 0, false)
}

func (that *Terminal) play(cell int) {
	game, err := that.gameUseCase.Play(context.Background(), that.sessionID, cell)
	that.update(game, err)
}

func (that *Terminal) jumpTo(move int) {
	game, err := that.gameUseCase.JumpTo(context.Background(), that.sessionID, move)
	that.update(game, err)
}

func (that *Terminal) restart() {
	game, err := that.gameUseCase.Restart(context.Background(), that.sessionID)
	that.update(game, err)
}

func (that *Terminal) update(game *entity.Game, err error) {
	if err != nil {
		that.logger.Error("game event failed", "error", err)
		that.hint.SetText("[red]" + tview.Escape(err.Error()))
	}

	if game != nil {
		that.render(game)
	}
}

// render - projects the game onto the widgets.
func (that *Terminal) render(game *entity.Game) {
	view := game.View()

	for cell, button := range that.cells {
		button.SetLabel(view.Board[cell])
	}

	that.status.SetText(view.Status)

	that.moves.Clear()
	for _, entry := range view.Moves {
		that.moves.AddItem(entry.Description, "", 0, nil)
	}
	that.moves.SetCurrentItem(view.CurrentMove)
}

func (that *Terminal) captureGlobal(event *tcell.EventKey) *tcell.EventKey {
	switch {
	case event.Key() == tcell.KeyCtrlC:
		that.app.Stop()
		return nil
	case event.Key() == tcell.KeyRune && event.Rune() == 'q':
		that.app.Stop()
		return nil
	case event.Key() == tcell.KeyRune && event.Rune() == 'r':
		that.restart()
		return nil
	}

	return event
}

// moveFocus - arrow keys walk the board, tab moves to the history list.
func (that *Terminal) moveFocus(cell int, event *tcell.EventKey) *tcell.EventKey {
	row, col := cell/boardSide, cell%boardSide

	switch event.Key() {
	case tcell.KeyUp:
		row = (row + boardSide - 1) % boardSide
	case tcell.KeyDown:
		row = (row + 1) % boardSide
	case tcell.KeyLeft:
		col = (col + boardSide - 1) % boardSide
	case tcell.KeyRight:
		col = (col + 1) % boardSide
	case tcell.KeyTab, tcell.KeyBacktab:
		that.app.SetFocus(that.moves)
		return nil
	default:
		return event
	}

	that.app.SetFocus(that.cells[row*boardSide+col])

	return nil
}
