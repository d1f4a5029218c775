package rest

import (
	"fmt"
	"html/template"
	"io"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

type boardRow struct {
	Cells []boardCell
}

type boardCell struct {
	Index int
	Value string
}

type page struct {
	entity.View
	Rows []boardRow
}

var gameTemplate = template.Must(template.New("game").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Tic-tac-toe</title>
<style>
body { font-family: sans-serif; margin: 20px; }
.game { display: flex; flex-direction: row; }
.game-info { margin-left: 20px; }
.status { margin-bottom: 10px; }
.board-row { display: flex; }
.board-row form { margin: 0; }
.square { background: #fff; border: 1px solid #999; font-size: 24px; font-weight: bold; height: 34px; width: 34px; margin: -1px -1px 0 0; padding: 0; }
.current { font-weight: bold; }
</style>
</head>
<body>
<div class="game">
  <div class="game-board">
    <div class="status">{{.Status}}</div>
    {{range .Rows}}<div class="board-row">
      {{range .Cells}}<form method="post" action="/play/{{.Index}}"><button class="square" type="submit">{{.Value}}</button></form>
      {{end}}
    </div>
    {{end}}
  </div>
  <div class="game-info">
    <ol>
      {{range .Moves}}<li><form method="post" action="/jump/{{.Move}}"><button type="submit"{{if .Current}} class="current"{{end}}>{{.Description}}</button></form></li>
      {{end}}
    </ol>
    <form method="post" action="/restart"><button type="submit">New game</button></form>
  </div>
</div>
</body>
</html>
`))

func renderGame(w io.Writer, view entity.View) error {
	rows := make([]boardRow, 0, 3)
	for row := 0; row < 3; row++ {
		cells := make([]boardCell, 0, 3)
		for col := 0; col < 3; col++ {
			cell := row*3 + col
			cells = append(cells, boardCell{Index: cell, Value: view.Board[cell]})
		}
		rows = append(rows, boardRow{Cells: cells})
	}

	if err := gameTemplate.Execute(w, page{View: view, Rows: rows}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return nil
}
