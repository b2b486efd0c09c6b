package terminal

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"tictactoe/internal/game"
)

// Renderer draws the board grid and the between-turn status lines.
type Renderer struct {
	colored bool
}

func NewRenderer(colored bool) *Renderer {
	return &Renderer{colored: colored}
}

// RenderBoard writes the 3x3 grid. Occupied cells show the owner's mark,
// free cells show their 1-based placement number.
func (that *Renderer) RenderBoard(w io.Writer, board game.Board) {
	writer := table.NewWriter()
	writer.SetOutputMirror(w)
	writer.SetStyle(table.StyleLight)

	for row := 0; row < 3; row++ {
		cells := make(table.Row, 0, 3)
		for col := 0; col < 3; col++ {
			cells = append(cells, that.cellLabel(board, row*3+col))
		}
		writer.AppendRow(cells)
		if row < 2 {
			writer.AppendSeparator()
		}
	}

	writer.Render()
}

// RenderState writes the board followed by the outcome line, and the player
// prompt line while the game continues.
func (that *Renderer) RenderState(w io.Writer, state game.State) {
	that.RenderBoard(w, state.Board())
	fmt.Fprintf(w, "State: %s\n", state.Outcome())
	if !state.IsOver() {
		fmt.Fprintf(w, "Current Player: %s\n", state.CurrentPlayer())
	}
}

func (that *Renderer) cellLabel(board game.Board, cell int) string {
	switch {
	case board.XBoard().Test(cell):
		return that.markLabel(game.PlayerX)
	case board.OBoard().Test(cell):
		return that.markLabel(game.PlayerO)
	default:
		return strconv.Itoa(cell + 1)
	}
}

func (that *Renderer) markLabel(player game.Player) string {
	if !that.colored {
		return player.String()
	}

	if player == game.PlayerX {
		return text.FgRed.Sprint(player)
	}
	return text.FgCyan.Sprint(player)
}
