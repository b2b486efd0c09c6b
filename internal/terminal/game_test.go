package terminal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe/internal/game"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParsePlacement(t *testing.T) {
	t.Run("Parses plain and padded integers", func(t *testing.T) {
		assert.Equal(t, 3, parsePlacement("3"))
		assert.Equal(t, 7, parsePlacement("  7 "))
	})

	t.Run("Maps anything unparseable onto an out-of-range placement", func(t *testing.T) {
		assert.Equal(t, outOfRangePlacement, parsePlacement(""))
		assert.Equal(t, outOfRangePlacement, parsePlacement("abc"))
		assert.Equal(t, outOfRangePlacement, parsePlacement("1.5"))
	})
}

func TestGame_Run(t *testing.T) {
	t.Run("Plays a full match to an X win", func(t *testing.T) {
		// Given: X takes the top row while O answers below it
		input := strings.NewReader("1\n4\n2\n5\n3\n")
		output := &bytes.Buffer{}

		final, err := New(newTestLogger(), input, output, false).Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, game.OutcomeXWon, final.Outcome())
		assert.Contains(t, output.String(), "X wins!!")
	})

	t.Run("Re-prompts on rejected and unparseable input without advancing", func(t *testing.T) {
		// Given: a repeated cell and garbage lines mixed into the winning sequence
		input := strings.NewReader("1\n1\n0\nabc\n4\n2\n5\n3\n")
		output := &bytes.Buffer{}

		final, err := New(newTestLogger(), input, output, false).Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, game.OutcomeXWon, final.Outcome())
	})

	t.Run("Plays through to a draw", func(t *testing.T) {
		input := strings.NewReader("1\n2\n3\n4\n5\n7\n6\n9\n8\n")
		output := &bytes.Buffer{}

		final, err := New(newTestLogger(), input, output, false).Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, game.OutcomeDraw, final.Outcome())
		assert.Contains(t, output.String(), "Draw!")
	})

	t.Run("Reports when input closes before the game ends", func(t *testing.T) {
		input := strings.NewReader("1\n")
		output := &bytes.Buffer{}

		final, err := New(newTestLogger(), input, output, false).Run(context.Background())

		assert.ErrorIs(t, err, ErrInputClosed)
		assert.Equal(t, game.OutcomeOngoing, final.Outcome())
		assert.Equal(t, game.PlayerO, final.CurrentPlayer())
	})

	t.Run("Stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(newTestLogger(), strings.NewReader("1\n"), &bytes.Buffer{}, false).Run(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRenderer(t *testing.T) {
	t.Run("Shows marks on occupied cells and numbers on free ones", func(t *testing.T) {
		// Given: X on cell 1 and O on cell 5
		state, err := game.NewState().Play(1)
		require.NoError(t, err)
		state, err = state.Play(5)
		require.NoError(t, err)

		output := &bytes.Buffer{}
		NewRenderer(false).RenderBoard(output, state.Board())

		rendered := output.String()
		assert.Contains(t, rendered, "X")
		assert.Contains(t, rendered, "O")
		assert.Contains(t, rendered, "9")
		assert.NotContains(t, rendered, " 1 ")
		assert.NotContains(t, rendered, " 5 ")
	})

	t.Run("Prints the current player only while the game continues", func(t *testing.T) {
		output := &bytes.Buffer{}
		NewRenderer(false).RenderState(output, game.NewState())

		assert.Contains(t, output.String(), "State: Still playing.")
		assert.Contains(t, output.String(), "Current Player: X")
	})
}
