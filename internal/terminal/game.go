package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"tictactoe/internal/game"
)

// outOfRangePlacement stands in for unparseable input so the engine's own
// range check rejects it like any other bad placement.
const outOfRangePlacement = 10

var ErrInputClosed = errors.New("input closed before the game finished")

// Game runs one interactive match over a line-oriented reader and writer.
type Game struct {
	logger   *slog.Logger
	renderer *Renderer
	input    *bufio.Scanner
	output   io.Writer
}

func New(logger *slog.Logger, input io.Reader, output io.Writer, colored bool) *Game {
	return &Game{
		logger:   logger.With("component", "terminal"),
		renderer: NewRenderer(colored),
		input:    bufio.NewScanner(input),
		output:   output,
	}
}

// Run plays a match from the empty board until it ends, re-prompting on every
// rejected move, and returns the final state. The held state is replaced only
// when the engine accepts the move.
func (that *Game) Run(ctx context.Context) (game.State, error) {
	state := game.NewState()

	for !state.IsOver() {
		if err := ctx.Err(); err != nil {
			return state, fmt.Errorf("game interrupted: %w", err)
		}

		fmt.Fprintln(that.output)
		that.renderer.RenderState(that.output, state)
		fmt.Fprintf(that.output, "Place %s >> ", state.CurrentPlayer())

		if !that.input.Scan() {
			if err := that.input.Err(); err != nil {
				return state, fmt.Errorf("could not read input: %w", err)
			}
			return state, ErrInputClosed
		}

		placement := parsePlacement(that.input.Text())

		next, err := state.Play(placement)
		if err != nil {
			that.logger.Debug("move rejected", "placement", placement, "error", err)
			continue
		}

		that.logger.Debug("move accepted", "placement", placement, "player", state.CurrentPlayer().String())
		state = next
	}

	fmt.Fprintln(that.output)
	that.renderer.RenderState(that.output, state)

	return state, nil
}

// parsePlacement maps anything that is not an integer onto an out-of-range
// placement instead of reporting a parse error of its own.
func parsePlacement(line string) int {
	placement, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return outOfRangePlacement
	}
	return placement
}
