package game

import (
	"fmt"

	"tictactoe/internal/apperror"
)

// Player identifies whose mark goes on the board next. X always moves first.
type Player uint8

const (
	PlayerX Player = iota
	PlayerO
)

func (that Player) Other() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	if that == PlayerO {
		return "O"
	}
	return "X"
}

// Outcome is the result derived from a board: one of the players won, the
// board filled without a winner, or the game continues.
type Outcome uint8

const (
	OutcomeOngoing Outcome = iota
	OutcomeXWon
	OutcomeOWon
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeXWon:
		return "X wins!!"
	case OutcomeOWon:
		return "O wins!!"
	case OutcomeDraw:
		return "Draw!"
	default:
		return "Still playing."
	}
}

// State couples a board with the player to move and the outcome derived from
// that board. Values are immutable: Play returns a new State and leaves the
// receiver untouched, so a caller keeps its old value on rejection.
type State struct {
	board   Board
	current Player
	outcome Outcome
}

// NewState returns the empty board with X to move.
func NewState() State {
	return State{board: Board{}, current: PlayerX, outcome: OutcomeOngoing}
}

func (that State) Board() Board {
	return that.board
}

func (that State) CurrentPlayer() Player {
	return that.current
}

func (that State) Outcome() Outcome {
	return that.outcome
}

func (that State) IsOver() bool {
	return that.outcome != OutcomeOngoing
}

// Play applies a 1-based placement for the current player and returns the
// next state. On rejection the returned state is the receiver unchanged.
func (that State) Play(placement int) (State, error) {
	if that.IsOver() {
		return that, apperror.ErrGameFinished
	}

	if placement < 1 || placement > 9 {
		return that, fmt.Errorf("%w: %d", apperror.ErrOutOfRange, placement)
	}

	cell := placement - 1

	var (
		board Board
		err   error
	)
	if that.current == PlayerX {
		board, err = that.board.PlaceX(cell)
	} else {
		board, err = that.board.PlaceO(cell)
	}
	if err != nil {
		return that, err
	}

	return State{
		board:   board,
		current: that.current.Other(),
		outcome: outcomeOf(board),
	}, nil
}

// LegalMoves lists the still-open 1-based placements in ascending order.
func (that State) LegalMoves() []int {
	moves := make([]int, 0, 9)
	for cell := 0; cell < 9; cell++ {
		if !that.board.IsOccupied(cell) {
			moves = append(moves, cell+1)
		}
	}
	return moves
}

// outcomeOf recomputes the result from the board alone: X's lines first,
// then O's, then a full board without a winner is a draw.
func outcomeOf(board Board) Outcome {
	if hasWon(board.x) {
		return OutcomeXWon
	}
	if hasWon(board.o) {
		return OutcomeOWon
	}
	if board.IsFull() {
		return OutcomeDraw
	}
	return OutcomeOngoing
}
