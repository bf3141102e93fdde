// Package tictactoe holds the rules of 3x3 tic-tac-toe as pure functions over entity.Board.
// Whose turn it is, who won and whether the game is over are always derived from the board.
package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	MaxUtility = 1
	MinUtility = -1
)

// Lines are scanned rows first, then columns, then diagonals. On a malformed board with several
// complete lines the first one found decides the winner.
var Lines = [8][3]entity.Action{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// InitialState returns the empty board.
func InitialState() entity.Board {
	return entity.Board{}
}

// CurrentPlayer - O moves only when X has placed more marks than O, X moves otherwise.
// On a malformed board where O is ahead it is X's turn.
func CurrentPlayer(board entity.Board) entity.Mark {
	if board.Count(entity.PlayerX) > board.Count(entity.PlayerO) {
		return entity.PlayerO
	}

	return entity.PlayerX
}

// LegalActions returns the empty cells starting at the bottom right corner and walking the
// rows backwards, i.e. reverse row-major order. The solver breaks ties between equally good
// actions in favour of the earliest one in this order.
func LegalActions(board entity.Board) []entity.Action {
	actions := make([]entity.Action, 0, entity.BoardSize*entity.BoardSize)
	for i := entity.BoardSize - 1; i >= 0; i-- {
		for j := entity.BoardSize - 1; j >= 0; j-- {
			if board[i][j] == entity.EmptyCell {
				actions = append(actions, entity.Action{Row: i, Col: j})
			}
		}
	}

	return actions
}

// Apply returns a copy of the board with the current player's mark placed at the action.
func Apply(board entity.Board, action entity.Action) (entity.Board, error) {
	// an off-board cell is an invalid move too
	if !action.InBounds() {
		return board, fmt.Errorf("%w: %w: %s", apperror.ErrInvalidMove, apperror.ErrInvalidCell, action)
	}

	if board[action.Row][action.Col] != entity.EmptyCell {
		return board, fmt.Errorf("%w: %s", apperror.ErrInvalidMove, action)
	}

	next := board
	next[action.Row][action.Col] = CurrentPlayer(board)

	return next, nil
}

// Winner returns the mark of the first complete line, or EmptyCell when there is none.
func Winner(board entity.Board) entity.Mark {
	for _, line := range Lines {
		a := board[line[0].Row][line[0].Col]
		b := board[line[1].Row][line[1].Col]
		c := board[line[2].Row][line[2].Col]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.EmptyCell
}

// IsTerminal reports whether the game is won or the board is full.
func IsTerminal(board entity.Board) bool {
	if Winner(board) != entity.EmptyCell {
		return true
	}

	return board.Count(entity.EmptyCell) == 0
}

// Utility is 1 when X has won, -1 when O has won and 0 otherwise.
// Only meaningful on terminal boards.
func Utility(board entity.Board) int {
	switch Winner(board) {
	case entity.PlayerX:
		return MaxUtility
	case entity.PlayerO:
		return MinUtility
	default:
		return 0
	}
}

func Outcome(board entity.Board) entity.Outcome {
	switch Winner(board) {
	case entity.PlayerX:
		return entity.OutcomeXWins
	case entity.PlayerO:
		return entity.OutcomeOWins
	}

	// the game will continue until all the squares are full
	if board.Count(entity.EmptyCell) > 0 {
		return entity.OutcomeOngoing
	}

	return entity.OutcomeDraw
}
