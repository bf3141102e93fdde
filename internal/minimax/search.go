package minimax

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// tableKey includes the side being evaluated because a malformed board can be reached by
// both value functions.
type tableKey struct {
	board      entity.Board
	maximizing bool
}

// search holds the state of one Solve call. Boards are never shared between branches.
type search struct {
	table    *lru.Cache[tableKey, int]
	observer Observer
	nodes    atomic.Uint64
}

// maxValue is the value of a board for the maximizing side, i.e. X to move on any reachable
// board. Successors are built with tictactoe.Apply, so the mark placed always follows
// tictactoe.CurrentPlayer, even on a malformed board where it repeats a side.
func (that *search) maxValue(board entity.Board) int {
	that.nodes.Add(1)

	if tictactoe.IsTerminal(board) {
		return tictactoe.Utility(board)
	}

	key := tableKey{board: board, maximizing: true}
	if value, ok := that.lookup(key); ok {
		return value
	}

	value := tictactoe.MinUtility - 1
	for _, action := range tictactoe.LegalActions(board) {
		value = max(value, that.minValue(successor(board, action)))
		// nothing beats a win
		if value >= tictactoe.MaxUtility {
			break
		}
	}

	that.store(key, value)

	return value
}

// minValue is the value of a board for the minimizing side, i.e. O to move on any reachable board.
func (that *search) minValue(board entity.Board) int {
	that.nodes.Add(1)

	if tictactoe.IsTerminal(board) {
		return tictactoe.Utility(board)
	}

	key := tableKey{board: board, maximizing: false}
	if value, ok := that.lookup(key); ok {
		return value
	}

	value := tictactoe.MaxUtility + 1
	for _, action := range tictactoe.LegalActions(board) {
		value = min(value, that.maxValue(successor(board, action)))
		if value <= tictactoe.MinUtility {
			break
		}
	}

	that.store(key, value)

	return value
}

func (that *search) lookup(key tableKey) (int, bool) {
	if that.table == nil {
		return 0, false
	}

	value, ok := that.table.Get(key)
	that.observer.TableLookup(ok)

	return value, ok
}

func (that *search) store(key tableKey, value int) {
	if that.table != nil {
		that.table.Add(key, value)
	}
}

// successor applies an action taken from LegalActions, so a failure means the rules are broken.
func successor(board entity.Board, action entity.Action) entity.Board {
	next, err := tictactoe.Apply(board, action)
	if err != nil {
		panic(fmt.Errorf("minimax: successor of %s: %w", board, err))
	}

	return next
}
