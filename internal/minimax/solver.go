// Package minimax finds the optimal tic-tac-toe move by exhaustive minimax search.
//
// X maximizes and O minimizes the terminal utility. Because utility is bounded to
// {-1, 0, 1}, a value function stops scanning siblings as soon as it reaches its own
// best possible value. At the root every action is evaluated and the first action in
// tictactoe.LegalActions order holding the best value is chosen.
package minimax

import (
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// Result of a search. Action is entity.NoAction for terminal boards.
type Result struct {
	Action   entity.Action
	Value    int
	Nodes    uint64
	Duration time.Duration
}

type Solver struct {
	logger *slog.Logger

	tableSize int
	parallel  int
	observer  Observer

	table *lru.Cache[tableKey, int]
}

func New(logger *slog.Logger, opts ...Option) *Solver {
	if logger == nil {
		logger = slog.Default()
	}

	solver := &Solver{
		logger:   logger.With("component", "minimax"),
		observer: nopObserver{},
	}

	for _, opt := range opts {
		opt(solver)
	}

	if solver.tableSize > 0 {
		table, err := lru.New[tableKey, int](solver.tableSize)
		if err != nil {
			panic(fmt.Errorf("failed to create transposition table: %w", err))
		}
		solver.table = table
	}

	return solver
}

// OptimalAction returns the best action for the player to move, or entity.NoAction
// when the board is terminal.
func OptimalAction(board entity.Board) entity.Action {
	return New(nil).OptimalAction(board)
}

// Value returns the minimax value of the board under perfect play.
func Value(board entity.Board) int {
	return New(nil).Value(board)
}

func (that *Solver) OptimalAction(board entity.Board) entity.Action {
	return that.Solve(board).Action
}

func (that *Solver) Value(board entity.Board) int {
	return that.Solve(board).Value
}

func (that *Solver) Solve(board entity.Board) Result {
	start := time.Now()
	player := tictactoe.CurrentPlayer(board)

	run := that.newSearch()
	result := Result{Action: entity.NoAction, Value: tictactoe.Utility(board)}

	if !tictactoe.IsTerminal(board) {
		actions := tictactoe.LegalActions(board)
		values := that.evaluate(run, board, actions)

		result.Action, result.Value = choose(player, actions, values)
	}

	result.Nodes = run.nodes.Load()
	result.Duration = time.Since(start)

	that.observer.SearchFinished(player, result)
	that.logger.Debug("search finished",
		"board", board.String(),
		"player", player.String(),
		"action", result.Action.String(),
		"value", result.Value,
		"nodes", result.Nodes,
		"duration", result.Duration,
	)

	return result
}

// Analyze returns the value of every legal action, in tictactoe.LegalActions order.
// It is empty for terminal boards.
func (that *Solver) Analyze(board entity.Board) []entity.ActionValue {
	if tictactoe.IsTerminal(board) {
		return []entity.ActionValue{}
	}

	actions := tictactoe.LegalActions(board)
	values := that.evaluate(that.newSearch(), board, actions)

	analysis := make([]entity.ActionValue, len(actions))
	for i, action := range actions {
		analysis[i] = entity.ActionValue{Action: action, Value: values[i]}
	}

	return analysis
}

func (that *Solver) newSearch() *search {
	return &search{
		table:    that.table,
		observer: that.observer,
	}
}

// evaluate scores each root action with the opponent's value function.
func (that *Solver) evaluate(run *search, board entity.Board, actions []entity.Action) []int {
	value := run.maxValue
	if tictactoe.CurrentPlayer(board) == entity.PlayerX {
		value = run.minValue
	}

	values := make([]int, len(actions))

	if that.parallel <= 1 {
		for i, action := range actions {
			values[i] = value(successor(board, action))
		}

		return values
	}

	var group errgroup.Group
	group.SetLimit(that.parallel)

	for i, action := range actions {
		group.Go(func() error {
			values[i] = value(successor(board, action))
			return nil
		})
	}

	// branches never fail
	_ = group.Wait()

	return values
}

// choose keeps the first action with a strictly better value, so ties go to the earliest
// action in enumeration order.
func choose(player entity.Mark, actions []entity.Action, values []int) (entity.Action, int) {
	best := entity.NoAction

	if player == entity.PlayerX {
		bestValue := tictactoe.MinUtility - 1
		for i, action := range actions {
			if values[i] > bestValue {
				bestValue = values[i]
				best = action
			}
		}

		return best, bestValue
	}

	bestValue := tictactoe.MaxUtility + 1
	for i, action := range actions {
		if values[i] < bestValue {
			bestValue = values[i]
			best = action
		}
	}

	return best, bestValue
}
