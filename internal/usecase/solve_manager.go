package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type solutionRepo interface {
	CreateOrUpdate(ctx context.Context, solution *entity.Solution) error
	GetByBoard(ctx context.Context, board entity.Board) (*entity.Solution, error)
}

type solver interface {
	Solve(board entity.Board) minimax.Result
	Analyze(board entity.Board) []entity.ActionValue
}

type cacheObserver interface {
	CacheLookup(hit bool)
}

// SolveManager answers positions through the solver, remembering solutions in solutionRepo.
// A nil solutionRepo disables caching.
type SolveManager struct {
	logger       *slog.Logger
	solutionRepo solutionRepo
	solver       solver
	observer     cacheObserver
}

func NewSolveManager(logger *slog.Logger, solutionRepo solutionRepo, solver solver, observer cacheObserver) *SolveManager {
	return &SolveManager{
		logger: logger.With("component", "solve_manager"),

		solutionRepo: solutionRepo,
		solver:       solver,
		observer:     observer,
	}
}

func (that *SolveManager) Solve(ctx context.Context, board entity.Board) (*entity.Solution, error) {
	log := that.logger.With("method", "Solve", "board", board.String())

	cached, err := that.getSolution(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("failed to get cached solution: %w", err)
	}

	if cached != nil {
		log.Debug("solution served from cache")

		return cached, nil
	}

	result := that.solver.Solve(board)

	solution := &entity.Solution{
		Board:   board,
		Player:  tictactoe.CurrentPlayer(board),
		Value:   result.Value,
		Outcome: tictactoe.Outcome(board),
	}
	if !result.Action.IsNone() {
		action := result.Action
		solution.Action = &action
	}

	if that.solutionRepo != nil {
		if err = that.solutionRepo.CreateOrUpdate(ctx, solution); err != nil {
			log.Warn("failed to cache solution", "error", err)
		}
	}

	log.Info("position solved", "action", result.Action.String(), "value", result.Value, "nodes", result.Nodes)

	return solution, nil
}

func (that *SolveManager) Analyze(_ context.Context, board entity.Board) (*entity.Analysis, error) {
	return &entity.Analysis{
		Board:   board,
		Player:  tictactoe.CurrentPlayer(board),
		Actions: that.solver.Analyze(board),
	}, nil
}

// Move places the mark of the player to move and reports the resulting position.
func (that *SolveManager) Move(_ context.Context, board entity.Board, action entity.Action) (*entity.Position, error) {
	if tictactoe.IsTerminal(board) {
		return nil, apperror.ErrGameFinished
	}

	next, err := tictactoe.Apply(board, action)
	if err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	return &entity.Position{
		Board:   next,
		Player:  tictactoe.CurrentPlayer(next),
		Outcome: tictactoe.Outcome(next),
	}, nil
}

// getSolution returns nil without error on a cache miss.
func (that *SolveManager) getSolution(ctx context.Context, board entity.Board) (*entity.Solution, error) {
	if that.solutionRepo == nil {
		return nil, nil //nolint:nilnil // caching disabled
	}

	solution, err := that.solutionRepo.GetByBoard(ctx, board)
	if errors.Is(err, repository.ErrSolutionNotFound) {
		that.observer.CacheLookup(false)

		return nil, nil //nolint:nilnil // cache miss
	}

	if err != nil {
		return nil, err
	}

	that.observer.CacheLookup(true)

	return solution, nil
}
