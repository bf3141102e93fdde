package repository

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// memorySolution keeps the most recently used solutions in process.
type memorySolution struct {
	cache *lru.Cache[entity.Board, entity.Solution]
}

func NewMemorySolutionRepository(size int) (SolutionRepository, error) {
	cache, err := lru.New[entity.Board, entity.Solution](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create solution cache: %w", err)
	}

	return &memorySolution{cache: cache}, nil
}

func (that *memorySolution) CreateOrUpdate(_ context.Context, solution *entity.Solution) error {
	that.cache.Add(solution.Board, copySolution(solution))

	return nil
}

func (that *memorySolution) GetByBoard(_ context.Context, board entity.Board) (*entity.Solution, error) {
	solution, ok := that.cache.Get(board)
	if !ok {
		return nil, ErrSolutionNotFound
	}

	stored := copySolution(&solution)

	return &stored, nil
}

func (that *memorySolution) DeleteByBoard(_ context.Context, board entity.Board) error {
	if !that.cache.Remove(board) {
		return ErrSolutionNotFound
	}

	return nil
}

// copySolution detaches the action pointer so callers never share it with the cache.
func copySolution(solution *entity.Solution) entity.Solution {
	clone := *solution
	if solution.Action != nil {
		action := *solution.Action
		clone.Action = &action
	}

	return clone
}
