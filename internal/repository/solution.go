package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

var ErrSolutionNotFound = errors.New("solution not found")

const solutionKeyPrefix = "solution:"

type SolutionRepository interface {
	CreateOrUpdate(ctx context.Context, solution *entity.Solution) error
	GetByBoard(ctx context.Context, board entity.Board) (*entity.Solution, error)
	DeleteByBoard(ctx context.Context, board entity.Board) error
}

type dbSolution struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSolutionRepository stores solutions as JSON under "solution:<notation>". A zero ttl keeps
// entries until they are deleted.
func NewSolutionRepository(client *redis.Client, ttl time.Duration) SolutionRepository {
	return &dbSolution{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbSolution) CreateOrUpdate(ctx context.Context, solution *entity.Solution) error {
	solutionJSON, err := json.Marshal(solution)
	if err != nil {
		return fmt.Errorf("could not marshal solution: %w", err)
	}

	err = that.client.Set(ctx, solutionKey(solution.Board), solutionJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set solution: %w", err)
	}

	return nil
}

func (that *dbSolution) GetByBoard(ctx context.Context, board entity.Board) (*entity.Solution, error) {
	response, err := that.client.Get(ctx, solutionKey(board)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrSolutionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}

	var solution entity.Solution
	if err = json.Unmarshal([]byte(response), &solution); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solution: %w", err)
	}

	return &solution, nil
}

func (that *dbSolution) DeleteByBoard(ctx context.Context, board entity.Board) error {
	deleted, err := that.client.Del(ctx, solutionKey(board)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}

	if deleted == 0 {
		return ErrSolutionNotFound
	}

	return nil
}

func solutionKey(board entity.Board) string {
	return solutionKeyPrefix + board.String()
}
