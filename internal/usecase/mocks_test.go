package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
)

type mockSolutionRepo struct {
	mock.Mock
}

func (that *mockSolutionRepo) CreateOrUpdate(ctx context.Context, solution *entity.Solution) error {
	args := that.Called(ctx, solution)

	return args.Error(0)
}

func (that *mockSolutionRepo) GetByBoard(ctx context.Context, board entity.Board) (*entity.Solution, error) {
	args := that.Called(ctx, board)

	solution, _ := args.Get(0).(*entity.Solution)

	return solution, args.Error(1)
}

type mockSolver struct {
	mock.Mock
}

func (that *mockSolver) Solve(board entity.Board) minimax.Result {
	args := that.Called(board)

	return args.Get(0).(minimax.Result) //nolint: forcetypeassert // set by the test
}

func (that *mockSolver) Analyze(board entity.Board) []entity.ActionValue {
	args := that.Called(board)

	return args.Get(0).([]entity.ActionValue) //nolint: forcetypeassert // set by the test
}

type mockCacheObserver struct {
	mock.Mock
}

func (that *mockCacheObserver) CacheLookup(hit bool) {
	that.Called(hit)
}
