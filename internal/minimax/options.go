package minimax

import "github.com/rocketscienceinc/tictactoe-solver/internal/entity"

// Observer receives search events, e.g. to export metrics.
type Observer interface {
	SearchFinished(player entity.Mark, result Result)
	TableLookup(hit bool)
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithTranspositionTable memoizes node values in an LRU table holding up to size boards.
// A non-positive size disables the table.
func WithTranspositionTable(size int) Option {
	return func(s *Solver) {
		s.tableSize = size
	}
}

// WithParallelRoot evaluates the actions of the root board concurrently, at most limit at a time.
// The chosen action is the same as with a sequential search.
func WithParallelRoot(limit int) Option {
	return func(s *Solver) {
		s.parallel = limit
	}
}

func WithObserver(observer Observer) Option {
	return func(s *Solver) {
		s.observer = observer
	}
}

type nopObserver struct{}

func (nopObserver) SearchFinished(entity.Mark, Result) {}

func (nopObserver) TableLookup(bool) {}
