package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachableBoards walks every position reachable by legal play from the empty board.
func reachableBoards(t *testing.T) []entity.Board {
	t.Helper()

	seen := map[entity.Board]struct{}{}
	var walk func(board entity.Board)
	walk = func(board entity.Board) {
		if _, ok := seen[board]; ok {
			return
		}
		seen[board] = struct{}{}

		if IsTerminal(board) {
			return
		}

		for _, action := range LegalActions(board) {
			next, err := Apply(board, action)
			require.NoError(t, err)
			walk(next)
		}
	}
	walk(InitialState())

	boards := make([]entity.Board, 0, len(seen))
	for board := range seen {
		boards = append(boards, board)
	}

	return boards
}

func TestInitialState(t *testing.T) {
	// When: creating the initial state
	board := InitialState()

	// Then: every cell should be empty
	assert.Equal(t, ".../.../...", board.String())
	assert.Equal(t, entity.OutcomeOngoing, Outcome(board))
}

func TestCurrentPlayer(t *testing.T) {
	testCases := []struct {
		name     string
		board    string
		expected entity.Mark
	}{
		{name: "Empty board", board: ".../.../...", expected: entity.PlayerX},
		{name: "After X", board: "X../.../...", expected: entity.PlayerO},
		{name: "After X and O", board: "XO./.../...", expected: entity.PlayerX},
		{name: "Full board with five X", board: "XOX/OXX/OXO", expected: entity.PlayerO},
		{name: "O ahead by one", board: ".X./OXO/XOO", expected: entity.PlayerX},
		{name: "Only O marks", board: "O../.../...", expected: entity.PlayerX},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CurrentPlayer(entity.MustParseBoard(tc.board)))
		})
	}

	t.Run("Alternates after every move", func(t *testing.T) {
		for _, board := range reachableBoards(t) {
			player := CurrentPlayer(board)
			for _, action := range LegalActions(board) {
				next, err := Apply(board, action)
				require.NoError(t, err)
				assert.Equal(t, player.Opponent(), CurrentPlayer(next))
			}
		}
	})
}

func TestLegalActions(t *testing.T) {
	t.Run("Empty board in reverse row-major order", func(t *testing.T) {
		// When: listing actions on the empty board
		actions := LegalActions(InitialState())

		// Then: all nine cells should be listed from the bottom right corner backwards
		expected := []entity.Action{
			{Row: 2, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 0},
			{Row: 1, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 0},
			{Row: 0, Col: 2}, {Row: 0, Col: 1}, {Row: 0, Col: 0},
		}
		assert.Equal(t, expected, actions)
	})

	t.Run("Full board has no actions", func(t *testing.T) {
		assert.Empty(t, LegalActions(entity.MustParseBoard("XOX/XOX/OXO")))
	})

	t.Run("Only empty cells", func(t *testing.T) {
		// Given: a board with three marks
		board := entity.MustParseBoard("O../.X./..X")

		// When: listing actions
		actions := LegalActions(board)

		// Then: the six empty cells should be returned
		expected := []entity.Action{
			{Row: 2, Col: 1}, {Row: 2, Col: 0}, {Row: 1, Col: 2},
			{Row: 1, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: 1},
		}
		assert.Equal(t, expected, actions)
	})

	t.Run("No duplicates", func(t *testing.T) {
		for _, board := range reachableBoards(t) {
			actions := LegalActions(board)
			seen := map[entity.Action]bool{}
			for _, action := range actions {
				assert.False(t, seen[action])
				seen[action] = true
			}
			assert.Len(t, actions, board.Count(entity.EmptyCell))
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("X moves first", func(t *testing.T) {
		// When: applying (0, 0) to the empty board
		board, err := Apply(InitialState(), entity.Action{Row: 0, Col: 0})

		// Then: X should occupy the corner
		require.NoError(t, err)
		assert.Equal(t, "X../.../...", board.String())
	})

	t.Run("O moves second", func(t *testing.T) {
		// When: applying (1, 1) after X's first move
		board, err := Apply(entity.MustParseBoard("X../.../..."), entity.Action{Row: 1, Col: 1})

		// Then: O should occupy the centre
		require.NoError(t, err)
		assert.Equal(t, "X../.O./...", board.String())
	})

	t.Run("Input board is not modified", func(t *testing.T) {
		// Given: a board in the middle of a game
		board := entity.MustParseBoard("X../.O./..X")

		// When: applying a move
		next, err := Apply(board, entity.Action{Row: 1, Col: 0})

		// Then: only the result should change
		require.NoError(t, err)
		assert.Equal(t, "X../OO./..X", next.String())
		assert.Equal(t, "X../.O./..X", board.String())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where X holds (0, 0)
		board := entity.MustParseBoard("X../.../...")

		// When: O tries to play the same cell
		next, err := Apply(board, entity.Action{Row: 0, Col: 0})

		// Then: ErrInvalidMove should be returned and the board left as it was
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, board, next)
	})

	t.Run("Error on cell out of range", func(t *testing.T) {
		for _, action := range []entity.Action{{Row: 3, Col: 0}, {Row: 0, Col: -1}, entity.NoAction} {
			// When: applying an action off the board
			next, err := Apply(InitialState(), action)

			// Then: it is an invalid move, detailed as an invalid cell
			assert.ErrorIs(t, err, apperror.ErrInvalidMove)
			assert.ErrorIs(t, err, apperror.ErrInvalidCell)
			assert.Equal(t, InitialState(), next)
		}
	})

	t.Run("X completes its line when O is ahead", func(t *testing.T) {
		// Given: a malformed board where O holds one mark more than X
		board := entity.MustParseBoard(".X./OXO/XOO")

		// When: playing (0, 2)
		next, err := Apply(board, entity.Action{Row: 0, Col: 2})

		// Then: X is placed and wins on the anti diagonal
		require.NoError(t, err)
		assert.Equal(t, ".XX/OXO/XOO", next.String())
		assert.Equal(t, entity.PlayerX, Winner(next))
	})

	t.Run("X moves again once it has caught up", func(t *testing.T) {
		// Given: X took (0, 0) on the board above, leaving four marks each
		board := entity.MustParseBoard("XX./OXO/XOO")

		// When: playing the last free cell
		next, err := Apply(board, entity.Action{Row: 0, Col: 2})

		// Then: the mark is X again
		require.NoError(t, err)
		assert.Equal(t, "XXX/OXO/XOO", next.String())
	})

	t.Run("Differs from the input only at the action", func(t *testing.T) {
		for _, board := range reachableBoards(t) {
			for _, action := range LegalActions(board) {
				next, err := Apply(board, action)
				require.NoError(t, err)

				for i := range entity.BoardSize {
					for j := range entity.BoardSize {
						if i == action.Row && j == action.Col {
							assert.Equal(t, CurrentPlayer(board), next[i][j])
							continue
						}
						assert.Equal(t, board[i][j], next[i][j])
					}
				}
			}
		}
	})

	t.Run("Every occupied cell is rejected", func(t *testing.T) {
		for _, board := range reachableBoards(t) {
			for i := range entity.BoardSize {
				for j := range entity.BoardSize {
					if board[i][j] == entity.EmptyCell {
						continue
					}
					_, err := Apply(board, entity.Action{Row: i, Col: j})
					assert.ErrorIs(t, err, apperror.ErrInvalidMove)
				}
			}
		}
	})
}

func TestWinner(t *testing.T) {
	testCases := []struct {
		name     string
		board    string
		expected entity.Mark
	}{
		{name: "Row 0 X", board: "XXX/OOX/XOO", expected: entity.PlayerX},
		{name: "No line on full board", board: "OXO/OXO/XOX", expected: entity.EmptyCell},
		{name: "Row 1 O", board: "OXX/OOO/XOX", expected: entity.PlayerO},
		{name: "Column 0 O", board: "OXX/OXO/OOX", expected: entity.PlayerO},
		{name: "Column 0 X on open board", board: "XO./XO./X..", expected: entity.PlayerX},
		{name: "No line on open board", board: "XO./XO./...", expected: entity.EmptyCell},
		{name: "Empty board", board: ".../.../...", expected: entity.EmptyCell},
		{name: "Main diagonal O", board: "OXX/XOO/XOO", expected: entity.PlayerO},
		{name: "Anti diagonal X", board: "OXX/XXO/XOO", expected: entity.PlayerX},
		{name: "Anti diagonal X with a free corner", board: ".XX/OXO/XOO", expected: entity.PlayerX},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Winner(entity.MustParseBoard(tc.board)))
		})
	}

	t.Run("First complete line in scan order wins", func(t *testing.T) {
		// Given: a malformed board with an O row above an X row
		board := entity.MustParseBoard("OOO/XXX/...")

		// Then: the row found first decides
		assert.Equal(t, entity.PlayerO, Winner(board))

		// Given: a malformed board with X column 0 and O column 1
		board = entity.MustParseBoard("XO./XO./XO.")

		// Then: column 0 is scanned first
		assert.Equal(t, entity.PlayerX, Winner(board))
	})
}

func TestIsTerminal(t *testing.T) {
	t.Run("Won on full board", func(t *testing.T) {
		assert.True(t, IsTerminal(entity.MustParseBoard("OXX/XOO/XOO")))
	})

	t.Run("Open board without a line", func(t *testing.T) {
		assert.False(t, IsTerminal(entity.MustParseBoard(".XX/XOO/XOO")))
	})

	t.Run("Won with an empty cell left", func(t *testing.T) {
		assert.True(t, IsTerminal(entity.MustParseBoard(".XX/OXO/XOO")))
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a full board with no line
		board := entity.MustParseBoard("OXX/XXO/OOX")

		// Then: it is terminal, with no winner and zero utility
		assert.True(t, IsTerminal(board))
		assert.Equal(t, entity.EmptyCell, Winner(board))
		assert.Equal(t, 0, Utility(board))
		assert.Equal(t, entity.OutcomeDraw, Outcome(board))
	})

	t.Run("Terminal exactly when won or out of actions", func(t *testing.T) {
		for _, board := range reachableBoards(t) {
			expected := Winner(board) != entity.EmptyCell || len(LegalActions(board)) == 0
			assert.Equal(t, expected, IsTerminal(board), board.String())
		}
	})
}

func TestUtility(t *testing.T) {
	t.Run("X wins", func(t *testing.T) {
		board := entity.MustParseBoard("XXX/OOX/XOO")
		assert.Equal(t, 1, Utility(board))
		assert.Equal(t, entity.OutcomeXWins, Outcome(board))
	})

	t.Run("O wins", func(t *testing.T) {
		board := entity.MustParseBoard("OXX/XOO/XOO")
		assert.Equal(t, -1, Utility(board))
		assert.Equal(t, entity.OutcomeOWins, Outcome(board))
	})

	t.Run("Draw", func(t *testing.T) {
		assert.Equal(t, 0, Utility(entity.MustParseBoard("OXX/XXO/OOX")))
	})

	t.Run("Ongoing board is zero", func(t *testing.T) {
		board := entity.MustParseBoard("X../.O./...")
		assert.Equal(t, 0, Utility(board))
		assert.Equal(t, entity.OutcomeOngoing, Outcome(board))
	})
}

func TestReachablePositions(t *testing.T) {
	// Then: legal play reaches the well known 5478 positions
	assert.Len(t, reachableBoards(t), 5478)
}
