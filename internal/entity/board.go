package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const (
	BoardSize = 3

	rowSeparator = "/"
)

const (
	OutcomeOngoing Outcome = "ongoing"
	OutcomeXWins   Outcome = "x_wins"
	OutcomeOWins   Outcome = "o_wins"
	OutcomeDraw    Outcome = "draw"
)

// NoAction is returned by the solver when the board is already terminal.
var NoAction = Action{Row: -1, Col: -1}

// Board is a 3x3 grid addressed as board[row][col]. Being an array it is copied on assignment.
type Board [BoardSize][BoardSize]Mark

// Action identifies a cell by row and column.
type Action struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Outcome of a board, derived and never stored alongside it.
type Outcome string

// ParseBoard reads the notation produced by Board.String, e.g. ".X./OXO/XOO".
func ParseBoard(notation string) (Board, error) {
	var board Board

	rows := strings.Split(strings.TrimSpace(notation), rowSeparator)
	if len(rows) != BoardSize {
		return board, fmt.Errorf("%w: expected %d rows, got %d", apperror.ErrInvalidNotation, BoardSize, len(rows))
	}

	for i, row := range rows {
		if len(row) != BoardSize {
			return board, fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidNotation, i, len(row))
		}

		for j := range BoardSize {
			mark, ok := markFromSymbol(row[j])
			if !ok {
				return board, fmt.Errorf("%w: unknown symbol %q at (%d, %d)", apperror.ErrInvalidNotation, row[j], i, j)
			}
			board[i][j] = mark
		}
	}

	return board, nil
}

// MustParseBoard - is ParseBoard for literals known to be valid.
func MustParseBoard(notation string) Board {
	board, err := ParseBoard(notation)
	if err != nil {
		panic(err)
	}

	return board
}

func (that Board) String() string {
	builder := strings.Builder{}

	for i, row := range that {
		if i > 0 {
			builder.WriteString(rowSeparator)
		}
		for _, cell := range row {
			builder.WriteByte(cell.symbol())
		}
	}

	return builder.String()
}

// Grid renders the board on three lines, one row per line.
func (that Board) Grid() string {
	return strings.ReplaceAll(that.String(), rowSeparator, "\n")
}

func (that Board) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Board) UnmarshalText(text []byte) error {
	board, err := ParseBoard(string(text))
	if err != nil {
		return err
	}

	*that = board

	return nil
}

// Count returns the number of cells holding the given mark.
func (that Board) Count(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}

	return count
}

func (that Action) IsNone() bool {
	return that == NoAction
}

func (that Action) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Action) String() string {
	if that.IsNone() {
		return "none"
	}

	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

func (that Outcome) IsFinished() bool {
	return that != OutcomeOngoing
}
