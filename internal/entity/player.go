package entity

import (
	"fmt"
	"strings"
)

// Mark is the content of a board cell. PlayerX and PlayerO also identify the players.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "X":
		*that = PlayerX
	case "O":
		*that = PlayerO
	case "":
		*that = EmptyCell
	default:
		return fmt.Errorf("unknown mark %q", text)
	}

	return nil
}

// symbol - is the single character used for the mark in board notation.
func (that Mark) symbol() byte {
	switch that {
	case PlayerX:
		return 'X'
	case PlayerO:
		return 'O'
	default:
		return '.'
	}
}

func markFromSymbol(symbol byte) (Mark, bool) {
	switch symbol {
	case 'X', 'x':
		return PlayerX, true
	case 'O', 'o':
		return PlayerO, true
	case '.', '-', '_':
		return EmptyCell, true
	default:
		return EmptyCell, false
	}
}
