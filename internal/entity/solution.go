package entity

// Solution is the solver's answer for one position. Action is nil when the board is terminal.
type Solution struct {
	Board   Board   `json:"board" yaml:"board"`
	Player  Mark    `json:"player" yaml:"player"`
	Action  *Action `json:"action" yaml:"action"`
	Value   int     `json:"value" yaml:"value"`
	Outcome Outcome `json:"outcome" yaml:"outcome"`
}

type ActionValue struct {
	Action Action `json:"action" yaml:"action"`
	Value  int    `json:"value" yaml:"value"`
}

// Analysis lists the minimax value of every legal action.
type Analysis struct {
	Board   Board         `json:"board" yaml:"board"`
	Player  Mark          `json:"player" yaml:"player"`
	Actions []ActionValue `json:"actions" yaml:"actions"`
}

// Position is a board after a move together with what follows from it.
type Position struct {
	Board   Board   `json:"board" yaml:"board"`
	Player  Mark    `json:"player" yaml:"player"`
	Outcome Outcome `json:"outcome" yaml:"outcome"`
}

// BestAction returns the solution's action or NoAction.
func (that *Solution) BestAction() Action {
	if that.Action == nil {
		return NoAction
	}

	return *that.Action
}
