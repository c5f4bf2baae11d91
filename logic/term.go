package logic

import "fmt"

// Kind classifies a symbolic variable.
type Kind int

const (
	// State is a current CRC register bit
	State Kind = iota

	// Data is an input data word bit
	Data

	// Aux is an optimizer-introduced intermediate signal
	Aux
)

// Var identifies one symbolic Boolean variable.
type Var struct {
	// Kind classifies the variable
	Kind Kind

	// Index is the bit position (State, Data) or signal number (Aux)
	Index int
}

func (v Var) String() string {
	switch v.Kind {
	case State:
		return fmt.Sprintf("crc[%d]", v.Index)
	case Data:
		return fmt.Sprintf("data[%d]", v.Index)
	default:
		return fmt.Sprintf("aux%d", v.Index)
	}
}

// Compare defines the canonical variable order used throughout the
// module: State before Data before Aux, then ascending index. Every
// ordering decision (term order, optimizer tie-breaking) goes through
// this so that identical parameters always produce identical output.
func Compare(a, b Var) int {
	if a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}
	switch {
	case a.Index < b.Index:
		return -1
	case a.Index > b.Index:
		return 1
	default:
		return 0
	}
}
