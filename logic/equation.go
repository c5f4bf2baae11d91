package logic

import (
	"sort"
	"strings"

	"github.com/crclogic/go-crchdl/crcalg"
)

// Equation is an XOR-sum over a duplicate-free, canonically sorted set of
// variables. An empty term list is the constant zero.
type Equation struct {
	// Terms is sorted by Compare and free of duplicates
	Terms []Var
}

// NewEquation builds an Equation from the given variables, sorting them
// canonically and cancelling pairs: an even number of occurrences of the
// same variable XORs to zero, an odd number collapses to one.
func NewEquation(vars ...Var) Equation {
	terms := append([]Var(nil), vars...)
	sort.Slice(terms, func(i, j int) bool { return Compare(terms[i], terms[j]) < 0 })

	out := terms[:0]
	for i := 0; i < len(terms); {
		j := i
		for j < len(terms) && terms[j] == terms[i] {
			j++
		}
		if (j-i)%2 == 1 {
			out = append(out, terms[i])
		}
		i = j
	}
	return Equation{Terms: out}
}

// Contains reports whether the equation references v.
func (e Equation) Contains(v Var) bool {
	i := sort.Search(len(e.Terms), func(i int) bool { return Compare(e.Terms[i], v) >= 0 })
	return i < len(e.Terms) && e.Terms[i] == v
}

func (e Equation) String() string {
	if len(e.Terms) == 0 {
		return "0"
	}
	parts := make([]string, len(e.Terms))
	for i, v := range e.Terms {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ^ ")
}

// AuxSignal is one optimizer-introduced intermediate signal. Signal i may
// reference State and Data variables and Aux signals with index below i
// only, keeping the signal list dependency ordered by construction.
type AuxSignal struct {
	// Index is the signal number, equal to the position in EquationSet.Aux
	Index int

	// Eq defines the signal as an XOR-sum
	Eq Equation
}

// EquationSet is the combinatorial next-register function for one CRC
// algorithm: exactly Params.Width output equations (slice index = output
// register bit) plus the intermediate signals in dependency order.
//
// The Init and XorOut constants in Params are not part of the equations;
// they are the additive layers the caller applies before and after one
// full evaluation.
type EquationSet struct {
	// Params is the algorithm the set was derived from
	Params crcalg.Params

	// Outputs holds one equation per register bit, index 0 first
	Outputs []Equation

	// Aux lists the intermediate signals in dependency order, possibly empty
	Aux []AuxSignal
}

// Eval evaluates the linear map for concrete register and data words,
// resolving Aux signals in dependency order first. Only the low
// Params.Width bits of crc and Params.DataWidth bits of data are used;
// data widths beyond 64 bits cannot be evaluated through this helper.
func (s *EquationSet) Eval(crc, data uint64) uint64 {
	aux := make([]uint64, len(s.Aux))
	bit := func(v Var) uint64 {
		switch v.Kind {
		case State:
			return (crc >> uint(v.Index)) & 1
		case Data:
			return (data >> uint(v.Index)) & 1
		default:
			return aux[v.Index]
		}
	}
	eval := func(e Equation) uint64 {
		var x uint64
		for _, v := range e.Terms {
			x ^= bit(v)
		}
		return x
	}

	for i, a := range s.Aux {
		aux[i] = eval(a.Eq)
	}
	var out uint64
	for i, e := range s.Outputs {
		out |= eval(e) << uint(i)
	}
	return out
}

// Apply performs one full evaluation: it seeds the register with the Init
// constant, evaluates the linear map over data, and applies XorOut. This
// is a single-shot convenience; chaining evaluations must seed Init only
// once and reapply the constant layers itself.
func (s *EquationSet) Apply(data uint64) uint64 {
	return (s.Eval(s.Params.Init, data) ^ s.Params.XorOut) & s.Params.Mask()
}

// TermCount returns the total number of variable references across the
// output equations and intermediate signals, the size measure the
// optimizer reduces.
func (s *EquationSet) TermCount() int {
	n := 0
	for _, e := range s.Outputs {
		n += len(e.Terms)
	}
	for _, a := range s.Aux {
		n += len(a.Eq.Terms)
	}
	return n
}
