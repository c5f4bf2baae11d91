// Package logic holds the symbolic Boolean equations that compute a CRC
// combinatorially.
//
// # Data Model
//
// Everything is linear over GF(2): XOR is addition, so an equation is
// fully described by the set of variables that influence it with odd
// parity. Equation therefore stores a canonically sorted, duplicate-free
// variable slice; building one through NewEquation cancels even
// repetitions, which is exactly XOR's self-inverse law.
//
// Variables come in three kinds:
//
//	State  a current CRC register bit
//	Data   an input data word bit
//	Aux    an optimizer-introduced intermediate signal
//
// An EquationSet is the derived next-register function: one output
// equation per register bit, plus the Aux signal definitions in
// dependency order (Aux i references only State, Data and Aux j<i
// variables, so index order is a topological order).
//
// # Immutability
//
// EquationSet values and everything they contain are built once and never
// mutated afterwards. Consumers may hold them indefinitely and share them
// across goroutines.
//
// # Evaluation
//
// Eval computes the linear map for concrete register and data words; it
// exists so that tests and callers can check the equations against the
// bit-serial reference. Apply additionally seeds the Init constant and
// applies XorOut, performing one full evaluation. The constants are never
// folded into the equations themselves: folding a non-zero Init into
// per-use equations would be wrong the moment the function is evaluated
// more than once per message.
package logic
