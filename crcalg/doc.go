// Package crcalg describes CRC algorithms and implements their bit-serial
// reference form.
//
// # Algorithm Model
//
// A CRC algorithm is fully described by a Params value:
//
//	Width       number of bits in the CRC register (1..64)
//	Poly        generator polynomial coefficients below the implicit
//	            leading x^Width term
//	Init        register value loaded before processing
//	ReflectIn   reverse the bit order of each input word
//	ReflectOut  reverse the bit order of the final register value
//	XorOut      value XORed into the register after processing
//	DataWidth   number of input bits consumed per evaluation
//
// This is the usual "Rocksoft" parameter model. Well-known parameter sets
// are available by name:
//
//	p, err := crcalg.Lookup("CRC-32")
//
// Custom polynomials can be given in algebraic form:
//
//	p, err := crcalg.ParamsFromPoly("x^8 + x^2 + x + 1", 8, 8)
//
// # Polynomial Expressions
//
// A polynomial expression is a sum of terms "x^<k>", "x" and "1" separated
// by "+". Case and whitespace are ignored. Each exponent may appear once
// and must not exceed the register width; the leading term x^width is
// implied and may be written or omitted.
//
// # Reference Implementation
//
// Update runs the textbook MSB-first serial register update over one input
// word, without reflection or constant layers. Checksum runs the complete
// algorithm over a byte stream, including the Init seed, per-byte input
// reflection, output reflection and the final XOR. Both exist so that
// derived combinatorial equations can be checked bit for bit against the
// serial algorithm.
//
// # Error Handling
//
// Two error types are returned:
//   - ParseError: malformed polynomial expression text
//   - ConfigError: internally inconsistent parameters
//
// Both are validation failures surfaced once, synchronously. Nothing in
// this package retries or degrades.
package crcalg
