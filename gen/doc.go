// Package gen derives the Boolean equations that compute a CRC register
// update combinatorially, in one clock cycle, over a data word of
// arbitrary width.
//
// # Overview
//
// The textbook CRC update is serial: one shift and conditional polynomial
// XOR per input bit. It is also strictly linear over GF(2) in the register
// and data bits (Init and XorOut, the only exceptions, are additive
// constants applied outside the core). Linearity is what makes a
// single-cycle version possible: the aggregate effect of DataWidth serial
// steps is a fixed linear map, and a linear map is fully determined by its
// action on unit basis vectors.
//
// The derivation therefore runs one bit-serial simulation per basis
// vector, Width+DataWidth in total, each with exactly one symbolic
// variable active. The set of basis variables that reach an output bit
// with odd parity is that bit's equation.
//
// Input reflection relabels the data variable indices; output reflection
// reverses the order of the output equations. Neither changes the
// structure of the derivation.
//
// # Basic Usage
//
//	params, err := crcalg.Lookup("CRC-32")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	params.DataWidth = 32
//
//	set, err := gen.Derive(params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(set.Outputs[0])
//
// # Optimization
//
// By default the derived set is run through a size optimizer that hoists
// variable pairs shared by two or more equations into intermediate
// signals. The optimizer never changes the computed function, only its
// textual and gate size; disable it with WithOptimizer(false) to get the
// raw flat equations:
//
//	g, err := gen.New(params, gen.WithOptimizer(false))
//	set, err := g.Derive()
//
// # Logging
//
// Integrate with any logging framework through the Logger interface:
//
//	g, err := gen.New(params, gen.WithLogger(myLogger))
//
// The crczerolog package provides a ready-made zerolog adapter.
//
// # Determinism
//
// Two derivations with identical parameters produce identical equation
// sets, byte for byte once rendered. All iteration happens in fixed order
// and optimizer ties break on the canonical variable order.
//
// # Error Handling
//
// New validates the parameters and fails with *crcalg.ConfigError on
// inconsistent input. Past validation the derivation is a pure total
// function and cannot fail.
package gen
