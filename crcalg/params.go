package crcalg

import "strconv"

// MaxWidth is the largest supported CRC register width in bits.
// The register and all constant layers are carried in uint64 values.
const MaxWidth = 64

// DefaultDataWidth is the input word width assumed by Lookup.
// It matches the common byte-wide use of serial CRC implementations.
const DefaultDataWidth = 8

// Params describes one CRC algorithm plus the width of the input word a
// single combinatorial evaluation consumes.
//
// A Params value is plain data. Construct it directly, through Lookup, or
// through ParamsFromPoly, and treat it as immutable afterwards.
type Params struct {
	// Width is the number of bits in the CRC register (1..MaxWidth)
	Width int

	// Poly holds the generator polynomial coefficients below the implicit
	// leading x^Width term, bit k representing x^k
	Poly uint64

	// Init is the register value loaded before processing
	Init uint64

	// ReflectIn reverses the bit order of each input word before processing
	ReflectIn bool

	// ReflectOut reverses the bit order of the final register value
	ReflectOut bool

	// XorOut is XORed into the register after processing, before output
	XorOut uint64

	// DataWidth is the number of input bits consumed per evaluation
	DataWidth int
}

// Mask returns the bitmask covering the low Width bits.
func (p Params) Mask() uint64 {
	if p.Width >= MaxWidth {
		return ^uint64(0)
	}
	return (uint64(1) << uint(p.Width)) - 1
}

// Validate checks the parameters for internal consistency.
// It returns a *ConfigError naming the offending field, or nil.
func (p Params) Validate() error {
	if p.Width < 1 {
		return &ConfigError{Field: "width", Reason: "must be at least 1"}
	}
	if p.Width > MaxWidth {
		return &ConfigError{Field: "width", Reason: "must not exceed " + strconv.Itoa(MaxWidth)}
	}
	if p.DataWidth < 1 {
		return &ConfigError{Field: "data width", Reason: "must be at least 1"}
	}
	mask := p.Mask()
	if p.Poly&^mask != 0 {
		return &ConfigError{Field: "polynomial", Reason: "not representable in " + strconv.Itoa(p.Width) + " bits"}
	}
	if p.Init&^mask != 0 {
		return &ConfigError{Field: "initial value", Reason: "not representable in " + strconv.Itoa(p.Width) + " bits"}
	}
	if p.XorOut&^mask != 0 {
		return &ConfigError{Field: "final XOR value", Reason: "not representable in " + strconv.Itoa(p.Width) + " bits"}
	}
	return nil
}

// ParamsFromPoly builds Params from an algebraic polynomial expression,
// register width and input word width. Reflection flags and the Init and
// XorOut constants default to zero; set them on the returned value.
//
// Example:
//
//	p, err := crcalg.ParamsFromPoly("x^16 + x^12 + x^5 + 1", 16, 8)
//	p.Init = 0xFFFF
func ParamsFromPoly(expr string, width, dataWidth int) (Params, error) {
	poly, err := ParsePoly(expr, width)
	if err != nil {
		return Params{}, err
	}
	p := Params{Width: width, Poly: poly, DataWidth: dataWidth}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
