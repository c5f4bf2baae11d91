package gen

import "github.com/crclogic/go-crchdl/logic"

// build derives the raw equation set by basis-vector decomposition: one
// bit-serial simulation per symbolic variable, accumulating for every
// output register bit the set of variables that reach it with odd parity.
func (g *Generator) build() *logic.EquationSet {
	p := g.params
	terms := make([][]logic.Var, p.Width)

	for basis := 0; basis < p.Width+p.DataWidth; basis++ {
		v := g.basisVar(basis)
		reg := g.simulate(basis)
		for bit := 0; bit < p.Width; bit++ {
			if (reg>>uint(bit))&1 == 1 {
				terms[bit] = append(terms[bit], v)
			}
		}
	}

	outputs := make([]logic.Equation, p.Width)
	for bit, vars := range terms {
		outputs[bit] = logic.NewEquation(vars...)
	}
	if p.ReflectOut {
		for i, j := 0, len(outputs)-1; i < j; i, j = i+1, j-1 {
			outputs[i], outputs[j] = outputs[j], outputs[i]
		}
	}

	return &logic.EquationSet{
		Params:  p,
		Outputs: outputs,
	}
}

// basisVar maps a basis index to its symbolic variable. Indices below
// Width are register bits; the rest are data bits in processing order.
// With ReflectIn the input word is reversed before it is fed in, so the
// data bit processed at position i carries the external label
// DataWidth-1-i.
func (g *Generator) basisVar(basis int) logic.Var {
	if basis < g.params.Width {
		return logic.Var{Kind: logic.State, Index: basis}
	}
	idx := basis - g.params.Width
	if g.params.ReflectIn {
		idx = g.params.DataWidth - 1 - idx
	}
	return logic.Var{Kind: logic.Data, Index: idx}
}

// simulate runs the textbook serial update for DataWidth steps with
// exactly one basis variable set and every other input zero, returning
// the final register value. "1" here means "this symbolic variable is
// present"; by linearity any input is the XOR of these runs.
func (g *Generator) simulate(basis int) uint64 {
	p := g.params
	mask := p.Mask()
	msb := uint64(1) << uint(p.Width-1)

	var crc uint64
	dataBit := -1
	if basis < p.Width {
		crc = uint64(1) << uint(basis)
	} else {
		dataBit = basis - p.Width
	}

	// Data is consumed from the highest processing position down, one
	// step per bit, matching crcalg's serial reference exactly.
	for i := p.DataWidth - 1; i >= 0; i-- {
		if i == dataBit {
			crc ^= msb
		}
		if crc&msb != 0 {
			crc = ((crc << 1) ^ p.Poly) & mask
		} else {
			crc = (crc << 1) & mask
		}
	}
	return crc
}
