package crcalg

// Update runs the textbook bit-serial register update over one input word
// of p.DataWidth bits, consuming data from its most significant bit down.
// Reflection flags and the Init/XorOut constants are deliberately ignored:
// this is the pure linear core that the combinatorial equations replicate.
//
// Only the low p.Width bits of crc and the low p.DataWidth bits of data
// are used; p.DataWidth must not exceed 64 here (the derivation itself has
// no such limit, one basis bit is in flight at a time).
func (p Params) Update(crc, data uint64) uint64 {
	return p.update(crc, data, p.DataWidth)
}

// Checksum runs the complete serial algorithm over a byte stream: seed
// with Init, feed every byte (reflected when ReflectIn is set), reflect
// the final register when ReflectOut is set, and apply XorOut.
//
// The byte-stream semantics are independent of p.DataWidth; each byte is
// processed as eight serial steps.
func (p Params) Checksum(data []byte) uint64 {
	crc := p.Init
	for _, b := range data {
		d := uint64(b)
		if p.ReflectIn {
			d = Reverse(d, 8)
		}
		crc = p.update(crc, d, 8)
	}
	if p.ReflectOut {
		crc = Reverse(crc, p.Width)
	}
	return (crc ^ p.XorOut) & p.Mask()
}

// update shifts left once per data bit, most significant first, folding
// the polynomial in whenever the register's top bit falls out.
func (p Params) update(crc, data uint64, nrBits int) uint64 {
	mask := p.Mask()
	msb := uint64(1) << uint(p.Width-1)
	crc &= mask
	for i := nrBits - 1; i >= 0; i-- {
		crc ^= ((data >> uint(i)) & 1) << uint(p.Width-1)
		if crc&msb != 0 {
			crc = ((crc << 1) ^ p.Poly) & mask
		} else {
			crc = (crc << 1) & mask
		}
	}
	return crc
}
