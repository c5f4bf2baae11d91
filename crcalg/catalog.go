package crcalg

import (
	"sort"
	"strings"
)

// Well-known algorithm parameter sets, keyed by canonical upper-case name.
// Polynomials are in normal (non-reflected) form; reflected algorithms
// carry ReflectIn/ReflectOut instead of a reversed polynomial.
var catalog = map[string]Params{
	"CRC-6/ITU": {
		Width: 6, Poly: 0x03,
		ReflectIn: true, ReflectOut: true,
	},
	"CRC-8": {
		Width: 8, Poly: 0x07,
	},
	"CRC-8/MAXIM": {
		Width: 8, Poly: 0x31,
		ReflectIn: true, ReflectOut: true,
	},
	"CRC-16/ARC": {
		Width: 16, Poly: 0x8005,
		ReflectIn: true, ReflectOut: true,
	},
	"CRC-16/CCITT-FALSE": {
		Width: 16, Poly: 0x1021, Init: 0xFFFF,
	},
	"CRC-32": {
		Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, XorOut: 0xFFFFFFFF,
		ReflectIn: true, ReflectOut: true,
	},
	"CRC-32C": {
		Width: 32, Poly: 0x1EDC6F41, Init: 0xFFFFFFFF, XorOut: 0xFFFFFFFF,
		ReflectIn: true, ReflectOut: true,
	},
	"CRC-64/ECMA": {
		Width: 64, Poly: 0x42F0E1EBA9EA3693, Init: ^uint64(0), XorOut: ^uint64(0),
		ReflectIn: true, ReflectOut: true,
	},
	"CRC-64/ISO": {
		Width: 64, Poly: 0x000000000000001B, Init: ^uint64(0), XorOut: ^uint64(0),
		ReflectIn: true, ReflectOut: true,
	},
}

// Lookup returns the parameters of a well-known algorithm by name.
// Names are case-insensitive. The returned DataWidth is DefaultDataWidth;
// adjust it before deriving equations for a wider input word.
//
// Lookup fails with a *ConfigError for an unknown name.
func Lookup(name string) (Params, error) {
	p, ok := catalog[strings.ToUpper(name)]
	if !ok {
		return Params{}, &ConfigError{Field: "algorithm", Reason: "unknown algorithm " + name}
	}
	p.DataWidth = DefaultDataWidth
	return p, nil
}

// Names returns the catalog's algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
