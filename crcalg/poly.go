package crcalg

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePoly converts an algebraic polynomial expression into the
// coefficient bitmask below the implicit leading x^width term.
//
// The expression is a "+"-separated sum of the terms "x^<k>", "x" and "1".
// Case and whitespace are ignored. The leading term x^width may be written
// or omitted; either way it does not appear in the returned mask.
//
// ParsePoly fails with a *ParseError on a malformed term, a duplicate
// exponent, or an exponent larger than width.
//
// Example:
//
//	poly, err := crcalg.ParsePoly("x^8 + x^2 + x + 1", 8) // 0x07
func ParsePoly(expr string, width int) (uint64, error) {
	if width < 1 || width > MaxWidth {
		return 0, &ConfigError{Field: "width", Reason: fmt.Sprintf("must be between 1 and %d, got %d", MaxWidth, width)}
	}

	compact := strings.ToLower(strings.Join(strings.Fields(expr), ""))
	if compact == "" {
		return 0, &ParseError{Expr: expr, Reason: "empty expression"}
	}

	seen := make(map[int]bool)
	var poly uint64
	for _, tok := range strings.Split(compact, "+") {
		var exp int
		switch {
		case tok == "1":
			exp = 0
		case tok == "x":
			exp = 1
		case strings.HasPrefix(tok, "x^"):
			n, err := strconv.Atoi(tok[2:])
			if err != nil || n < 0 {
				return 0, &ParseError{Expr: expr, Token: tok, Reason: "malformed exponent"}
			}
			exp = n
		default:
			return 0, &ParseError{Expr: expr, Token: tok, Reason: "unrecognized term"}
		}

		if exp > width {
			return 0, &ParseError{Expr: expr, Token: tok, Reason: fmt.Sprintf("exponent %d exceeds width %d", exp, width)}
		}
		if seen[exp] {
			return 0, &ParseError{Expr: expr, Token: tok, Reason: "duplicate exponent"}
		}
		seen[exp] = true

		// The leading term is implied by the width and carries no coefficient bit.
		if exp < width {
			poly |= uint64(1) << uint(exp)
		}
	}

	return poly, nil
}

// FormatPoly renders a coefficient bitmask as an algebraic polynomial
// expression, including the implicit leading x^width term.
//
// Example:
//
//	crcalg.FormatPoly(0x07, 8) // "x^8 + x^2 + x + 1"
func FormatPoly(poly uint64, width int) string {
	terms := []string{fmt.Sprintf("x^%d", width)}
	for exp := width - 1; exp >= 0; exp-- {
		if (poly>>uint(exp))&1 == 0 {
			continue
		}
		switch exp {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, fmt.Sprintf("x^%d", exp))
		}
	}
	return strings.Join(terms, " + ")
}

// Reverse returns v with its low bits bits in reverse order.
func Reverse(v uint64, bits int) uint64 {
	var out uint64
	for i := 0; i < bits; i++ {
		out = (out << 1) | (v & 1)
		v >>= 1
	}
	return out
}
