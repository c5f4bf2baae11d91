package emit

import (
	"fmt"
	"strings"

	"github.com/crclogic/go-crchdl/crcalg"
	"github.com/crclogic/go-crchdl/logic"
)

// cType picks the smallest stdint type holding nrBits.
func cType(nrBits int, what string) (string, error) {
	switch {
	case nrBits <= 8:
		return "uint8_t", nil
	case nrBits <= 16:
		return "uint16_t", nil
	case nrBits <= 32:
		return "uint32_t", nil
	case nrBits <= 64:
		return "uint64_t", nil
	default:
		return "", &crcalg.ConfigError{Field: what, Reason: "C renderer supports at most 64 bits"}
	}
}

// C renders the equation set as a C header: an include-guarded function
// over stdint types with a bit-extraction macro. Widths beyond 64 bits
// fail with a *crcalg.ConfigError.
func C(set *logic.EquationSet, opts ...Option) (string, error) {
	cfg := buildConfig(opts)
	p := set.Params

	crcType, err := cType(p.Width, "width")
	if err != nil {
		return "", err
	}
	dataType, err := cType(p.DataWidth, "data width")
	if err != nil {
		return "", err
	}

	render := func(v logic.Var) string {
		switch v.Kind {
		case logic.State:
			return fmt.Sprintf("b(%s, %d)", cfg.CrcInVar, v.Index)
		case logic.Data:
			return fmt.Sprintf("b(%s, %d)", cfg.DataVar, v.Index)
		default:
			return auxName(v.Index)
		}
	}
	expr := func(e logic.Equation) string {
		return exprString(e, " ^ ", "0u", render)
	}

	qualifier := ""
	if cfg.Static {
		qualifier += "static "
	}
	if cfg.Inline {
		qualifier += "inline "
	}
	guard := strings.ToUpper(cfg.Name) + "_H_"

	var lines []string
	lines = append(lines,
		"#ifndef "+guard,
		"#define "+guard,
		"",
		"#include <stdint.h>",
		"",
	)
	lines = append(lines, commented("//", describe(p, cfg))...)
	lines = append(lines,
		"",
		"#ifdef b",
		"# undef b",
		"#endif",
		"#define b(x, i) (((x) >> (i)) & 1u)",
		"",
		fmt.Sprintf("%s%s %s(%s %s, %s %s)", qualifier, crcType, cfg.Name, crcType, cfg.CrcInVar, dataType, cfg.DataVar),
		"{",
	)
	for _, a := range set.Aux {
		lines = append(lines, fmt.Sprintf("    %s %s = (%s)(%s);", crcType, auxName(a.Index), crcType, expr(a.Eq)))
	}
	lines = append(lines, fmt.Sprintf("    %s ret;", crcType))
	for i, e := range set.Outputs {
		operator := "|="
		if i == 0 {
			operator = " ="
		}
		lines = append(lines, fmt.Sprintf("    ret %s (%s)(%s) << %d;", operator, crcType, expr(e), i))
	}
	lines = append(lines,
		"    return ret;",
		"}",
		"#undef b",
		"",
		"#endif /* "+guard+" */",
	)

	return strings.Join(lines, "\n") + "\n", nil
}
