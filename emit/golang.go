package emit

import (
	"fmt"
	"strings"

	"github.com/crclogic/go-crchdl/crcalg"
	"github.com/crclogic/go-crchdl/logic"
)

// Go renders the equation set as a standalone Go source file holding one
// function over uint64 words. Data widths beyond 64 bits fail with a
// *crcalg.ConfigError.
func Go(set *logic.EquationSet, opts ...Option) (string, error) {
	cfg := buildConfig(opts)
	p := set.Params

	if p.DataWidth > 64 {
		return "", &crcalg.ConfigError{Field: "data width", Reason: "Go renderer supports at most 64 bits"}
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
		return exprString(e, " ^ ", "0", render)
	}

	var lines []string
	lines = append(lines, "// Code generated by go-crchdl. DO NOT EDIT.", "")
	lines = append(lines, commented("//", describe(p, cfg))...)
	lines = append(lines,
		"",
		"package "+cfg.Package,
		"",
		fmt.Sprintf("func %s(%s, %s uint64) uint64 {", cfg.Name, cfg.CrcInVar, cfg.DataVar),
	)
	if set.TermCount() > 0 {
		lines = append(lines, "\tb := func(x uint64, i uint) uint64 { return (x >> i) & 1 }")
	}
	for _, a := range set.Aux {
		lines = append(lines, fmt.Sprintf("\t%s := %s", auxName(a.Index), expr(a.Eq)))
	}
	lines = append(lines, "\tvar ret uint64")
	for i, e := range set.Outputs {
		lines = append(lines, fmt.Sprintf("\tret |= (%s) << %d", expr(e), i))
	}
	lines = append(lines,
		"\treturn ret",
		"}",
	)

	return strings.Join(lines, "\n") + "\n", nil
}
