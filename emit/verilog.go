package emit

import (
	"fmt"
	"strings"

	"github.com/crclogic/go-crchdl/logic"
)

// Verilog renders the equation set as a Verilog function, or as a module
// when AsModule(true) is given.
//
// Example:
//
//	text, err := emit.Verilog(set, emit.WithName("crc32"), emit.AsModule(true))
func Verilog(set *logic.EquationSet, opts ...Option) (string, error) {
	cfg := buildConfig(opts)
	p := set.Params

	render := func(v logic.Var) string {
		switch v.Kind {
		case logic.State:
			return fmt.Sprintf("%s[%d]", cfg.CrcInVar, v.Index)
		case logic.Data:
			return fmt.Sprintf("%s[%d]", cfg.DataVar, v.Index)
		default:
			return auxName(v.Index)
		}
	}
	expr := func(e logic.Equation) string {
		return exprString(e, " ^ ", "1'b0", render)
	}

	var lines []string
	guard := strings.ToUpper(cfg.Name) + "_V_"
	if cfg.Module {
		lines = append(lines, "`ifndef "+guard, "`define "+guard, "")
	}
	lines = append(lines, commented("//", describe(p, cfg))...)
	lines = append(lines, "")

	if cfg.Module {
		lines = append(lines,
			fmt.Sprintf("module %s (", cfg.Name),
			fmt.Sprintf("    input [%d:0] %s,", p.Width-1, cfg.CrcInVar),
			fmt.Sprintf("    input [%d:0] %s,", p.DataWidth-1, cfg.DataVar),
			fmt.Sprintf("    output [%d:0] %s", p.Width-1, cfg.CrcOutVar),
			");",
		)
		for _, a := range set.Aux {
			lines = append(lines, fmt.Sprintf("    wire %s = %s;", auxName(a.Index), expr(a.Eq)))
		}
		for i, e := range set.Outputs {
			lines = append(lines, fmt.Sprintf("    assign %s[%d] = %s;", cfg.CrcOutVar, i, expr(e)))
		}
		lines = append(lines, "endmodule", "", "`endif // "+guard)
	} else {
		lines = append(lines,
			fmt.Sprintf("function automatic [%d:0] %s;", p.Width-1, cfg.Name),
			fmt.Sprintf("    input [%d:0] %s;", p.Width-1, cfg.CrcInVar),
			fmt.Sprintf("    input [%d:0] %s;", p.DataWidth-1, cfg.DataVar),
		)
		for _, a := range set.Aux {
			lines = append(lines, fmt.Sprintf("    reg %s;", auxName(a.Index)))
		}
		lines = append(lines, "begin")
		for _, a := range set.Aux {
			lines = append(lines, fmt.Sprintf("    %s = %s;", auxName(a.Index), expr(a.Eq)))
		}
		for i, e := range set.Outputs {
			lines = append(lines, fmt.Sprintf("    %s[%d] = %s;", cfg.Name, i, expr(e)))
		}
		lines = append(lines, "end", "endfunction")
	}

	return strings.Join(lines, "\n") + "\n", nil
}
