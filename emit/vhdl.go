package emit

import (
	"fmt"
	"strings"

	"github.com/crclogic/go-crchdl/logic"
)

// VHDL renders the equation set as a VHDL entity with a behavioral
// architecture. Intermediate signals become architecture signals assigned
// concurrently ahead of the outputs.
func VHDL(set *logic.EquationSet, opts ...Option) (string, error) {
	cfg := buildConfig(opts)
	p := set.Params

	render := func(v logic.Var) string {
		switch v.Kind {
		case logic.State:
			return fmt.Sprintf("%s(%d)", cfg.CrcInVar, v.Index)
		case logic.Data:
			return fmt.Sprintf("%s(%d)", cfg.DataVar, v.Index)
		default:
			return auxName(v.Index)
		}
	}
	expr := func(e logic.Equation) string {
		return exprString(e, " xor ", "'0'", render)
	}

	var lines []string
	lines = append(lines, commented("--", describe(p, cfg))...)
	lines = append(lines,
		"",
		"library IEEE;",
		"use IEEE.std_logic_1164.all;",
		"",
		fmt.Sprintf("entity %s is", cfg.Name),
		"    port (",
		fmt.Sprintf("        %s: in std_logic_vector(%d downto 0);", cfg.CrcInVar, p.Width-1),
		fmt.Sprintf("        %s: in std_logic_vector(%d downto 0);", cfg.DataVar, p.DataWidth-1),
		fmt.Sprintf("        %s: out std_logic_vector(%d downto 0)", cfg.CrcOutVar, p.Width-1),
		"    );",
		fmt.Sprintf("end entity %s;", cfg.Name),
		"",
		fmt.Sprintf("architecture Behavioral of %s is", cfg.Name),
	)
	for _, a := range set.Aux {
		lines = append(lines, fmt.Sprintf("    signal %s: std_logic;", auxName(a.Index)))
	}
	lines = append(lines, "begin")
	for _, a := range set.Aux {
		lines = append(lines, fmt.Sprintf("    %s <= %s;", auxName(a.Index), expr(a.Eq)))
	}
	for i, e := range set.Outputs {
		lines = append(lines, fmt.Sprintf("    %s(%d) <= %s;", cfg.CrcOutVar, i, expr(e)))
	}
	lines = append(lines, "end architecture Behavioral;")

	return strings.Join(lines, "\n") + "\n", nil
}
