package emit

import (
	"fmt"
	"strings"

	"github.com/crclogic/go-crchdl/crcalg"
	"github.com/crclogic/go-crchdl/logic"
)

func buildConfig(opts []Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// describe returns the parameter summary embedded as a comment block at
// the top of every rendered target. It states where the caller applies
// the Init and XorOut constant layers, since the emitted logic itself is
// the pure linear map.
func describe(p crcalg.Params, cfg Config) []string {
	hexDigits := (p.Width + 3) / 4
	return []string{
		"CRC polynomial coefficients: " + crcalg.FormatPoly(p.Poly, p.Width),
		fmt.Sprintf("                             0x%0*X (hex)", hexDigits, p.Poly),
		fmt.Sprintf("CRC width:                   %d bits", p.Width),
		fmt.Sprintf("Input word width:            %d bits", p.DataWidth),
		fmt.Sprintf("Input reflected:             %s", yesNo(p.ReflectIn)),
		fmt.Sprintf("Output reflected:            %s", yesNo(p.ReflectOut)),
		fmt.Sprintf("Initial value:               0x%0*X (seed %s with it before the first evaluation)", hexDigits, p.Init, cfg.CrcInVar),
		fmt.Sprintf("Final XOR value:             0x%0*X (apply it to the result after the last evaluation)", hexDigits, p.XorOut),
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// exprString joins an equation's terms with the target's XOR operator,
// falling back to the target's zero literal for an empty equation.
func exprString(e logic.Equation, operator, zero string, render func(logic.Var) string) string {
	if len(e.Terms) == 0 {
		return zero
	}
	parts := make([]string, len(e.Terms))
	for i, v := range e.Terms {
		parts[i] = render(v)
	}
	return strings.Join(parts, operator)
}

// auxName names intermediate signals in every target.
func auxName(index int) string {
	return fmt.Sprintf("t%d", index)
}

// commented prefixes every line with the target's comment marker.
func commented(marker string, lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = marker + " " + l
	}
	return out
}
