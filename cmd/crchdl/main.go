// Command crchdl derives the combinatorial Boolean equations of a CRC
// algorithm and renders them as Verilog, VHDL, C or Go source text.
//
// Examples:
//
//	crchdl -verilog-module -algorithm CRC-32 -data-width 32
//	crchdl -c -polynomial "x^8 + x^2 + x + 1" -width 8
//	crchdl -convert "x^16 + x^12 + x^5 + 1" -width 16
//	crchdl -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/crclogic/go-crchdl/crcalg"
	"github.com/crclogic/go-crchdl/crczerolog"
	"github.com/crclogic/go-crchdl/emit"
	"github.com/crclogic/go-crchdl/gen"
)

func main() {
	var (
		verilogFunc   = flag.Bool("verilog", false, "generate a Verilog function")
		verilogModule = flag.Bool("verilog-module", false, "generate a Verilog module")
		vhdl          = flag.Bool("vhdl", false, "generate a VHDL entity")
		cCode         = flag.Bool("c", false, "generate a C function")
		goCode        = flag.Bool("go", false, "generate a Go function")
		convert       = flag.String("convert", "", "convert a polynomial between algebraic and hex form (requires -width)")
		list          = flag.Bool("list", false, "list the known algorithms and exit")

		algorithm  = flag.String("algorithm", "CRC-32", "name of the base algorithm (see -list)")
		polynomial = flag.String("polynomial", "", "override the polynomial, algebraic (x^8+x^2+x+1) or numeric (0x07) form")
		width      = flag.Int("width", 0, "override the CRC register width in bits")
		dataWidth  = flag.Int("data-width", 0, "input word width in bits (default 8)")
		reflectIn  = flag.String("reflect-in", "", "override input reflection: true or false")
		reflectOut = flag.String("reflect-out", "", "override output reflection: true or false")
		initValue  = flag.String("init", "", "override the initial register value (hex)")
		xorOut     = flag.String("xor-out", "", "override the final XOR value (hex)")

		name      = flag.String("name", "crc", "generated function/module/entity name")
		dataVar   = flag.String("data-param", "data", "data parameter name")
		crcInVar  = flag.String("crc-in-param", "crcIn", "CRC input parameter name")
		crcOutVar = flag.String("crc-out-param", "crcOut", "CRC output parameter name")
		pkg       = flag.String("package", "main", "package name for generated Go code")
		static    = flag.Bool("static", false, "generate a static C function")
		inline    = flag.Bool("inline", false, "generate an inline C function")

		noOptimizer = flag.Bool("no-optimizer", false, "disable shared sub-term extraction")
		debug       = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if *list {
		for _, n := range crcalg.Names() {
			fmt.Println(n)
		}
		return
	}

	if *convert != "" {
		out, err := convertPoly(*convert, *width)
		if err != nil {
			log.Error().Err(err).Msg("polynomial conversion failed")
			os.Exit(1)
		}
		fmt.Println(out)
		return
	}

	modes := 0
	for _, m := range []bool{*verilogFunc, *verilogModule, *vhdl, *cCode, *goCode} {
		if m {
			modes++
		}
	}
	if modes != 1 {
		log.Error().Msg("exactly one of -verilog, -verilog-module, -vhdl, -c, -go is required")
		os.Exit(1)
	}

	params, err := resolveParams(*algorithm, *polynomial, *width, *dataWidth, *reflectIn, *reflectOut, *initValue, *xorOut)
	if err != nil {
		log.Error().Err(err).Msg("invalid parameters")
		os.Exit(1)
	}

	set, err := gen.Derive(params,
		gen.WithOptimizer(!*noOptimizer),
		gen.WithLogger(crczerolog.New(log)),
	)
	if err != nil {
		log.Error().Err(err).Msg("derivation failed")
		os.Exit(1)
	}

	opts := []emit.Option{
		emit.WithName(*name),
		emit.WithDataVar(*dataVar),
		emit.WithCrcVars(*crcInVar, *crcOutVar),
		emit.WithPackage(*pkg),
		emit.AsModule(*verilogModule),
		emit.WithStatic(*static),
		emit.WithInline(*inline),
	}

	var text string
	switch {
	case *verilogFunc, *verilogModule:
		text, err = emit.Verilog(set, opts...)
	case *vhdl:
		text, err = emit.VHDL(set, opts...)
	case *cCode:
		text, err = emit.C(set, opts...)
	case *goCode:
		text, err = emit.Go(set, opts...)
	}
	if err != nil {
		log.Error().Err(err).Msg("rendering failed")
		os.Exit(1)
	}
	fmt.Print(text)
}

// convertPoly translates an algebraic polynomial to hex, or a numeric one
// to algebraic form.
func convertPoly(poly string, width int) (string, error) {
	if width < 1 {
		return "", fmt.Errorf("-width is required for -convert")
	}
	if strings.Contains(poly, "^") {
		v, err := crcalg.ParsePoly(poly, width)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("0x%X", v), nil
	}
	v, err := strconv.ParseUint(strings.TrimSpace(poly), 0, 64)
	if err != nil {
		return "", fmt.Errorf("invalid numeric polynomial %q: %w", poly, err)
	}
	return crcalg.FormatPoly(v, width), nil
}

// resolveParams starts from a catalog algorithm and applies the
// command-line overrides on top of it.
func resolveParams(algorithm, polynomial string, width, dataWidth int, reflectIn, reflectOut, initValue, xorOut string) (crcalg.Params, error) {
	params, err := crcalg.Lookup(algorithm)
	if err != nil {
		return crcalg.Params{}, err
	}

	if width > 0 {
		params.Width = width
	}
	if dataWidth > 0 {
		params.DataWidth = dataWidth
	}
	if polynomial != "" {
		if strings.Contains(polynomial, "^") {
			params.Poly, err = crcalg.ParsePoly(polynomial, params.Width)
		} else {
			params.Poly, err = strconv.ParseUint(strings.TrimSpace(polynomial), 0, 64)
		}
		if err != nil {
			return crcalg.Params{}, err
		}
	}
	if params.ReflectIn, err = overrideBool(params.ReflectIn, "reflect-in", reflectIn); err != nil {
		return crcalg.Params{}, err
	}
	if params.ReflectOut, err = overrideBool(params.ReflectOut, "reflect-out", reflectOut); err != nil {
		return crcalg.Params{}, err
	}
	if params.Init, err = overrideUint(params.Init, "init", initValue); err != nil {
		return crcalg.Params{}, err
	}
	if params.XorOut, err = overrideUint(params.XorOut, "xor-out", xorOut); err != nil {
		return crcalg.Params{}, err
	}

	if err := params.Validate(); err != nil {
		return crcalg.Params{}, err
	}
	return params, nil
}

func overrideBool(current bool, name, value string) (bool, error) {
	if value == "" {
		return current, nil
	}
	v, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid -%s value %q: %w", name, value, err)
	}
	return v, nil
}

func overrideUint(current uint64, name, value string) (uint64, error) {
	if value == "" {
		return current, nil
	}
	v, err := strconv.ParseUint(value, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid -%s value %q: %w", name, value, err)
	}
	return v, nil
}
