// Package emit renders derived CRC equation sets as source text.
//
// # Renderers
//
// Four targets are provided, all consuming a *logic.EquationSet:
//
//	Verilog   function (default) or module form
//	VHDL      entity with a behavioral architecture
//	C         header-style function over stdint types
//	Go        standalone source file
//
// Every renderer declares the optimizer's intermediate signals ahead of
// the outputs, in dependency order, and renders an empty equation as the
// target's zero literal.
//
// # Constant Layers
//
// The emitted logic is the pure linear map. The Init and XorOut constants
// are not baked into it; the generated header comment states both values
// and where the caller applies them (seed the input register with Init
// once, XOR the final output with XorOut). Baking them in would double
// apply them when the function is evaluated once per input word of a
// longer message.
//
// # Usage
//
//	set, _ := gen.Derive(params)
//	text, err := emit.Verilog(set, emit.WithName("crc32"), emit.AsModule(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(text)
//
// Output is deterministic: identical equation sets and options yield
// byte-identical text.
package emit
