package gen

import (
	"github.com/crclogic/go-crchdl/crcalg"
	"github.com/crclogic/go-crchdl/logic"
)

// Generator derives the combinatorial equation set for one CRC algorithm.
//
// A Generator is immutable after New and safe for concurrent use.
type Generator struct {
	params crcalg.Params
	config Config
}

// New creates a Generator for the given parameters and options.
// It fails with a *crcalg.ConfigError if the parameters are inconsistent;
// past this point derivation cannot fail.
//
// Example:
//
//	params, _ := crcalg.Lookup("CRC-16/CCITT-FALSE")
//	g, err := gen.New(params, gen.WithLogger(myLogger))
func New(params crcalg.Params, opts ...Option) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Generator{
		params: params,
		config: cfg,
	}, nil
}

// Params returns the parameters the generator was built with.
func (g *Generator) Params() crcalg.Params {
	return g.params
}

// Derive produces the equation set for one combinatorial evaluation of
// the register update over DataWidth input bits. With the optimizer
// enabled (the default) shared sub-terms are hoisted into intermediate
// signals afterwards.
func (g *Generator) Derive() *logic.EquationSet {
	set := g.build()
	g.logDebug("derived equations",
		"width", g.params.Width,
		"data_width", g.params.DataWidth,
		"terms", set.TermCount(),
	)

	if g.config.Optimize {
		set = optimize(set)
		g.logDebug("optimizer finished",
			"aux_signals", len(set.Aux),
			"terms", set.TermCount(),
		)
	}
	return set
}

// Derive is a convenience wrapper: New followed by Generator.Derive.
func Derive(params crcalg.Params, opts ...Option) (*logic.EquationSet, error) {
	g, err := New(params, opts...)
	if err != nil {
		return nil, err
	}
	return g.Derive(), nil
}
