package gen

// Config holds the generator configuration.
type Config struct {
	// Optimize enables shared sub-term extraction after derivation
	Optimize bool

	// Logger is used for logging derivation phases (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Optimize: true,
	}
}

// Option is a functional option for configuring the Generator.
type Option func(*Config)

// WithOptimizer enables or disables the equation size optimizer.
// Default is true. Disabling it never changes the computed function,
// only the size of the emitted equations.
//
// Example:
//
//	g, err := gen.New(params, gen.WithOptimizer(false))
func WithOptimizer(enabled bool) Option {
	return func(c *Config) {
		c.Optimize = enabled
	}
}

// WithLogger sets a logger for the generator phases.
//
// Example:
//
//	g, err := gen.New(params, gen.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
