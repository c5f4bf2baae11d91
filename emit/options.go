package emit

// Config holds the renderer configuration.
type Config struct {
	// Name is the generated function/module/entity name
	Name string

	// DataVar is the input data parameter name
	DataVar string

	// CrcInVar is the CRC input parameter name
	CrcInVar string

	// CrcOutVar is the CRC output parameter name (module/entity forms)
	CrcOutVar string

	// Package is the package name for the Go renderer
	Package string

	// Module selects Verilog module form instead of a function
	Module bool

	// Static emits a static C function
	Static bool

	// Inline emits an inline C function
	Inline bool
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Name:      "crc",
		DataVar:   "data",
		CrcInVar:  "crcIn",
		CrcOutVar: "crcOut",
		Package:   "main",
	}
}

// Option is a functional option for configuring a renderer.
type Option func(*Config)

// WithName sets the generated function/module/entity name.
func WithName(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.Name = name
		}
	}
}

// WithDataVar sets the data parameter name.
func WithDataVar(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.DataVar = name
		}
	}
}

// WithCrcVars sets the CRC input and output parameter names.
func WithCrcVars(in, out string) Option {
	return func(c *Config) {
		if in != "" {
			c.CrcInVar = in
		}
		if out != "" {
			c.CrcOutVar = out
		}
	}
}

// WithPackage sets the package name used by the Go renderer.
func WithPackage(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.Package = name
		}
	}
}

// AsModule selects Verilog module form instead of a function.
func AsModule(module bool) Option {
	return func(c *Config) {
		c.Module = module
	}
}

// WithStatic emits a static C function.
func WithStatic(static bool) Option {
	return func(c *Config) {
		c.Static = static
	}
}

// WithInline emits an inline C function.
func WithInline(inline bool) Option {
	return func(c *Config) {
		c.Inline = inline
	}
}
