// file:radix/options.go
package radix

import (
	"github.com/rs/zerolog"
)

// ----------------------------------------------------
// Tree options
// ----------------------------------------------------

// Options configures tree behavior.
type Options struct {
	Logger zerolog.Logger // Structural-edit debug logging
}

// Option applies a configuration mutation to Options.
type Option func(*Options)

// WithLogger sets a structured logger for attach/split edits.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithDefaults returns safe default options.
func WithDefaults() Options {
	return Options{
		Logger: zerolog.Nop(),
	}
}
