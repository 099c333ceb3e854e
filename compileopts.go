package zzfsm

import "github.com/rs/zerolog"

var defaultCompileConfig = compileConfig{
	allowWildcard: true,
	allowAnchor:   true,
	allowStar:     true,
	logger:        zerolog.Nop(),
}

type compileConfig struct {
	allowWildcard bool
	allowAnchor   bool
	allowStar     bool
	logger        zerolog.Logger
}

// CompileOption functions optionally alter how patterns are compiled.
type CompileOption = func(*compileConfig)

// AllowWildcard changes how . is compiled. If disabled, . is treated as a
// literal. Enabled by default.
func AllowWildcard(enable bool) CompileOption {
	return func(o *compileConfig) {
		o.allowWildcard = enable
	}
}

// AllowAnchor changes how $ is compiled. If disabled, $ is treated as a
// literal. Enabled by default.
func AllowAnchor(enable bool) CompileOption {
	return func(o *compileConfig) {
		o.allowAnchor = enable
	}
}

// AllowStar changes how * is compiled. If disabled, * is treated as a literal.
// Enabled by default.
func AllowStar(enable bool) CompileOption {
	return func(o *compileConfig) {
		o.allowStar = enable
	}
}

// WithCompileLogs logs each column appended or rewritten during compilation,
// at trace level. Disabled by default.
func WithCompileLogs(l zerolog.Logger) CompileOption {
	return func(o *compileConfig) {
		o.logger = l
	}
}
