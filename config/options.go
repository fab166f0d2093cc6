package config

import (
	"github.com/rs/zerolog"

	"github.com/wesleyorama2/localconfig/locator"
	"github.com/wesleyorama2/localconfig/pkg/jsondecode"
)

// options holds the construction settings of a Config
type options struct {
	treeScan bool
	homeScan bool
	env      locator.Environment
	resolver locator.Resolver
	decoder  jsondecode.Decoder
	logger   zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		treeScan: false,
		homeScan: true,
		env:      locator.OSEnvironment{},
		resolver: locator.FSResolver{},
		decoder:  jsondecode.Default,
		logger:   zerolog.Nop(),
	}
}

// Option is a function that configures New
type Option func(*options)

// WithTreeScan makes New merge every file from the filesystem root down to
// the working directory instead of only the working directory's file.
// Defaults to false.
func WithTreeScan(enabled bool) Option {
	return func(o *options) {
		o.treeScan = enabled
	}
}

// WithHomeScan controls whether the file in the user's home directory is
// merged first. Defaults to true.
func WithHomeScan(enabled bool) Option {
	return func(o *options) {
		o.homeScan = enabled
	}
}

// WithEnvironment replaces the source of the home and working directories
func WithEnvironment(env locator.Environment) Option {
	return func(o *options) {
		o.env = env
	}
}

// WithResolver replaces the filesystem existence and symlink checks
func WithResolver(r locator.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithDecoder replaces the JSON decoder
func WithDecoder(d jsondecode.Decoder) Option {
	return func(o *options) {
		o.decoder = d
	}
}

// WithLogger sets the logger for discovery and load diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
