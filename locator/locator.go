package locator

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
)

// ErrEmptyFilename is returned by Locate when no filename is given
var ErrEmptyFilename = errors.New("filename must not be empty")

// Scan selects which scopes Locate searches
type Scan struct {
	// Home checks the user's home directory first
	Home bool
	// Tree walks every directory from the filesystem root to the working
	// directory. When false only the working directory is checked.
	Tree bool
}

// Locator finds configuration files by name
type Locator struct {
	env      Environment
	resolver Resolver
	logger   zerolog.Logger
}

// Option is a function that configures a Locator
type Option func(*Locator)

// WithEnvironment sets the source of the home and working directories
func WithEnvironment(env Environment) Option {
	return func(l *Locator) {
		l.env = env
	}
}

// WithResolver sets how candidate paths are checked and canonicalised
func WithResolver(r Resolver) Option {
	return func(l *Locator) {
		l.resolver = r
	}
}

// WithLogger sets the logger used for discovery diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Locator) {
		l.logger = logger
	}
}

// New creates a Locator backed by the process environment and the real
// filesystem unless overridden by options
func New(options ...Option) *Locator {
	l := &Locator{
		env:      OSEnvironment{},
		resolver: FSResolver{},
		logger:   zerolog.Nop(),
	}

	for _, option := range options {
		option(l)
	}

	return l
}

// Locate returns the existing files named filename in merge order: lowest
// precedence first. Duplicate paths keep their first position.
func (l *Locator) Locate(filename string, scan Scan) ([]string, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}

	var files []string

	if scan.Home {
		files = append(files, l.HomeScan(filename)...)
	}

	var (
		scoped []string
		err    error
	)
	if scan.Tree {
		scoped, err = l.BubbleScan(filename)
	} else {
		scoped, err = l.LocalScan(filename)
	}
	if err != nil {
		return nil, err
	}
	files = append(files, scoped...)

	return unique(files), nil
}

// HomeScan checks <home>/<filename>. An unknown home directory yields no
// files.
func (l *Locator) HomeScan(filename string) []string {
	home, ok := l.env.HomeDir()
	if !ok {
		l.logger.Debug().Str("file", filename).Msg("home directory not set, skipping home scan")
		return nil
	}

	return l.check(filepath.Join(home, filename), "home")
}

// LocalScan checks <cwd>/<filename>
func (l *Locator) LocalScan(filename string) ([]string, error) {
	cwd, err := l.env.Getwd()
	if err != nil {
		return nil, fmt.Errorf("error getting working directory: %w", err)
	}

	return l.check(filepath.Join(cwd, filename), "local"), nil
}

// BubbleScan checks <dir>/<filename> for the working directory and each of
// its ancestors, up to and including the filesystem root. The result is
// ordered root first, working directory last.
func (l *Locator) BubbleScan(filename string) ([]string, error) {
	cwd, err := l.env.Getwd()
	if err != nil {
		return nil, fmt.Errorf("error getting working directory: %w", err)
	}

	dir := filepath.Clean(cwd)
	if resolved, ok := l.resolver.Resolve(dir); ok {
		dir = resolved
	}

	var found []string
	for {
		found = append(found, l.check(filepath.Join(dir, filename), "tree")...)

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	slices.Reverse(found)
	return found, nil
}

// check resolves a single candidate, returning it as a one-element slice when
// it exists
func (l *Locator) check(candidate, scope string) []string {
	path, ok := l.resolver.Resolve(candidate)
	if !ok {
		l.logger.Debug().Str("scope", scope).Str("candidate", candidate).Msg("config file not found")
		return nil
	}

	l.logger.Debug().Str("scope", scope).Str("path", path).Msg("config file found")
	return []string{path}
}

// unique drops repeated paths, keeping each at its first position
func unique(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	result := make([]string, 0, len(paths))

	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}

	return result
}
