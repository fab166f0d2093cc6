package locator

import (
	"os"
	"path/filepath"
)

// Environment supplies the process-level inputs of a scan
type Environment interface {
	// HomeDir returns the current user's home directory, or false when it
	// is not known.
	HomeDir() (string, bool)
	// Getwd returns the current working directory.
	Getwd() (string, error)
}

// Resolver maps a path to its canonical absolute form
type Resolver interface {
	// Resolve returns the absolute path with every symlink followed, or
	// false when nothing exists at path.
	Resolve(path string) (string, bool)
}

// OSEnvironment reads the home directory from the process environment and
// the working directory from the operating system
type OSEnvironment struct{}

// HomeDir returns $HOME (%USERPROFILE% on Windows)
func (OSEnvironment) HomeDir() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return home, true
}

// Getwd returns os.Getwd()
func (OSEnvironment) Getwd() (string, error) {
	return os.Getwd()
}

// FSResolver resolves paths against the real filesystem
type FSResolver struct{}

// Resolve returns the canonical path of an existing file or directory
func (FSResolver) Resolve(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", false
	}
	return resolved, true
}
