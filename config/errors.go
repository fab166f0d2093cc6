package config

import "errors"

// Sentinel errors returned by New and the Config accessors.
var (
	// ErrValidation indicates invalid construction arguments, such as an
	// empty filename.
	ErrValidation = errors.New("invalid configuration arguments")
	// ErrDecode indicates a file that could not be decoded as JSON.
	ErrDecode = errors.New("unable to decode JSON config")
	// ErrEmptyFile accompanies ErrDecode when a file has no content or
	// holds a literal null.
	ErrEmptyFile = errors.New("seems to be empty file")
	// ErrSchema indicates a file whose top-level JSON value is not an
	// object.
	ErrSchema = errors.New("config file does not contain a JSON object")
	// ErrKeyNotFound indicates a lookup of a key that was not loaded.
	ErrKeyNotFound = errors.New("key does not exist")
	// ErrType indicates a typed lookup of a value of another JSON kind.
	ErrType = errors.New("unexpected value type")
	// ErrReadOnly is returned by every write accessor.
	ErrReadOnly = errors.New("configuration data is read-only")
)
