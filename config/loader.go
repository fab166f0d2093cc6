package config

import (
	"fmt"
	"os"

	"github.com/wesleyorama2/localconfig/locator"
	"github.com/wesleyorama2/localconfig/pkg/jsondecode"
	"github.com/wesleyorama2/localconfig/pkg/jsonschema"
)

// topLevel is the shape every configuration file must have
var topLevel = jsonschema.MustCompile(`{"type": "object"}`)

// New locates every file named filename, loads each one and merges them into
// a read-only Config. Files are merged lowest precedence first: the home
// file, then the tree or local files. Any file that fails to load aborts
// construction.
func New(filename string, opts ...Option) (*Config, error) {
	if err := validateFilename(filename); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	loc := locator.New(
		locator.WithEnvironment(o.env),
		locator.WithResolver(o.resolver),
		locator.WithLogger(o.logger),
	)

	paths, err := loc.Locate(filename, locator.Scan{Home: o.homeScan, Tree: o.treeScan})
	if err != nil {
		return nil, fmt.Errorf("error locating config %s: %w", filename, err)
	}

	docs := make([]map[string]any, 0, len(paths))
	for _, path := range paths {
		doc, err := load(path, o.decoder)
		if err != nil {
			return nil, err
		}
		o.logger.Debug().Str("path", path).Int("keys", len(doc)).Msg("loaded config file")
		docs = append(docs, doc)
	}

	return &Config{data: merge(docs)}, nil
}

// load reads and decodes a single configuration file
func load(path string, decoder jsondecode.Decoder) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}

	value, err := decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}

	if value == nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, ErrEmptyFile)
	}

	if err := topLevel.Validate(value); err != nil {
		return nil, fmt.Errorf("%w: %s holds a JSON %s", ErrSchema, path, jsondecode.Kind(value))
	}

	doc, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s decoded to %T", ErrSchema, path, value)
	}

	return doc, nil
}

// merge assigns the keys of each document in order; later documents win.
// Nested values are replaced, never combined.
func merge(docs []map[string]any) map[string]any {
	result := make(map[string]any)

	for _, doc := range docs {
		for key, value := range doc {
			result[key] = value
		}
	}

	return result
}
