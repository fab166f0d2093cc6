// Package config loads layered JSON configuration files into a single
// read-only key-value mapping.
//
// A configuration is identified by a bare filename such as ".myapp.json".
// New looks for that file in up to three places and merges every file it
// finds, later files overriding earlier ones key by key:
//
//  1. The user's home directory (enabled by default)
//  2. Either the current working directory alone (default), or every
//     directory from the filesystem root down to the working directory
//     when tree scanning is enabled
//
// Merging is shallow: a top-level key from a later file replaces the earlier
// value wholesale, including nested objects.
//
// Basic Usage:
//
//	cfg, err := config.New(".myapp.json", config.WithTreeScan(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if cfg.Has("endpoint") {
//	    endpoint, _ := cfg.String("endpoint")
//	    fmt.Println(endpoint)
//	}
//
// Errors:
//
// Construction either succeeds completely or returns an error; no partially
// merged configuration is ever returned. Errors wrap one of the sentinel
// values and can be tested with errors.Is:
//
//	cfg, err := config.New(".myapp.json")
//	switch {
//	case errors.Is(err, config.ErrDecode):
//	    // a file is not valid JSON, or is empty
//	case errors.Is(err, config.ErrSchema):
//	    // a file holds an array or scalar instead of an object
//	}
//
// A loaded Config never changes. Set and Unset always return ErrReadOnly,
// Get and All hand out copies, and a Config may be shared between goroutines
// without locking.
package config
