// Package locator discovers configuration files on disk.
//
// Given a bare filename, a Locator checks up to three scopes and returns the
// canonical absolute paths of the files that exist, ordered from lowest to
// highest precedence:
//
//   - Home: <home-directory>/<filename>
//   - Local: <working-directory>/<filename>
//   - Tree: <dir>/<filename> for every directory from the filesystem root
//     down to the working directory, root first
//
// Locate composes the scopes: the home file comes first (when enabled),
// followed by either the tree scan or the local scan. Paths are canonicalised
// with symlinks resolved, and a path that shows up more than once keeps only
// its first position.
//
// Basic Usage:
//
//	loc := locator.New()
//	paths, err := loc.Locate(".myapp.json", locator.Scan{Home: true, Tree: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range paths {
//	    fmt.Println(p)
//	}
//
// The home directory and working directory come from an Environment, and
// existence checks go through a Resolver, so both can be replaced in tests.
package locator
