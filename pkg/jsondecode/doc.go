// Package jsondecode turns raw configuration file contents into Go values.
//
// The package is the decoding collaborator used by the config package. It is
// deliberately small: it recognises empty documents, reports syntax errors with
// the offset at which decoding failed, and materialises valid JSON into the
// usual map[string]any / []any / float64 / string / bool / nil shapes.
//
// Basic Usage:
//
//	v, err := jsondecode.Default.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if v == nil {
//	    // empty document or literal null
//	}
//	fmt.Println(jsondecode.Kind(v))
package jsondecode
