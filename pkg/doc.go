// Package pkg provides the libraries behind the pretty command.
//
// # Overview
//
// The pkg directory is organized into these areas:
//
//  1. [doc] - Document trees and the width-constrained layout engine
//  2. [term] - Color-aware output sink for terminals
//  3. [jsondoc] - JSON input turned into annotated documents
//  4. [observability] - Render hooks for statistics and logging
//  5. [errors] and [buildinfo] - Support for the command-line front end
//
// # Architecture
//
// The typical data flow:
//
//	JSON or caller-built tree
//	         ↓
//	    [jsondoc] package (classify tokens, build groups)
//	         ↓
//	    [doc] package (fit groups to the width)
//	         ↓
//	    [term] package (map annotations to colors)
//	         ↓
//	    terminal, file or buffer
//
// # Quick Start
//
//	import (
//	    "os"
//	    "strings"
//
//	    "github.com/matzehuels/pretty/pkg/doc"
//	    "github.com/matzehuels/pretty/pkg/jsondoc"
//	)
//
//	d, err := jsondoc.Build(strings.NewReader(`{"a": [1, 2]}`), 2)
//	if err != nil {
//	    return err
//	}
//	return doc.Fprint(os.Stdout, d, 80)
//
// [doc]: https://pkg.go.dev/github.com/matzehuels/pretty/pkg/doc
// [term]: https://pkg.go.dev/github.com/matzehuels/pretty/pkg/term
// [jsondoc]: https://pkg.go.dev/github.com/matzehuels/pretty/pkg/jsondoc
// [observability]: https://pkg.go.dev/github.com/matzehuels/pretty/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/pretty/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pretty/pkg/buildinfo
package pkg
