// Package crib is the Composition Root for the crib note viewer.
//
// It connects the rendering pipeline (filter, select, align, colorize) with
// the sources that supply the notes, using the same ports-and-adapters split
// as the rest of the module: pkg/core holds the immutable collection and the
// Source contract, pkg/adapters provides the built-in and filesystem sources,
// and pkg/render turns a collection plus command-line filters into text.
//
// Features:
//
//   - **Immutable notes**: a Collection is built once through a builder
//     callback and never changes afterwards.
//   - **Indentation aware**: multi-line values keep their relative
//     indentation and are aligned under the value column.
//   - **Regex filters**: every argument is a case-insensitive regular
//     expression; an entry is shown only when all of them match its key,
//     value or tags.
//   - **Many formats**: YAML, JSON, CSV, HCL and Markdown notes files, alone
//     or spread across a directory.
//
// Usage:
//
//	// Render the built-in notes filtered by "noun"
//	err := crib.Run(ctx, os.Stdout, "", []string{"noun"})
//
//	// Or build a collection in code
//	notes := crib.Build("my words", func(b *crib.Builder) {
//		b.Add("laconic", "using very few words", "adjective")
//	})
//	out, err := crib.NewRenderer(notes).Render(os.Args[1:])
package crib
