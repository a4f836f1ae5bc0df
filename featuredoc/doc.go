// Package featuredoc extracts doc comments from a Cargo.toml manifest and
// renders a Markdown fragment documenting the crate's feature flags and
// optional dependencies.
//
// Documentation goes into the manifest itself, next to the features it
// describes. Two comment markers are recognized, mirroring Rust's `///` and
// `//!` doc comments:
//
//   - `## ` comments document the feature or optional dependency on the
//     following line. Several `## ` lines accumulate into one description.
//   - `#! ` comments are not tied to a particular feature and are printed
//     where they occur. Use them to group features under a heading.
//
// The marker must be followed by a space or end the line; `###` and similar
// decorative rules are ignored. Ordinary `#` comments are never part of the
// output.
//
// For example:
//
//	[features]
//	default = ["foo"]
//
//	## Enables the foo functions.
//	foo = []
//
//	#! ### Experimental features
//
//	## Enables the fusion reactor.
//	fusion = []
//
//	[dependencies]
//	## Enable this when building the docs.
//	document-features = { version = "0.2", optional = true }
//
// renders a Markdown list with `foo` annotated as enabled by default,
// a heading between the groups, and one list item per documented entry.
// Undocumented entries are omitted. Source order is preserved and the
// output is byte-for-byte reproducible.
//
// # Parsing Model
//
// The extractor is a deliberately small line scanner, not a TOML parser.
// It understands just enough of the grammar to associate comments with
// entries: bracketed table headers, key/value assignments, and values that
// span multiple physical lines until their brackets balance. Malformed
// associations (a comment with nothing to attach to, a comment on a
// non-optional dependency) abort extraction with a descriptive error
// wrapping one of the sentinel errors; nothing is silently dropped.
//
// The balanced-value reader strips trailing `#` comments per physical line
// before tracking quotes, so a literal `#` inside a string on a
// continuation line is also stripped. This is a known simplification kept
// for output stability; see the package tests.
//
// # Basic Usage
//
//	manifest, err := featuredoc.LoadManifest(".")
//	if err != nil { ... }
//
//	ext := featuredoc.NewExtractor()
//	md, err := ext.Process(manifest)
//
// # CLI Integration
//
// [Config] bridges CLI flags to the library, following the RegisterFlags /
// RegisterCompletions / NewExtractor pattern. [Config.LoadFile] pre-seeds
// flag values from a YAML config file.
package featuredoc
