// Package pathconv rewrites path strings between Windows and Unix
// conventions.
//
// This package implements:
//   - Structural style detection (drive letters, UNC prefixes, separators).
//   - Bidirectional drive-letter <-> mount-point mapping.
//   - UNC <-> POSIX double-slash translation.
//   - Lexical normalization (no filesystem access).
//
// All operations are pure string transforms over canonical UTF-8 text.
package pathconv
