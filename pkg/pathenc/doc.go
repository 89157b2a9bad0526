// Package pathenc detects and converts legacy text encodings found in raw
// path bytes.
//
// Support is intentionally limited to the encodings that show up in Windows
// path data:
//   - UTF-8 (canonical form).
//   - UTF-16LE (with or without BOM).
//   - Windows-1252.
//
// All functions are pure and operate on in-memory byte slices.
package pathenc
