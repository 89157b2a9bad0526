// Package pathsec validates path strings against traversal and injection
// attacks.
//
// The checker operates on canonical text only; it never touches the
// filesystem. Checks cover:
//   - Path traversal (`..` escapes).
//   - Windows-illegal characters.
//   - Windows reserved device names.
//   - Access to sensitive system directories (configurable denylist).
package pathsec
