// Package crosspath converts filesystem path strings between Windows and
// Unix conventions.
//
// A [CrossPath] is built from raw input (text or bytes) by running a fixed
// pipeline: encoding detection and normalization, security checking, and then
// on-demand style conversion. Instances are immutable after construction and
// safe for concurrent use.
//
//	cp, err := crosspath.New(`C:\Users\John\file.txt`)
//	// ...
//	unix, err := cp.ToUnix() // "/mnt/c/Users/John/file.txt"
package crosspath
