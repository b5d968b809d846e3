// Package testutil provides utilities for testing stepkit components.
//
// Key components:
//   - MemoryFS: in-memory types.FS with error injection, for file command
//     and summary tests that must not touch the real filesystem
//   - WriteRecorder: an io.Writer that keeps every Write call separately,
//     so tests can assert the exact sequence of protocol writes
package testutil
