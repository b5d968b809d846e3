// Package filesystem provides filesystem implementations for stepkit.
//
// This package contains the OS-backed implementation of the types.FS
// interface. Tests use testutil.MemoryFS instead.
package filesystem
