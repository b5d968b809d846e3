// Package types defines the collaborator interfaces stepkit consumes:
// the filesystem used for file commands and the job summary, and the
// environment used for inputs, state and file-command target lookup.
package types
