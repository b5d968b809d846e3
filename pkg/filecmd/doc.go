// Package filecmd implements the file command channel: values are
// appended to files the runner provisions and names through
// GITHUB_<COMMAND> variables (GITHUB_ENV, GITHUB_PATH, GITHUB_OUTPUT,
// GITHUB_STATE).
//
// Simple values are appended as one line. Key/value pairs use a
// heredoc-style block so the value may span several lines:
//
//	<key><<DELIM
//	<value>
//	DELIM
//
// With the fixed delimiter (the default) the value is not checked for a
// line equal to the delimiter. DelimiterRandom generates a fresh
// delimiter per write and rejects payloads that contain it.
//
// Appends are not locked; a target is assumed to have a single writer.
package filecmd
