// Package summary builds the job summary document for a step.
//
// A Summary is an ordered buffer of HTML fragments. Builder methods
// append one element each, followed by an EOL, and return the Summary
// so calls can be chained:
//
//	s.AddHeading("Results", 2).
//		AddTable([]summary.Row{
//			{summary.HeaderCell("File"), summary.HeaderCell("Status")},
//			{summary.TextCell("main.go"), summary.TextCell("ok")},
//		})
//	if _, err := s.Write(summary.WriteOptions{}); err != nil { ... }
//
// Write appends the buffer to the file the runner names in
// GITHUB_STEP_SUMMARY (or replaces its contents with Overwrite) and
// empties the buffer, so repeated writes never duplicate content.
//
// A Summary is not safe for concurrent use. Create one per step run.
package summary
