// Package command encodes runner commands for the standard output channel.
//
// A command is written as a single line:
//
//	::<name>[ key1=v1,key2=v2]::<message><EOL>
//
// Property values and the message are percent-escaped so that neither
// can break the line structure. Property values additionally escape ':'
// and ',' since those delimit the properties segment.
//
// Issuing the "error" command writes the line and then returns an
// *errors.Failure carrying the message: reporting an error to the runner
// and failing the step are the same act.
package command
