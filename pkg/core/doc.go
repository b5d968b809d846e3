// Package core is the step-facing API of stepkit.
//
// A Toolkit carries everything a job step needs to talk to its runner:
// inputs, outputs, exported variables, masked secrets, annotations, log
// groups, saved state and the job summary. Each operation picks the file
// command channel when the runner provided a target for it (GITHUB_ENV,
// GITHUB_PATH, GITHUB_OUTPUT, GITHUB_STATE) and falls back to the stdout
// command protocol otherwise.
//
// Reporting an error is also failing the step: Error and SetFailed
// return an *errors.Failure after writing the error command, and the
// program entry point turns it into an exit code:
//
//	tk, err := core.Default()
//	...
//	if err := run(tk); err != nil {
//		os.Exit(errors.ExitCode(err))
//	}
package core
