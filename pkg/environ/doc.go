// Package environ provides the environment collaborator used by stepkit.
//
// Two implementations of types.Env are available: OS, backed by the
// process environment, and Map, an isolated in-memory set used by tests
// and by callers that want a step to run against a private environment.
//
// EnvResolver turns a file command name such as "ENV" or "STEP_SUMMARY"
// into the path the runner handed over in the matching GITHUB_<COMMAND>
// variable, so the command writers never read the environment directly.
package environ
