package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Workflow commands for shell-based job steps"
	MsgVersionShort    = "Print version information"
	MsgOutputShort     = "Manage step outputs"
	MsgOutputSetShort  = "Set a step output"
	MsgEnvShort        = "Manage job environment variables"
	MsgEnvExportShort  = "Export a variable to this and following steps"
	MsgPathShort       = "Manage the job PATH"
	MsgPathAddShort    = "Prepend a directory to PATH for following steps"
	MsgMaskShort       = "Mask a value in the job log"
	MsgStateShort      = "Share state between an action's main and post steps"
	MsgStateSaveShort  = "Save a state value"
	MsgStateGetShort   = "Print a saved state value"
	MsgInputShort      = "Read action inputs"
	MsgInputGetShort   = "Print an input value"
	MsgInputBoolShort  = "Print an input parsed as a YAML 1.2 boolean"
	MsgInputLinesShort = "Print the non-empty lines of an input"
	MsgAnnotateShort   = "Create annotations"
	MsgGroupShort      = "Fold log lines into a collapsible group"
	MsgGroupStartShort = "Start a log group"
	MsgGroupEndShort   = "End the current log group"
	MsgEchoShort       = "Turn echoing of workflow commands on or off"
	MsgFailShort       = "Report an error and fail the step"
	MsgSummaryShort    = "Append content to the job summary"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgInfoShort       = "Show runner information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Version output
	MsgVersionFormat = "stepkit version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default is $XDG_CONFIG_HOME/stepkit/config.toml)"
	MsgFlagRequired  = "Fail when the input is empty"
	MsgFlagKeepSpace = "Keep leading and trailing whitespace"
	MsgFlagOverwrite = "Replace the summary file instead of appending"
	MsgFlagFormat    = "Output format (auto, term, text, json)"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrEchoState   = "echo state must be 'on' or 'off', got %q"
	MsgErrReadStdin   = "failed to read standard input"
	MsgErrReadRows    = "failed to read table rows from %s"
	MsgErrManDir      = "failed to create man page directory %s"
	MsgErrUnknownType = "unknown %s type %q"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/summary-long.txt
	msgSummaryLongRaw string
	MsgSummaryLong    = strings.TrimSpace(msgSummaryLongRaw)

	//go:embed msgs/summary-example.txt
	msgSummaryExampleRaw string
	MsgSummaryExample    = strings.TrimRight(msgSummaryExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
