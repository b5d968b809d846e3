package filecmd

import (
	"strings"

	"github.com/google/uuid"

	"github.com/arthur-debert/stepkit/pkg/coerce"
	"github.com/arthur-debert/stepkit/pkg/command"
	"github.com/arthur-debert/stepkit/pkg/environ"
	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/arthur-debert/stepkit/pkg/filesystem"
	"github.com/arthur-debert/stepkit/pkg/logging"
	"github.com/arthur-debert/stepkit/pkg/types"
)

// DefaultDelimiter brackets multi-line values in fixed mode.
const DefaultDelimiter = "_GitHubActionsFileCommandDelimeter_"

// File command names.
const (
	CommandEnv    = "ENV"
	CommandPath   = "PATH"
	CommandOutput = "OUTPUT"
	CommandState  = "STATE"
)

// DelimiterMode selects how key/value delimiters are chosen.
type DelimiterMode string

const (
	// DelimiterFixed always uses the configured delimiter.
	DelimiterFixed DelimiterMode = "fixed"
	// DelimiterRandom uses ghadelimiter_<uuid> and validates the payload.
	DelimiterRandom DelimiterMode = "random"
)

// Options configures a Writer. Zero values select the defaults.
type Options struct {
	Delimiter string
	Mode      DelimiterMode
	EOL       string
}

// Writer appends file commands to their target files.
type Writer struct {
	fs        types.FS
	resolver  environ.Resolver
	delimiter string
	mode      DelimiterMode
	eol       string
}

// NewWriter returns a Writer resolving targets through resolver.
func NewWriter(fsys types.FS, resolver environ.Resolver, opts Options) *Writer {
	w := &Writer{
		fs:        fsys,
		resolver:  resolver,
		delimiter: opts.Delimiter,
		mode:      opts.Mode,
		eol:       opts.EOL,
	}
	if w.delimiter == "" {
		w.delimiter = DefaultDelimiter
	}
	if w.mode == "" {
		w.mode = DelimiterFixed
	}
	if w.eol == "" {
		w.eol = command.PlatformEOL()
	}
	return w
}

// Configured reports whether the runner provided a target for cmd.
func (w *Writer) Configured(cmd string) bool {
	return w.resolver.Configured(cmd)
}

// Issue appends the coerced value and one EOL to the target of cmd.
func (w *Writer) Issue(cmd string, value any) error {
	logger := logging.GetLogger("filecmd")

	path, err := w.resolver.Resolve(cmd)
	if err != nil {
		return err
	}
	if !filesystem.Exists(w.fs, path) {
		return errors.Newf(errors.ErrResource, "Missing file at path: %s", path).
			WithDetail("command", cmd)
	}

	data := coerce.ToCommandValue(value) + w.eol
	if err := w.fs.AppendFile(path, []byte(data)); err != nil {
		return errors.Wrapf(err, errors.ErrResource, "failed to append file command %s", cmd).
			WithDetail("path", path)
	}

	logger.Debug().Str("command", cmd).Str("path", path).Int("bytes", len(data)).Msg("appended file command")
	return nil
}

// IssueKeyValue appends key and value as a delimited block.
func (w *Writer) IssueKeyValue(cmd, key string, value any) error {
	msg, err := w.PrepareKeyValueMessage(key, value)
	if err != nil {
		return err
	}
	return w.Issue(cmd, msg)
}

// PrepareKeyValueMessage renders the delimited block without the final EOL.
func (w *Writer) PrepareKeyValueMessage(key string, value any) (string, error) {
	val := coerce.ToCommandValue(value)
	delim := w.delimiter

	if w.mode == DelimiterRandom {
		delim = "ghadelimiter_" + uuid.NewString()
		if strings.Contains(key, delim) {
			return "", errors.Newf(errors.ErrValidation,
				"Unexpected input: name should not contain the delimiter %q", delim)
		}
		if strings.Contains(val, delim) {
			return "", errors.Newf(errors.ErrValidation,
				"Unexpected input: value should not contain the delimiter %q", delim)
		}
	}

	return key + "<<" + delim + w.eol + val + w.eol + delim, nil
}
