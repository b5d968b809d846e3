package command

import (
	"io"
	"runtime"

	"github.com/arthur-debert/stepkit/pkg/coerce"
	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/arthur-debert/stepkit/pkg/logging"
)

// Line ending modes accepted by ResolveEOL.
const (
	EOLAuto = "auto"
	EOLLF   = "lf"
	EOLCRLF = "crlf"
)

// PlatformEOL returns the end-of-line sequence of the host platform.
func PlatformEOL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// ResolveEOL maps a configured mode to its sequence. Unknown modes
// behave like EOLAuto.
func ResolveEOL(mode string) string {
	switch mode {
	case EOLLF:
		return "\n"
	case EOLCRLF:
		return "\r\n"
	default:
		return PlatformEOL()
	}
}

// Encoder writes commands to an output stream, one Write per line.
type Encoder struct {
	w   io.Writer
	eol string
}

// NewEncoder returns an Encoder writing to w. An empty eol means the
// platform line ending.
func NewEncoder(w io.Writer, eol string) *Encoder {
	if eol == "" {
		eol = PlatformEOL()
	}
	return &Encoder{w: w, eol: eol}
}

// EOL returns the line ending this encoder terminates lines with.
func (e *Encoder) EOL() string {
	return e.eol
}

// Issue writes the command built from name, props and message. For the
// error command it returns an *errors.Failure carrying the message once
// the line is written.
func (e *Encoder) Issue(name string, props Properties, message any) error {
	return e.IssueCommand(Command{Name: name, Properties: props, Message: message})
}

// IssueCommand writes cmd as a single line.
func (e *Encoder) IssueCommand(cmd Command) error {
	line := cmd.String()
	logger := logging.GetLogger("command")
	logger.Trace().Str("command", cmd.Name).Msg("issuing command")

	if err := e.write(line + e.eol); err != nil {
		return err
	}

	if cmd.Name == NameError {
		return errors.NewFailure(coerce.ToCommandValue(cmd.Message))
	}
	return nil
}

// WriteLine writes text followed by the line ending, unescaped.
func (e *Encoder) WriteLine(text string) error {
	return e.write(text + e.eol)
}

func (e *Encoder) write(s string) error {
	if _, err := io.WriteString(e.w, s); err != nil {
		return errors.Wrap(err, errors.ErrResource, "failed to write to output stream")
	}
	return nil
}
