package command

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/arthur-debert/stepkit/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandString(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "no_properties",
			cmd:  Command{Name: "warning", Message: "Warning"},
			want: "::warning::Warning",
		},
		{
			name: "empty_name_uses_placeholder",
			cmd:  Command{Message: "x"},
			want: "::missing.command::x",
		},
		{
			name: "nil_message",
			cmd:  Command{Name: "endgroup"},
			want: "::endgroup::",
		},
		{
			name: "properties_in_insertion_order",
			cmd: Command{
				Name: "error",
				Properties: Properties{
					{"title", "A title"},
					{"file", "root/test.txt"},
					{"line", 5},
					{"endLine", 5},
					{"col", 1},
					{"endColumn", 2},
				},
				Message: "Error: this is my error message",
			},
			want: "::error title=A title,file=root/test.txt,line=5,endLine=5,col=1,endColumn=2::Error: this is my error message",
		},
		{
			name: "empty_values_skipped_without_trailing_separator",
			cmd: Command{
				Name:       "notice",
				Properties: Properties{{"title", ""}, {"file", "a.go"}, {"line", nil}},
				Message:    "n",
			},
			want: "::notice file=a.go::n",
		},
		{
			name: "all_values_empty",
			cmd: Command{
				Name:       "notice",
				Properties: Properties{{"title", ""}, {"line", nil}},
				Message:    "n",
			},
			want: "::notice::n",
		},
		{
			name: "falsy_values_skipped",
			cmd: Command{
				Name:       "notice",
				Properties: Properties{{"line", 0}, {"flag", false}, {"file", "a.go"}, {"col", 0.0}},
				Message:    "m",
			},
			want: "::notice file=a.go::m",
		},
		{
			name: "property_escaping",
			cmd: Command{
				Name:       "set-env",
				Properties: Properties{{"name", "special char var \r\n,:"}},
				Message:    "special val",
			},
			want: "::set-env name=special char var %0D%0A%2C%3A::special val",
		},
		{
			name: "message_escaping_keeps_colon_and_comma",
			cmd:  Command{Name: "error", Message: "Failure \r\n\nmessage\r a:b,c 100%"},
			want: "::error::Failure %0D%0A%0Amessage%0D a:b,c 100%25",
		},
		{
			name: "bool_and_number_messages",
			cmd:  Command{Name: "set-output", Properties: Properties{{"name", "some output"}}, Message: 1.01},
			want: "::set-output name=some output::1.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestProperties(t *testing.T) {
	var p Properties
	p = p.Set("name", "a")
	p = p.Set("file", "b")
	p = p.Set("name", "c")

	require.Len(t, p, 2)
	assert.Equal(t, "name", p[0].Key)
	v, ok := p.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "c", v)

	_, ok = p.Get("missing")
	assert.False(t, ok)
}

// unescape reverses the percent escapes for the given set.
func unescape(s string, property bool) string {
	pairs := []string{"%0D", "\r", "%0A", "\n"}
	if property {
		pairs = append(pairs, "%3A", ":", "%2C", ",")
	}
	pairs = append(pairs, "%25", "%")
	return strings.NewReplacer(pairs...).Replace(s)
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"%0A literal",
		"a%b\r\nc:d,e",
		"%%%:::,,,\r\r\n\n",
		"%25 already escaped",
	}

	for _, in := range inputs {
		escapedData := EscapeData(in)
		assert.NotContains(t, escapedData, "\n")
		assert.NotContains(t, escapedData, "\r")
		assert.Equal(t, in, unescape(escapedData, false), "data %q", in)

		escapedProp := EscapeProperty(in)
		assert.NotContains(t, escapedProp, ":")
		assert.NotContains(t, escapedProp, ",")
		assert.Equal(t, in, unescape(escapedProp, true), "property %q", in)
	}
}

func TestEncoderIssue(t *testing.T) {
	t.Run("one_write_per_command", func(t *testing.T) {
		var rec testutil.WriteRecorder
		enc := NewEncoder(&rec, "\n")

		require.NoError(t, enc.Issue(NameWarning, nil, "Warning"))
		require.NoError(t, enc.Issue(NameAddMask, nil, "secret val"))

		assert.Equal(t, []string{"::warning::Warning\n", "::add-mask::secret val\n"}, rec.Calls())
	})

	t.Run("error_command_returns_failure", func(t *testing.T) {
		var rec testutil.WriteRecorder
		enc := NewEncoder(&rec, "\n")

		err := enc.Issue(NameError, Properties{}, "a % b")

		assert.Equal(t, []string{"::error::a %25 b\n"}, rec.Calls())
		f, ok := errors.AsFailure(err)
		require.True(t, ok)
		assert.Equal(t, "a % b", f.Message)
		assert.Equal(t, errors.ExitFailure, f.ExitCode)
	})

	t.Run("crlf_line_ending", func(t *testing.T) {
		var rec testutil.WriteRecorder
		enc := NewEncoder(&rec, ResolveEOL(EOLCRLF))

		require.NoError(t, enc.Issue(NameEcho, nil, "on"))
		assert.Equal(t, []string{"::echo::on\r\n"}, rec.Calls())
	})

	t.Run("write_line", func(t *testing.T) {
		var rec testutil.WriteRecorder
		enc := NewEncoder(&rec, "\n")

		require.NoError(t, enc.WriteLine(""))
		require.NoError(t, enc.WriteLine("plain"))
		assert.Equal(t, []string{"\n", "plain\n"}, rec.Calls())
	})

	t.Run("write_failure_is_resource_error", func(t *testing.T) {
		enc := NewEncoder(failingWriter{}, "\n")

		err := enc.Issue(NameError, nil, "boom")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrResource))
		_, isFailure := errors.AsFailure(err)
		assert.False(t, isFailure)
	})
}

func TestResolveEOL(t *testing.T) {
	assert.Equal(t, "\n", ResolveEOL(EOLLF))
	assert.Equal(t, "\r\n", ResolveEOL(EOLCRLF))
	assert.Equal(t, PlatformEOL(), ResolveEOL(EOLAuto))
	assert.Equal(t, PlatformEOL(), ResolveEOL("bogus"))
	assert.Equal(t, PlatformEOL(), NewEncoder(nil, "").EOL())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, stderrors.New("closed pipe") }
