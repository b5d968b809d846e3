package summary

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/arthur-debert/stepkit/pkg/command"
	"github.com/arthur-debert/stepkit/pkg/environ"
	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/arthur-debert/stepkit/pkg/filesystem"
	"github.com/arthur-debert/stepkit/pkg/logging"
	"github.com/arthur-debert/stepkit/pkg/types"
)

// DefaultCommand is the file command whose variable names the summary
// file: GITHUB_STEP_SUMMARY with the default prefix.
const DefaultCommand = "STEP_SUMMARY"

// Options configures a Summary. Zero values select the defaults.
type Options struct {
	Command string
	EOL     string
}

// WriteOptions controls Write.
type WriteOptions struct {
	// Overwrite replaces the file contents instead of appending.
	Overwrite bool
}

// ImageOptions adds optional size attributes to an image.
type ImageOptions struct {
	Width  string
	Height string
}

// Summary is a job summary buffer bound to the runner's summary file.
type Summary struct {
	fs       types.FS
	resolver environ.Resolver
	command  string
	eol      string

	buffer   strings.Builder
	filePath string
}

// New returns an empty Summary.
func New(fsys types.FS, resolver environ.Resolver, opts Options) *Summary {
	s := &Summary{
		fs:       fsys,
		resolver: resolver,
		command:  opts.Command,
		eol:      opts.EOL,
	}
	if s.command == "" {
		s.command = DefaultCommand
	}
	if s.eol == "" {
		s.eol = command.PlatformEOL()
	}
	return s
}

// path resolves and caches the summary file path.
func (s *Summary) path() (string, error) {
	if s.filePath != "" {
		return s.filePath, nil
	}

	p, err := s.resolver.Resolve(s.command)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfiguration,
			"Unable to find the job summary file. Check if your runtime environment supports job summaries")
	}
	if !filesystem.Exists(s.fs, p) {
		return "", errors.Newf(errors.ErrResource,
			"Unable to access summary file: '%s'. Check if the file has correct read/write permissions.", p)
	}

	s.filePath = p
	return p, nil
}

// Write flushes the buffer to the summary file and empties it.
func (s *Summary) Write(opts WriteOptions) (*Summary, error) {
	logger := logging.GetLogger("summary")

	p, err := s.path()
	if err != nil {
		return s, err
	}

	data := []byte(s.Stringify())
	if opts.Overwrite {
		err = s.fs.WriteFile(p, data, 0644)
	} else {
		err = s.fs.AppendFile(p, data)
	}
	if err != nil {
		return s, errors.Wrap(err, errors.ErrResource, "failed to write job summary").
			WithDetail("path", p)
	}

	logger.Debug().Str("path", p).Bool("overwrite", opts.Overwrite).Int("bytes", len(data)).Msg("wrote job summary")
	return s.EmptyBuffer(), nil
}

// Clear empties the buffer and truncates the summary file.
func (s *Summary) Clear() (*Summary, error) {
	return s.EmptyBuffer().Write(WriteOptions{Overwrite: true})
}

// ReadFile returns what has been written to the summary file so far.
func (s *Summary) ReadFile() (string, error) {
	p, err := s.path()
	if err != nil {
		return "", err
	}
	data, err := s.fs.ReadFile(p)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrResource, "failed to read job summary").
			WithDetail("path", p)
	}
	return string(data), nil
}

// Stringify returns the buffer contents.
func (s *Summary) Stringify() string {
	return s.buffer.String()
}

// IsEmptyBuffer reports whether nothing is buffered.
func (s *Summary) IsEmptyBuffer() bool {
	return s.buffer.Len() == 0
}

// EmptyBuffer discards buffered content without writing it.
func (s *Summary) EmptyBuffer() *Summary {
	s.buffer.Reset()
	return s
}

// AddRaw appends text, optionally followed by an EOL.
func (s *Summary) AddRaw(text string, addEOL bool) *Summary {
	s.buffer.WriteString(text)
	if addEOL {
		return s.AddEOL()
	}
	return s
}

// AddEOL appends the line ending.
func (s *Summary) AddEOL() *Summary {
	return s.AddRaw(s.eol, false)
}

func (s *Summary) addElement(element string) *Summary {
	return s.AddRaw(element, true)
}

// AddCodeBlock appends a <pre><code> block; lang is optional.
func (s *Summary) AddCodeBlock(code, lang string) *Summary {
	return s.addElement(wrap("pre", wrap("code", code), optional(attr{"lang", lang})...))
}

// AddList appends a <ul>, or an <ol> when ordered, with one <li> per item.
func (s *Summary) AddList(items []string, ordered bool) *Summary {
	tag := "ul"
	if ordered {
		tag = "ol"
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString(wrap("li", item))
	}
	return s.addElement(wrap(tag, b.String()))
}

// AddTable appends a <table> built from rows.
func (s *Summary) AddTable(rows []Row) *Summary {
	return s.addElement(renderTable(rows))
}

// AddDetails appends a collapsible <details> element.
func (s *Summary) AddDetails(label, content string) *Summary {
	return s.addElement(wrap("details", wrap("summary", label)+content))
}

// AddImage appends an <img>; opts may be nil.
func (s *Summary) AddImage(src, alt string, opts *ImageOptions) *Summary {
	attrs := []attr{{"src", src}, {"alt", alt}}
	if opts != nil {
		attrs = append(attrs, optional(attr{"width", opts.Width}, attr{"height", opts.Height})...)
	}
	return s.addElement(wrap("img", "", attrs...))
}

// AddHeading appends <h1> through <h6>. Levels outside 1..6 render as h1.
func (s *Summary) AddHeading(text string, level int) *Summary {
	if level < 1 || level > 6 {
		level = 1
	}
	return s.addElement(wrap("h"+strconv.Itoa(level), text))
}

// AddSeparator appends <hr>.
func (s *Summary) AddSeparator() *Summary {
	return s.addElement(wrap("hr", ""))
}

// AddBreak appends <br>.
func (s *Summary) AddBreak() *Summary {
	return s.addElement(wrap("br", ""))
}

// AddQuote appends a <blockquote>; cite is optional.
func (s *Summary) AddQuote(text, cite string) *Summary {
	return s.addElement(wrap("blockquote", text, optional(attr{"cite", cite})...))
}

// AddLink appends an <a> element.
func (s *Summary) AddLink(text, href string) *Summary {
	return s.addElement(wrap("a", text, attr{"href", href}))
}

// ParseHeadingLevel coerces loosely typed input to a heading level.
// Anything that is not an integer in 1..6 yields 1.
func ParseHeadingLevel(v any) int {
	var level float64
	switch val := v.(type) {
	case nil:
		return 1
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 1
		}
		level = f
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 1
		}
		level = f
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			level = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			level = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			level = rv.Float()
		default:
			return 1
		}
	}
	if math.IsInf(level, 0) || math.IsNaN(level) || level != math.Trunc(level) || level < 1 || level > 6 {
		return 1
	}
	return int(level)
}
