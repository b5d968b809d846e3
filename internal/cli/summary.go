package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/arthur-debert/stepkit/pkg/summary"
	"github.com/arthur-debert/stepkit/pkg/ui"
)

func newSummaryCmd(a *app) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:     "summary",
		Short:   MsgSummaryShort,
		Long:    MsgSummaryLong,
		Example: MsgSummaryExample,
		GroupID: "runner",
	}
	cmd.PersistentFlags().BoolVar(&overwrite, "overwrite", false, MsgFlagOverwrite)

	// element builds a subcommand that adds to the buffer through build
	// and flushes it to the summary file.
	element := func(c *cobra.Command, build func(cmd *cobra.Command, s *summary.Summary, args []string) error) *cobra.Command {
		c.RunE = func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			s := tk.Summary()
			if err := build(cmd, s, args); err != nil {
				return err
			}
			_, err = s.Write(summary.WriteOptions{Overwrite: overwrite})
			return err
		}
		return c
	}

	var level string
	heading := element(&cobra.Command{
		Use:   "heading <text>",
		Short: "Add a heading",
		Args:  cobra.ExactArgs(1),
	}, func(cmd *cobra.Command, s *summary.Summary, args []string) error {
		s.AddHeading(args[0], summary.ParseHeadingLevel(level))
		return nil
	})
	heading.Flags().StringVar(&level, "level", "1", "Heading level, 1 to 6")

	var addEOL bool
	raw := element(&cobra.Command{
		Use:   "raw <text|->",
		Short: "Add raw text or markdown",
		Args:  cobra.MaximumNArgs(1),
	}, func(cmd *cobra.Command, s *summary.Summary, args []string) error {
		text, err := valueArg(cmd, args, 0)
		if err != nil {
			return err
		}
		s.AddRaw(text, addEOL)
		return nil
	})
	raw.Flags().BoolVar(&addEOL, "eol", true, "Append a line ending")

	var ordered bool
	list := element(&cobra.Command{
		Use:   "list <item>...",
		Short: "Add a bulleted or numbered list",
		Args:  cobra.MinimumNArgs(1),
	}, func(cmd *cobra.Command, s *summary.Summary, args []string) error {
		s.AddList(args, ordered)
		return nil
	})
	list.Flags().BoolVar(&ordered, "ordered", false, "Render a numbered list")

	var rowsFile string
	table := element(&cobra.Command{
		Use:   "table --rows <file|->",
		Short: "Add a table from YAML rows",
		Long: `Add a table. Rows are read from a YAML file holding a list of rows.
Each cell is either a plain string or a mapping with data, header, colspan
and rowspan keys.`,
		Args: cobra.NoArgs,
	}, func(cmd *cobra.Command, s *summary.Summary, args []string) error {
		data, err := readFileArg(cmd, rowsFile)
		if err != nil {
			return errors.Wrapf(err, errors.ErrResource, MsgErrReadRows, rowsFile)
		}
		rows, err := summary.ParseRows(data)
		if err != nil {
			return err
		}
		s.AddTable(rows)
		return nil
	})
	table.Flags().StringVar(&rowsFile, "rows", "-", "YAML file with table rows, - for stdin")

	var lang string
	code := element(&cobra.Command{
		Use:   "code [code|-]",
		Short: "Add a code block",
		Args:  cobra.MaximumNArgs(1),
	}, func(cmd *cobra.Command, s *summary.Summary, args []string) error {
		text, err := valueArg(cmd, args, 0)
		if err != nil {
			return err
		}
		s.AddCodeBlock(text, lang)
		return nil
	})
	code.Flags().StringVar(&lang, "lang", "", "Language for syntax highlighting")

	link := element(&cobra.Command{
		Use:   "link <text> <href>",
		Short: "Add a link",
		Args:  cobra.ExactArgs(2),
	}, func(cmd *cobra.Command, s *summary.Summary, args []string) error {
		s.AddLink(args[0], args[1])
		return nil
	})

	var img summary.ImageOptions
	image := element(&cobra.Command{
		Use:   "image <src> <alt>",
		Short: "Add an image",
		Args:  cobra.ExactArgs(2),
	}, func(cmd *cobra.Command, s *summary.Summary, args []string) error {
		var opts *summary.ImageOptions
		if img.Width != "" || img.Height != "" {
			opts = &img
		}
		s.AddImage(args[0], args[1], opts)
		return nil
	})
	image.Flags().StringVar(&img.Width, "width", "", "Image width in pixels")
	image.Flags().StringVar(&img.Height, "height", "", "Image height in pixels")

	var cite string
	quote := element(&cobra.Command{
		Use:   "quote <text>",
		Short: "Add a quote",
		Args:  cobra.ExactArgs(1),
	}, func(cmd *cobra.Command, s *summary.Summary, args []string) error {
		s.AddQuote(args[0], cite)
		return nil
	})
	quote.Flags().StringVar(&cite, "cite", "", "Citation URL")

	details := element(&cobra.Command{
		Use:   "details <label> [content|-]",
		Short: "Add a collapsible details element",
		Args:  cobra.RangeArgs(1, 2),
	}, func(cmd *cobra.Command, s *summary.Summary, args []string) error {
		content, err := valueArg(cmd, args, 1)
		if err != nil {
			return err
		}
		s.AddDetails(args[0], content)
		return nil
	})

	separator := element(&cobra.Command{
		Use:   "separator",
		Short: "Add a horizontal rule",
		Args:  cobra.NoArgs,
	}, func(cmd *cobra.Command, s *summary.Summary, args []string) error {
		s.AddSeparator()
		return nil
	})

	lineBreak := element(&cobra.Command{
		Use:   "break",
		Short: "Add a line break",
		Args:  cobra.NoArgs,
	}, func(cmd *cobra.Command, s *summary.Summary, args []string) error {
		s.AddBreak()
		return nil
	})

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the summary file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			_, err = tk.Summary().Clear()
			return err
		},
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Preview the summary file in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			content, err := tk.Summary().ReadFile()
			if err != nil {
				return err
			}
			f, err := ui.ParseFormat(format)
			if err != nil {
				return errors.Wrap(err, errors.ErrValidation, "invalid --format")
			}
			r, err := ui.NewRenderer(f, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderResult(ui.Markdown(content))
		},
	}
	show.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)

	cmd.AddCommand(heading, raw, list, table, code, link, image, quote, details, separator, lineBreak, clearCmd, show)
	return cmd
}

// readFileArg reads path, or stdin when path is "-"
func readFileArg(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
