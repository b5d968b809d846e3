package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/stepkit/pkg/annotation"
	"github.com/arthur-debert/stepkit/pkg/core"
	"github.com/arthur-debert/stepkit/pkg/errors"
)

func newAnnotateCmd(a *app) *cobra.Command {
	var (
		props  annotation.Properties
		noFail bool
	)

	cmd := &cobra.Command{
		Use:     "annotate",
		Short:   MsgAnnotateShort,
		GroupID: "log",
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&props.Title, "title", "", "Annotation title")
	flags.StringVar(&props.File, "file", "", "File the annotation refers to")
	flags.IntVar(&props.StartLine, "line", 0, "Start line")
	flags.IntVar(&props.EndLine, "end-line", 0, "End line")
	flags.IntVar(&props.StartColumn, "col", 0, "Start column")
	flags.IntVar(&props.EndColumn, "end-column", 0, "End column")

	annotate := func(use, short string, fn func(tk *core.Toolkit, msg string) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <message|->",
			Short: short,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tk, err := a.toolkit(cmd)
				if err != nil {
					return err
				}
				msg, err := valueArg(cmd, args, 0)
				if err != nil {
					return err
				}
				return fn(tk, msg)
			},
		}
	}

	errorCmd := annotate("error", "Create an error annotation and fail the step",
		func(tk *core.Toolkit, msg string) error {
			err := tk.Error(msg, props)
			if _, ok := errors.AsFailure(err); ok && noFail {
				return nil
			}
			return err
		})
	errorCmd.Flags().BoolVar(&noFail, "no-fail", false, "Exit successfully after reporting the error")

	cmd.AddCommand(errorCmd)
	cmd.AddCommand(annotate("warning", "Create a warning annotation",
		func(tk *core.Toolkit, msg string) error { return tk.Warning(msg, props) }))
	cmd.AddCommand(annotate("notice", "Create a notice annotation",
		func(tk *core.Toolkit, msg string) error { return tk.Notice(msg, props) }))
	cmd.AddCommand(annotate("debug", "Write a debug message",
		func(tk *core.Toolkit, msg string) error { return tk.Debug(msg) }))
	return cmd
}

func newGroupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "group",
		Short:   MsgGroupShort,
		GroupID: "log",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "start <name>",
		Short: MsgGroupStartShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			return tk.StartGroup(args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "end",
		Short: MsgGroupEndShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			return tk.EndGroup()
		},
	})
	return cmd
}
