package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/stepkit/internal/version"
	"github.com/arthur-debert/stepkit/pkg/config"
	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/arthur-debert/stepkit/pkg/filecmd"
	"github.com/arthur-debert/stepkit/pkg/ui"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			out, err := config.Generate(cfg)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "info",
		Short:   MsgInfoShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			info, err := tk.RunnerInfo()
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

			resolver := tk.Resolver()
			values := ui.KeyValues{
				"actions":   strconv.FormatBool(info.Actions),
				"debug":     strconv.FormatBool(info.Debug),
				"os":        info.OS,
				"arch":      info.Arch,
				"temp":      info.Temp,
				"workspace": info.Workspace,
				"action":    info.Action,
				"run_id":    info.RunID,
			}
			commands := []string{
				filecmd.CommandEnv, filecmd.CommandPath, filecmd.CommandOutput,
				filecmd.CommandState, tk.Config().Summary.Command,
			}
			for _, c := range commands {
				values["file."+c] = tk.Env().Get(resolver.Variable(c))
			}
			return r.RenderResult(values)
		},
	}
	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return errors.Newf(errors.ErrValidation, MsgErrUnknownType, "shell", args[0])
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrResource, MsgErrManDir, dir)
			}
			header := &doc.GenManHeader{
				Title:   "STEPKIT",
				Section: "1",
				Source:  "stepkit " + version.Version,
				Manual:  "stepkit manual",
			}
			return doc.GenManTree(cmd.Root(), header, dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "man", "Directory to write man pages to")
	return cmd
}
