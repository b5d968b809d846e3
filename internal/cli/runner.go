package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/stepkit/pkg/core"
	"github.com/arthur-debert/stepkit/pkg/errors"
)

// valueArg returns the value argument, reading stdin when it is "-" or
// missing so multiline values can be piped in.
func valueArg(cmd *cobra.Command, args []string, index int) (string, error) {
	if len(args) > index && args[index] != "-" {
		return args[index], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrResource, MsgErrReadStdin)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func newOutputCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "output",
		Short:   MsgOutputShort,
		GroupID: "runner",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <name> [value|-]",
		Short: MsgOutputSetShort,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			value, err := valueArg(cmd, args, 1)
			if err != nil {
				return err
			}
			return tk.SetOutput(args[0], value)
		},
	})
	return cmd
}

func newEnvCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "env",
		Short:   MsgEnvShort,
		GroupID: "runner",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "export <name> [value|-]",
		Short: MsgEnvExportShort,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			value, err := valueArg(cmd, args, 1)
			if err != nil {
				return err
			}
			return tk.ExportVariable(args[0], value)
		},
	})
	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "path",
		Short:   MsgPathShort,
		GroupID: "runner",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <dir>",
		Short: MsgPathAddShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			return tk.AddPath(args[0])
		},
	})
	return cmd
}

func newMaskCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "mask <value|->",
		Short:   MsgMaskShort,
		GroupID: "runner",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			secret, err := valueArg(cmd, args, 0)
			if err != nil {
				return err
			}
			return tk.SetSecret(secret)
		},
	}
}

func newStateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "state",
		Short:   MsgStateShort,
		GroupID: "runner",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "save <name> [value|-]",
		Short: MsgStateSaveShort,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			value, err := valueArg(cmd, args, 1)
			if err != nil {
				return err
			}
			return tk.SaveState(args[0], value)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "get <name>",
		Short: MsgStateGetShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tk.GetState(args[0]))
			return err
		},
	})
	return cmd
}

func newInputCmd(a *app) *cobra.Command {
	var opts core.InputOptions

	cmd := &cobra.Command{
		Use:     "input",
		Short:   MsgInputShort,
		GroupID: "runner",
	}
	cmd.PersistentFlags().BoolVar(&opts.Required, "required", false, MsgFlagRequired)
	cmd.PersistentFlags().BoolVar(&opts.KeepWhitespace, "keep-whitespace", false, MsgFlagKeepSpace)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <name>",
		Short: MsgInputGetShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			val, err := tk.GetInput(args[0], opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), val)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "bool <name>",
		Short: MsgInputBoolShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			val, err := tk.GetBooleanInput(args[0], opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), val)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "lines <name>",
		Short: MsgInputLinesShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			lines, err := tk.GetMultilineInput(args[0], opts)
			if err != nil {
				return err
			}
			for _, line := range lines {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	})
	return cmd
}

func newEchoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "echo <on|off>",
		Short:     MsgEchoShort,
		GroupID:   "log",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
			default:
				return errors.Newf(errors.ErrValidation, MsgErrEchoState, args[0])
			}
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			return tk.SetCommandEcho(enabled)
		},
	}
}

func newFailCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "fail <message|->",
		Short:   MsgFailShort,
		GroupID: "log",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.toolkit(cmd)
			if err != nil {
				return err
			}
			msg, err := valueArg(cmd, args, 0)
			if err != nil {
				return err
			}
			return tk.SetFailed(msg)
		},
	}
}
