package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmsadair/numeric/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	typeName string
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "numeric",
		Short:         "Compare and convert numeric values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.typeName, "type", "t", "float64",
		"numeric type of the operands: int, int8, int16, int32, int64, float32, float64")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(
		newSelectCmd("min", "Print the smaller of two values", flags),
		newSelectCmd("max", "Print the larger of two values", flags),
		newFeqCmd(flags),
		newCastCmd(flags),
		newBoundsCmd(flags),
	)

	return root
}

func newSelectCmd(op, short string, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   op + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd, flags)
			if err != nil {
				return err
			}
			out, err := dispatch(flags.typeName, request{op: op, args: args})
			if err != nil {
				return err
			}
			logger.Debugf("%s(%s, %s) as %s = %s", op, args[0], args[1], flags.typeName, out)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newFeqCmd(flags *rootFlags) *cobra.Command {
	var eps string

	cmd := &cobra.Command{
		Use:   "feq <a> <b>",
		Short: "Report whether two values are equal within a tolerance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd, flags)
			if err != nil {
				return err
			}
			out, err := dispatch(flags.typeName, request{op: "feq", args: args, eps: eps, logger: logger})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&eps, "eps", "", "tolerance, defaults to the tolerance of the type")

	return cmd
}

func newCastCmd(flags *rootFlags) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "cast <value>",
		Short: "Convert a value to another numeric type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := newLogger(cmd, flags); err != nil {
				return err
			}
			out, err := dispatch(flags.typeName, request{op: "cast", args: args, to: to})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "int64", "target numeric type")

	return cmd
}

func newBoundsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds",
		Short: "Print the smallest and largest finite values of the type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := newLogger(cmd, flags); err != nil {
				return err
			}
			out, err := dispatch(flags.typeName, request{op: "bounds"})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newLogger(cmd *cobra.Command, flags *rootFlags) (*logging.Logger, error) {
	level, err := logging.ParseLevel(flags.logLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewLogger(logging.WithWriter(cmd.ErrOrStderr()), logging.WithLevel(level))
}
