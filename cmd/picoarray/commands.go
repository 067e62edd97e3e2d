package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-array/array"
	"github.com/cwbudde/algo-array/internal/config"
	"github.com/cwbudde/algo-array/internal/logging"
)

func newRootCmd(c *cli) *cobra.Command {
	var (
		configPath string
		logLevel   string
		precision  int
	)

	root := &cobra.Command{
		Use:           "picoarray",
		Short:         "Elementwise arithmetic on fixed-length float64 arrays",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				c.cfg = cfg
			}
			flags := cmd.Flags()
			if flags.Changed("precision") {
				c.cfg.Precision = precision
			}
			if flags.Changed("log-level") {
				c.cfg.LogLevel = logLevel
			}
			if err := c.cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(c.cfg.LogLevel, c.stderr)
			if err != nil {
				return err
			}
			c.logger = logger
			c.logger.Debug("configured",
				zap.String("config", configPath),
				zap.Int("precision", c.cfg.Precision),
				zap.String("command", cmd.Name()),
			)
			return nil
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to a TOML config file")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.IntVarP(&precision, "precision", "p", -1, "digits after the decimal point, -1 for shortest form")

	root.AddCommand(
		c.emptyCmd(),
		c.unaryCmd("sin", "Elementwise sine (radians)", array.Sin),
		c.unaryCmd("cos", "Elementwise cosine (radians)", array.Cos),
		c.binaryCmd("add", "Elementwise sum of two arrays", array.OpAdd),
		c.binaryCmd("mul", "Multiply an array by a scalar (either order)", array.OpMul),
		c.binaryCmd("div", "Divide an array by a scalar", array.OpDiv),
		c.lenCmd(),
		c.indexCmd(),
		c.evalCmd(),
	)
	return root
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s expects %d argument(s), got %d", errUsage, cmd.Name(), n, len(args))
		}
		return nil
	}
}

func (c *cli) emptyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "empty SIZE",
		Short: "Print a zero-filled array of SIZE elements",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			a, err := array.Empty(n)
			if err != nil {
				return err
			}
			return c.printArray(a)
		},
	}
}

func (c *cli) unaryCmd(name, short string, fn func(*array.Array) *array.Array) *cobra.Command {
	return &cobra.Command{
		Use:   name + " VALUES",
		Short: short,
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := parseValues(args[0])
			if err != nil {
				return err
			}
			c.logger.Debug("apply", zap.String("fn", name), zap.Int("size", a.Len()))
			return c.printArray(fn(a))
		},
	}
}

func (c *cli) binaryCmd(name, short string, op array.Op) *cobra.Command {
	return &cobra.Command{
		Use:   name + " LHS RHS",
		Short: short,
		Args:  exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.eval(op, args[0], args[1])
		},
	}
}

func (c *cli) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval LHS OP RHS",
		Short: "Evaluate LHS OP RHS with OP one of + * /",
		Args:  exactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			op, err := array.ParseOp(args[1])
			if err != nil {
				return err
			}
			return c.eval(op, args[0], args[2])
		},
	}
}

func (c *cli) eval(op array.Op, lhsArg, rhsArg string) error {
	lhs, err := parseOperand(lhsArg)
	if err != nil {
		return err
	}
	rhs, err := parseOperand(rhsArg)
	if err != nil {
		return err
	}
	c.logger.Debug("eval", zap.Stringer("op", op), zap.Stringer("lhs", lhs), zap.Stringer("rhs", rhs))

	out, err := array.Eval(op, lhs, rhs)
	if err != nil {
		return err
	}
	return c.printArray(out)
}

func (c *cli) lenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "len VALUES",
		Short: "Print the number of elements",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := parseValues(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.stdout, a.Len())
			return err
		},
	}
}

func (c *cli) indexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index VALUES I",
		Short: "Print the element at zero-based index I",
		Args:  exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := parseValues(args[0])
			if err != nil {
				return err
			}
			i, err := parseInt(args[1])
			if err != nil {
				return err
			}
			v, err := a.At(i)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.stdout, c.formatScalar(v))
			return err
		},
	}
}

func (c *cli) printArray(a *array.Array) error {
	_, err := fmt.Fprintln(c.stdout, a.Format(c.cfg.Precision))
	return err
}

func (c *cli) formatScalar(v float64) string {
	if c.cfg.Precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', c.cfg.Precision, 64)
}
