package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-numfmt"
)

const storeEnv = "NUMFMT_STORE"

type cli struct {
	storeDSN  string
	min        int
	max        int
	noGrouping bool
	verbose    bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "numfmt",
		Short: "Locale and currency aware number formatting",
		Long: `numfmt formats numbers and currency amounts with the locale and currency
saved in a preference store.

Stores:
  memory              nothing is kept between runs
  file:<path>         JSON or YAML document
  sqlite:<path>       SQLite database
  redis://host:port   Redis server

The store defaults to $` + storeEnv + `, then to a YAML file in the user config dir.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.storeDSN, "store", "", "preference store (memory, file:<path>, sqlite:<path>, redis://...)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		c.numberCmd(),
		c.currencyCmd(),
		c.getCmd(),
		c.setCmd(),
	)

	return root
}

func (c *cli) addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&c.min, "min", 0, "minimum fraction digits")
	cmd.Flags().IntVar(&c.max, "max", 0, "maximum fraction digits")
	cmd.Flags().BoolVar(&c.noGrouping, "no-grouping", false, "disable grouping separators")
}

func (c *cli) numberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "number <value>",
		Short: "Format a decimal number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.format(cmd, args[0], (*numfmt.Session).FormatNumber)
		},
	}
	c.addFormatFlags(cmd)
	return cmd
}

func (c *cli) currencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency <value>",
		Short: "Format an amount in the saved currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.format(cmd, args[0], (*numfmt.Session).FormatCurrency)
		},
	}
	c.addFormatFlags(cmd)
	return cmd
}

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the saved locale and currency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(session *numfmt.Session) error {
				fmt.Fprintf(cmd.OutOrStdout(), "locale: %s\ncurrency: %s\n", session.Locale(), session.Currency())
				return nil
			})
		},
	}
}

func (c *cli) setCmd() *cobra.Command {
	set := &cobra.Command{
		Use:   "set",
		Short: "Save a preference",
	}

	set.AddCommand(
		&cobra.Command{
			Use:   "locale <tag>",
			Short: "Save the locale, e.g. de-DE",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withSession(cmd, func(session *numfmt.Session) error {
					session.SetLocale(args[0])
					fmt.Fprintf(cmd.OutOrStdout(), "locale: %s\n", args[0])
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "currency <code>",
			Short: "Save the ISO 4217 currency, e.g. EUR",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withSession(cmd, func(session *numfmt.Session) error {
					session.SetCurrency(args[0])
					fmt.Fprintf(cmd.OutOrStdout(), "currency: %s\n", args[0])
					return nil
				})
			},
		},
	)

	return set
}

type formatFunc func(*numfmt.Session, float64, ...numfmt.FormatOption) (string, error)

func (c *cli) format(cmd *cobra.Command, raw string, format formatFunc) error {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", raw, err)
	}

	opts := c.formatOptions(cmd)

	return c.withSession(cmd, func(session *numfmt.Session) error {
		out, err := format(session, value, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	})
}

// formatOptions returns nil when no format flag was given so the session
// applies its defaults.
func (c *cli) formatOptions(cmd *cobra.Command) []numfmt.FormatOption {
	flags := cmd.Flags()
	if !flags.Changed("min") && !flags.Changed("max") && !flags.Changed("no-grouping") {
		return nil
	}

	opts := []numfmt.FormatOption{numfmt.WithGrouping(!c.noGrouping)}
	if flags.Changed("min") {
		opts = append(opts, numfmt.WithMinFractionDigits(c.min))
	}
	if flags.Changed("max") {
		opts = append(opts, numfmt.WithMaxFractionDigits(c.max))
	}
	return opts
}

// withSession opens the store, runs fn and closes the session so pending
// preference writes land before the process exits.
func (c *cli) withSession(cmd *cobra.Command, fn func(*numfmt.Session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dsn := c.storeDSN
	if dsn == "" {
		dsn = os.Getenv(storeEnv)
	}

	store, closeStore, err := openStore(ctx, dsn)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			c.logger.Warn("store close failed", zap.Error(err))
		}
	}()

	session, err := numfmt.NewSession(ctx,
		numfmt.WithStore(store),
		numfmt.WithLogger(c.logger),
	)
	if err != nil {
		return err
	}

	runErr := fn(session)

	if err := session.Close(ctx); err != nil && runErr == nil {
		runErr = fmt.Errorf("flush preferences: %w", err)
	}
	return runErr
}
