// Package commands implements the sortlist subcommands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bradenaw/sortedlist"
	"github.com/bradenaw/sortedlist/internal/config"
)

// session is what every subcommand gets after the root command has loaded configuration.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	header *color.Color
}

// NewRootCommand returns the sortlist command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	v := config.New()
	s := &session{}
	var (
		configPath string
		bindErr    error
	)

	rootCmd := &cobra.Command{
		Use:   "sortlist",
		Short: "Build sorted linked lists from the command line",
		Long: `sortlist builds a sorted doubly-linked list from its arguments, applies one
operation to it, and prints the resulting list.

Commands:
  insert    Insert values and print the list
  delete    Delete a value from the list
  search    Print every node holding a value
  merge     Merge two lists`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if bindErr != nil {
				return fmt.Errorf("binding flags: %w", bindErr)
			}
			return s.load(cmd, v, configPath)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ./sortlist.yaml)")
	flags.String("domain", config.DefaultDomain, `value domain: "int" or "string"`)
	flags.String("locale", "", "collation locale for strings (default: process locale)")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	flags.String("log-format", config.DefaultLogFormat, "log format: text or json")
	flags.Bool("no-color", false, "disable colored output")

	bindErr = errors.Join(
		v.BindPFlag("domain", flags.Lookup("domain")),
		v.BindPFlag("locale", flags.Lookup("locale")),
		v.BindPFlag("logging.level", flags.Lookup("log-level")),
		v.BindPFlag("logging.format", flags.Lookup("log-format")),
	)

	rootCmd.AddCommand(newInsertCommand(s))
	rootCmd.AddCommand(newDeleteCommand(s))
	rootCmd.AddCommand(newSearchCommand(s))
	rootCmd.AddCommand(newMergeCommand(s))

	return rootCmd
}

func (s *session) load(cmd *cobra.Command, v *viper.Viper, configPath string) error {
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return err
	}
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return err
	}
	if noColor {
		cfg.Output.Color = false
	}

	logger, err := buildLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.logger = logger
	s.out = cmd.OutOrStdout()
	s.header = color.New(color.FgCyan, color.Bold)
	if !cfg.Output.Color {
		s.header.DisableColor()
	}
	return nil
}

func buildLogger(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler), nil
}

// newList returns an empty list of the configured domain.
func (s *session) newList() (*sortedlist.ValueList, error) {
	domain, err := sortedlist.ParseDomain(s.cfg.Domain)
	if err != nil {
		return nil, err
	}
	var opts []sortedlist.Option
	if s.cfg.Locale != "" {
		opts = append(opts, sortedlist.WithLocale(s.cfg.Locale))
	}
	return sortedlist.NewValueList(domain, opts...)
}

// listOf returns a list of the configured domain holding args.
func (s *session) listOf(args []string) (*sortedlist.ValueList, error) {
	l, err := s.newList()
	if err != nil {
		return nil, err
	}
	for _, arg := range args {
		value, err := s.parse(arg)
		if err != nil {
			return nil, err
		}
		if err := l.Insert(value); err != nil {
			return nil, fmt.Errorf("inserting %q: %w", arg, err)
		}
	}
	s.logger.Debug("built list", "domain", l.Domain(), "nodes", l.Len())
	return l, nil
}

func (s *session) parse(arg string) (sortedlist.Value, error) {
	domain, err := sortedlist.ParseDomain(s.cfg.Domain)
	if err != nil {
		return sortedlist.Value{}, err
	}
	return sortedlist.ParseValue(domain, arg)
}

// render writes the list's rendering with its header line highlighted.
func (s *session) render(l fmt.Stringer) error {
	text := l.String()
	header, rest, _ := strings.Cut(text, "\n")
	if _, err := s.header.Fprintln(s.out, header); err != nil {
		return err
	}
	if rest != "" {
		if _, err := fmt.Fprintln(s.out, rest); err != nil {
			return err
		}
	}
	return nil
}
