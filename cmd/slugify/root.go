package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/urislug/pkg/config"
	"github.com/dmitrymomot/urislug/pkg/logger"
	"github.com/dmitrymomot/urislug/pkg/randomname"
	"github.com/dmitrymomot/urislug/pkg/slug"
)

type flags struct {
	space      string
	separator  string
	modifier   string
	multiplier string
	encoding   string
	strict     bool

	fallback string
	store    string
	taken    []string
	claim    bool

	envFiles  []string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "slugify [flags] [name...]",
		Short: "Turn names into unique, URI-safe slugs",
		Long: `slugify escapes each name, joins them with the separator and prints the slug.

Defaults are read from SLUG_* environment variables (and .env); flags win.
With --store the slug is made unique against existing ones:

  slugify "Arthur Russell" "Calling Out of Context"
  slugify --store memory --taken John-Doe --taken John-Doe-1 "John Doe"
  slugify --store redis --claim "John Doe"        # REDIS_URL, REDIS_SLUG_KEY
  slugify --store postgres --claim "John Doe"     # PG_CONN_URL, PG_SLUG_TABLE
  slugify --store mongo --claim "John Doe"        # MONGODB_URL, MONGODB_SLUG_COLLECTION`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.space, "space", "", "replacement for spaces and slashes inside names (default from SLUG_SPACE or \"-\")")
	fs.StringVar(&f.separator, "separator", "", "string placed between names (default from SLUG_SEPARATOR or \"/\")")
	fs.StringVar(&f.modifier, "modifier", "", "text appended in parentheses")
	fs.StringVar(&f.multiplier, "multiplier", "", "integer step or repeated string used to disambiguate (default 1)")
	fs.StringVar(&f.encoding, "encoding", "", "IANA charset used for percent-encoding (default UTF-8)")
	fs.BoolVar(&f.strict, "strict", false, "fail instead of returning the base slug when no unique candidate is found")
	fs.StringVar(&f.fallback, "fallback", "token", "name source when no names are given: token or words")
	fs.StringVar(&f.store, "store", "none", "uniqueness store: none, memory, redis, postgres or mongo")
	fs.StringArrayVar(&f.taken, "taken", nil, "slug already in use (memory store, repeatable)")
	fs.BoolVar(&f.claim, "claim", false, "reserve the resulting slug in the store")
	fs.StringSliceVar(&f.envFiles, "env-file", nil, "dotenv files to load before reading SLUG_* variables")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")

	return cmd
}

func run(cmd *cobra.Command, f *flags, names []string) error {
	log, err := newLogger(cmd, f)
	if err != nil {
		return err
	}

	var cfg slug.Config
	if err := config.Load(&cfg, f.envFiles...); err != nil {
		return fmt.Errorf("load slug config: %w", err)
	}
	applyFlags(cmd, f, &cfg)

	opts := append(cfg.Options(), slug.WithLogger(log))
	switch f.fallback {
	case "token":
	case "words":
		opts = append(opts, slug.Fallback(randomname.Simple))
	default:
		return fmt.Errorf("unknown fallback %q: must be token or words", f.fallback)
	}

	ctx := cmd.Context()
	check, closeStore, err := openStore(ctx, f, log)
	if err != nil {
		return err
	}
	defer closeStore()

	result, err := slug.GenerateUnique(ctx, names, check, opts...)
	if err != nil {
		log.ErrorContext(ctx, "slug generation failed", logger.Names(names), logger.Error(err))
		return err
	}

	log.InfoContext(ctx, "slug generated", logger.Names(names), logger.Slug(result))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}

// applyFlags overrides environment defaults with explicitly set flags.
func applyFlags(cmd *cobra.Command, f *flags, cfg *slug.Config) {
	fs := cmd.Flags()
	if fs.Changed("space") {
		cfg.Space = f.space
	}
	if fs.Changed("separator") {
		cfg.Separator = f.separator
	}
	if fs.Changed("modifier") {
		cfg.Modifier = f.modifier
	}
	if fs.Changed("multiplier") {
		cfg.Multiplier = f.multiplier
	}
	if fs.Changed("encoding") {
		cfg.Encoding = f.encoding
	}
	if fs.Changed("strict") {
		cfg.Strict = f.strict
	}
}

func newLogger(cmd *cobra.Command, f *flags) (*slog.Logger, error) {
	level, err := logger.ParseLevel(f.logLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(f.logFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component("slugify")),
	), nil
}
