// Command stripxss removes dangerous HTML tags from files or standard input
// and writes the sanitized text to standard output.
//
// Usage:
//
//	stripxss [-config stripxss.yaml] [-entities] [-placeholder c] [-dump-config] [-quiet] [file...]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/dsh2dsh/stripxss"
	"github.com/dsh2dsh/stripxss/config"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
	case err != nil:
		fmt.Fprintf(os.Stderr, "stripxss: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("stripxss", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to stripxss.yaml config file")
	entities := flags.Bool("entities", false,
		"replace removed tags with their HTML escaped text")
	placeholder := flags.String("placeholder", "",
		"character replacing removed tags")
	dumpConfig := flags.Bool("dump-config", false,
		"print effective config and exit")
	quiet := flags.Bool("quiet", false, "don't log every removed tag")
	if err := flags.Parse(args); err != nil {
		return err //nolint:wrapcheck
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if *entities {
		cfg.Replacement = stripxss.Entities.String()
	}
	if *placeholder != "" {
		cfg.Placeholder = *placeholder
	}

	if *dumpConfig {
		b, err := cfg.Marshal()
		if err != nil {
			return err //nolint:wrapcheck
		}
		_, err = stdout.Write(b)
		return err //nolint:wrapcheck
	}

	p, err := cfg.Policy()
	if err != nil {
		return err //nolint:wrapcheck
	}

	logger := newLogger(stderr, *quiet)
	files := flags.Args()
	if len(files) == 0 {
		return sanitize(p, logger, "-", stdin, stdout)
	}

	for _, name := range files {
		if err := sanitizeFile(p, logger, name, stdout); err != nil {
			return err
		}
	}
	return nil
}

func sanitizeFile(p *stripxss.Policy, logger zerolog.Logger, name string,
	w io.Writer,
) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return sanitize(p, logger, name, f, w)
}

func sanitize(p *stripxss.Policy, logger zerolog.Logger, name string,
	r io.Reader, w io.Writer,
) error {
	removed, err := p.SanitizeReaderToWriter(r, w)
	if err != nil {
		return fmt.Errorf("sanitize %s: %w", name, err)
	}

	for _, tag := range removed {
		logger.Debug().Str("file", name).Str("tag", tag).Msg("removed tag")
	}
	logger.Info().Str("file", name).Int("removed", len(removed)).
		Msg("sanitized")
	return nil
}
