// Copyright 2025 The miyuw Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/atmaca-35/miyuw"
	"github.com/atmaca-35/miyuw/entry"
	"github.com/atmaca-35/miyuw/internal/config"
	"github.com/atmaca-35/miyuw/normalize"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing or
	// configuration error.
	ExitCodeFlagParseError

	// ExitCodeUnavailableError is the exit code when the vocabulary could
	// not be loaded.
	ExitCodeUnavailableError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrMiyuw is a parent error for all command errors.
var ErrMiyuw = errors.New("miyuw")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrMiyuw)

// ErrUnavailable indicates that the vocabulary could not be loaded.
var ErrUnavailable = fmt.Errorf("%w: vocabulary unavailable", ErrMiyuw)

var copyrightNames = []string{
	"2025 The miyuw Authors",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use it that way.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse), errors.Is(err, config.ErrConfig):
		return ExitCodeFlagParseError
	case errors.Is(err, ErrUnavailable):
		return ExitCodeUnavailableError
	default:
		return ExitCodeUnknownError
	}
}

// env holds the settings shared by all commands.
type env struct {
	cfg *config.Config
	log *log.Logger
}

// loadEnv merges the config file with the command line flags. Flags take
// precedence over the file.
func loadEnv(c *cli.Context) (*env, error) {
	path, optional := c.String("config"), false
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
		optional = true
	}

	cfg, err := config.Load(path, optional)
	if err != nil {
		return nil, err
	}

	if c.IsSet("data") {
		cfg.Data = c.String("data")
	}
	if c.IsSet("locale") {
		cfg.Locale = c.String("locale")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	l, err := newLogger(c.App.ErrWriter, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	l.Debug("loaded config", "path", path, "data", cfg.Data, "locale", cfg.Locale)

	return &env{
		cfg: cfg,
		log: l,
	}, nil
}

// openIndex opens the configured vocabulary. If no vocabulary path is
// configured the data directories are searched in order.
func (e *env) openIndex(c *cli.Context) (*entry.Index, error) {
	tag, err := e.cfg.Tag()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	opts := &entry.Options{
		Locale: tag,
		Folder: normalize.Folder,
	}

	path := e.cfg.Data
	var idx *entry.Index
	if path != "" {
		idx, err = miyuw.Open(path, opts)
	} else {
		path, idx, err = miyuw.OpenFirst(c.StringSlice("data-dir"), opts)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	e.log.Debug("loaded vocabulary", "path", path, "entries", idx.Len())
	return idx, nil
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

%s
`, c.App.Name, versionInfo.GitVersion, c.App.Copyright, versionInfo.String())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMiyuw, err)
	}
	return nil
}

func newMiyuwApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search a Turkish etymological vocabulary.",
		Description: strings.Join([]string{
			"Incremental headword search written in Go.",
			"http://github.com/atmaca-35/miyuw",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read settings from the TOML file at `PATH`",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:  "data",
				Usage: "load the vocabulary at `PATH` (file or directory)",
			},
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "look for the vocabulary in `DIR`",
				Aliases: []string{"d"},
				Value:   cli.NewStringSlice(dataLocations()...),
			},
			&cli.StringFlag{
				Name:  "locale",
				Usage: "collate headwords using `TAG`",
				Value: "tr",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log at `LEVEL` (debug, info, warn, error)",
				Value: "warn",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			queryCommand,
			replCommand,
			listCommand,
			markersCommand,
			statsCommand,
		},
	}
}
