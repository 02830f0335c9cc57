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
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/atmaca-35/miyuw/internal/config"
	"github.com/atmaca-35/miyuw/search"
)

// formatFlag is shared by the commands that print definitions.
var formatFlag = &cli.StringFlag{
	Name:    "format",
	Usage:   "print definitions as `FORMAT` (text, html)",
	Aliases: []string{"f"},
}

// outputFormat returns the format flag if set and the configured format
// otherwise.
func outputFormat(c *cli.Context, e *env) (string, error) {
	if !c.IsSet("format") {
		return e.cfg.Format, nil
	}
	switch f := c.String("format"); f {
	case config.FormatText, config.FormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: invalid format %q", ErrFlagParse, f)
	}
}

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "print the closest entry for each word",
	ArgsUsage: "WORD...",
	Flags:     []cli.Flag{formatFlag},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: no query", ErrFlagParse)
		}

		e, err := loadEnv(c)
		if err != nil {
			return err
		}
		format, err := outputFormat(c, e)
		if err != nil {
			return err
		}
		idx, err := e.openIndex(c)
		if err != nil {
			return err
		}

		p := &textPresenter{
			w:      c.App.Writer,
			format: format,
			log:    e.log,
		}
		for _, word := range c.Args().Slice() {
			search.New(idx, nil, p, nil).Search(trimQuery(word))
			if p.err != nil {
				return fmt.Errorf("%w: %w", ErrMiyuw, p.err)
			}
		}
		return nil
	},
}
