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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/atmaca-35/miyuw/annotate"
)

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "list headwords in sort order",
	ArgsUsage: "[PREFIX]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "exact",
			Usage: "list only headwords equal to PREFIX after normalization",
		},
		&cli.IntFlag{
			Name:    "limit",
			Usage:   "list at most `N` headwords (0 for all)",
			Aliases: []string{"n"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() > 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		limit := c.Int("limit")
		if limit < 0 {
			return fmt.Errorf("%w: invalid limit %d", ErrFlagParse, limit)
		}
		query := trimQuery(c.Args().First())
		if c.Bool("exact") && query == "" {
			return fmt.Errorf("%w: --exact needs a word", ErrFlagParse)
		}

		e, err := loadEnv(c)
		if err != nil {
			return err
		}
		idx, err := e.openIndex(c)
		if err != nil {
			return err
		}

		tbl := table.New("Headword", "Normalized").WithWriter(c.App.Writer)
		n := 0
		if c.Bool("exact") {
			for _, entry := range idx.Lookup(query) {
				if limit > 0 && n == limit {
					break
				}
				tbl.AddRow(entry.Headword, "")
				n++
			}
		} else {
			for m := range idx.Prefix(query) {
				if limit > 0 && n == limit {
					break
				}
				tbl.AddRow(m.Headword(), m.Normalized)
				n++
			}
		}
		tbl.Print()

		e.log.Debug("listed headwords", "query", query, "count", n)
		return nil
	},
}

var markersCommand = &cli.Command{
	Name:  "markers",
	Usage: "list the marker codes and their labels",
	Action: func(c *cli.Context) error {
		tbl := table.New("Code", "Label").WithWriter(c.App.Writer)
		for _, m := range annotate.Default().Markers() {
			tbl.AddRow(m.Code, m.Label)
		}
		tbl.Print()
		return nil
	},
}

var statsCommand = &cli.Command{
	Name:  "stats",
	Usage: "print the number of entries in the vocabulary",
	Action: func(c *cli.Context) error {
		e, err := loadEnv(c)
		if err != nil {
			return err
		}
		idx, err := e.openIndex(c)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(c.App.Writer, "Türk dilinin %d maddelik arkeolojisi.\n", idx.Len()); err != nil {
			return fmt.Errorf("%w: %w", ErrMiyuw, err)
		}
		return nil
	},
}
