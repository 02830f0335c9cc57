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
	"bufio"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/atmaca-35/miyuw/search"
)

// trimQuery trims the whitespace around raw query input.
func trimQuery(raw string) string {
	return strings.TrimSpace(raw)
}

var replCommand = &cli.Command{
	Name:  "repl",
	Usage: "search incrementally, one query per input line",
	Flags: []cli.Flag{formatFlag},
	Action: func(c *cli.Context) error {
		e, err := loadEnv(c)
		if err != nil {
			return err
		}
		format, err := outputFormat(c, e)
		if err != nil {
			return err
		}

		// A load failure is reported by the controller, which then stays
		// unavailable for the whole session.
		idx, loadErr := e.openIndex(c)

		p := &textPresenter{
			w:      c.App.Writer,
			format: format,
			log:    e.log,
		}
		ctrl := search.New(idx, loadErr, p, nil)

		s := bufio.NewScanner(c.App.Reader)
		for s.Scan() {
			state := ctrl.Search(trimQuery(s.Text()))
			e.log.Debug("search", "state", state)
			if p.err != nil {
				return fmt.Errorf("%w: %w", ErrMiyuw, p.err)
			}
		}
		if err := s.Err(); err != nil {
			return fmt.Errorf("%w: reading input: %w", ErrMiyuw, err)
		}

		if loadErr != nil {
			return loadErr
		}
		return nil
	},
}
