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
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/k3a/html2text"

	"github.com/atmaca-35/miyuw/internal/config"
	"github.com/atmaca-35/miyuw/search"
)

// textPresenter prints search intents to a terminal.
type textPresenter struct {
	w      io.Writer
	format string
	log    *log.Logger

	// err is the first write error.
	err error
}

func (p *textPresenter) printf(format string, a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, a...)
}

// Clear implements [search.Presenter.Clear].
func (p *textPresenter) Clear(keepError bool) {
	p.log.Debug("clear", "keepError", keepError)
}

// ShowResult implements [search.Presenter.ShowResult].
func (p *textPresenter) ShowResult(r search.Result) {
	p.log.Debug("match", "headword", r.Headword, "completion", r.Completion)

	p.printf("%s", r.Headword)
	if r.Completion != "" {
		p.printf(" (%s)", r.Completion)
	}
	p.printf("\n%s\n", render(r.HTML, p.format))
}

// ShowError implements [search.Presenter.ShowError].
func (p *textPresenter) ShowError() {
	p.printf("no match\n")
}

// ShowUnavailable implements [search.Presenter.ShowUnavailable].
func (p *textPresenter) ShowUnavailable(err error) {
	p.log.Error("vocabulary unavailable", "err", err)
	p.printf("vocabulary unavailable\n")
}

// render renders annotated definition HTML in the given output format.
func render(html, format string) string {
	if format == config.FormatHTML {
		return html
	}
	text := html2text.HTML2TextWithOptions(html, html2text.WithUnixLineBreaks())
	return strings.TrimRight(text, "\n")
}
