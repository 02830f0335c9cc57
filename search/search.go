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

// Package search implements the incremental search controller.
//
// A Controller reacts to query changes one at a time. For each new query it
// finds the closest headword, renders the definition and emits an intent to
// a Presenter. The controller never renders anything itself.
//
// A Controller is not safe for concurrent use. Callers must deliver query
// changes sequentially.
package search

import (
	"errors"

	"github.com/atmaca-35/miyuw/annotate"
	"github.com/atmaca-35/miyuw/entry"
	"github.com/atmaca-35/miyuw/sanitize"
)

// ErrNoIndex is reported when a Controller is created without an index or a
// load error.
var ErrNoIndex = errors.New("no index")

// State is the state of a Controller.
type State int

const (
	// Empty means there is no query.
	Empty State = iota

	// NoMatch means no headword starts with the query.
	NoMatch

	// Matched means a headword starting with the query was found.
	Matched

	// DataUnavailable means the data could not be loaded. It is terminal.
	DataUnavailable
)

func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case NoMatch:
		return "NoMatch"
	case Matched:
		return "Matched"
	case DataUnavailable:
		return "DataUnavailable"
	default:
		return "Unknown"
	}
}

// Result is a matched entry ready for presentation.
type Result struct {
	// Headword is the original headword.
	Headword string

	// Normalized is the normalized headword.
	Normalized string

	// Completion is the part of the normalized headword after the query.
	Completion string

	// HTML is the sanitized and annotated definition.
	HTML string
}

// Presenter receives the intents emitted by a Controller.
type Presenter interface {
	// Clear clears the displayed result and completion. The error
	// indication is cleared unless keepError is true.
	Clear(keepError bool)

	// ShowResult shows a result and its completion suffix and clears the
	// error indication.
	ShowResult(r Result)

	// ShowError clears the completion suffix and signals that nothing
	// matched.
	ShowError()

	// ShowUnavailable reports that the data could not be loaded. It is
	// called at most once, when the Controller is created.
	ShowUnavailable(err error)
}

// Sanitizer restricts raw definition text to an allow-list of tags.
type Sanitizer interface {
	Sanitize(raw string) string
}

// Annotator expands marker codes in sanitized text.
type Annotator interface {
	Annotate(text string) string
}

// Options are options for a Controller.
type Options struct {
	// Sanitizer sanitizes definitions. Defaults to the sanitize package's
	// default policy.
	Sanitizer Sanitizer

	// Annotator annotates sanitized definitions. Defaults to the annotator
	// for the default marker table.
	Annotator Annotator
}

// Controller is the incremental search state machine.
type Controller struct {
	idx       *entry.Index
	presenter Presenter
	sanitizer Sanitizer
	annotator Annotator

	state     State
	lastQuery string
}

// New returns a new Controller. loadErr is the outcome of loading idx. If
// loadErr is not nil, or idx is nil, the Controller enters the
// DataUnavailable state permanently and reports the error to presenter.
func New(idx *entry.Index, loadErr error, presenter Presenter, options *Options) *Controller {
	if options == nil {
		options = &Options{}
	}
	if presenter == nil {
		presenter = nopPresenter{}
	}

	c := &Controller{
		idx:       idx,
		presenter: presenter,
		sanitizer: options.Sanitizer,
		annotator: options.Annotator,
		state:     Empty,
	}
	if c.sanitizer == nil {
		c.sanitizer = sanitize.New()
	}
	if c.annotator == nil {
		c.annotator = annotate.Default()
	}

	if loadErr == nil && idx == nil {
		loadErr = ErrNoIndex
	}
	if loadErr != nil {
		c.idx = nil
		c.state = DataUnavailable
		c.presenter.ShowUnavailable(loadErr)
	}

	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Search processes a query change and returns the resulting state. A query
// equal to the previous one is ignored.
func (c *Controller) Search(query string) State {
	if query == c.lastQuery {
		return c.state
	}
	c.lastQuery = query

	if c.state == DataUnavailable {
		if query == "" {
			c.presenter.Clear(true)
		} else {
			c.presenter.ShowError()
		}
		return c.state
	}

	if query == "" {
		c.state = Empty
		c.presenter.Clear(false)
		return c.state
	}

	m, ok := c.idx.FindClosest(query)
	if !ok {
		c.state = NoMatch
		c.presenter.ShowError()
		return c.state
	}

	c.state = Matched
	c.presenter.ShowResult(Result{
		Headword:   m.Headword(),
		Normalized: m.Normalized,
		Completion: m.Completion(),
		HTML:       c.annotator.Annotate(c.sanitizer.Sanitize(m.Entry.Definition.Text)),
	})
	return c.state
}

type nopPresenter struct{}

func (nopPresenter) Clear(bool)            {}
func (nopPresenter) ShowResult(Result)     {}
func (nopPresenter) ShowError()            {}
func (nopPresenter) ShowUnavailable(error) {}
