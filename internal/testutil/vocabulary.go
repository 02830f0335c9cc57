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

// Package testutil implements helpers for writing vocabulary fixtures.
package testutil

import (
	"compress/gzip"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/atmaca-35/miyuw/entry"
)

// Compression is the compression applied to a vocabulary fixture.
type Compression int

const (
	// None writes plain JSON.
	None Compression = iota

	// Gzip writes gzip compressed JSON.
	Gzip

	// DictZip writes dictzip compressed JSON.
	DictZip
)

// MakeVocabularyOptions are options for MakeTempVocabulary.
type MakeVocabularyOptions struct {
	// Name is the file name. Defaults to "vocabulary" plus an extension
	// matching Compression.
	Name string

	// Compression is the compression applied to the file.
	Compression Compression
}

// GetName returns the file name for the options.
func (o *MakeVocabularyOptions) GetName() string {
	if o != nil {
		if o.Name != "" {
			return o.Name
		}
		switch o.Compression {
		case Gzip:
			return "vocabulary.json.gz"
		case DictZip:
			return "vocabulary.json.dz"
		}
	}
	return "vocabulary.json"
}

// MakeVocabulary returns the JSON document for entries.
func MakeVocabulary(t *testing.T, entries map[string]entry.Definition) []byte {
	t.Helper()

	b, err := json.Marshal(entries)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// MakeMsgpackVocabulary returns the MessagePack document for entries.
func MakeMsgpackVocabulary(t *testing.T, entries map[string]entry.Definition) []byte {
	t.Helper()

	b, err := msgpack.Marshal(entries)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// MakeTempVocabulary writes data to a vocabulary file in a new temporary
// directory and returns the file's path. data is compressed according to
// opts.
func MakeTempVocabulary(t *testing.T, data []byte, opts *MakeVocabularyOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeVocabularyOptions{}
	}

	path := filepath.Join(t.TempDir(), opts.GetName())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch opts.Compression {
	case Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}
