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

package miyuw

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/atmaca-35/miyuw/entry"
)

// BaseName is the base name of the vocabulary file looked up in a
// directory.
const BaseName = "vocabulary"

// ErrLoad is the parent error for all vocabulary loading errors.
var ErrLoad = errors.New("loading vocabulary")

// ErrNotFound indicates that no vocabulary file was found in a directory.
var ErrNotFound = fmt.Errorf("%w: not found", ErrLoad)

// ErrUnsupportedFormat indicates that the vocabulary file extension is not
// supported.
var ErrUnsupportedFormat = fmt.Errorf("%w: unsupported format", ErrLoad)

// vocabularyExts are the supported vocabulary file extensions in lookup
// order.
var vocabularyExts = []string{
	".json",
	".json.gz",
	".json.dz",
	".msgpack",
	".msgpack.gz",
	".msgpack.dz",
	".JSON",
	".JSON.gz",
	".JSON.GZ",
	".JSON.dz",
	".JSON.DZ",
}

type decoder interface {
	Decode(v any) error
}

// Load decodes a JSON vocabulary document from r and builds its index.
func Load(r io.Reader, options *entry.Options) (*entry.Index, error) {
	return load(json.NewDecoder(r), options)
}

// LoadMsgpack decodes a MessagePack vocabulary document from r and builds
// its index. The document has the same shape as the JSON one.
func LoadMsgpack(r io.Reader, options *entry.Options) (*entry.Index, error) {
	return load(msgpack.NewDecoder(r), options)
}

func load(d decoder, options *entry.Options) (*entry.Index, error) {
	var entries map[string]entry.Definition
	if err := d.Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrLoad, err)
	}
	if entries == nil {
		// A null document is not a vocabulary.
		return nil, fmt.Errorf("%w: decoding: empty document", ErrLoad)
	}

	idx, err := entry.New(entries, options)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return idx, nil
}

// Open opens the vocabulary at path and builds its index. If path is a
// directory the vocabulary file is looked up in it with [Find]. Files ending
// in .gz are read as gzip and files ending in .dz as dictzip. The remaining
// extension selects the encoding, .json or .msgpack.
func Open(path string, options *entry.Options) (*entry.Index, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if info.IsDir() {
		path, err = Find(path)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", ErrLoad, path, err)
	}
	defer f.Close()

	name := strings.ToLower(filepath.Base(path))
	var r io.Reader = f
	switch filepath.Ext(name) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %q: %w", ErrLoad, path, err)
		}
		defer z.Close()
		r = z
		name = strings.TrimSuffix(name, ".gz")
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %q: %w", ErrLoad, path, err)
		}
		defer z.Close()
		r = z
		name = strings.TrimSuffix(name, ".dz")
	}

	var idx *entry.Index
	switch ext := filepath.Ext(name); ext {
	case ".json":
		idx, err = Load(r, options)
	case ".msgpack":
		idx, err = LoadMsgpack(r, options)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return idx, nil
}

// Find returns the path of the vocabulary file in dir.
func Find(dir string) (string, error) {
	for _, ext := range vocabularyExts {
		path := filepath.Join(dir, BaseName+ext)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", ErrLoad, err)
		}
	}
	return "", fmt.Errorf("%w: in %q", ErrNotFound, dir)
}

// OpenFirst opens the first vocabulary found in dirs. It returns the path
// that was opened along with the index. Directories without a vocabulary
// are skipped.
func OpenFirst(dirs []string, options *entry.Options) (string, *entry.Index, error) {
	for _, dir := range dirs {
		path, err := Find(dir)
		if errors.Is(err, ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", nil, err
		}
		idx, err := Open(path, options)
		return path, idx, err
	}
	return "", nil, fmt.Errorf("%w: in %s", ErrNotFound, strings.Join(dirs, ", "))
}
