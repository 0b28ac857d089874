package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path/filepath"

	"github.com/phrazzld/projector/internal/platform/logger"
	"github.com/spf13/afero"
)

// File and directory modes used when saving.
const (
	dirMode  = 0o755
	fileMode = 0o644
)

// Data is the on-disk shape of the store: path -> key -> value.
type Data struct {
	Projector map[string]map[string]string `json:"projector"`
}

// Store holds the full dataset in memory, scoped to one working directory.
// It is not safe for concurrent use.
type Store struct {
	fs   afero.Fs
	path string
	pwd  string
	data Data
}

// Load reads the store file at path and scopes the result to pwd.
//
// A missing file, a read error or content that does not decode into Data all
// produce an empty store. Corrupt or absent state never blocks a command, so
// Load has no error return.
func Load(ctx context.Context, fsys afero.Fs, path, pwd string) *Store {
	log := logger.FromContext(ctx).With("store_path", path)

	s := &Store{
		fs:   fsys,
		path: path,
		pwd:  pwd,
		data: Data{Projector: make(map[string]map[string]string)},
	}

	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.DebugContext(ctx, "store file does not exist, starting empty")
		} else {
			log.DebugContext(ctx, "store file unreadable, starting empty", "error", err)
		}
		return s
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		log.DebugContext(ctx, "store file is malformed, starting empty", "error", err)
		return s
	}
	if data.Projector == nil {
		log.DebugContext(ctx, "store file holds no data, starting empty")
		return s
	}
	s.data = data

	log.DebugContext(ctx, "store loaded", "paths", len(s.data.Projector))
	return s
}

// Value returns the value of key as seen from the working directory. The
// chain is walked from the working directory outward and the first hit wins.
func (s *Store) Value(key string) (string, bool) {
	for _, dir := range Ancestors(s.pwd) {
		if value, ok := s.data.Projector[dir][key]; ok {
			return value, true
		}
	}
	return "", false
}

// Values merges every level of the ancestor chain, root first, so deeper
// paths overwrite shallower ones and keys unique to any level are kept.
func (s *Store) Values() map[string]string {
	chain := Ancestors(s.pwd)
	out := make(map[string]string)
	for i := len(chain) - 1; i >= 0; i-- {
		maps.Copy(out, s.data.Projector[chain[i]])
	}
	return out
}

// Set stores key on the working directory itself, never on an ancestor.
func (s *Store) Set(key, value string) {
	values := s.data.Projector[s.pwd]
	if values == nil {
		values = make(map[string]string)
		s.data.Projector[s.pwd] = values
	}
	values[key] = value
}

// Remove deletes key from the working directory's own values. A key that is
// only inherited from an ancestor stays visible.
func (s *Store) Remove(key string) {
	if values, ok := s.data.Projector[s.pwd]; ok {
		delete(values, key)
	}
}

// Snapshot returns a deep copy of the full dataset.
func (s *Store) Snapshot() map[string]map[string]string {
	out := make(map[string]map[string]string, len(s.data.Projector))
	for dir, values := range s.data.Projector {
		out[dir] = maps.Clone(values)
	}
	return out
}

// Save writes the full dataset to the store file, creating its parent
// directory first. The previous file content is replaced, not merged, and
// values are written without HTML escaping.
func (s *Store) Save() error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return NewStoreError("save", s.path, "failed to create directory",
			fmt.Errorf("%w: %w", ErrSaveFailed, err))
	}

	var contents bytes.Buffer
	enc := json.NewEncoder(&contents)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.data); err != nil {
		return NewStoreError("save", s.path, "failed to encode data",
			fmt.Errorf("%w: %w", ErrEncodeFailed, err))
	}

	if err := afero.WriteFile(s.fs, s.path, contents.Bytes(), fileMode); err != nil {
		return NewStoreError("save", s.path, "failed to write file",
			fmt.Errorf("%w: %w", ErrSaveFailed, err))
	}
	return nil
}
