package globals

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Store is the global variables map used to prefill arguments by name
type Store struct {
	path string
	vars map[string]string
}

// Load reads the store at path. A missing file gives an empty store. Files
// ending in .toml are TOML, everything else is JSON.
func Load(path string) (*Store, error) {
	s := &Store{path: path, vars: make(map[string]string)}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return s, nil
	}

	if isTOML(path) {
		if _, err := toml.Decode(string(data), &s.vars); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	} else if err := json.Unmarshal(data, &s.vars); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return s, nil
}

// Vars returns a copy of the variables
func (s *Store) Vars() map[string]string {
	out := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}

// Get returns the value of name
func (s *Store) Get(name string) (string, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Set assigns value to name. An empty value removes the variable.
func (s *Store) Set(name, value string) {
	if value == "" {
		delete(s.vars, name)
		return
	}
	s.vars[name] = value
}

// Names returns the variable names sorted
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.vars))
	for k := range s.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Save writes the store back to its file
func (s *Store) Save() error {
	if s.path == "" {
		return errors.New("globals: no file configured")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	return s.writeTo(f)
}

// writeTo encodes the store to w and closes it. A failed close is reported
// since it can mean the data never reached the file.
func (s *Store) writeTo(w io.WriteCloser) error {
	var err error
	if isTOML(s.path) {
		err = toml.NewEncoder(w).Encode(s.vars)
	} else {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(s.vars)
	}
	if cerr := w.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %s: %w", s.path, cerr)
	}
	return err
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
