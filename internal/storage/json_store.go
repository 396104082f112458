package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type jsonDocument struct {
	Version int                        `json:"version"`
	Data    map[string]json.RawMessage `json:"data"`
}

// JSONFileKV persists the whole key space as a single JSON document,
// rewritten on every mutation.
type JSONFileKV struct {
	path string
	doc  *jsonDocument
}

func NewJSONFileKV(path string) *JSONFileKV {
	return &JSONFileKV{
		path: path,
	}
}

func (s *JSONFileKV) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &jsonDocument{
		Version: 1,
		Data:    make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONFileKV) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'cadence init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &jsonDocument{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Data == nil {
		s.doc.Data = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONFileKV) Close() error {
	return nil
}

func (s *JSONFileKV) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONFileKV) Get(key string) ([]byte, bool, error) {
	if s.doc == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}

	raw, ok := s.doc.Data[key]
	if !ok {
		return nil, false, nil
	}

	return raw, true, nil
}

func (s *JSONFileKV) Set(key string, value []byte) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.Data[key] = json.RawMessage(value)
	return s.save()
}

func (s *JSONFileKV) Delete(key string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	delete(s.doc.Data, key)
	return s.save()
}

func (s *JSONFileKV) Path() string {
	return s.path
}
