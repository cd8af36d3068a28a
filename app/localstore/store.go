// Package localstore persists record collections as JSON arrays under fixed
// string keys, one file per key. The snapshot tool uses it to export and
// import the full record store.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Collection keys. Each key maps to <dir>/<key>.json.
const (
	KeyStudents          = "students"
	KeyTeachers          = "teachers"
	KeyAnnotations       = "annotations"
	KeyAttendance        = "attendance"
	KeyPiarRecords       = "piar_records"
	KeyCompetencyReports = "competency_reports"
)

// Keys lists every collection key in export order.
var Keys = []string{
	KeyStudents,
	KeyTeachers,
	KeyAnnotations,
	KeyAttendance,
	KeyPiarRecords,
	KeyCompetencyReports,
}

// Store reads and writes JSON collections in a directory.
type Store struct {
	dir string
}

// New creates the directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func validKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Save marshals v (normally a slice of records) to the key's file.
func (s *Store) Save(key string, v interface{}) error {
	if !validKey(key) {
		return fmt.Errorf("unknown collection key %q", key)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

// Load unmarshals the key's file into dest. A missing file leaves dest
// untouched and returns no error, matching the original's empty-collection
// behavior.
func (s *Store) Load(key string, dest interface{}) error {
	if !validKey(key) {
		return fmt.Errorf("unknown collection key %q", key)
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

// Has reports whether the key's file exists.
func (s *Store) Has(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}
