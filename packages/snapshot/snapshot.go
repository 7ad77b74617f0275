// Package snapshot provides golden-value storage for snapshot assertions.
//
// Snapshots live in JSON files under a __snapshots__ directory, one file
// per test, keyed by snapshot name. Setting ASSERTKIT_UPDATE_SNAPSHOTS=1
// (or constructing a Store with update mode) rewrites mismatched or
// missing snapshots instead of failing.
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
)

const (
	// Dir is the directory name snapshots are stored under.
	Dir = "__snapshots__"
	// Ext is the snapshot file extension.
	Ext = ".snap.json"
	// UpdateEnv enables update mode when set to a non-empty value.
	UpdateEnv = "ASSERTKIT_UPDATE_SNAPSHOTS"
)

// Store reads and writes snapshot files rooted at a base directory.
type Store struct {
	baseDir string
	update  bool
	cache   map[string]map[string]any
}

// NewStore creates a snapshot store. An empty baseDir means the current
// directory.
func NewStore(baseDir string, update bool) *Store {
	return &Store{
		baseDir: baseDir,
		update:  update,
		cache:   make(map[string]map[string]any),
	}
}

// Default returns a store rooted at the working directory with update mode
// taken from the environment.
func Default() *Store {
	return NewStore("", os.Getenv(UpdateEnv) != "")
}

// Result reports the outcome of a snapshot comparison.
type Result struct {
	Passed     bool
	Message    string
	Expected   any
	Actual     any
	IsNew      bool
	WasUpdated bool
}

// Compare checks an actual value against the stored snapshot for
// testName/snapshotName, creating or updating it in update mode. An empty
// snapshotName derives a key from the value itself.
func (s *Store) Compare(testName, snapshotName string, actual any) *Result {
	result := &Result{Actual: actual}

	file := s.filePath(testName)
	key := s.key(snapshotName, actual)

	snapshots, err := s.load(file)
	if err != nil {
		result.Message = fmt.Sprintf("failed to load snapshots: %v", err)
		return result
	}

	expected, exists := snapshots[key]
	if !exists {
		if s.update {
			snapshots[key] = actual
			if err := s.save(file, snapshots); err != nil {
				result.Message = fmt.Sprintf("failed to save snapshot: %v", err)
				return result
			}
			result.Passed = true
			result.IsNew = true
			result.Expected = actual
			result.Message = "new snapshot created"
			return result
		}
		result.Message = fmt.Sprintf("snapshot %q does not exist (set %s=1 to create)", key, UpdateEnv)
		return result
	}

	result.Expected = expected
	if jsonEqual(expected, actual) {
		result.Passed = true
		return result
	}

	if s.update {
		snapshots[key] = actual
		if err := s.save(file, snapshots); err != nil {
			result.Message = fmt.Sprintf("failed to update snapshot: %v", err)
			return result
		}
		result.Passed = true
		result.WasUpdated = true
		result.Message = "snapshot updated"
		return result
	}

	result.Message = fmt.Sprintf("snapshot %q mismatch", key)
	return result
}

func (s *Store) filePath(testName string) string {
	return filepath.Join(s.baseDir, Dir, testName+Ext)
}

func (s *Store) key(snapshotName string, value any) string {
	if snapshotName != "" {
		return snapshotName
	}
	hash := sha256.Sum256([]byte(fmt.Sprintf("%v", value)))
	return "anon_" + hex.EncodeToString(hash[:8])
}

func (s *Store) load(path string) (map[string]any, error) {
	if cached, ok := s.cache[path]; ok {
		return cached, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]any), nil
		}
		return nil, err
	}

	var snapshots map[string]any
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, err
	}

	s.cache[path] = snapshots
	return snapshots, nil
}

func (s *Store) save(path string, snapshots map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshots, "", "  ")
	if err != nil {
		return err
	}

	s.cache[path] = snapshots
	return os.WriteFile(path, data, 0o644)
}

// jsonEqual compares two values after a JSON round trip, so int(1) and
// float64(1) loaded from a snapshot file compare equal.
func jsonEqual(a, b any) bool {
	aJSON, _ := json.Marshal(a)
	bJSON, _ := json.Marshal(b)

	var aVal, bVal any
	if err := json.Unmarshal(aJSON, &aVal); err == nil {
		a = aVal
	}
	if err := json.Unmarshal(bJSON, &bVal); err == nil {
		b = bVal
	}
	return reflect.DeepEqual(a, b)
}
