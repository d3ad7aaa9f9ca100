package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Sentinel errors shared by the flat-file stores.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Package-level stores, initialized once at boot. Each store serializes
// its own whole-file read-modify-write behind a mutex; concurrent writes
// to the same file from outside this process remain unguarded.
var (
	Users      *UserStore
	Activities *ActivityStore
	Uploads    *UploadStore
	Problems   *ProblemStore
)

// Init creates the data directory and the backing JSON files, then seeds
// the default admin account when it is missing.
func Init(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	Users = NewUserStore(filepath.Join(dataDir, "users.json"))
	Activities = NewActivityStore(filepath.Join(dataDir, "activities.json"))
	Uploads = NewUploadStore(filepath.Join(dataDir, "uploads.json"))
	Problems = NewProblemStore(filepath.Join(dataDir, "problems.json"))

	for _, path := range []string{Users.path, Activities.path, Uploads.path, Problems.path} {
		if err := initDataFile(path); err != nil {
			return err
		}
	}

	if err := Users.SeedAdmin(); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Printf("Data stores initialized in %s", dataDir)
	return nil
}

// initDataFile writes an empty JSON array when the file does not exist.
func initDataFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte("[]\n"), 0o644)
}

// readJSON decodes the whole backing file into out. A missing file reads
// as an empty collection.
func readJSON(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// writeJSON rewrites the whole backing file, pretty-printed to keep the
// data directory hand-inspectable.
func writeJSON(path string, in interface{}) error {
	raw, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
