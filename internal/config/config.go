package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/Spiderpig86/gittr/internal/errors"
)

const (
	configDirName  = ".gittr"
	configFileName = "config.json"
)

// Store keeps the preference record in memory and mirrors every change to a
// single JSON document. It is not safe for concurrent use: gittr runs one
// interactive session per process and takes no file lock.
type Store struct {
	path  string
	prefs Preferences
}

// DefaultPath returns ~/.gittr/config.json for the given home directory.
func DefaultPath(homeDir string) string {
	return filepath.Join(homeDir, configDirName, configFileName)
}

// LoadStore reads the document at path. A missing file yields an empty
// preference set. An unreadable or malformed file also yields a usable empty
// store, together with an ErrConfigLoad the caller may report.
func LoadStore(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, apperrors.ErrConfigLoad.WithError(err).WithContext("path", path)
	}

	var prefs Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return s, apperrors.ErrConfigLoad.WithError(fmt.Errorf("error decoding %s: %w", path, err)).
			WithContext("path", path)
	}

	s.prefs = prefs
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

// Preferences returns a copy of the current record.
func (s *Store) Preferences() Preferences {
	return s.prefs.Clone()
}

// Values is the diagnostic view of the record; undefined keys map to nil.
func (s *Store) Values() map[string]any {
	return s.prefs.Values()
}

func (s *Store) AddAllFiles() (bool, bool) {
	if s.prefs.AddAllFiles == nil {
		return false, false
	}
	return *s.prefs.AddAllFiles, true
}

func (s *Store) EmojiFormat() (EmojiFormat, bool) {
	if s.prefs.EmojiFormat == nil {
		return "", false
	}
	return *s.prefs.EmojiFormat, true
}

func (s *Store) SignCommit() (bool, bool) {
	if s.prefs.SignCommit == nil {
		return false, false
	}
	return *s.prefs.SignCommit, true
}

func (s *Store) UdacityStyleCommit() (bool, bool) {
	if s.prefs.UdacityStyleCommit == nil {
		return false, false
	}
	return *s.prefs.UdacityStyleCommit, true
}

func (s *Store) SetAddAllFiles(v bool) error {
	return s.Update(func(p *Preferences) { p.SetAddAllFiles(v) })
}

func (s *Store) SetEmojiFormat(f EmojiFormat) error {
	return s.Update(func(p *Preferences) { p.SetEmojiFormat(f) })
}

func (s *Store) SetSignCommit(v bool) error {
	return s.Update(func(p *Preferences) { p.SetSignCommit(v) })
}

func (s *Store) SetUdacityStyleCommit(v bool) error {
	return s.Update(func(p *Preferences) { p.SetUdacityStyleCommit(v) })
}

// Update applies fn to a copy of the record and persists the whole result.
// The in-memory record only changes once the write has succeeded.
func (s *Store) Update(fn func(p *Preferences)) error {
	next := s.prefs.Clone()
	fn(&next)

	if err := writeDocument(s.path, next); err != nil {
		return err
	}

	s.prefs = next
	return nil
}

func writeDocument(path string, prefs Preferences) error {
	if path == "" {
		return apperrors.ErrConfigWrite.WithError(errors.New("config path is not set"))
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return apperrors.ErrConfigWrite.WithError(fmt.Errorf("error encoding preferences: %w", err))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.ErrConfigWrite.WithError(err).WithContext("path", path)
	}

	tmp, err := os.CreateTemp(dir, configFileName+".*.tmp")
	if err != nil {
		return apperrors.ErrConfigWrite.WithError(err).WithContext("path", path)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return apperrors.ErrConfigWrite.WithError(err).WithContext("path", path)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.ErrConfigWrite.WithError(err).WithContext("path", path)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return apperrors.ErrConfigWrite.WithError(err).WithContext("path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return apperrors.ErrConfigWrite.WithError(err).WithContext("path", path)
	}

	return nil
}
