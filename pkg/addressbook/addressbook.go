// Package addressbook persists the ordered list of saved receiving addresses.
package addressbook

import (
	"encoding/json"
	"fmt"
	"os"

	"btcdash/pkg/logging"
	"btcdash/pkg/models"

	"go.uber.org/zap"
)

const DefaultPath = "addresses.json"

// Load returns the entries stored at path. A missing or unreadable file
// yields an empty list, never an error.
func Load(path string) []models.AddressEntry {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("address book unreadable, starting empty", zap.String("path", path), zap.Error(err))
		}
		return []models.AddressEntry{}
	}
	var entries []models.AddressEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logging.Warn("address book malformed, starting empty", zap.String("path", path), zap.Error(err))
		return []models.AddressEntry{}
	}
	if entries == nil {
		entries = []models.AddressEntry{}
	}
	return entries
}

// Save writes the full list to path, replacing whatever was there.
func Save(path string, entries []models.AddressEntry) error {
	if entries == nil {
		entries = []models.AddressEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode address book: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write address book: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace address book: %w", err)
	}
	return nil
}

// Store owns the in-memory list for the session and mirrors it to disk on
// every append.
type Store struct {
	path    string
	entries []models.AddressEntry
}

// Open loads the book at path.
func Open(path string) *Store {
	return &Store{path: path, entries: Load(path)}
}

func (s *Store) Path() string { return s.path }

func (s *Store) Len() int { return len(s.entries) }

// At returns the entry at i; callers keep i within [0, Len()).
func (s *Store) At(i int) models.AddressEntry { return s.entries[i] }

// Entries returns a copy of the list.
func (s *Store) Entries() []models.AddressEntry {
	out := make([]models.AddressEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Append adds e to the end of the list and saves the whole book. The entry
// stays in memory even when the save fails; the save error is returned.
func (s *Store) Append(e models.AddressEntry) error {
	s.entries = append(s.entries, e)
	if err := Save(s.path, s.entries); err != nil {
		logging.Error("address book save failed", zap.String("path", s.path), zap.Error(err))
		return err
	}
	return nil
}
