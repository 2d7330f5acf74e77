package addressbook

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"btcdash/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []models.AddressEntry {
	return []models.AddressEntry{
		{CreatedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), Address: "bc1qfpacvgpjms0eu6mszhwgjjs03yldesmmcgzad0"},
		{CreatedAt: time.Date(2024, 3, 2, 18, 5, 12, 500, time.UTC), Address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.AddressEntry
	}{
		{"empty", []models.AddressEntry{}},
		{"single", sampleEntries()[:1]},
		{"several", sampleEntries()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "addresses.json")
			require.NoError(t, Save(path, tt.entries))
			assert.Equal(t, tt.entries, Load(path))
		})
	}
}

func TestSave_NilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addresses.json")
	require.NoError(t, Save(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSave_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addresses.json")
	require.NoError(t, Save(path, sampleEntries()[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"created_at":"2024-03-01T09:30:00Z","address":"bc1qfpacvgpjms0eu6mszhwgjjs03yldesmmcgzad0"}]`, string(data))
}

func TestLoad_MissingOrMalformed(t *testing.T) {
	dir := t.TempDir()

	entries := Load(filepath.Join(dir, "nope.json"))
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"created_at": 12`), 0644))
	assert.Empty(t, Load(bad))

	wrongShape := filepath.Join(dir, "shape.json")
	require.NoError(t, os.WriteFile(wrongShape, []byte(`{"address": "x"}`), 0644))
	assert.Empty(t, Load(wrongShape))
}

func TestSave_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "addresses.json")
	assert.Error(t, Save(path, sampleEntries()))
}

func TestStore_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addresses.json")
	s := Open(path)
	assert.Equal(t, 0, s.Len())

	e := sampleEntries()[0]
	require.NoError(t, s.Append(e))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, e, s.At(0))

	reopened := Open(path)
	assert.Equal(t, s.Entries(), reopened.Entries())
}

func TestStore_AppendKeepsEntryWhenSaveFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "addresses.json")
	s := Open(path)

	err := s.Append(sampleEntries()[0])
	assert.Error(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestStore_EntriesIsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addresses.json")
	require.NoError(t, Save(path, sampleEntries()))
	s := Open(path)

	got := s.Entries()
	got[0].Address = "changed"
	assert.NotEqual(t, "changed", s.At(0).Address)
}
