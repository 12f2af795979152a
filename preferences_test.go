package ytd

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesInteger(t *testing.T) {
	p := NewPreferences()
	p.lookup = nil

	p.Put(LengthOfYear, "365")
	got, err := p.Integer(LengthOfYear)
	require.NoError(t, err)
	assert.Equal(t, 365, got)

	_, err = p.Integer("MISSING")
	assert.ErrorIs(t, err, ErrUnknownPreference)
	assert.EqualError(t, err, "MISSING is not a known preference")

	p.Put("NAN", "twelve")
	_, err = p.Integer("NAN")
	assert.ErrorIs(t, err, ErrInvalidPreference)
}

func TestPreferencesEnvironmentFallback(t *testing.T) {
	t.Setenv("YTD_TEST_PREFERENCE", "42")

	p := NewPreferences()
	got, err := p.Integer("YTD_TEST_PREFERENCE")
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	p.Put("YTD_TEST_PREFERENCE", "7")
	got, err = p.Integer("YTD_TEST_PREFERENCE")
	require.NoError(t, err)
	assert.Equal(t, 7, got, "explicit values take precedence over the environment")
}

func TestPreferencesLoad(t *testing.T) {
	p := NewPreferences()
	p.lookup = nil
	require.NoError(t, p.Load(strings.NewReader("LENGTH_OF_YEAR: 360\nNAME: ytd\nEMPTY:\n")))

	got, err := p.Integer(LengthOfYear)
	require.NoError(t, err)
	assert.Equal(t, 360, got)

	name, ok := p.String("NAME")
	assert.True(t, ok)
	assert.Equal(t, "ytd", name)

	empty, ok := p.String("EMPTY")
	assert.True(t, ok)
	assert.Empty(t, empty)

	assert.NoError(t, p.Load(strings.NewReader("")), "an empty document is valid")
	assert.ErrorIs(t, p.Load(strings.NewReader("NESTED:\n  A: 1\n")), ErrInvalidPreference)
	assert.Error(t, p.Load(strings.NewReader("- a list")))
}

func TestLoadPreferences(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("LENGTH_OF_YEAR: 365\n"), 0644))

	p, err := LoadPreferences(path)
	require.NoError(t, err)
	got, err := p.Integer(LengthOfYear)
	require.NoError(t, err)
	assert.Equal(t, 365, got)

	_, err = LoadPreferences(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("YTD_TEST_DOTENV=12\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("YTD_TEST_DOTENV") })

	require.NoError(t, LoadEnv(path))
	got, err := NewPreferences().Integer("YTD_TEST_DOTENV")
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	assert.Error(t, LoadEnv(filepath.Join(dir, "missing.env")))
}

func TestPreferencesConcurrentAccess(t *testing.T) {
	p := NewPreferences()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			p.Put(LengthOfYear, "365")
		}()
		go func() {
			defer wg.Done()
			_, _ = p.String(LengthOfYear)
		}()
	}
	wg.Wait()
	got, err := p.Integer(LengthOfYear)
	require.NoError(t, err)
	assert.Equal(t, 365, got)
}
