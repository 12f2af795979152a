package ytd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LengthOfYear is the preference holding the number of days of the nominal
// year returns are annualized to.
const LengthOfYear = "LENGTH_OF_YEAR"

// Preferences is a key/value configuration store.
//
// Keys that were never Put fall back to the process environment. Preferences
// are safe for concurrent use.
type Preferences struct {
	mu     sync.RWMutex
	values map[string]string
	lookup func(key string) (string, bool)
}

// NewPreferences returns an empty store backed by the process environment.
func NewPreferences() *Preferences {
	return &Preferences{values: make(map[string]string), lookup: os.LookupEnv}
}

// Put sets the value of key.
func (p *Preferences) Put(key, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
}

// String returns the value of key, and false if it is neither set nor in the environment.
func (p *Preferences) String(key string) (string, bool) {
	p.mu.RLock()
	value, ok := p.values[key]
	p.mu.RUnlock()
	if ok {
		return value, true
	}
	if p.lookup == nil {
		return "", false
	}
	return p.lookup(key)
}

// Integer returns the value of key as an int.
func (p *Preferences) Integer(key string) (int, error) {
	value, ok := p.String(key)
	if !ok {
		return 0, fmt.Errorf("%s is %w", key, ErrUnknownPreference)
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w %s=%q: %w", ErrInvalidPreference, key, value, err)
	}
	return i, nil
}

// Load reads a flat YAML map of preferences and puts every entry.
//
//	LENGTH_OF_YEAR: 365
func (p *Preferences) Load(r io.Reader) error {
	var values map[string]any
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty document
		}
		return fmt.Errorf("invalid preferences: %w", err)
	}
	for key, v := range values {
		switch v := v.(type) {
		case map[string]any, []any:
			return fmt.Errorf("%w %s: nested values are not supported", ErrInvalidPreference, key)
		case nil:
			p.Put(key, "")
		default:
			p.Put(key, fmt.Sprint(v))
		}
	}
	return nil
}

// LoadPreferences returns the preferences stored in a YAML file.
func LoadPreferences(path string) (*Preferences, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p := NewPreferences()
	if err := p.Load(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// LoadEnv loads dotenv files into the process environment, so that they are
// seen by every Preferences. Without arguments it loads ".env" if it exists.
// Variables already set in the environment are not overridden.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	return godotenv.Load(filenames...)
}
