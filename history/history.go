// Package history keeps a local journal of past recognitions in the
// user cache directory.
package history

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path"
	"time"

	"github.com/ryuichi1/hiranaga-demo-app/encoding/ink"
	"github.com/ryuichi1/hiranaga-demo-app/log"
	"github.com/ryuichi1/hiranaga-demo-app/recognizer"
)

const cacheVersion = 1

// Entry is one recognized drawing.
type Entry struct {
	ID         string              `json:"id"`
	At         time.Time           `json:"at"`
	Hash       string              `json:"hash"`
	PointCount int                 `json:"pointCount"`
	Results    []recognizer.Result `json:"results"`
}

// History is the journal persisted between runs.
type History struct {
	CacheVersion int     `json:"cache_version"`
	Entries      []Entry `json:"entries"`

	file string
}

// HashDrawing fingerprints the drawing payload, so identical ink can
// be spotted across sessions.
func HashDrawing(d *ink.Drawing) (string, error) {
	b, err := d.MarshalBinary()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// NewEntry records the outcome of one recognition.
func NewEntry(d *ink.Drawing, results []recognizer.Result) (Entry, error) {
	hash, err := HashDrawing(d)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		ID:         d.ID,
		At:         time.Now(),
		Hash:       hash,
		PointCount: d.Snapshot().PointCount(),
		Results:    results,
	}, nil
}

func cachePath() (string, error) {
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return fallbackPath()
	}
	folder := path.Join(cachedir, "hiranaga")
	if err := os.MkdirAll(folder, 0700); err != nil {
		return fallbackPath()
	}
	return path.Join(folder, "history.json"), nil
}

func fallbackPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	folder := path.Join(home, ".hiranaga-cache")
	if err := os.MkdirAll(folder, 0700); err != nil {
		return "", err
	}
	return path.Join(folder, "history.json"), nil
}

// Load reads the journal from the user cache. A missing, corrupt or
// differently versioned file yields a fresh journal, never an error:
// the history is a convenience, not a source of truth.
func Load() (*History, error) {
	file, err := cachePath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(file)
}

func LoadFrom(file string) (*History, error) {
	fresh := &History{CacheVersion: cacheVersion, file: file}

	if _, err := os.Stat(file); err != nil {
		return fresh, nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	loaded := &History{file: file}
	if err := json.Unmarshal(b, loaded); err != nil {
		log.Error.Println("history corrupt, starting fresh")
		return fresh, nil
	}
	if loaded.CacheVersion != cacheVersion {
		log.Info.Println("wrong history version, starting fresh")
		return fresh, nil
	}
	return loaded, nil
}

// Save writes the journal back to where it was loaded from.
func (h *History) Save() error {
	if h.file == "" {
		file, err := cachePath()
		if err != nil {
			return err
		}
		h.file = file
	}
	return h.SaveTo(h.file)
}

func (h *History) SaveTo(file string) error {
	h.CacheVersion = cacheVersion
	b, err := json.MarshalIndent(h, "", "")
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0644)
}

// Append adds e to the journal, dropping the oldest entries beyond
// limit when limit is positive.
func (h *History) Append(e Entry, limit int) {
	h.Entries = append(h.Entries, e)
	if limit > 0 && len(h.Entries) > limit {
		h.Entries = h.Entries[len(h.Entries)-limit:]
	}
}

// Tail returns the most recent n entries, oldest first.
func (h *History) Tail(n int) []Entry {
	if n <= 0 || n >= len(h.Entries) {
		return h.Entries
	}
	return h.Entries[len(h.Entries)-n:]
}
