package checker

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Bump when cachePayload changes shape.
const cacheSchemaVersion uint16 = 1

// Cache stores raw backend responses on disk, keyed by a digest of the
// checked text and the backend parameters. It spares repeated round trips
// to slow backends across runs.
type Cache struct {
	dir string
}

type cachePayload struct {
	Schema    uint16
	CreatedAt int64
	Body      []byte
}

// OpenCache initializes the cache at the standard location.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "lt")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Key derives the cache key for a checked text under given parameters.
func Key(params, text string) [sha256.Size]byte {
	h := sha256.New()
	h.Write([]byte(params))
	h.Write([]byte{0})
	h.Write([]byte(text))
	var key [sha256.Size]byte
	copy(key[:], h.Sum(nil))
	return key
}

func (c *Cache) pathFor(key [sha256.Size]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Put writes a response body under key. The write is temp-file + rename, so
// readers never observe a partial entry.
func (c *Cache) Put(key [sha256.Size]byte, body []byte) error {
	if c == nil {
		return nil
	}
	p := c.pathFor(key)
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	err = enc.Encode(&cachePayload{
		Schema:    cacheSchemaVersion,
		CreatedAt: time.Now().Unix(),
		Body:      body,
	})
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get returns the cached body for key, or ok=false when the entry is
// missing, unreadable, or from another schema version. Corrupt entries are
// treated as misses, never as errors.
func (c *Cache) Get(key [sha256.Size]byte) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	var payload cachePayload
	if err := msgpack.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	return payload.Body, true
}
