package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type CachedResponse struct {
	Hash      string          `json:"hash"`
	Response  json.RawMessage `json:"response"`
	CreatedAt time.Time       `json:"created_at"`
}

// Cache stores JSON documents under a directory, one file per key. Entries
// never expire on their own; callers decide when to overwrite them.
type Cache struct {
	cacheDir string
	now      func() time.Time
}

// DefaultDir returns ~/.gittr/cache for the given home directory.
func DefaultDir(homeDir string) string {
	return filepath.Join(homeDir, ".gittr", "cache")
}

func NewCache(cacheDir string) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating cache directory: %w", err)
	}

	return &Cache{
		cacheDir: cacheDir,
		now:      time.Now,
	}, nil
}

// GenerateHash turns an arbitrary key (a URL, usually) into a file name.
func (c *Cache) GenerateHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// Get decodes the entry stored for key into v. The bool is false when there
// is no entry.
func (c *Cache) Get(key string, v any) (time.Time, bool, error) {
	hash := c.GenerateHash(key)
	data, err := os.ReadFile(c.filePath(hash))
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("error reading cache: %w", err)
	}

	var cached CachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		return time.Time{}, false, fmt.Errorf("error decoding cache entry: %w", err)
	}
	if cached.Hash != hash {
		return time.Time{}, false, fmt.Errorf("cache entry %s does not match its key", hash)
	}

	if err := json.Unmarshal(cached.Response, v); err != nil {
		return time.Time{}, false, fmt.Errorf("error decoding cached value: %w", err)
	}

	return cached.CreatedAt, true, nil
}

// Set replaces the entry for key. The file is written next to its final
// name and renamed into place.
func (c *Cache) Set(key string, v any) error {
	responseData, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding value: %w", err)
	}

	hash := c.GenerateHash(key)
	cached := CachedResponse{
		Hash:      hash,
		Response:  responseData,
		CreatedAt: c.now().UTC(),
	}

	data, err := json.MarshalIndent(cached, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding cache entry: %w", err)
	}

	tmp, err := os.CreateTemp(c.cacheDir, hash+".*.tmp")
	if err != nil {
		return fmt.Errorf("error writing cache: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error writing cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.filePath(hash)); err != nil {
		return fmt.Errorf("error writing cache: %w", err)
	}

	return nil
}

func (c *Cache) filePath(hash string) string {
	return filepath.Join(c.cacheDir, hash+".json")
}
