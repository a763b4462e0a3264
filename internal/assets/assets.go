// Package assets resolves and reads startup asset files from a list of
// data directories.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/hikesim/internal/logger"
)

// Asset kinds used in AssetLoadError.
const (
	KindHeightmap = "heightmap"
	KindWaypath   = "waypath"
	KindShader    = "shader"
)

// Manager reads asset files from data directories.
// Directories are searched in reverse order (last added = highest priority).
type Manager struct {
	dirs  []string
	cache *Cache
}

// NewManager creates an asset manager over the given data directories.
func NewManager(dirs ...string) *Manager {
	return &Manager{
		dirs:  append([]string(nil), dirs...),
		cache: NewCache(),
	}
}

// Dirs returns the data directories in search order.
func (m *Manager) Dirs() []string {
	out := make([]string, 0, len(m.dirs))
	for i := len(m.dirs) - 1; i >= 0; i-- {
		out = append(out, m.dirs[i])
	}
	return out
}

// Resolve returns the first existing path for name. Absolute names are
// used as given; relative names are tried in each data directory and
// finally against the working directory.
func (m *Manager) Resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", err
		}
		return name, nil
	}

	candidates := make([]string, 0, len(m.dirs)+1)
	for _, dir := range m.Dirs() {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	candidates = append(candidates, name)

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("%s not found in %v: %w", name, m.Dirs(), fs.ErrNotExist)
}

// Load reads an asset. Every failure is returned as *AssetLoadError.
func (m *Manager) Load(kind, name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	path, err := m.Resolve(name)
	if err != nil {
		return nil, &AssetLoadError{Asset: kind, Path: name, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &AssetLoadError{Asset: kind, Path: path, Err: err}
	}

	logger.Debug("asset loaded",
		zap.String("kind", kind),
		zap.String("path", path),
		zap.Int("bytes", len(data)),
	)
	m.cache.Set(name, data)
	return data, nil
}

// Close logs cache statistics and drops cached asset data.
func (m *Manager) Close() {
	hits, misses := m.cache.Stats()
	logger.Debug("asset cache closed",
		zap.Int("entries", len(m.cache.data)),
		zap.Int("hits", hits),
		zap.Int("misses", misses),
	)
	m.cache.Clear()
}

// Cache is an in-memory cache of loaded asset bytes.
type Cache struct {
	data map[string][]byte

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.data[key] = data
}

// Clear empties the cache and resets its statistics.
func (c *Cache) Clear() {
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}
