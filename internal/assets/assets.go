// Package assets loads mesh and image files from local directories or
// HTTP(S) URLs and caches them in memory.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotFound is returned when no source has the requested asset.
var ErrNotFound = errors.New("asset not found")

// maxHTTPBody bounds a single downloaded asset.
const maxHTTPBody = 64 << 20

// Source reads one named asset.
type Source interface {
	Read(ctx context.Context, name string) ([]byte, error)
}

// DirSource reads assets relative to a directory.
type DirSource struct {
	Root string
}

// Read implements Source.
func (d DirSource) Read(_ context.Context, name string) ([]byte, error) {
	path := name
	if !filepath.IsAbs(name) {
		path = filepath.Join(d.Root, filepath.FromSlash(name))
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return data, err
}

// HTTPSource fetches absolute http(s) URLs.
type HTTPSource struct {
	Client *http.Client
}

// Read implements Source.
func (h HTTPSource) Read(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", url, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxHTTPBody))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return data, nil
}

// IsURL reports whether name should be fetched over HTTP.
func IsURL(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://")
}

// Manager resolves asset names against its sources.
type Manager struct {
	dirs  []Source
	http  Source
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a manager with an HTTP source and no directories.
func NewManager() *Manager {
	return &Manager{
		http:  HTTPSource{},
		cache: NewCache(),
	}
}

// AddSource adds a directory-like source.
// Sources are searched in reverse order (last added = highest priority).
func (m *Manager) AddSource(s Source) {
	m.mu.Lock()
	m.dirs = append(m.dirs, s)
	m.mu.Unlock()
}

// AddDir adds a directory source.
func (m *Manager) AddDir(root string) {
	m.AddSource(DirSource{Root: root})
}

// SetHTTPClient replaces the client used for URLs.
func (m *Manager) SetHTTPClient(c *http.Client) {
	m.mu.Lock()
	m.http = HTTPSource{Client: c}
	m.mu.Unlock()
}

// Load returns the asset bytes, from cache when possible.
func (m *Manager) Load(ctx context.Context, name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if IsURL(name) {
		data, err := m.http.Read(ctx, name)
		if err != nil {
			return nil, err
		}
		m.cache.Set(name, data)
		return data, nil
	}

	if filepath.IsAbs(name) {
		data, err := DirSource{}.Read(ctx, name)
		if err != nil {
			return nil, err
		}
		m.cache.Set(name, data)
		return data, nil
	}

	for i := len(m.dirs) - 1; i >= 0; i-- {
		data, err := m.dirs[i].Read(ctx, name)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
}

// Close drops all sources and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

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
	c.mu.Lock()
	defer c.mu.Unlock()

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
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
