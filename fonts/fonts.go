// Package fonts caches font faces keyed by name and pitch.
package fonts

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/starlancer/contract"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// Loader produces a face of the given pitch from a font file.
type Loader func(path string, pitch int) (font.Face, error)

type entry struct {
	name  string
	pitch int
	path  string
	face  font.Face
}

// Cache stores loaded faces. Lookups need an exact (name, pitch) match;
// there is no fallback to a nearby pitch.
type Cache struct {
	basePath string
	load     Loader
	entries  []entry
}

// NewCache returns an empty cache that resolves relative paths against basePath
// when asked to.
func NewCache(basePath string) *Cache {
	return &Cache{
		basePath: basePath,
		load:     LoadTrueType,
	}
}

// SetLoader replaces the file loader.
func (c *Cache) SetLoader(l Loader) {
	c.load = l
}

// LoadTrueType reads and parses a TrueType file.
func LoadTrueType(path string, pitch int) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}
	return ParseTrueType(data, pitch)
}

// ParseTrueType builds a face of the given pitch from TrueType bytes.
func ParseTrueType(ttf []byte, pitch int) (font.Face, error) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(fontData, &truetype.Options{Size: float64(pitch)}), nil
}

// LoadFile loads the font at path, optionally prefixed with the base path,
// and caches it under (name, pitch). A failed load adds nothing.
func (c *Cache) LoadFile(path, name string, pitch int, appendBase bool) bool {
	if appendBase {
		path = filepath.Join(c.basePath, path)
	}

	face, err := c.load(path, pitch)
	if err != nil {
		log.Printf("[fonts] failed to load %s (%s@%d): %v", name, path, pitch, err)
		return false
	}

	c.entries = append(c.entries, entry{name: name, pitch: pitch, path: path, face: face})
	return true
}

// LoadBytes caches a face parsed from in-memory TrueType data.
func (c *Cache) LoadBytes(name string, pitch int, ttf []byte) bool {
	face, err := ParseTrueType(ttf, pitch)
	if err != nil {
		log.Printf("[fonts] failed to load %s@%d: %v", name, pitch, err)
		return false
	}

	c.entries = append(c.entries, entry{name: name, pitch: pitch, face: face})
	return true
}

// Get returns the face cached under (name, pitch). Asking for a face that was
// never loaded is a contract violation.
func (c *Cache) Get(name string, pitch int) font.Face {
	if e := c.find(name, pitch); e != nil {
		return e.face
	}
	contract.NotFound("font", fmt.Sprintf("%s@%d", name, pitch), c.keys())
	return nil
}

// Has reports whether (name, pitch) is cached.
func (c *Cache) Has(name string, pitch int) bool {
	return c.find(name, pitch) != nil
}

// Len returns the number of cached faces.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Release closes every face and empties the cache.
func (c *Cache) Release() {
	for _, e := range c.entries {
		if e.face != nil {
			_ = e.face.Close()
		}
	}
	c.entries = nil
}

func (c *Cache) find(name string, pitch int) *entry {
	for i := range c.entries {
		if c.entries[i].name == name && c.entries[i].pitch == pitch {
			return &c.entries[i]
		}
	}
	return nil
}

func (c *Cache) keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = fmt.Sprintf("%s@%d", e.name, e.pitch)
	}
	return keys
}
