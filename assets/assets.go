package assets

import (
	"embed"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed all:layouts
	layoutFS embed.FS
)

// LayoutFS returns the embedded menu layouts. Paths start with "layouts/".
func LayoutFS() fs.FS {
	return layoutFS
}

// TextureCache resolves textures by name, loading them lazily from disk
// under the asset base path. Names that fail to load are remembered so the
// disk is not hit again every frame.
type TextureCache struct {
	basePath string
	fsys     fs.FS
	cache    map[string]*ebiten.Image
	missing  map[string]bool
}

// NewTextureCache returns a cache rooted at basePath on the local disk.
func NewTextureCache(basePath string) *TextureCache {
	return &TextureCache{
		basePath: basePath,
		fsys:     os.DirFS(filepath.Clean(basePathOrDot(basePath))),
		cache:    make(map[string]*ebiten.Image),
		missing:  make(map[string]bool),
	}
}

// NewTextureCacheFS returns a cache that reads from fsys instead of the disk.
func NewTextureCacheFS(basePath string, fsys fs.FS) *TextureCache {
	tc := NewTextureCache(basePath)
	tc.fsys = fsys
	return tc
}

func basePathOrDot(p string) string {
	if p == "" {
		return "."
	}
	return p
}

// AssetPath returns the base directory used for default-path prefixing.
func (tc *TextureCache) AssetPath() string {
	return tc.basePath
}

// Register stores an already built image under name.
func (tc *TextureCache) Register(name string, img *ebiten.Image) {
	tc.cache[name] = img
	delete(tc.missing, name)
}

// Texture returns the image for name, or nil when it cannot be loaded.
func (tc *TextureCache) Texture(name string) *ebiten.Image {
	if name == "" {
		return nil
	}
	if img, ok := tc.cache[name]; ok {
		return img
	}
	if tc.missing[name] {
		return nil
	}

	img, err := tc.load(name)
	if err != nil {
		log.Printf("[assets] %v", err)
		tc.missing[name] = true
		return nil
	}
	tc.cache[name] = img
	return img
}

// Release drops every cached texture.
func (tc *TextureCache) Release() {
	for _, img := range tc.cache {
		img.Deallocate()
	}
	tc.cache = make(map[string]*ebiten.Image)
	tc.missing = make(map[string]bool)
}

func (tc *TextureCache) load(name string) (*ebiten.Image, error) {
	f, err := tc.fsys.Open(filepath.ToSlash(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
