package scene

import (
	"fmt"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/webp" // register decoder
	"gopkg.in/yaml.v3"
)

// AssetEntry names one image file in a manifest.
type AssetEntry struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// Manifest is the YAML document accepted by Assets.LoadManifest.
//
//	backgrounds:
//	  - id: dusk
//	    path: images/dusk.png
type Manifest struct {
	Backgrounds []AssetEntry `yaml:"backgrounds"`
}

// Assets maps string identifiers to loaded textures. Registration order is
// preserved so callers can refer to assets by index.
type Assets struct {
	textures map[string]*Texture
	order    []string
}

// NewAssets creates an empty registry.
func NewAssets() *Assets {
	return &Assets{textures: make(map[string]*Texture)}
}

// Register stores img under id, replacing any previous texture with that id.
// The id keeps its original position when replaced.
func (a *Assets) Register(id string, img *ebiten.Image) *Texture {
	if id == "" {
		panic("scene: asset id must not be empty")
	}
	tex := NewTexture(img)
	if _, ok := a.textures[id]; !ok {
		a.order = append(a.order, id)
	}
	a.textures[id] = tex
	return tex
}

// LoadFile decodes the image at path and registers it under id.
// PNG, JPEG, GIF, BMP and WebP are supported.
func (a *Assets) LoadFile(id, path string) (*Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: load asset %q from %s: %w", id, path, err)
	}
	return a.Register(id, img), nil
}

// LoadManifest parses a YAML manifest and loads every entry. Relative paths
// are resolved against baseDir. Loading stops at the first failure.
func (a *Assets) LoadManifest(data []byte, baseDir string) error {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("scene: failed to parse asset manifest: %w", err)
	}
	return a.LoadEntries(m.Backgrounds, baseDir)
}

// LoadEntries loads each entry in order. Relative paths are resolved against
// baseDir; an entry without an id uses its file name without extension.
func (a *Assets) LoadEntries(entries []AssetEntry, baseDir string) error {
	for i, e := range entries {
		if e.Path == "" {
			return fmt.Errorf("scene: asset entry %d has no path", i)
		}
		id := e.ID
		if id == "" {
			base := filepath.Base(e.Path)
			id = base[:len(base)-len(filepath.Ext(base))]
		}
		path := e.Path
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		if _, err := a.LoadFile(id, path); err != nil {
			return err
		}
	}
	return nil
}

// Texture returns the texture registered under id.
func (a *Assets) Texture(id string) (*Texture, bool) {
	tex, ok := a.textures[id]
	return tex, ok
}

// Index returns the registration index of id, or -1 if unknown.
func (a *Assets) Index(id string) int {
	for i, v := range a.order {
		if v == id {
			return i
		}
	}
	return -1
}

// IDs returns the registered ids in registration order. The returned slice
// MUST NOT be mutated.
func (a *Assets) IDs() []string {
	return a.order
}

// Len returns the number of registered textures.
func (a *Assets) Len() int {
	return len(a.order)
}
