package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"jedi-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	imageDir  = "images"
	fontFile  = "fonts/verdana.ttf"
	iconImage = "s1.gif"
)

// Assets holds the GPU textures of every edible variant and the UI font.
type Assets struct {
	textures map[types.Sprite]rl.Texture2D
	font     rl.Font
	ownFont  bool
}

// SpritePath is the image file of a sprite under dir ("images/j3.gif").
func SpritePath(dir string, s types.Sprite) string {
	name := fmt.Sprintf("%s%d.gif", s.Kind.Prefix(), s.Variant+1)
	return filepath.Join(dir, imageDir, name)
}

// LoadAssets loads and scales every sprite variant. A missing image is an
// error; a missing font falls back to raylib's built-in one.
func LoadAssets(dir string, geom types.Geometry, variants int, log *zap.SugaredLogger) (*Assets, error) {
	a := &Assets{textures: make(map[types.Sprite]rl.Texture2D)}
	size := int32(geom.SpriteSize())

	for _, kind := range []types.EdibleKind{types.Jedi, types.Sith} {
		for v := 0; v < variants; v++ {
			s := types.Sprite{Kind: kind, Variant: v}
			img, err := loadImage(SpritePath(dir, s))
			if err != nil {
				a.Unload()
				return nil, err
			}
			rl.ImageResize(img, size, size)
			a.textures[s] = rl.LoadTextureFromImage(img)
			rl.UnloadImage(img)
		}
	}

	fontPath := filepath.Join(dir, fontFile)
	if _, err := os.Stat(fontPath); err != nil {
		log.Warnw("font not found, using default", "path", fontPath, "error", err)
		a.font = rl.GetFontDefault()
	} else {
		a.font = rl.LoadFont(fontPath)
		a.ownFont = true
	}

	log.Infow("assets loaded", "dir", dir, "textures", len(a.textures), "spriteSize", size)
	return a, nil
}

func loadImage(path string) (*rl.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	img := rl.LoadImage(path)
	if img == nil || img.Width == 0 || img.Height == 0 {
		return nil, fmt.Errorf("load image %s: unsupported or corrupt file", path)
	}
	return img, nil
}

func (a *Assets) Texture(s types.Sprite) (rl.Texture2D, bool) {
	t, ok := a.textures[s]
	return t, ok
}

func (a *Assets) Font() rl.Font {
	return a.font
}

// Unload frees every texture and the font.
func (a *Assets) Unload() {
	for s, t := range a.textures {
		rl.UnloadTexture(t)
		delete(a.textures, s)
	}
	if a.ownFont {
		rl.UnloadFont(a.font)
		a.ownFont = false
	}
}
