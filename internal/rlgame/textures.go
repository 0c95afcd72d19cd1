// internal/rlgame/textures.go
package rlgame

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shoot-balls/internal/app"
)

// ErrAssetLoad возвращается, если не удалось загрузить текстуру, звук или шрифт.
var ErrAssetLoad = errors.New("asset load failure")

// TextureManager загружает и выгружает текстуры спрайтов.
type TextureManager struct {
	textures map[app.SpriteID]rl.Texture2D
}

func NewTextureManager() *TextureManager {
	return &TextureManager{
		textures: make(map[app.SpriteID]rl.Texture2D),
	}
}

// Load читает <sprite>.png для каждого спрайта. Нужно открытое окно.
func (m *TextureManager) Load(dir string) error {
	for _, id := range app.Sprites {
		path := filepath.Join(dir, id.String()+".png")
		// raylib не возвращает ошибку, поэтому проверяем файл заранее
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w: texture %s: %v", ErrAssetLoad, path, err)
		}
		texture := rl.LoadTexture(path)
		if texture.ID == 0 {
			return fmt.Errorf("%w: texture %s could not be decoded", ErrAssetLoad, path)
		}
		rl.SetTextureFilter(texture, rl.FilterBilinear)
		m.textures[id] = texture
	}
	log.Printf("Loaded %d textures from %s", len(m.textures), dir)
	return nil
}

func (m *TextureManager) Get(id app.SpriteID) (rl.Texture2D, bool) {
	texture, ok := m.textures[id]
	return texture, ok
}

// Cleanup выгружает все загруженные текстуры.
func (m *TextureManager) Cleanup() {
	for id, texture := range m.textures {
		rl.UnloadTexture(texture)
		delete(m.textures, id)
	}
}
