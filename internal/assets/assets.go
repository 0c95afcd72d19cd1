// internal/assets/assets.go
package assets

import (
	"errors"
	"fmt"
	_ "image/png" // sprites are png
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"shoot-balls/internal/app"
	"shoot-balls/internal/config"
	"shoot-balls/internal/event"
)

// ErrAssetLoad wraps every failure to load a sprite, sound or font. The game
// does not start without its assets.
var ErrAssetLoad = errors.New("asset load failure")

// Library holds everything loaded from the resource directory.
type Library struct {
	Sprites   map[app.SpriteID]*ebiten.Image
	Sounds    map[event.EventType][]byte // 16-bit stereo PCM at the context sample rate
	ScoreFace text.Face
}

// Load reads all sprites, cues and the score font from dir.
func Load(dir string, sampleRate int, fontSize float64) (*Library, error) {
	lib := &Library{
		Sprites: make(map[app.SpriteID]*ebiten.Image),
		Sounds:  make(map[event.EventType][]byte),
	}

	for _, id := range app.Sprites {
		path := filepath.Join(dir, id.String()+".png")
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: sprite %s: %v", ErrAssetLoad, path, err)
		}
		lib.Sprites[id] = img
	}

	for _, cue := range event.Cues {
		pcm, err := LoadSound(dir, event.CueFiles[cue], sampleRate)
		if err != nil {
			return nil, err
		}
		lib.Sounds[cue] = pcm
	}

	face, err := LoadFace(filepath.Join(dir, config.FontFile), fontSize)
	if err != nil {
		return nil, err
	}
	lib.ScoreFace = face

	log.Printf("Loaded %d sprites and %d sounds from %s", len(lib.Sprites), len(lib.Sounds), dir)
	return lib, nil
}

// LoadSound finds name with the first extension that exists and decodes it
// fully into memory so it can be replayed any number of times.
func LoadSound(dir, name string, sampleRate int) ([]byte, error) {
	for _, ext := range config.SoundExts {
		path := filepath.Join(dir, name+ext)
		file, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: sound %s: %v", ErrAssetLoad, path, err)
		}
		pcm, err := decode(file, ext, sampleRate)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: sound %s: %v", ErrAssetLoad, path, err)
		}
		return pcm, nil
	}
	return nil, fmt.Errorf("%w: sound %s not found in %s", ErrAssetLoad, name, dir)
}

func decode(r io.Reader, ext string, sampleRate int) ([]byte, error) {
	var stream io.Reader
	var err error
	switch ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, r)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, r)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, r)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}

// LoadFace parses a TrueType/OpenType file into a text/v2 face.
func LoadFace(path string, size float64) (text.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: font %s: %v", ErrAssetLoad, path, err)
	}
	sfntFont, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: font %s: %v", ErrAssetLoad, path, err)
	}
	face, err := opentype.NewFace(sfntFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: font %s: %v", ErrAssetLoad, path, err)
	}
	return text.NewGoXFace(face), nil
}
