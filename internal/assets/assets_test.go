package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"shoot-balls/internal/config"
	"shoot-balls/internal/event"
)

func TestEveryCueHasAFile(t *testing.T) {
	for _, cue := range event.Cues {
		if event.CueFiles[cue] == "" {
			t.Errorf("cue %q has no file name", cue)
		}
	}
}

func TestLoadSoundMissing(t *testing.T) {
	_, err := LoadSound(t.TempDir(), "shoot", config.SampleRate)
	if !errors.Is(err, ErrAssetLoad) {
		t.Fatalf("err = %v, want ErrAssetLoad", err)
	}
}

func TestLoadSoundCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pop.wav"), []byte("not a wave file"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSound(dir, "pop", config.SampleRate)
	if !errors.Is(err, ErrAssetLoad) {
		t.Fatalf("err = %v, want ErrAssetLoad", err)
	}
}

func TestLoadFaceCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FontFile)
	if err := os.WriteFile(path, []byte{0, 1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFace(path, config.FontSize); !errors.Is(err, ErrAssetLoad) {
		t.Fatalf("err = %v, want ErrAssetLoad", err)
	}
	if _, err := LoadFace(filepath.Join(dir, "missing.ttf"), config.FontSize); !errors.Is(err, ErrAssetLoad) {
		t.Fatalf("err = %v, want ErrAssetLoad", err)
	}
}
