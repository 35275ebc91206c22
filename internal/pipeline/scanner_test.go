package pipeline

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestScanImagesSkipsTooSmall(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "big.png"), 32, 32)
	writePNG(t, filepath.Join(dir, "tiny.png"), 4, 4)

	sources, err := ScanImages(dir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(sources) != 1 {
		t.Fatalf("got %d sources want 1", len(sources))
	}
	if sources[0].Key != "big" {
		t.Fatalf("got key %q want big", sources[0].Key)
	}
	if sources[0].Width != 32 || sources[0].Height != 32 {
		t.Fatalf("got dims %dx%d want 32x32", sources[0].Width, sources[0].Height)
	}
}

func TestScanImagesSkipsHiddenDirsAndNonImages(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(dir, ".git", "hidden.png"), 64, 64)
	writePNG(t, filepath.Join(dir, "visible.png"), 64, 64)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	sources, err := ScanImages(dir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(sources) != 1 || sources[0].Key != "visible" {
		t.Fatalf("got %+v want only visible", sources)
	}
}

func TestProbeDimensionsRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := probeDimensions(path); ok {
		t.Fatal("expected probe to fail on corrupt file")
	}
}
