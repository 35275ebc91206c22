package pipeline

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"encoding/base64"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/AnyUserName/docscan-cli/internal/document"
	"github.com/AnyUserName/docscan-cli/internal/encoder"
	"github.com/AnyUserName/docscan-cli/internal/hasher"
	"github.com/AnyUserName/docscan-cli/internal/imageops"
	"github.com/AnyUserName/docscan-cli/internal/manifest"
	"github.com/AnyUserName/docscan-cli/internal/quadassembly"
)

// processResult holds the result of processing a single source image.
type processResult struct {
	key   string
	asset manifest.Asset
	err   error
}

// processImage decodes a source image, finds and rectifies its document
// quad (if any), and encodes a preview of the rectified output.
func processImage(src Source, cfg Config, registry *encoder.Registry) processResult {
	result := processResult{key: src.Key}

	f, err := os.Open(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("open %s: %w", src.RelPath, err)
		return result
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}

	bounds := img.Bounds()
	origW := bounds.Dx()
	origH := bounds.Dy()

	rgba := imageops.FromImage(img)
	hasAlpha := imageops.HasAlpha(rgba)

	result.asset = manifest.Asset{
		Original: manifest.OriginalInfo{
			Width:    origW,
			Height:   origH,
			Format:   src.Format,
			Size:     src.Size,
			HasAlpha: hasAlpha,
		},
		AvgColor: avgColorPtr(computeAvgColor(img)),
	}

	scored, ok := document.FindDocumentScored(rgba, cfg.Profile.Tries)
	if !ok {
		return result
	}
	quad := scored.Quad

	rectified := document.ExtractDocument(rgba, quad, cfg.Profile.TargetWidth, 0)
	rectifiedImg := imageops.ToImage(rectified)

	result.asset.Placeholder = base64.StdEncoding.EncodeToString(imageops.PlaceholderHash(rectified))

	preview := imaging.Resize(rectifiedImg, cfg.Profile.PreviewWidth, 0, imaging.Lanczos)

	keyDir := filepath.Dir(src.Key)
	if keyDir != "." {
		os.MkdirAll(filepath.Join(cfg.OutputDir, keyDir), 0o755)
	}

	data, usedFormat, err := registry.Encode(preview, cfg.Profile.Formats, cfg.Profile.Quality)
	if err != nil {
		result.err = fmt.Errorf("encode preview for %s: %w", src.RelPath, err)
		return result
	}

	contentHash := hasher.ContentHash(data, 16)
	w, h := preview.Bounds().Dx(), preview.Bounds().Dy()
	fileName := fmt.Sprintf("%s.%d.%d.%s.%s",
		filepath.Base(src.Key), w, h, contentHash[:8], usedFormat)
	relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))

	outPath := filepath.Join(cfg.OutputDir, relPath)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		result.err = fmt.Errorf("write %s: %w", relPath, err)
		return result
	}

	result.asset.Detection = &manifest.Detection{
		ShortID:      hasher.ShortID([]byte(src.RelPath)),
		Corners:      corners(quad),
		Score:        scored.Score,
		OutputWidth:  rectified.Width,
		OutputHeight: rectified.Height,
		PreviewPath:  relPath,
		PreviewSize:  int64(len(data)),
		PreviewHash:  contentHash,
		Format:       usedFormat,
	}

	return result
}

func corners(q quadassembly.Quad) [4]manifest.Corner {
	return [4]manifest.Corner{
		{X: q.A.X, Y: q.A.Y},
		{X: q.B.X, Y: q.B.Y},
		{X: q.C.X, Y: q.C.Y},
		{X: q.D.X, Y: q.D.Y},
	}
}

// computeAvgColor calculates the average RGB color of an image.
func computeAvgColor(img image.Image) [3]uint8 {
	bounds := img.Bounds()
	w := uint64(bounds.Dx())
	h := uint64(bounds.Dy())
	count := w * h
	if count == 0 {
		return [3]uint8{0, 0, 0}
	}
	var rSum, gSum, bSum uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rSum += uint64(r >> 8)
			gSum += uint64(g >> 8)
			bSum += uint64(b >> 8)
		}
	}
	return [3]uint8{
		uint8(rSum / count),
		uint8(gSum / count),
		uint8(bSum / count),
	}
}

func avgColorPtr(c [3]uint8) *[3]uint8 { return &c }
