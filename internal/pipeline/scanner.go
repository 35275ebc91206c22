package pipeline

import (
	"image"
	"os"
	"path/filepath"
	"strings"
)

// minDetectableDim is the smallest width or height, in source pixels, an
// image must have before it's worth handing to the detector. hough.Vote
// requires an input of at least 3x3 and treats smaller inputs as a
// programming error rather than a recoverable case; anything below this
// floor also has too few pixels for a document's edges to survive the
// downscale-then-Gaussian-blur stages intact, so it is skipped before the
// worker pool ever opens the file for real decoding.
const minDetectableDim = 16

// Source represents a discovered image file.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// RelPath is the path relative to the input directory.
	RelPath string
	// Key is the asset key (relpath without extension).
	Key string
	// Format is the source format (png, jpeg, webp, gif, bmp, tiff); .jpg
	// and .tif files are reported as jpeg and tiff.
	Format string
	// Size is the file size in bytes.
	Size int64
	// Width and Height come from a cheap header probe, not a full decode.
	Width  int
	Height int
}

// tooSmall reports whether a source's probed dimensions fall below the
// floor the detector can meaningfully operate on.
func (s Source) tooSmall() bool {
	return s.Width < minDetectableDim || s.Height < minDetectableDim
}

// imageExtensions lists recognized image file extensions.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// ScanImages walks the input directory, probes each recognized image's
// header for its dimensions, and returns the sources large enough for the
// detector to plausibly find a document in. Files that fail the header
// probe (corrupt, truncated, unsupported codec) are skipped rather than
// failing the whole walk — they'll simply be absent from the manifest.
func ScanImages(inputDir string) ([]Source, error) {
	var sources []Source

	err := filepath.Walk(inputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			// Skip hidden directories.
			if strings.HasPrefix(info.Name(), ".") && info.Name() != "." {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !imageExtensions[ext] {
			return nil
		}

		relPath, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}

		// Key: relative path without extension, using forward slashes.
		key := strings.TrimSuffix(relPath, ext)
		key = filepath.ToSlash(key)

		// Normalize format name.
		format := strings.TrimPrefix(ext, ".")
		if format == "jpg" {
			format = "jpeg"
		}
		if format == "tif" {
			format = "tiff"
		}

		w, h, ok := probeDimensions(path)
		if !ok {
			return nil
		}

		src := Source{
			AbsPath: path,
			RelPath: filepath.ToSlash(relPath),
			Key:     key,
			Format:  format,
			Size:    info.Size(),
			Width:   w,
			Height:  h,
		}
		if src.tooSmall() {
			return nil
		}

		sources = append(sources, src)
		return nil
	})

	return sources, err
}

// probeDimensions reads just enough of path to learn its pixel dimensions,
// without decoding the full image.
func probeDimensions(path string) (width, height int, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}
