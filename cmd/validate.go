package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/docscan-cli/internal/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate a docscan manifest and check referenced files exist",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	baseDir := filepath.Dir(manifestPath)
	errs := validateManifest(&m, baseDir)

	if len(errs) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d assets, %d detected — all files present\n", m.Stats.TotalAssets, m.Stats.TotalDetections)
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	seenPaths := map[string]bool{}

	for key, asset := range m.Assets {
		if asset.Original.Width <= 0 || asset.Original.Height <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid original dimensions %dx%d",
				key, asset.Original.Width, asset.Original.Height))
		}

		if asset.Detection == nil {
			continue
		}
		d := asset.Detection

		if asset.Placeholder == "" {
			errs = append(errs, fmt.Sprintf("asset %q: missing placeholder", key))
		}

		if d.Format == "" {
			errs = append(errs, fmt.Sprintf("asset %q detection: empty format", key))
		}
		if d.OutputWidth <= 0 || d.OutputHeight <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q detection: invalid output dimensions %dx%d",
				key, d.OutputWidth, d.OutputHeight))
		}
		if d.PreviewHash == "" {
			errs = append(errs, fmt.Sprintf("asset %q detection: missing preview hash", key))
		}
		if d.PreviewPath == "" {
			errs = append(errs, fmt.Sprintf("asset %q detection: missing preview path", key))
			continue
		}

		if seenPaths[d.PreviewPath] {
			errs = append(errs, fmt.Sprintf("asset %q detection: duplicate path %q", key, d.PreviewPath))
		}
		seenPaths[d.PreviewPath] = true

		fullPath := filepath.Join(baseDir, d.PreviewPath)
		info, err := os.Stat(fullPath)
		if err != nil {
			errs = append(errs, fmt.Sprintf("asset %q detection: file not found: %s", key, d.PreviewPath))
		} else if d.PreviewSize > 0 && info.Size() != d.PreviewSize {
			errs = append(errs, fmt.Sprintf("asset %q detection: size mismatch: manifest=%d, disk=%d",
				key, d.PreviewSize, info.Size()))
		}
	}

	assetCount := len(m.Assets)
	detectionCount := 0
	for _, a := range m.Assets {
		if a.Detection != nil {
			detectionCount++
		}
	}
	if m.Stats.TotalAssets != assetCount {
		errs = append(errs, fmt.Sprintf("stats.total_assets mismatch: %d != %d", m.Stats.TotalAssets, assetCount))
	}
	if m.Stats.TotalDetections != detectionCount {
		errs = append(errs, fmt.Sprintf("stats.total_detections mismatch: %d != %d", m.Stats.TotalDetections, detectionCount))
	}

	return errs
}
