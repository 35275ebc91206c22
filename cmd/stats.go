package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/docscan-cli/internal/manifest"
	"github.com/AnyUserName/docscan-cli/internal/pipeline"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a completed scan",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, "docscan.manifest.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	printStats(&m)
	return nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Profile:          %s\n", m.Profile)
	if m.BuildInfo != nil {
		poolMB := float64(m.BuildInfo.Workers*m.BuildInfo.PoolEntryKB) / 1024
		fmt.Printf("  Run ID:           %s\n", m.BuildInfo.RunID)
		fmt.Printf("  Workers:          %d\n", m.BuildInfo.Workers)
		fmt.Printf("  Pool footprint:   %d × %d KB ≈ %.1f MB\n",
			m.BuildInfo.Workers, m.BuildInfo.PoolEntryKB, poolMB)
	} else {
		workers := runtime.NumCPU()
		poolMB := float64(workers*pipeline.PoolEntryKB) / 1024
		fmt.Printf("  Workers (est):    %d  (pool ≈ %.1f MB)\n", workers, poolMB)
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total assets:     %d\n", s.TotalAssets)
	fmt.Printf("  Documents found:  %d\n", s.TotalDetections)
	fmt.Printf("  Not found:        %d\n", s.TotalUndetected)
	fmt.Printf("  Input size:       %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size:      %s\n", formatBytes(s.TotalOutputBytes))
	fmt.Println()

	formatStats := map[string]struct {
		count int
		bytes int64
	}{}
	var totalScore float64
	for _, a := range m.Assets {
		if a.Detection == nil {
			continue
		}
		fs := formatStats[a.Detection.Format]
		fs.count++
		fs.bytes += a.Detection.PreviewSize
		formatStats[a.Detection.Format] = fs
		totalScore += float64(a.Detection.Score)
	}

	fmt.Println("  Preview format breakdown:")
	for f, fs := range formatStats {
		fmt.Printf("    %-6s  %4d files  %s\n", f, fs.count, formatBytes(fs.bytes))
	}
	fmt.Println()

	if s.TotalDetections > 0 {
		fmt.Printf("  Average detection score: %.2f\n", totalScore/float64(s.TotalDetections))
	}

	thCoverage := 0
	for _, a := range m.Assets {
		if a.Placeholder != "" {
			thCoverage++
		}
	}
	fmt.Printf("  Placeholder coverage: %d / %d assets\n", thCoverage, len(m.Assets))

	var warnings []string
	for key, a := range m.Assets {
		if a.Detection == nil {
			warnings = append(warnings, fmt.Sprintf("asset %q: no document detected", key))
		}
		if a.Placeholder == "" {
			warnings = append(warnings, fmt.Sprintf("asset %q: missing placeholder", key))
		}
	}
	if len(warnings) > 0 {
		fmt.Println()
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
	}
	fmt.Println()
}
