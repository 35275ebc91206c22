package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AnyUserName/docscan-cli/internal/config"
	"github.com/AnyUserName/docscan-cli/internal/manifest"
	"github.com/AnyUserName/docscan-cli/internal/pipeline"
	"github.com/AnyUserName/docscan-cli/internal/profile"
)

var (
	scanOutDir      string
	scanProfile     string
	scanWorkers     int
	scanTargetWidth int
	scanQuality     int
	scanTries       int
	scanConfigPath  string
)

var scanCmd = &cobra.Command{
	Use:   "scan <input_dir>",
	Short: "Detect and rectify documents in a directory of photographs",
	Long: `Scans input directory for images (png, jpg, jpeg, webp, gif, bmp, tiff),
detects the most document-like quadrilateral in each via a gradient-Hough
accumulator, rectifies it through a perspective homography, encodes a
preview, and writes a manifest describing every result.

Output filenames are content-addressed: <key>.<w>.<h>.<hash>.ext`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanOutDir, "out", "o", "./docscan_out", "output directory")
	scanCmd.Flags().StringVarP(&scanProfile, "profile", "p", "default", "processing profile")
	scanCmd.Flags().IntVarP(&scanWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	scanCmd.Flags().IntVar(&scanTargetWidth, "target-width", 0, "rectified output width (0 = profile default)")
	scanCmd.Flags().IntVarP(&scanQuality, "quality", "q", 0, "preview quality 1-100 (0 = profile default)")
	scanCmd.Flags().IntVar(&scanTries, "tries", 0, "adaptive-threshold retry budget (0 = profile default)")
	scanCmd.Flags().StringVar(&scanConfigPath, "config", "", "path to a docscan.yaml override file")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	inputDir := args[0]
	start := time.Now()

	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(scanOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	prof := profile.Get(scanProfile)
	if scanConfigPath != "" {
		f, err := config.Load(scanConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		f.Apply()
		if override, ok := f.Profiles[scanProfile]; ok {
			prof = override
		}
	}
	if scanTargetWidth > 0 {
		prof.TargetWidth = scanTargetWidth
	}
	if scanQuality > 0 {
		prof.Quality = scanQuality
	}
	if scanTries > 0 {
		prof.Tries = scanTries
	}

	runID := uuid.NewString()
	log.Info().Str("input", absInput).Str("output", absOutput).Str("profile", prof.Name).Str("run_id", runID).Msg("docscan: starting scan")

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.New(pipeline.Config{
		InputDir:  absInput,
		OutputDir: absOutput,
		Profile:   prof,
		Workers:   scanWorkers,
		Verbose:   verbose,
		RunID:     runID,
	})

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	manifestPath := filepath.Join(absOutput, "docscan.manifest.json")
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	elapsed := time.Since(start)
	printScanReport(m, elapsed)

	return nil
}

func printScanReport(m *manifest.Manifest, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║                docscan run complete               ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()

	stats := m.Stats
	fmt.Printf("  Assets:      %d\n", stats.TotalAssets)
	fmt.Printf("  Detected:    %d\n", stats.TotalDetections)
	fmt.Printf("  Undetected:  %d\n", stats.TotalUndetected)
	fmt.Printf("  Input size:  %s\n", formatBytes(stats.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(stats.TotalOutputBytes))
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))

	if m.BuildInfo != nil {
		poolMB := float64(m.BuildInfo.Workers*m.BuildInfo.PoolEntryKB) / 1024
		fmt.Printf("  Run ID:      %s\n", m.BuildInfo.RunID)
		fmt.Printf("  Workers:     %d  (pool ≈ %.1f MB)\n", m.BuildInfo.Workers, poolMB)
	}
	fmt.Println()

	if len(m.Assets) > 0 {
		type scored struct {
			key   string
			score float32
		}
		var items []scored
		for key, a := range m.Assets {
			if a.Detection != nil {
				items = append(items, scored{key, a.Detection.Score})
			}
		}
		sort.Slice(items, func(i, j int) bool { return items[i].score > items[j].score })
		n := len(items)
		if n > 10 {
			n = 10
		}
		if n > 0 {
			fmt.Printf("  Top %d by detection score:\n", n)
			for _, it := range items[:n] {
				fmt.Printf("    %-40s  score %.2f\n", truncKey(it.key, 40), it.score)
			}
			fmt.Println()
		}
	}

	data, _ := json.Marshal(m)
	fmt.Printf("  Manifest:    docscan.manifest.json (%s)\n", formatBytes(int64(len(data))))
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
