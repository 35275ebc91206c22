package pipeline

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AnyUserName/docscan-cli/internal/encoder"
	"github.com/AnyUserName/docscan-cli/internal/manifest"
	"github.com/AnyUserName/docscan-cli/internal/profile"
)

// PoolEntryKB is the approximate per-worker scratch memory a detection
// pass holds live at once: the grayscale/downscaled/blurred float32
// buffers plus the Hough accumulator (GradientVotes.Buf + GradBuf) sized
// for a downscaleTarget-class image. Reported for diagnostics only.
const PoolEntryKB = 1024

// Config holds all parameters for a scan pipeline run.
type Config struct {
	InputDir  string
	OutputDir string
	Profile   profile.Profile
	Workers   int
	Verbose   bool
	RunID     string
}

// Pipeline orchestrates document detection and rectification across a
// directory of source images.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
	}
}

// Run executes the full scan pipeline and returns the manifest.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	sources, err := ScanImages(p.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}

	log.Info().Int("count", len(sources)).Msg("docscan: images found")

	results := make([]processResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			entry := log.With().Str("key", s.Key).Logger()
			if p.cfg.Verbose {
				entry.Debug().Msg("processing")
			}

			results[idx] = processImage(s, p.cfg, p.registry)

			logResult(entry, results[idx], p.cfg.Verbose)
		}(i, src)
	}
	wg.Wait()

	m := manifest.New(p.cfg.Profile.Name)

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Assets[r.key] = r.asset
	}

	if len(errs) > 0 {
		for _, e := range errs {
			log.Error().Err(e).Msg("docscan: image failed")
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d images failed to process", len(errs))
		}
		log.Warn().Int("failed", len(errs)).Int("total", len(sources)).Msg("docscan: partial failures")
	}

	m.BuildInfo = &manifest.BuildInfo{
		RunID:       p.cfg.RunID,
		Workers:     p.cfg.Workers,
		PoolEntryKB: PoolEntryKB,
	}
	m.ComputeStats()
	return m, nil
}

func logResult(entry zerolog.Logger, r processResult, verbose bool) {
	if r.err != nil {
		return
	}
	if r.asset.Detection == nil {
		entry.Info().Msg("no document found")
		return
	}
	if verbose {
		entry.Debug().
			Float32("score", r.asset.Detection.Score).
			Str("preview", r.asset.Detection.PreviewPath).
			Msg("document rectified")
	}
}
