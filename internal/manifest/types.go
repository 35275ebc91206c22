package manifest

// Manifest is the top-level output of a docscan run.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Profile     string           `json:"profile"`
	BasePath    string           `json:"base_path"`
	BuildInfo   *BuildInfo       `json:"build_info,omitempty"`
	Assets      map[string]Asset `json:"assets"`
	Stats       Stats            `json:"stats"`
}

// BuildInfo captures run-time parameters for diagnostics.
type BuildInfo struct {
	RunID       string `json:"run_id"`
	Workers     int    `json:"workers"`
	PoolEntryKB int    `json:"pool_entry_kb"` // per-worker detection scratch buffers, see pipeline.PoolEntryKB
}

// Asset describes a single source image and the document detected in it.
type Asset struct {
	Original    OriginalInfo `json:"original"`
	Placeholder string       `json:"placeholder"` // base64-encoded average-color grid of the rectified output
	AvgColor    *[3]uint8    `json:"avg_color,omitempty"`
	Detection   *Detection   `json:"detection,omitempty"` // nil if no document was found
}

// OriginalInfo holds metadata about the source image.
type OriginalInfo struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Size     int64  `json:"size"`
	HasAlpha bool   `json:"has_alpha"`
}

// Corner is a single detected-quad vertex in source-image coordinates.
type Corner struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Detection describes the quad found by the detector and the rectified
// output produced from it.
type Detection struct {
	ShortID      string    `json:"short_id"`
	Corners      [4]Corner `json:"corners"` // a, b, c, d in canonical order
	Score        float32   `json:"score"`
	OutputWidth  int       `json:"output_width"`
	OutputHeight int       `json:"output_height"`
	PreviewPath  string    `json:"preview_path"` // relative to base_path
	PreviewSize  int64     `json:"preview_size"`
	PreviewHash  string    `json:"preview_hash"` // first 16 hex chars of xxhash64
	Format       string    `json:"format"`       // preview encoding ("jpeg" or "png")
}

// Stats aggregates run metrics.
type Stats struct {
	TotalInputBytes   int64 `json:"total_input_bytes"`
	TotalOutputBytes  int64 `json:"total_output_bytes"`
	TotalAssets       int   `json:"total_assets"`
	TotalDetections   int   `json:"total_detections"`
	TotalUndetected   int   `json:"total_undetected"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
