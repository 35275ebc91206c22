// Package config loads a docscan.yaml override file so operators can tune
// the detector's build-time constants and the active profile's output
// parameters without a rebuild.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AnyUserName/docscan-cli/internal/document"
	"github.com/AnyUserName/docscan-cli/internal/hough"
	"github.com/AnyUserName/docscan-cli/internal/profile"
	"github.com/AnyUserName/docscan-cli/internal/quadassembly"
)

// Detector holds the detection pipeline's tunable constants, mirroring
// spec.md section 6's build-time constant list.
type Detector struct {
	GradientError    *int     `yaml:"gradient_error"`
	HoughMatchRatio  *float32 `yaml:"hough_match_ratio"`
	MaxAngError      *int     `yaml:"max_ang_error"`
	InitialThreshold *float32 `yaml:"initial_threshold"`
	Tries            *int     `yaml:"tries"`
	LineCap          *int     `yaml:"line_cap"`
}

// File is the top-level shape of docscan.yaml.
type File struct {
	Detector *Detector                  `yaml:"detector"`
	Profiles map[string]profile.Profile `yaml:"profiles"`
}

// Load reads and parses path, returning the decoded override file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &f, nil
}

// Apply pushes a loaded File's detector overrides into the detection
// packages' tunable variables. Profile overrides are applied by the
// caller via f.Profiles, since profile.Get has no registration hook.
func (f *File) Apply() {
	if f == nil || f.Detector == nil {
		return
	}
	d := f.Detector
	if d.GradientError != nil {
		hough.GradientError = *d.GradientError
	}
	if d.HoughMatchRatio != nil {
		hough.HoughMatchRatio = *d.HoughMatchRatio
	}
	if d.MaxAngError != nil {
		hough.MaxAngError = *d.MaxAngError
	}
	if d.InitialThreshold != nil {
		document.InitialThreshold = *d.InitialThreshold
	}
	if d.Tries != nil {
		document.DefaultTries = *d.Tries
	}
	if d.LineCap != nil {
		quadassembly.MaxLines = *d.LineCap
	}
}
