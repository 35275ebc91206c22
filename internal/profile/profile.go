// Package profile defines named parameter presets for a docscan run. The
// Profile fields carry yaml tags so internal/config can decode profile
// overrides from docscan.yaml; this package does no YAML loading itself.
package profile

// Profile defines detection and output parameters for a run.
type Profile struct {
	Name         string   `yaml:"name"`
	TargetWidth  int      `yaml:"target_width"` // rectified output width; height derives from quad aspect
	PreviewWidth int      `yaml:"preview_width"`
	Formats      []string `yaml:"formats"` // preview encode formats, priority order
	Quality      int      `yaml:"quality"` // encoding quality 1-100
	Tries        int      `yaml:"tries"`   // adaptive-threshold retry budget
}

// Built-in profiles.
var profiles = map[string]Profile{
	"default": {
		Name:         "default",
		TargetWidth:  1200,
		PreviewWidth: 480,
		Formats:      []string{"webp", "jpeg"},
		Quality:      82,
		Tries:        4,
	},
	"archival": {
		Name:         "archival",
		TargetWidth:  2400,
		PreviewWidth: 800,
		Formats:      []string{"png"},
		Quality:      95,
		Tries:        6,
	},
	"fast": {
		Name:         "fast",
		TargetWidth:  800,
		PreviewWidth: 320,
		Formats:      []string{"jpeg"},
		Quality:      75,
		Tries:        2,
	},
}

// Get returns a profile by name. Falls back to default if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["default"]
	p.Name = name // preserve requested name
	return p
}
