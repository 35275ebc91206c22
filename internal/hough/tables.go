package hough

import "github.com/chewxy/math32"

// NumAngles is the number of orientation bins covering a half-turn.
const NumAngles = 256

// AngsPerRad converts radians to angle-bin units: 256 bins over pi radians.
const AngsPerRad = float32(NumAngles) / math32.Pi

// angleOffset centers atan's (-pi/2, pi/2] output range onto [0, 256).
const angleOffset = NumAngles / 2

// Tuning parameters, empirically chosen. They are variables rather than
// constants so internal/config can override them from docscan.yaml.
var (
	GradientError   = 3
	HoughMatchRatio = float32(0.01)
	MaxAngError     = 4
)

// COS and SIN give the direction cosine/sine for each of the 256
// orientation bins, used both to quantize a pixel's gradient direction
// and to recover a line's normal-form coefficients from its angle bin.
var (
	COS [NumAngles]float32
	SIN [NumAngles]float32
)

func init() {
	for k := 0; k < NumAngles; k++ {
		theta := float32(k-angleOffset) / AngsPerRad
		COS[k] = math32.Cos(theta)
		SIN[k] = math32.Sin(theta)
	}
}

// angleBin quantizes an orientation in (-pi/2, pi/2] to a cyclic bin index.
func angleBin(theta float32) int {
	a := int(math32.Floor(theta*AngsPerRad)) + angleOffset
	a %= NumAngles
	if a < 0 {
		a += NumAngles
	}
	return a
}

// cyclicAngleDist returns the shortest distance between two angle bins on
// the 256-valued cyclic group.
func cyclicAngleDist(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	d %= NumAngles
	if d > NumAngles-d {
		return NumAngles - d
	}
	return d
}
