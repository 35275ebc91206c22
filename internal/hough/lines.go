package hough

import "sort"

// Line is a candidate line in the accumulator's normal-form coordinates:
// a quantized orientation and signed-distance bin, with accumulated vote
// mass as its score.
type Line struct {
	AngleBin int
	DistBin  int
	Score    float32
}

// maxLinesBeforeCluster bounds the candidate list before non-maximum
// suppression, matching the reference implementation's pre-cluster cap.
const maxLinesBeforeCluster = 5000

// Extract thresholds the accumulator at t*max_grad, sorts the survivors by
// score descending, and clusters nearby peaks via non-maximum suppression.
// t must be in [0, 1).
func Extract(g *GradientVotes, t float32) []Line {
	threshold := t * g.MaxGrad

	lines := make([]Line, 0, 256)
	for distBin := 0; distBin < g.NumBins; distBin++ {
		base := distBin * NumAngles
		for angleBin := 0; angleBin < NumAngles; angleBin++ {
			score := g.Buf[base+angleBin]
			if score > threshold {
				lines = append(lines, Line{AngleBin: angleBin, DistBin: distBin, Score: score})
			}
		}
	}

	sort.Slice(lines, func(a, b int) bool { return lines[a].Score > lines[b].Score })
	if len(lines) > maxLinesBeforeCluster {
		lines = lines[:maxLinesBeforeCluster]
	}

	return suppress(lines, g.Diag)
}

// suppress performs the order-dependent non-maximum suppression described
// in the line-extraction algorithm: each surviving line absorbs the score
// of every later, nearby, weaker candidate and is not re-sorted.
func suppress(lines []Line, diag float32) []Line {
	maxBinErr := int(diag*HoughMatchRatio) + 1

	kept := make([]bool, len(lines))
	for i := range lines {
		kept[i] = true
	}

	for i := 0; i < len(lines); i++ {
		if !kept[i] {
			continue
		}
		acc := lines[i].Score
		for j := i + 1; j < len(lines); j++ {
			if !kept[j] {
				continue
			}
			db := lines[i].DistBin - lines[j].DistBin
			if db < 0 {
				db = -db
			}
			if db > maxBinErr {
				continue
			}
			if cyclicAngleDist(lines[i].AngleBin, lines[j].AngleBin) > MaxAngError {
				continue
			}
			acc += lines[j].Score
			kept[j] = false
		}
		lines[i].Score = acc
	}

	out := make([]Line, 0, len(lines))
	for i, k := range kept {
		if k {
			out = append(out, lines[i])
		}
	}
	return out
}
