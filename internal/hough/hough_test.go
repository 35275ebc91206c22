package hough

import (
	"testing"

	"github.com/AnyUserName/docscan-cli/internal/imageops"
)

func TestVoteMaxGradMatchesBufMax(t *testing.T) {
	img := imageops.NewImage(40, 40)
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if x > 20 {
				img.Data[y*40+x] = 0.7
			}
		}
	}
	votes := Vote(img)

	var want float32
	for _, v := range votes.Buf {
		if v > want {
			want = v
		}
	}
	if votes.MaxGrad != want {
		t.Fatalf("MaxGrad = %v, want %v (true buf max)", votes.MaxGrad, want)
	}
}

func TestVoteUniformImageHasNoGradient(t *testing.T) {
	img := imageops.NewImage(20, 20)
	for i := range img.Data {
		img.Data[i] = 0.3
	}
	votes := Vote(img)
	if votes.MaxGrad != 0 {
		t.Fatalf("uniform image should produce zero gradient, got MaxGrad=%v", votes.MaxGrad)
	}
}

func TestExtractScoresExceedThreshold(t *testing.T) {
	img := imageops.NewImage(40, 40)
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if x > 20 {
				img.Data[y*40+x] = 0.7
			}
		}
	}
	votes := Vote(img)
	const threshold = 0.2
	lines := Extract(votes, threshold)
	for _, l := range lines {
		if l.Score <= threshold*votes.MaxGrad {
			t.Fatalf("line score %v does not exceed threshold*max %v", l.Score, threshold*votes.MaxGrad)
		}
	}
}

func TestExtractThresholdSweepIsSuperset(t *testing.T) {
	img := imageops.NewImage(40, 40)
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if x > 20 {
				img.Data[y*40+x] = 0.7
			}
		}
	}
	votes := Vote(img)

	countAbove := func(t float32) int {
		threshold := t * votes.MaxGrad
		n := 0
		for _, v := range votes.Buf {
			if v > threshold {
				n++
			}
		}
		return n
	}

	if countAbove(0.1) < countAbove(0.2) {
		t.Fatalf("lower threshold should admit at least as many raw cells")
	}
}
