package imageops

import "testing"

func solidRGBA(w, h int, r, g, b, a byte) *RGBAImage {
	data := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		o := i * 4
		data[o], data[o+1], data[o+2], data[o+3] = r, g, b, a
	}
	return &RGBAImage{Data: data, Width: w, Height: h}
}

func TestGrayscaleUniform(t *testing.T) {
	src := solidRGBA(8, 8, 200, 200, 200, 255)
	gray := Grayscale(src)
	if gray.Width != 8 || gray.Height != 8 {
		t.Fatalf("unexpected dims: %dx%d", gray.Width, gray.Height)
	}
	want := float32(200)*weightR + float32(200)*weightG + float32(200)*weightB
	for i, v := range gray.Data {
		if v != want {
			t.Fatalf("pixel %d: got %v want %v", i, v, want)
		}
	}
}

func TestGrayscaleIgnoresAlpha(t *testing.T) {
	opaque := Grayscale(solidRGBA(4, 4, 10, 20, 30, 255))
	transparent := Grayscale(solidRGBA(4, 4, 10, 20, 30, 0))
	for i := range opaque.Data {
		if opaque.Data[i] != transparent.Data[i] {
			t.Fatalf("alpha affected grayscale output at %d", i)
		}
	}
}

func TestDownscaleUniformPreservesValue(t *testing.T) {
	src := NewImage(20, 20)
	for i := range src.Data {
		src.Data[i] = 0.5
	}
	out := Downscale(src, 2)
	if out.Width != 10 || out.Height != 10 {
		t.Fatalf("unexpected dims: %dx%d", out.Width, out.Height)
	}
	for i, v := range out.Data {
		if diff := v - 0.5; diff > 1e-4 || diff < -1e-4 {
			t.Fatalf("pixel %d: got %v want ~0.5", i, v)
		}
	}
}

func TestDownscaleClampsFactorBelowOne(t *testing.T) {
	src := NewImage(10, 10)
	out := Downscale(src, 0.3)
	if out.Width != src.Width || out.Height != src.Height {
		t.Fatalf("expected no-op downscale, got %dx%d", out.Width, out.Height)
	}
}

func TestGaussianUniformIsUnchanged(t *testing.T) {
	src := NewImage(12, 12)
	for i := range src.Data {
		src.Data[i] = 0.25
	}
	out := Gaussian(src)
	for i, v := range out.Data {
		if diff := v - 0.25; diff > 1e-4 || diff < -1e-4 {
			t.Fatalf("pixel %d: got %v want ~0.25", i, v)
		}
	}
}

func TestGaussianSmoothsImpulse(t *testing.T) {
	src := NewImage(11, 11)
	src.Data[5*11+5] = 1
	out := Gaussian(src)
	if out.At(5, 5) >= 1 {
		t.Fatalf("center should be attenuated, got %v", out.At(5, 5))
	}
	if out.At(4, 5) <= 0 {
		t.Fatalf("neighbor should pick up some weight, got %v", out.At(4, 5))
	}
}
