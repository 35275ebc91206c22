package imageops

import "testing"

func TestPlaceholderHashLengthAndUniformColor(t *testing.T) {
	src := solidRGBA(16, 16, 10, 20, 30, 255)
	hash := PlaceholderHash(src)

	wantLen := 1 + placeholderGrid*placeholderGrid*3
	if len(hash) != wantLen {
		t.Fatalf("got len %d want %d", len(hash), wantLen)
	}

	for i := 1; i < len(hash); i += 3 {
		if hash[i] != 10 || hash[i+1] != 20 || hash[i+2] != 30 {
			t.Fatalf("cell at %d: got (%d,%d,%d) want (10,20,30)", i, hash[i], hash[i+1], hash[i+2])
		}
	}
}

func TestPlaceholderHashDistinguishesHalves(t *testing.T) {
	data := make([]byte, 8*8*4)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			o := (y*8 + x) * 4
			if x < 4 {
				data[o], data[o+1], data[o+2], data[o+3] = 255, 0, 0, 255
			} else {
				data[o], data[o+1], data[o+2], data[o+3] = 0, 0, 255, 255
			}
		}
	}
	src := &RGBAImage{Data: data, Width: 8, Height: 8}
	hash := PlaceholderHash(src)

	leftR := hash[1]
	rightR := hash[1+3*3] // cell (3,0) is in the right half
	if leftR == rightR {
		t.Fatalf("expected left/right halves to differ, both red=%d", leftR)
	}
}

func TestHasAlphaDetectsTransparency(t *testing.T) {
	opaque := solidRGBA(4, 4, 1, 2, 3, 255)
	if HasAlpha(opaque) {
		t.Fatal("opaque image reported as having alpha")
	}

	translucent := solidRGBA(4, 4, 1, 2, 3, 200)
	if !HasAlpha(translucent) {
		t.Fatal("translucent image not detected")
	}
}
