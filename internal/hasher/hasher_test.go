package hasher

import "testing"

func TestContentHashDeterministic(t *testing.T) {
	data := []byte("same bytes every time")
	a := ContentHash(data, 16)
	b := ContentHash(data, 16)
	if a != b {
		t.Fatalf("ContentHash not deterministic: %q != %q", a, b)
	}
	if len(a) != 16 {
		t.Fatalf("ContentHash length = %d, want 16", len(a))
	}
}

func TestContentHashDiffersOnDifferentInput(t *testing.T) {
	a := ContentHash([]byte("alpha"), 16)
	b := ContentHash([]byte("beta"), 16)
	if a == b {
		t.Fatal("expected different hashes for different input")
	}
}

func TestShortIDIsStableAndCompact(t *testing.T) {
	id := ShortID([]byte("scans/invoice-1.jpg"))
	if id == "" {
		t.Fatal("ShortID returned empty string")
	}
	if len(id) > 10 {
		t.Fatalf("ShortID unexpectedly long: %q", id)
	}
	if id != ShortID([]byte("scans/invoice-1.jpg")) {
		t.Fatal("ShortID not deterministic for the same input")
	}
}
