package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	t.Parallel()

	if NormalizeLimit(0) != DefaultLimit {
		t.Fatal("zero falls back to default")
	}
	if NormalizeLimit(-3) != DefaultLimit {
		t.Fatal("negative falls back to default")
	}
	if NormalizeLimit(MaxLimit+50) != MaxLimit {
		t.Fatal("oversized limit is capped")
	}
	if NormalizeLimit(10) != 10 {
		t.Fatal("in-range limit passes through")
	}
	if LimitWithBuffer(10) != 11 {
		t.Fatal("buffer adds one")
	}
}

func TestCursorRoundTrip(t *testing.T) {
	t.Parallel()

	encoded := EncodeCursor(42)
	id, err := ParseCursor(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Fatalf("got %d, want 42", id)
	}
}

func TestParseCursorEdgeCases(t *testing.T) {
	t.Parallel()

	id, err := ParseCursor("  ")
	if err != nil || id != 0 {
		t.Fatalf("blank cursor should yield 0, got %d, %v", id, err)
	}
	if _, err := ParseCursor("not-base64!!"); err == nil {
		t.Fatal("expected error for malformed base64")
	}
	if _, err := ParseCursor(EncodeCursor(-1)); err == nil {
		t.Fatal("expected error for negative id payload")
	}
}
