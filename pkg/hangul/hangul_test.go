package hangul

import "testing"

func TestInitial(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want rune
		ok   bool
	}{
		{"송편", 'ㅅ', true},
		{"꿀떡", 'ㄲ', true},
		{"인절미", 'ㅇ', true},
		{"백설기", 'ㅂ', true},
		{"힣", 'ㅎ', true},
		{"가", 'ㄱ', true},
		{"ㄷ", 'ㄷ', true},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, ok := Initial(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Initial(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMatchesInitial(t *testing.T) {
	t.Parallel()

	if !MatchesInitial("송편", 'ㅅ') {
		t.Fatal("expected 송편 to match ㅅ")
	}
	if MatchesInitial("송편", 'ㄱ') {
		t.Fatal("did not expect 송편 to match ㄱ")
	}
	if MatchesInitial("abc", 'ㄱ') {
		t.Fatal("non-Hangul strings match nothing")
	}
}
