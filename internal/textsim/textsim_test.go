package textsim

import "testing"

func TestSimilarityIdentity(t *testing.T) {
	for _, s := range []string{"", "helpfulness", "Functional Support", "a b c"} {
		if got := Similarity(s, s); got != 1.0 {
			t.Fatalf("Similarity(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"helpfulness", "helpful support"},
		{"transparency", "clarity"},
		{"recursive boundary", "boundary recursion"},
		{"", "nonempty"},
		{"a", "abtle longer string"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Fatalf("Similarity(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"helpfulness", "helpfulnes"},
		{"completely", "different"},
		{"x", "yyyyyyyyyy"},
		{"shared token here", "shared token there"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0.0 || got > 1.0 {
			t.Fatalf("Similarity(%q, %q) = %v out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestSimilarityEmptyAgainstNonEmpty(t *testing.T) {
	if got := Similarity("", "anything"); got != 0.0 {
		t.Fatalf("Similarity(empty, nonempty) = %v, want 0.0", got)
	}
}

func TestSimilarityOrdering(t *testing.T) {
	// A near-typo must score higher than an unrelated term.
	near := Similarity("helpfulness", "helpfulnes")
	far := Similarity("helpfulness", "quartz")
	if near <= far {
		t.Fatalf("near-typo score %v not above unrelated score %v", near, far)
	}
	// Token Jaccard contributes zero for single-token typos, so the blend
	// tops out well below 1 here.
	if near <= 0.5 {
		t.Fatalf("near-typo score %v unexpectedly low", near)
	}
}

func TestSimilarityCaseInsensitive(t *testing.T) {
	if got := Similarity("Helpfulness", "helpfulness"); got != 1.0 {
		t.Fatalf("case-folded equality = %v, want 1.0", got)
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
	}
	for _, tc := range cases {
		if got := levenshtein([]rune(tc.a), []rune(tc.b)); got != tc.want {
			t.Fatalf("levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSubstringRatio(t *testing.T) {
	// "abc" inside "xabcy": LCS length 3 over shorter length 3.
	if got := substringRatio("abc", "xabcy"); got != 1.0 {
		t.Fatalf("substringRatio = %v, want 1.0", got)
	}
	if got := substringRatio("abc", "def"); got != 0.0 {
		t.Fatalf("substringRatio disjoint = %v, want 0.0", got)
	}
}
