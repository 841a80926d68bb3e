// Package textsim scores lexical similarity between short terms.
//
// The score blends four measures so that near-miss vocabulary ("helpfulness"
// vs "helpful support") still resolves to a known table entry with reduced
// confidence instead of falling through to a generic placeholder.
package textsim

import "strings"

// Weights for the blended score. Token overlap dominates because the
// vocabulary being matched is mostly multi-word concept labels.
const (
	charWeight  = 0.2
	tokenWeight = 0.4
	lcsWeight   = 0.2
	editWeight  = 0.2
)

// Similarity returns a score in [0,1]. Inputs are lowercased and trimmed
// before comparison; identical strings score 1.0, and an empty string is
// similar to nothing but itself.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	score := charWeight * jaccardRunes(a, b)
	score += tokenWeight * jaccardTokens(a, b)
	score += lcsWeight * substringRatio(a, b)
	score += editWeight * editRatio(a, b)
	return score
}

func jaccardRunes(a, b string) float64 {
	setA := make(map[rune]struct{})
	for _, r := range a {
		setA[r] = struct{}{}
	}
	setB := make(map[rune]struct{})
	for _, r := range b {
		setB[r] = struct{}{}
	}
	return jaccard(setA, setB)
}

func jaccardTokens(a, b string) float64 {
	setA := make(map[string]struct{})
	for _, t := range strings.Fields(a) {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{})
	for _, t := range strings.Fields(b) {
		setB[t] = struct{}{}
	}
	inter := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

func jaccard[K comparable](a, b map[K]struct{}) float64 {
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

// substringRatio divides the longest common substring length by the length
// of the shorter input.
func substringRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	shorter := len(ra)
	if len(rb) < shorter {
		shorter = len(rb)
	}
	if shorter == 0 {
		return 0.0
	}

	longest := 0
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > longest {
					longest = curr[j]
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return float64(longest) / float64(shorter)
}

func editRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	if longer == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(ra, rb))/float64(longer)
}

// levenshtein is the standard single-character insert/delete/substitute
// edit distance with a two-row table.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
