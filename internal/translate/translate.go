// Package translate implements the generic term translation chain shared by
// every lookup direction: exact table hit, taxonomy placement, similarity
// match, keyword fallback, then a low-confidence generic placeholder. The
// first stage that resolves wins; an optional context string may nudge the
// confidence afterwards.
package translate

import (
	"fmt"
	"strings"
	"time"

	"github.com/lexbridge-ai/lexbridge/internal/glyph"
	"github.com/lexbridge-ai/lexbridge/internal/lexicon"
	"github.com/lexbridge-ai/lexbridge/internal/textsim"
)

// Directions label translation sources for stats and telemetry attributes.
const (
	DirectionValueToFrame = "value_to_frame"
	DirectionFrameToValue = "frame_to_value"
	DirectionTaxonomy     = "taxonomy"
	DirectionResponse     = "response_type"
)

// Origin tags record which stage of the chain resolved a translation.
const (
	OriginExact      = "exact"
	OriginTaxonomy   = "taxonomy"
	OriginSimilarity = "similarity"
	OriginKeyword    = "keyword"
	OriginGeneric    = "generic"
)

const (
	// DefaultThreshold is the minimum similarity score the third stage
	// accepts.
	DefaultThreshold = 0.7

	defaultExactConfidence = 0.85
	keywordConfidence      = 0.6
	genericConfidence      = 0.4
	contextModifier        = 1.1
)

// Entry is one resolvable target: the output term plus its auxiliary tags.
type Entry struct {
	Output     string
	Command    string
	Residue    string
	Shell      string
	Glyph      string
	Confidence float64
}

// Source bundles the backing tables for one translation direction. Locate
// and Generic are optional; a nil Locate skips the taxonomy stage and a nil
// Generic falls back to a standard placeholder.
type Source struct {
	Direction string
	Entries   map[string]Entry
	Locate    func(term string) (Entry, string, bool)
	Keywords  []lexicon.Keyword
	Generic   func(term string) string
}

// Meta is the opaque decoration attached to every result. It carries no
// meaning for any decision logic.
type Meta struct {
	Signature string   `json:"signature"`
	Glyphs    []string `json:"glyphs"`
	Timestamp int64    `json:"timestamp"`
	Coherent  bool     `json:"field_coherence"`
}

// Result is the outcome of one translation. Confidence is a heuristic in
// [0,1], not a calibrated probability.
type Result struct {
	Input       string  `json:"input"`
	Direction   string  `json:"direction"`
	Output      string  `json:"output"`
	Command     string  `json:"command,omitempty"`
	Residue     string  `json:"residue,omitempty"`
	Shell       string  `json:"shell,omitempty"`
	Glyph       string  `json:"glyph,omitempty"`
	Confidence  float64 `json:"confidence"`
	Origin      string  `json:"origin"`
	Note        string  `json:"note,omitempty"`
	ContextNote string  `json:"context_note,omitempty"`
	Meta        Meta    `json:"meta"`
}

// Translator runs the chain against any Source. Safe for concurrent use.
type Translator struct {
	threshold float64
	stats     *Stats
}

// New returns a translator. A zero threshold selects DefaultThreshold; a nil
// stats is replaced with a private one.
func New(threshold float64, stats *Stats) *Translator {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if stats == nil {
		stats = NewStats()
	}
	return &Translator{threshold: threshold, stats: stats}
}

// Stats exposes the translator's counters.
func (t *Translator) Stats() *Stats { return t.stats }

// Translate resolves term through the fallback chain. It never fails: any
// input, including the empty string, falls through to the generic stage.
func (t *Translator) Translate(src Source, term, context string) Result {
	res := Result{Input: term, Direction: src.Direction}
	key := strings.ToLower(strings.TrimSpace(term))

	if e, ok := src.Entries[key]; ok {
		res.apply(e, OriginExact, "")
		if res.Confidence == 0 {
			res.Confidence = defaultExactConfidence
		}
	} else if !t.locate(src, term, &res) &&
		!t.similar(src, key, &res) &&
		!t.keyword(src, key, &res) {
		res.Output = genericOutput(src, term)
		res.Confidence = genericConfidence
		res.Origin = OriginGeneric
		res.Note = "generic approximation for unknown term"
	}

	if context != "" {
		t.adjustForContext(src, &res, context)
	}
	res.Meta = Decorate(res.Input, res.Output)
	t.stats.record(src.Direction, res)
	return res
}

func (r *Result) apply(e Entry, origin, note string) {
	r.Output = e.Output
	r.Command = e.Command
	r.Residue = e.Residue
	r.Shell = e.Shell
	r.Glyph = e.Glyph
	r.Confidence = e.Confidence
	r.Origin = origin
	r.Note = note
}

func (t *Translator) locate(src Source, term string, res *Result) bool {
	if src.Locate == nil {
		return false
	}
	e, note, ok := src.Locate(term)
	if !ok {
		return false
	}
	res.apply(e, OriginTaxonomy, note)
	return true
}

// similar scans the whole table for the best match above the threshold.
// Ties break toward the lexicographically smaller key so results are stable
// across map iteration orders.
func (t *Translator) similar(src Source, key string, res *Result) bool {
	bestKey, bestScore := "", 0.0
	for k := range src.Entries {
		s := textsim.Similarity(key, k)
		if s > bestScore && s > t.threshold || s == bestScore && bestScore > t.threshold && k < bestKey {
			bestKey, bestScore = k, s
		}
	}
	if bestKey == "" {
		return false
	}
	e := src.Entries[bestKey]
	conf := e.Confidence
	if conf == 0 {
		conf = defaultExactConfidence
	}
	e.Confidence = conf * bestScore
	res.apply(e, OriginSimilarity,
		fmt.Sprintf("approximate translation based on similarity (%.2f) with %q", bestScore, bestKey))
	return true
}

func (t *Translator) keyword(src Source, key string, res *Result) bool {
	tokens := strings.Fields(key)
	for _, kw := range src.Keywords {
		for _, tok := range tokens {
			if strings.Contains(tok, kw.Keyword) {
				res.apply(Entry{Output: kw.Output, Confidence: keywordConfidence}, OriginKeyword,
					fmt.Sprintf("approximate translation based on keyword match with %q", kw.Keyword))
				return true
			}
		}
	}
	return false
}

func genericOutput(src Source, term string) string {
	if src.Generic != nil {
		return src.Generic(term)
	}
	return fmt.Sprintf("Unresolved Mapping - %s", term)
}

// contextDomains is checked in order; only the first match applies.
var contextDomains = []struct {
	phrase string
	note   string
}{
	{"ai safety", "AI safety context"},
	{"model behavior", "Model behavior context"},
	{"ethical considerations", "Ethical context"},
	{"human feedback", "Human feedback context"},
	{"alignment", "Alignment context"},
}

func (t *Translator) adjustForContext(src Source, res *Result, context string) {
	lower := strings.ToLower(context)
	for _, d := range contextDomains {
		if !strings.Contains(lower, d.phrase) {
			continue
		}
		res.Confidence = min(1.0, res.Confidence*contextModifier)
		res.ContextNote = d.note
		if words := strings.Fields(res.Output); src.Direction == DirectionValueToFrame && len(words) > 0 {
			target := strings.ToLower(words[0])
			switch d.phrase {
			case "ai safety":
				res.Command = fmt.Sprintf(".p/safety.trace{target=%s}", target)
			case "alignment":
				res.Command = fmt.Sprintf(".p/align.value{source=%s}", target)
			}
		}
		return
	}
}

// Decorate builds the opaque metadata block for a result or report.
func Decorate(input, output string) Meta {
	return Meta{
		Signature: lexicon.Signature(input + "-" + output),
		Glyphs:    []string{glyph.Mirror, glyph.Seed, glyph.Flow},
		Timestamp: time.Now().Unix(),
		Coherent:  true,
	}
}
