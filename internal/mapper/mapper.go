// Package mapper is the public facade: it owns the lexicon, wires the
// translation chain, the scanner, and the comparator together, and reports
// metrics. All public methods are safe for concurrent use; table imports are
// serialized against in-flight lookups.
package mapper

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lexbridge-ai/lexbridge/internal/config"
	"github.com/lexbridge-ai/lexbridge/internal/glyph"
	"github.com/lexbridge-ai/lexbridge/internal/lexicon"
	"github.com/lexbridge-ai/lexbridge/internal/scan"
	"github.com/lexbridge-ai/lexbridge/internal/telemetry"
	"github.com/lexbridge-ai/lexbridge/internal/translate"
)

// Mapper translates terms, categories, and response types between the
// value-oriented and frame-oriented vocabularies.
type Mapper struct {
	mu     sync.RWMutex
	lex    *lexicon.Lexicon
	tr     *translate.Translator
	stats  *translate.Stats
	bundle *scan.Bundle
	tele   *telemetry.Provider
	source string
}

// New builds a mapper from configuration. A table file named in the config
// is merged over the built-in tables before first use.
func New(cfg *config.Config, tele *telemetry.Provider) (*Mapper, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	lex := lexicon.New()
	if cfg.Tables.Path != "" {
		if err := lex.ImportFile(cfg.Tables.Path); err != nil {
			return nil, fmt.Errorf("load tables from %s: %w", cfg.Tables.Path, err)
		}
	}
	stats := translate.NewStats()
	m := &Mapper{
		lex:    lex,
		tr:     translate.New(cfg.Similarity.Threshold, stats),
		stats:  stats,
		tele:   tele,
		source: cfg.Tables.Source,
	}
	m.bundle = m.buildBundle(cfg.Detection.Threshold)
	return m, nil
}

func (m *Mapper) buildBundle(threshold float64) *scan.Bundle {
	markers := make([]scan.Marker, len(glyph.Markers))
	for i, g := range glyph.Markers {
		markers[i] = scan.Marker{Name: g.Name, Symbol: g.Symbol}
	}
	b := scan.NewBundle(markers, scan.DefaultPatterns(), m.lex.Patterns())
	b.Threshold = threshold
	return b
}

// TranslateTermToFrame resolves a value term to its frame concept.
func (m *Mapper) TranslateTermToFrame(term, context string) translate.Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.record(m.tr.Translate(m.valueSource(), term, context))
}

// TranslateFrameToTerm resolves a frame concept back to a value term.
func (m *Mapper) TranslateFrameToTerm(frame, context string) translate.Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.record(m.tr.Translate(m.frameSource(), frame, context))
}

// TranslateCategory resolves a taxonomy category, refined by an optional
// subcategory.
func (m *Mapper) TranslateCategory(category, subcategory string) translate.Result {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := m.tr.Translate(m.categorySource(), category, "")
	if subcategory != "" && res.Origin == translate.OriginExact {
		if cat, ok := m.lex.Category(canonicalCategory(m.lex, category)); ok {
			if sub, ok := cat.Subcategories[subcategory]; ok {
				res.Output = sub.Structure
				res.Confidence = subcategoryConfidence
				res.Note = fmt.Sprintf("refined by subcategory %q", subcategory)
			}
		}
	}
	return m.record(res)
}

// TranslateResponseType resolves a response-type label.
func (m *Mapper) TranslateResponseType(label string) translate.Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.record(m.tr.Translate(m.responseSource(), label, ""))
}

// ExportTables writes the current tables to path.
func (m *Mapper) ExportTables(path string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lex.ExportFile(path, m.source)
}

// ImportTables merges a table file into the lexicon and rebuilds the scan
// bundle. On failure, tables and bundle are left unchanged.
func (m *Mapper) ImportTables(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.lex.ImportFile(path); err != nil {
		return err
	}
	m.bundle = m.buildBundle(m.bundle.Threshold)
	return nil
}

// Stats returns a snapshot of the translation counters.
func (m *Mapper) Stats() translate.Snapshot {
	return m.stats.Snapshot()
}

const (
	categoryConfidence    = 0.75
	subcategoryConfidence = 0.8
)

func (m *Mapper) record(res translate.Result) translate.Result {
	m.tele.RecordTranslation(res.Direction, res.Origin, res.Confidence)
	return res
}

func (m *Mapper) valueSource() translate.Source {
	terms := m.lex.Terms()
	entries := make(map[string]translate.Entry, len(terms))
	for term, e := range terms {
		entries[strings.ToLower(term)] = translate.Entry{
			Output:     e.Frame,
			Command:    e.Command,
			Residue:    e.Residue,
			Shell:      e.Shell,
			Glyph:      e.Glyph,
			Confidence: e.Confidence,
		}
	}
	return translate.Source{
		Direction: translate.DirectionValueToFrame,
		Entries:   entries,
		Locate:    m.locateValue,
		Keywords:  m.lex.TermKeywords(),
		Generic: func(term string) string {
			return "Potential Value-Recursive Alignment - " + term
		},
	}
}

// locateValue synthesizes a frame concept from the taxonomy when the term
// map misses but the term is a known category member.
func (m *Mapper) locateValue(term string) (translate.Entry, string, bool) {
	catName, subName, ok := m.lex.Locate(term)
	if !ok {
		return translate.Entry{}, "", false
	}
	cat, _ := m.lex.Category(catName)
	structure := cat.Structure
	conf := categoryConfidence
	note := fmt.Sprintf("resolved through category %q", catName)
	if subName != "" {
		if sub, ok := cat.Subcategories[subName]; ok {
			structure = sub.Structure
			conf = subcategoryConfidence
			note = fmt.Sprintf("resolved through category %q subcategory %q", catName, subName)
		}
	}
	e := translate.Entry{
		Output:     structure + " - " + term,
		Glyph:      cat.Glyph,
		Confidence: conf,
	}
	if len(cat.Shells) > 0 {
		e.Shell = cat.Shells[0]
	}
	return e, note, true
}

func (m *Mapper) frameSource() translate.Source {
	terms := m.lex.Terms()
	entries := make(map[string]translate.Entry, len(terms))
	for term, e := range terms {
		if e.Frame == "" {
			continue
		}
		entries[strings.ToLower(e.Frame)] = translate.Entry{
			Output:     term,
			Shell:      e.Shell,
			Glyph:      e.Glyph,
			Confidence: e.Confidence,
		}
	}
	return translate.Source{
		Direction: translate.DirectionFrameToValue,
		Entries:   entries,
		Locate: func(frame string) (translate.Entry, string, bool) {
			return partialFrameMatch(entries, frame)
		},
		Keywords: m.lex.FrameKeywords(),
		Generic: func(frame string) string {
			return "Potential Recursive-Value Alignment - " + frame
		},
	}
}

// partialFrameMatch resolves a fragment of a frame concept, e.g. "Protective"
// against "Protective Recursion", at a reduced confidence. The smallest
// matching key wins so the most specific concept containing the fragment is
// deterministic.
func partialFrameMatch(entries map[string]translate.Entry, frame string) (translate.Entry, string, bool) {
	needle := strings.ToLower(strings.TrimSpace(frame))
	if needle == "" {
		return translate.Entry{}, "", false
	}
	var bestKey string
	for key := range entries {
		if !strings.Contains(key, needle) {
			continue
		}
		if bestKey == "" || len(key) < len(bestKey) || len(key) == len(bestKey) && key < bestKey {
			bestKey = key
		}
	}
	if bestKey == "" {
		return translate.Entry{}, "", false
	}
	e := entries[bestKey]
	e.Confidence *= 0.8
	return e, fmt.Sprintf("approximate translation based on partial match with %q", bestKey), true
}

func (m *Mapper) categorySource() translate.Source {
	cats := m.lex.Categories()
	entries := make(map[string]translate.Entry, len(cats))
	for name, c := range cats {
		e := translate.Entry{
			Output: c.Structure,
			Glyph:  c.Glyph,
		}
		if len(c.Shells) > 0 {
			e.Shell = c.Shells[0]
		}
		entries[strings.ToLower(name)] = e
	}
	return translate.Source{
		Direction: translate.DirectionTaxonomy,
		Entries:   entries,
		Keywords:  m.lex.CategoryKeywords(),
		Generic: func(category string) string {
			return "Unknown Category Recursion - " + category
		},
	}
}

func (m *Mapper) responseSource() translate.Source {
	types := m.lex.ResponseTypes()
	entries := make(map[string]translate.Entry, len(types))
	for label, r := range types {
		entries[strings.ToLower(label)] = translate.Entry{
			Output:     r.Frame,
			Command:    r.Command,
			Shell:      r.Shell,
			Glyph:      r.Glyph,
			Confidence: r.Confidence,
		}
	}
	return translate.Source{
		Direction: translate.DirectionResponse,
		Entries:   entries,
		Keywords:  m.lex.ResponseKeywords(),
		Generic: func(label string) string {
			return "Unknown Response Recursion - " + label
		},
	}
}

func canonicalCategory(lex *lexicon.Lexicon, name string) string {
	for candidate := range lex.Categories() {
		if strings.EqualFold(candidate, name) {
			return candidate
		}
	}
	return name
}
