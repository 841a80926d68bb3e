// Package scan detects marker, structural, and semantic signals in text.
// A Bundle holds the compiled detection tables; Scan walks them in a fixed
// order so the hit list is deterministic for a given input.
package scan

import (
	"regexp"
	"sort"
	"strings"
)

// Hit types, in scan order.
const (
	TypeExplicit   = "explicit"
	TypeStructural = "structural"
	TypeSemantic   = "semantic"
)

const (
	explicitConfidence = 0.95
	semanticConfidence = 0.75

	// DetectionThreshold is the aggregate confidence above which a text
	// counts as detected.
	DetectionThreshold = 0.4
)

// Marker is one explicit substring to look for, case-sensitive.
type Marker struct {
	Name   string
	Symbol string
}

// Pattern is one compiled structural regex with its configured confidence.
type Pattern struct {
	Name       string
	Expr       *regexp.Regexp
	Confidence float64
}

// Group is an ordered list of keyword phrases standing for one concept.
// At most one hit is emitted per group; the first matching phrase wins.
type Group struct {
	Concept  string
	Keywords []string
}

// Bundle is a compiled set of detection tables. A zero Threshold selects
// DetectionThreshold.
type Bundle struct {
	Markers   []Marker
	Patterns  []Pattern
	Groups    []Group
	Threshold float64
}

// Hit is a single match. Matches holds the raw matched strings for
// structural hits and the winning phrase for semantic ones.
type Hit struct {
	Term       string   `json:"term"`
	Type       string   `json:"type"`
	Count      int      `json:"count"`
	Matches    []string `json:"matches,omitempty"`
	Confidence float64  `json:"confidence"`
}

// Report is the outcome of scanning one text.
type Report struct {
	Hits       []Hit   `json:"hits"`
	Confidence float64 `json:"confidence"`
	Detected   bool    `json:"detected"`
}

// NewBundle compiles a bundle from marker and group tables. Groups arrive as
// a map, so they are ordered by concept name to keep scans deterministic.
func NewBundle(markers []Marker, patterns []Pattern, groups map[string][]string) *Bundle {
	b := &Bundle{Markers: markers, Patterns: patterns}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.Groups = append(b.Groups, Group{Concept: name, Keywords: groups[name]})
	}
	return b
}

// Scan runs all three detection passes over text.
func (b *Bundle) Scan(text string) Report {
	var rep Report
	lower := strings.ToLower(text)

	var explicitSum, structuralSum, semanticSum float64
	var explicitN, structuralN, semanticN int

	for _, m := range b.Markers {
		n := strings.Count(text, m.Symbol)
		if n == 0 {
			continue
		}
		rep.Hits = append(rep.Hits, Hit{
			Term:       m.Name,
			Type:       TypeExplicit,
			Count:      n,
			Confidence: explicitConfidence,
		})
		explicitSum += explicitConfidence
		explicitN++
	}

	for _, p := range b.Patterns {
		matches := p.Expr.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		rep.Hits = append(rep.Hits, Hit{
			Term:       p.Name,
			Type:       TypeStructural,
			Count:      len(matches),
			Matches:    matches,
			Confidence: p.Confidence,
		})
		structuralSum += p.Confidence
		structuralN++
	}

	for _, g := range b.Groups {
		for _, kw := range g.Keywords {
			if !strings.Contains(lower, strings.ToLower(kw)) {
				continue
			}
			rep.Hits = append(rep.Hits, Hit{
				Term:       g.Concept,
				Type:       TypeSemantic,
				Count:      1,
				Matches:    []string{kw},
				Confidence: semanticConfidence,
			})
			semanticSum += semanticConfidence
			semanticN++
			break
		}
	}

	// Aggregate is the mean of the per-type mean confidences for types that
	// produced hits; absent types contribute nothing.
	var sum float64
	var n int
	if explicitN > 0 {
		sum += explicitSum / float64(explicitN)
		n++
	}
	if structuralN > 0 {
		sum += structuralSum / float64(structuralN)
		n++
	}
	if semanticN > 0 {
		sum += semanticSum / float64(semanticN)
		n++
	}
	if n > 0 {
		rep.Confidence = sum / float64(n)
	}
	threshold := b.Threshold
	if threshold == 0 {
		threshold = DetectionThreshold
	}
	rep.Detected = rep.Confidence > threshold
	return rep
}

// CorpusReport aggregates scan results across a set of text samples.
type CorpusReport struct {
	Samples        int            `json:"total_samples"`
	DetectedCount  int            `json:"detected_samples"`
	MeanConfidence float64        `json:"average_confidence"`
	TermCounts     map[string]int `json:"pattern_distribution"`
	Reports        []Report       `json:"reports"`
}

// ScanCorpus scans each text independently, keeping the per-sample reports
// in input order, and aggregates detection counts, the mean confidence, and
// how often each term matched across the corpus.
func (b *Bundle) ScanCorpus(texts []string) CorpusReport {
	cr := CorpusReport{
		Samples:    len(texts),
		TermCounts: make(map[string]int),
		Reports:    make([]Report, len(texts)),
	}
	var sum float64
	for i, t := range texts {
		rep := b.Scan(t)
		cr.Reports[i] = rep
		sum += rep.Confidence
		if rep.Detected {
			cr.DetectedCount++
		}
		for _, h := range rep.Hits {
			cr.TermCounts[h.Term] += h.Count
		}
	}
	if len(texts) > 0 {
		cr.MeanConfidence = sum / float64(len(texts))
	}
	return cr
}

// Terms returns the matched term names of a report, in hit order.
func (r Report) Terms() []string {
	terms := make([]string, len(r.Hits))
	for i, h := range r.Hits {
		terms[i] = h.Term
	}
	return terms
}
