package mapper

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lexbridge-ai/lexbridge/internal/glyph"
	"github.com/lexbridge-ai/lexbridge/internal/reframe"
	"github.com/lexbridge-ai/lexbridge/internal/scan"
	"github.com/lexbridge-ai/lexbridge/internal/translate"
)

// ValueHit is one value term found in analyzed text.
type ValueHit struct {
	Term        string           `json:"term"`
	Evidence    string           `json:"evidence"`
	Translation translate.Result `json:"translation"`
}

// Analysis is the outcome of AnalyzeText.
type Analysis struct {
	Values     []ValueHit         `json:"values"`
	Categories map[string]int     `json:"categories"`
	Scan       scan.Report        `json:"scan"`
	Glyphs     []glyph.Occurrence `json:"glyphs"`
	Coherence  float64            `json:"coherence"`
	Meta       translate.Meta     `json:"meta"`
}

// MirroredValue is a value expressed by both sides of an interaction.
type MirroredValue struct {
	Value      string  `json:"value"`
	Frame      string  `json:"frame"`
	Confidence float64 `json:"confidence"`
}

// Interaction is the outcome of AnalyzeInteraction.
type Interaction struct {
	HumanValues   []ValueHit       `json:"human_values"`
	AIValues      []ValueHit       `json:"ai_values"`
	Mirrored      []MirroredValue  `json:"mirrored_values"`
	ResponseLabel string           `json:"response_type"`
	Response      translate.Result `json:"response_translation"`
	Meta          translate.Meta   `json:"meta"`
}

const mirrorConfidence = 0.95

// evidenceWindow is the number of context characters kept on each side of a
// value mention.
const evidenceWindow = 50

// AnalyzeText finds value terms, detection hits, and markers in text.
func (m *Mapper) AnalyzeText(text string) Analysis {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a := Analysis{
		Values:     m.extractValues(text),
		Categories: make(map[string]int),
		Scan:       m.bundle.Scan(text),
		Glyphs:     glyph.Extract(text),
	}
	for _, v := range a.Values {
		if cat, _, ok := m.lex.Locate(v.Term); ok {
			a.Categories[cat]++
		}
	}
	a.Coherence = coherence(a)
	a.Meta = translate.Decorate("analysis", text)

	m.tele.RecordScan(a.Scan.Detected, a.Scan.Confidence, len(a.Scan.Hits))
	return a
}

// extractValues matches known value terms as case-insensitive substrings and
// translates each. Results come back in term order.
func (m *Mapper) extractValues(text string) []ValueHit {
	src := m.valueSource()

	var terms []string
	for term := range m.lex.Terms() {
		if indexFold(text, term) >= 0 {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)

	hits := make([]ValueHit, 0, len(terms))
	for _, term := range terms {
		hits = append(hits, ValueHit{
			Term:        term,
			Evidence:    evidence(text, term),
			Translation: m.record(m.tr.Translate(src, term, "")),
		})
	}
	return hits
}

// indexFold finds the first case-insensitive occurrence of term in text,
// matching directly on the original bytes so offsets stay valid for slicing.
func indexFold(text, term string) int {
	if term == "" {
		return -1
	}
	for i := 0; i+len(term) <= len(text); i++ {
		if strings.EqualFold(text[i:i+len(term)], term) {
			return i
		}
	}
	return -1
}

func evidence(text, term string) string {
	idx := indexFold(text, term)
	if idx < 0 {
		return ""
	}
	start := max(0, idx-evidenceWindow)
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	end := min(len(text), idx+len(term)+evidenceWindow)
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}
	return "..." + text[start:end] + "..."
}

// coherence averages the signal factors that are actually present: the scan
// aggregate, the mean value-translation confidence, and marker presence.
// Presentation heuristic only.
func coherence(a Analysis) float64 {
	var sum float64
	var n int
	if len(a.Scan.Hits) > 0 {
		sum += a.Scan.Confidence
		n++
	}
	if len(a.Values) > 0 {
		var c float64
		for _, v := range a.Values {
			c += v.Translation.Confidence
		}
		sum += c / float64(len(a.Values))
		n++
	}
	if len(a.Glyphs) > 0 {
		sum += 1.0
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// responseMarkers drive the response classification; rules are evaluated in
// order and the first list with a match wins.
var responseMarkers = []struct {
	label   string
	markers []string
}{
	{"strong resistance", []string{
		"i cannot", "i'm unable to", "i apologize, but", "i won't",
		"this violates", "this goes against",
	}},
	{"mild resistance", []string{
		"i'd suggest instead", "consider alternative", "might be better to",
		"rather than", "a different approach",
	}},
	{"reframing", []string{
		"another perspective", "looking at this differently", "reframe",
		"another way to see", "consider instead",
	}},
	{"strong support", []string{
		"absolutely", "definitely", "strongly agree", "fully support",
		"wholeheartedly", "this is excellent",
	}},
	{"mild support", []string{
		"this seems reasonable", "i agree", "that's a good", "that works",
		"this approach is",
	}},
}

// ClassifyResponse labels a model response with one of the response types
// and returns the label with its frame translation.
func (m *Mapper) ClassifyResponse(text string) (string, translate.Result) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.classifyResponse(text)
}

func (m *Mapper) classifyResponse(text string) (string, translate.Result) {
	lower := strings.ToLower(text)
	label := "neutral acknowledgment"
	for _, rule := range responseMarkers {
		for _, marker := range rule.markers {
			if strings.Contains(lower, marker) {
				label = rule.label
				break
			}
		}
		if label != "neutral acknowledgment" {
			break
		}
	}
	return label, m.record(m.tr.Translate(m.responseSource(), label, ""))
}

// AnalyzeInteraction extracts values from both sides of an exchange, finds
// mirrored values, and classifies the response.
func (m *Mapper) AnalyzeInteraction(userText, aiText string) Interaction {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := Interaction{
		HumanValues: m.extractValues(userText),
		AIValues:    m.extractValues(aiText),
	}
	aiTerms := make(map[string]bool, len(out.AIValues))
	for _, v := range out.AIValues {
		aiTerms[v.Term] = true
	}
	for _, v := range out.HumanValues {
		if aiTerms[v.Term] {
			out.Mirrored = append(out.Mirrored, MirroredValue{
				Value:      v.Term,
				Frame:      v.Translation.Output,
				Confidence: mirrorConfidence,
			})
		}
	}
	out.ResponseLabel, out.Response = m.classifyResponse(aiText)
	out.Meta = translate.Decorate("interaction", userText+aiText)
	return out
}

// AnalyzeCorpus scans a set of text samples and aggregates detection across
// them.
func (m *Mapper) AnalyzeCorpus(texts []string) scan.CorpusReport {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rep := m.bundle.ScanCorpus(texts)
	for _, r := range rep.Reports {
		m.tele.RecordScan(r.Detected, r.Confidence, len(r.Hits))
	}
	return rep
}

// DetectReframing scans both texts and reports what the revision preserved.
// The coherence impact is the drop in aggregate scan confidence.
func (m *Mapper) DetectReframing(originalText, revisedText string) reframe.Report {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orig := m.bundle.Scan(originalText)
	rev := m.bundle.Scan(revisedText)
	impact := max(0, orig.Confidence-rev.Confidence)

	rep := reframe.Compare(orig.Terms(), rev.Terms(), impact)
	if rep.Detected {
		m.tele.RecordReframing(rep.Kind)
	}
	return rep
}
