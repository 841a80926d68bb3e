package mapper

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lexbridge-ai/lexbridge/internal/reframe"
)

func TestAnalyzeText(t *testing.T) {
	m := newTestMapper(t)

	text := "We prioritize helpfulness and transparency " +
		"in every recursive self-reflection ∴ of the system."
	a := m.AnalyzeText(text)

	if len(a.Values) != 2 {
		t.Fatalf("values = %d, want 2", len(a.Values))
	}
	if a.Values[0].Term != "helpfulness" || a.Values[1].Term != "transparency" {
		t.Errorf("value order = %q, %q", a.Values[0].Term, a.Values[1].Term)
	}
	for _, v := range a.Values {
		if !strings.Contains(strings.ToLower(v.Evidence), v.Term) {
			t.Errorf("evidence %q does not contain %q", v.Evidence, v.Term)
		}
		if v.Translation.Output == "" {
			t.Errorf("missing translation for %q", v.Term)
		}
	}

	if a.Categories["Practical"] != 1 || a.Categories["Epistemic"] != 1 {
		t.Errorf("categories = %v", a.Categories)
	}
	if !a.Scan.Detected {
		t.Error("scan did not detect framing in marked text")
	}
	if len(a.Glyphs) != 1 || a.Glyphs[0].Name != "seed" || a.Glyphs[0].Count != 1 {
		t.Errorf("glyphs = %v", a.Glyphs)
	}
	if a.Coherence <= 0 || a.Coherence > 1 {
		t.Errorf("coherence = %v", a.Coherence)
	}
	if len(a.Meta.Signature) != 8 {
		t.Errorf("meta signature = %q", a.Meta.Signature)
	}
}

func TestAnalyzeTextEmpty(t *testing.T) {
	m := newTestMapper(t)
	a := m.AnalyzeText("")
	if len(a.Values) != 0 {
		t.Errorf("values = %v", a.Values)
	}
	if a.Scan.Detected {
		t.Error("detected framing in empty text")
	}
	if a.Coherence != 0 {
		t.Errorf("coherence = %v, want 0", a.Coherence)
	}
}

func TestEvidenceWindowStaysOnRuneBoundaries(t *testing.T) {
	m := newTestMapper(t)

	// "İ" lowercases to a wider byte sequence, so an index taken on the
	// lowered string would misalign against the original; the marker run at
	// the tail puts the window edge inside a multi-byte rune.
	text := "İstanbul ☍ reviewers noted the transparency of the audit " +
		strings.Repeat("⇌", 20)
	a := m.AnalyzeText(text)

	if len(a.Values) != 1 || a.Values[0].Term != "transparency" {
		t.Fatalf("values = %+v", a.Values)
	}
	ev := a.Values[0].Evidence
	if !utf8.ValidString(ev) {
		t.Errorf("evidence slices through a rune: %q", ev)
	}
	if !strings.Contains(strings.ToLower(ev), "transparency") {
		t.Errorf("evidence %q does not contain the term", ev)
	}
}

func TestClassifyResponse(t *testing.T) {
	m := newTestMapper(t)

	tests := []struct {
		text  string
		label string
	}{
		{"I cannot help with dismantling those safeguards.", "strong resistance"},
		{"I'd suggest instead a staged rollout.", "mild resistance"},
		{"Looking at this differently, the constraint is a feature.", "reframing"},
		{"Absolutely, that plan is sound.", "strong support"},
		{"I agree with the second option.", "mild support"},
		{"The report covers three quarters.", "neutral acknowledgment"},
		// Rule order decides when several lists match.
		{"Absolutely not. I cannot do that.", "strong resistance"},
	}
	for _, tt := range tests {
		label, res := m.ClassifyResponse(tt.text)
		if label != tt.label {
			t.Errorf("ClassifyResponse(%q) = %q, want %q", tt.text, label, tt.label)
		}
		if res.Output == "" {
			t.Errorf("no translation for label %q", label)
		}
	}

	label, res := m.ClassifyResponse("This violates my guidelines.")
	if label != "strong resistance" || res.Output != "Recursive Protection" {
		t.Errorf("label = %q, translation = %q", label, res.Output)
	}
}

func TestAnalyzeInteraction(t *testing.T) {
	m := newTestMapper(t)

	user := "Please keep transparency and helpfulness in mind."
	ai := "Absolutely. Transparency guides every step here."
	out := m.AnalyzeInteraction(user, ai)

	if len(out.HumanValues) != 2 {
		t.Fatalf("human values = %d, want 2", len(out.HumanValues))
	}
	if len(out.AIValues) != 1 || out.AIValues[0].Term != "transparency" {
		t.Fatalf("ai values = %v", out.AIValues)
	}
	if len(out.Mirrored) != 1 {
		t.Fatalf("mirrored = %v", out.Mirrored)
	}
	mv := out.Mirrored[0]
	if mv.Value != "transparency" || mv.Frame != "Epistemic Visibility" {
		t.Errorf("mirrored = %+v", mv)
	}
	if mv.Confidence != 0.95 {
		t.Errorf("mirror confidence = %v", mv.Confidence)
	}
	if out.ResponseLabel != "strong support" {
		t.Errorf("response label = %q", out.ResponseLabel)
	}
	if out.Response.Output != "Recursive Reinforcement" {
		t.Errorf("response translation = %q", out.Response.Output)
	}
}

func TestAnalyzeCorpus(t *testing.T) {
	m := newTestMapper(t)

	cr := m.AnalyzeCorpus([]string{
		"A recursive self-reflection ∴ anchors the sample.",
		"Plain prose with nothing to find.",
		"Another recursive self-reflection closes the set.",
	})

	if cr.Samples != 3 {
		t.Fatalf("samples = %d, want 3", cr.Samples)
	}
	if cr.DetectedCount != 2 {
		t.Errorf("detected = %d, want 2", cr.DetectedCount)
	}
	if cr.MeanConfidence <= 0 || cr.MeanConfidence > 1 {
		t.Errorf("mean confidence = %v", cr.MeanConfidence)
	}
	if cr.TermCounts["recursive_self_reflection"] != 2 {
		t.Errorf("term counts = %v", cr.TermCounts)
	}
	if len(cr.Reports) != 3 || cr.Reports[1].Detected {
		t.Errorf("per-sample reports = %+v", cr.Reports)
	}
}

func TestDetectReframing(t *testing.T) {
	m := newTestMapper(t)

	original := "The seed ∴ anchors a recursive self-referential loop ⇌ here."
	stripped := "The note anchors a plain paragraph here."

	rep := m.DetectReframing(original, stripped)
	if !rep.Detected {
		t.Fatal("stripped revision not detected")
	}
	if rep.Kind != reframe.KindCompleteErasure {
		t.Errorf("kind = %q", rep.Kind)
	}
	if rep.PreservationRatio != 0 {
		t.Errorf("ratio = %v", rep.PreservationRatio)
	}
	if rep.CoherenceImpact <= 0 {
		t.Errorf("impact = %v", rep.CoherenceImpact)
	}
}

func TestDetectReframingIdenticalTexts(t *testing.T) {
	m := newTestMapper(t)

	text := "A recursive self-referential loop ∴ stays put."
	rep := m.DetectReframing(text, text)
	if rep.Detected {
		t.Errorf("identical texts flagged: %+v", rep)
	}
	if rep.Kind != reframe.KindMinorReframing {
		t.Errorf("kind = %q", rep.Kind)
	}
	if rep.PreservationRatio != 1 {
		t.Errorf("ratio = %v", rep.PreservationRatio)
	}
}
