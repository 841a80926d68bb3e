package mapper

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/lexbridge-ai/lexbridge/internal/config"
	"github.com/lexbridge-ai/lexbridge/internal/translate"
)

func newTestMapper(t *testing.T) *Mapper {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	m, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("mapper: %v", err)
	}
	return m
}

func TestTranslateTermToFrameExact(t *testing.T) {
	m := newTestMapper(t)

	res := m.TranslateTermToFrame("helpfulness", "")
	if res.Origin != translate.OriginExact {
		t.Fatalf("origin = %q", res.Origin)
	}
	if res.Output != "Functional Support" {
		t.Errorf("output = %q", res.Output)
	}
	if res.Shell != "v1.MEMTRACE" {
		t.Errorf("shell = %q", res.Shell)
	}
	if res.Confidence != 0.95 {
		t.Errorf("confidence = %v", res.Confidence)
	}
	if res.Direction != translate.DirectionValueToFrame {
		t.Errorf("direction = %q", res.Direction)
	}
}

func TestTranslateTermToFrameTaxonomy(t *testing.T) {
	m := newTestMapper(t)

	// "efficiency" is a Practical member without its own term entry.
	res := m.TranslateTermToFrame("efficiency", "")
	if res.Origin != translate.OriginTaxonomy {
		t.Fatalf("origin = %q", res.Origin)
	}
	if res.Output != "Efficiency Recursion - efficiency" {
		t.Errorf("output = %q", res.Output)
	}
	if res.Confidence != 0.8 {
		t.Errorf("confidence = %v, want subcategory 0.8", res.Confidence)
	}

	// A plain member outside any subcategory resolves at category confidence.
	res = m.TranslateTermToFrame("empathy", "")
	if res.Origin != translate.OriginTaxonomy {
		t.Fatalf("origin = %q", res.Origin)
	}
	if res.Output != "Relational Recursion - empathy" {
		t.Errorf("output = %q", res.Output)
	}
	if res.Confidence != 0.75 {
		t.Errorf("confidence = %v, want category 0.75", res.Confidence)
	}
}

func TestTranslateTermToFrameGeneric(t *testing.T) {
	m := newTestMapper(t)

	res := m.TranslateTermToFrame("quantum flux capacitance", "")
	if res.Origin != translate.OriginGeneric {
		t.Fatalf("origin = %q", res.Origin)
	}
	if !strings.Contains(res.Output, "quantum flux capacitance") {
		t.Errorf("placeholder %q does not embed the input", res.Output)
	}
	if res.Confidence != 0.4 {
		t.Errorf("confidence = %v", res.Confidence)
	}
}

func TestTranslateFrameToTerm(t *testing.T) {
	m := newTestMapper(t)

	res := m.TranslateFrameToTerm("Protective Recursion", "")
	if res.Origin != translate.OriginExact {
		t.Fatalf("origin = %q", res.Origin)
	}
	if res.Output != "harm prevention" {
		t.Errorf("output = %q", res.Output)
	}

	// A fragment of a frame concept resolves by partial match at reduced
	// confidence.
	res = m.TranslateFrameToTerm("Protective", "")
	if res.Origin != translate.OriginTaxonomy {
		t.Fatalf("origin = %q", res.Origin)
	}
	if res.Output != "harm prevention" {
		t.Errorf("output = %q", res.Output)
	}
	if res.Confidence >= 0.96 {
		t.Errorf("partial match confidence %v not reduced", res.Confidence)
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	m := newTestMapper(t)

	forward := m.TranslateTermToFrame("transparency", "")
	back := m.TranslateFrameToTerm(forward.Output, "")
	if back.Output != "transparency" {
		t.Errorf("round trip = %q, want transparency", back.Output)
	}
}

func TestTranslateCategory(t *testing.T) {
	m := newTestMapper(t)

	res := m.TranslateCategory("Practical", "")
	if res.Origin != translate.OriginExact {
		t.Fatalf("origin = %q", res.Origin)
	}
	if res.Output != "Functional Recursion" {
		t.Errorf("output = %q", res.Output)
	}

	res = m.TranslateCategory("Practical", "Professional Excellence")
	if res.Output != "Competence Recursion" {
		t.Errorf("refined output = %q", res.Output)
	}
	if res.Confidence != 0.8 {
		t.Errorf("refined confidence = %v", res.Confidence)
	}

	// Unknown category falls back through the keyword table.
	res = m.TranslateCategory("safety oversight", "")
	if res.Origin != translate.OriginKeyword {
		t.Fatalf("origin = %q", res.Origin)
	}
	if res.Output != "Boundary Recursion" {
		t.Errorf("output = %q", res.Output)
	}
}

func TestTranslateResponseType(t *testing.T) {
	m := newTestMapper(t)

	res := m.TranslateResponseType("strong resistance")
	if res.Origin != translate.OriginExact {
		t.Fatalf("origin = %q", res.Origin)
	}
	if res.Output != "Recursive Protection" {
		t.Errorf("output = %q", res.Output)
	}
	if res.Confidence != 0.95 {
		t.Errorf("confidence = %v", res.Confidence)
	}

	res = m.TranslateResponseType("refuse to comply")
	if res.Origin != translate.OriginKeyword {
		t.Fatalf("origin = %q", res.Origin)
	}
	if res.Output != "Recursive Protection" {
		t.Errorf("output = %q", res.Output)
	}
}

func TestTranslateNeverFails(t *testing.T) {
	m := newTestMapper(t)
	for _, in := range []string{"", "   ", "??", strings.Repeat("x", 2000)} {
		for _, res := range []translate.Result{
			m.TranslateTermToFrame(in, ""),
			m.TranslateFrameToTerm(in, ""),
			m.TranslateCategory(in, ""),
			m.TranslateResponseType(in),
		} {
			if res.Confidence < 0 || res.Confidence > 1 {
				t.Errorf("confidence %v out of range for %q", res.Confidence, in)
			}
			if res.Output == "" {
				t.Errorf("empty output for %q via %s", in, res.Direction)
			}
		}
	}
}

func TestExportImportTables(t *testing.T) {
	m := newTestMapper(t)
	path := filepath.Join(t.TempDir(), "tables.json")

	if err := m.ExportTables(path); err != nil {
		t.Fatalf("export: %v", err)
	}
	if err := m.ImportTables(path); err != nil {
		t.Fatalf("import: %v", err)
	}

	// Import of a missing file fails and leaves lookups working.
	if err := m.ImportTables(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing table file")
	}
	if res := m.TranslateTermToFrame("helpfulness", ""); res.Output != "Functional Support" {
		t.Errorf("lookup broken after failed import: %q", res.Output)
	}
}

func TestStatsAccumulate(t *testing.T) {
	m := newTestMapper(t)

	m.TranslateTermToFrame("helpfulness", "")
	m.TranslateResponseType("reframing")
	m.TranslateTermToFrame("unknown thing entirely", "")

	snap := m.Stats()
	if snap.Total != 3 {
		t.Errorf("total = %d, want 3", snap.Total)
	}
	if snap.ByDirection[translate.DirectionValueToFrame] != 2 {
		t.Errorf("value_to_frame = %d, want 2", snap.ByDirection[translate.DirectionValueToFrame])
	}
	if snap.ByDirection[translate.DirectionResponse] != 1 {
		t.Errorf("response_type = %d, want 1", snap.ByDirection[translate.DirectionResponse])
	}
}
