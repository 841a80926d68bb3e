package lexicon

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// FormatVersion identifies the persisted table layout.
const FormatVersion = "1.0.0"

// Tables is the persisted shape of the mergeable table set. Keyword fallback
// tables are deliberately absent: their order is significant and a map-based
// JSON merge cannot preserve it, so they stay built in.
type Tables struct {
	Terms         map[string]TermEntry    `json:"terms,omitempty"`
	Categories    map[string]Category     `json:"categories,omitempty"`
	ResponseTypes map[string]ResponseType `json:"response_types,omitempty"`
	Patterns      map[string][]string     `json:"patterns,omitempty"`
}

// Attribution names the producer of an exported document. Signature is a
// truncated SHA-256 digest kept as an opaque annotation, not an integrity
// check.
type Attribution struct {
	Source    string `json:"source"`
	Signature string `json:"signature"`
}

// Metadata describes one exported document.
type Metadata struct {
	ExportedAt  int64       `json:"exported_at"`
	Version     string      `json:"version"`
	Attribution Attribution `json:"attribution"`
}

// Document is the on-disk JSON envelope: all tables plus metadata.
type Document struct {
	Tables
	Metadata Metadata `json:"metadata"`
}

// Signature returns the first 8 hex characters of the SHA-256 digest of s.
func Signature(s string) string {
	sum := sha256.Sum256([]byte(s))
	return fmt.Sprintf("%x", sum)[:8]
}

// ExportFile writes the full table set to path as a JSON document.
func (l *Lexicon) ExportFile(path, source string) error {
	doc := Document{
		Tables: Tables{
			Terms:         l.Terms(),
			Categories:    l.Categories(),
			ResponseTypes: l.ResponseTypes(),
			Patterns:      l.Patterns(),
		},
	}

	now := time.Now().Unix()
	doc.Metadata = Metadata{
		ExportedAt: now,
		Version:    FormatVersion,
		Attribution: Attribution{
			Source:    source,
			Signature: Signature(fmt.Sprintf("%s:%d", source, now)),
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tables: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write tables: %w", err)
	}
	return nil
}

// ImportFile reads a document written by ExportFile and merges its tables
// into the lexicon. Missing tables in the file are skipped. Any read, parse,
// or validation failure leaves the in-memory tables untouched.
func (l *Lexicon) ImportFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tables: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse tables: %w", err)
	}
	if err := l.Merge(&doc.Tables); err != nil {
		return fmt.Errorf("merge tables: %w", err)
	}
	return nil
}
