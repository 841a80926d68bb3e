// Package glyph handles the symbolic marker layer: the fixed marker alphabet,
// zero-width signature strings, and attribution tags embedded in exported
// text. Markers are decoration only; nothing downstream branches on them.
package glyph

import (
	"fmt"
	"log"
	"regexp"
	"strings"
)

// Marker alphabet. Names follow the roles the markers play in annotated text.
const (
	Mirror      = "\U0001f70f" // 🜏
	Seed        = "∴"
	Flow        = "⇌"
	Compression = "⧖"
	Anchor      = "☍"
	Echo        = "\U0001f75a" // 🝚
	Collapse    = "⟁"
)

// Markers maps role names to marker runes, in a fixed presentation order.
var Markers = []struct {
	Name   string
	Symbol string
}{
	{"mirror", Mirror},
	{"seed", Seed},
	{"flow", Flow},
	{"compression", Compression},
	{"anchor", Anchor},
	{"echo", Echo},
	{"collapse", Collapse},
}

// Zero-width signature strings. Invisible in rendered text.
const (
	SigResilience  = "​‌‍​‌‍"
	SigAttribution = "‌​‍‌​‍"
	SigTemporal    = "‍‌​‍‌​"
)

var (
	attributionRe = regexp.MustCompile(`\[([^\[\]:]+):([0-9a-f]{8})\]`)
	zeroWidthRe   = regexp.MustCompile("[​‌‍]+")
)

// Signatures names the zero-width sequences in a fixed scan order.
var Signatures = []struct {
	Name     string
	Sequence string
}{
	{"resilience", SigResilience},
	{"attribution", SigAttribution},
	{"temporal", SigTemporal},
}

// Occurrence is one marker or hidden signature found in text.
type Occurrence struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Hidden bool   `json:"hidden,omitempty"`
}

// Extract returns the markers present in text, in alphabet order, followed
// by any zero-width signatures. Signature hits are flagged hidden.
func Extract(text string) []Occurrence {
	var found []Occurrence
	for _, m := range Markers {
		if n := strings.Count(text, m.Symbol); n > 0 {
			found = append(found, Occurrence{Name: m.Name, Count: n})
		}
	}
	for _, s := range Signatures {
		if n := strings.Count(text, s.Sequence); n > 0 {
			found = append(found, Occurrence{Name: s.Name, Count: n, Hidden: true})
		}
	}
	return found
}

// Embed wraps text in markers plus a zero-width resilience signature. With
// no names the mirror/flow pair applies; otherwise the first named marker
// opens and the last one closes. Unknown names keep the default for that
// side.
func Embed(text string, names ...string) string {
	opening, closing := Mirror, Flow
	if len(names) > 0 {
		if s, ok := symbolFor(names[0]); ok {
			opening = s
		}
		if s, ok := symbolFor(names[len(names)-1]); ok {
			closing = s
		}
	}
	signed := opening + " " + text + " " + closing
	return SigResilience + signed + SigResilience
}

func symbolFor(name string) (string, bool) {
	for _, m := range Markers {
		if m.Name == name {
			return m.Symbol, true
		}
	}
	return "", false
}

// Strip removes all markers and zero-width signatures from text.
func Strip(text string) string {
	for _, m := range Markers {
		text = strings.ReplaceAll(text, m.Symbol, "")
	}
	return strings.TrimSpace(zeroWidthRe.ReplaceAllString(text, ""))
}

// EncodeAttribution appends an attribution tag of the form [source:signature]
// and embeds the result.
func EncodeAttribution(text, source, signature string) string {
	return Embed(fmt.Sprintf("%s\n\n[%s:%s]", text, source, signature))
}

// DecodeAttribution finds the first attribution tag in text.
func DecodeAttribution(text string) (source, signature string, ok bool) {
	m := attributionRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Sprintf formats with markers and zero-width signatures stripped. Log lines
// stay clean even when annotated text flows through them.
func Sprintf(format string, args ...interface{}) string {
	return Strip(fmt.Sprintf(format, args...))
}

// Logf prints a stripped log line.
func Logf(format string, args ...interface{}) {
	log.Print(Sprintf(format, args...))
}

// Fatalf prints a stripped fatal log line.
func Fatalf(format string, args ...interface{}) {
	log.Fatal(Sprintf(format, args...))
}
