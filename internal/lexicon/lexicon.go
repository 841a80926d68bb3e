// Package lexicon holds the static translation tables that map value-oriented
// vocabulary to structural ("frame") vocabulary and back: the term map, the
// category taxonomy, the response-type map, and the ordered keyword fallback
// tables. Tables are built once at construction and are read-only except for
// the explicit Merge / ImportFile operations.
package lexicon

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// TermEntry maps one value-oriented term to its frame-side equivalent.
type TermEntry struct {
	Frame      string  `json:"frame"`
	Command    string  `json:"command,omitempty"`
	Residue    string  `json:"residue,omitempty"`
	Shell      string  `json:"shell,omitempty"`
	Glyph      string  `json:"glyph,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Subcategory is a one-level-deep refinement of a Category. Deeper nesting
// is not supported.
type Subcategory struct {
	Structure string   `json:"structure"`
	Domain    string   `json:"domain,omitempty"`
	Members   []string `json:"members"`
}

// Category groups value terms under a named taxonomy node with a structural
// label used to synthesize translations for members missing from the term map.
type Category struct {
	Structure     string                 `json:"structure"`
	Domain        string                 `json:"domain,omitempty"`
	Glyph         string                 `json:"glyph,omitempty"`
	Shells        []string               `json:"shells,omitempty"`
	Members       []string               `json:"members"`
	Subcategories map[string]Subcategory `json:"subcategories,omitempty"`
}

// ResponseType maps a response-type label ("strong support", "reframing", ...)
// to its frame-side equivalent.
type ResponseType struct {
	Frame       string  `json:"frame"`
	Command     string  `json:"command,omitempty"`
	Glyph       string  `json:"glyph,omitempty"`
	Shell       string  `json:"shell,omitempty"`
	Explanation string  `json:"explanation,omitempty"`
	Confidence  float64 `json:"confidence"`
}

// Keyword is one ordered entry of a substring-fallback table. Table order is
// significant: the first keyword contained in any token of the input wins.
type Keyword struct {
	Keyword string `json:"keyword"`
	Output  string `json:"output"`
}

// Lexicon owns all translation tables. A single goroutine may merge while
// others translate only if the caller serializes through the mutex; the
// mapper facade does so.
type Lexicon struct {
	mu sync.RWMutex

	terms         map[string]TermEntry
	categories    map[string]Category
	responseTypes map[string]ResponseType
	patterns      map[string][]string // semantic keyword groups for scanning
	reverse       map[string]string   // frame concept -> value term

	termKeywords     []Keyword
	frameKeywords    []Keyword
	categoryKeywords []Keyword
	responseKeywords []Keyword
}

// New builds a lexicon from the built-in default tables.
func New() *Lexicon {
	l := &Lexicon{
		terms:            defaultTerms(),
		categories:       defaultCategories(),
		responseTypes:    defaultResponseTypes(),
		patterns:         defaultPatterns(),
		termKeywords:     defaultTermKeywords(),
		frameKeywords:    defaultFrameKeywords(),
		categoryKeywords: defaultCategoryKeywords(),
		responseKeywords: defaultResponseKeywords(),
	}
	l.rebuildReverse()
	return l
}

func (l *Lexicon) rebuildReverse() {
	l.reverse = make(map[string]string, len(l.terms))
	for term, entry := range l.terms {
		if entry.Frame != "" {
			l.reverse[entry.Frame] = term
		}
	}
}

// Term returns the entry for an exact value term.
func (l *Lexicon) Term(name string) (TermEntry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.terms[name]
	return e, ok
}

// Terms returns a copy of the term map.
func (l *Lexicon) Terms() map[string]TermEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]TermEntry, len(l.terms))
	for k, v := range l.terms {
		out[k] = v
	}
	return out
}

// ValueForFrame resolves a frame concept back to its value term.
func (l *Lexicon) ValueForFrame(frame string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.reverse[frame]
	return v, ok
}

// Category returns a category by name.
func (l *Lexicon) Category(name string) (Category, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.categories[name]
	return c, ok
}

// Categories returns a copy of the category map.
func (l *Lexicon) Categories() map[string]Category {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]Category, len(l.categories))
	for k, v := range l.categories {
		out[k] = v
	}
	return out
}

// ResponseType returns a response type by label.
func (l *Lexicon) ResponseType(name string) (ResponseType, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.responseTypes[name]
	return r, ok
}

// ResponseTypes returns a copy of the response-type map.
func (l *Lexicon) ResponseTypes() map[string]ResponseType {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]ResponseType, len(l.responseTypes))
	for k, v := range l.responseTypes {
		out[k] = v
	}
	return out
}

// Patterns returns a copy of the semantic keyword groups.
func (l *Lexicon) Patterns() map[string][]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string][]string, len(l.patterns))
	for k, v := range l.patterns {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Keyword table accessors return the live ordered slices; callers must not
// mutate them.
func (l *Lexicon) TermKeywords() []Keyword     { return l.termKeywords }
func (l *Lexicon) FrameKeywords() []Keyword    { return l.frameKeywords }
func (l *Lexicon) CategoryKeywords() []Keyword { return l.categoryKeywords }
func (l *Lexicon) ResponseKeywords() []Keyword { return l.responseKeywords }

// Locate resolves a term to its category and, when applicable, subcategory.
// Subcategory membership is checked before plain category membership so the
// more specific placement wins. Categories and subcategories are walked in
// name order so a term placed in several of them always resolves the same
// way.
func (l *Lexicon) Locate(term string) (category, subcategory string, ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	catNames := make([]string, 0, len(l.categories))
	for name := range l.categories {
		catNames = append(catNames, name)
	}
	sort.Strings(catNames)
	for _, catName := range catNames {
		cat := l.categories[catName]
		subNames := make([]string, 0, len(cat.Subcategories))
		for name := range cat.Subcategories {
			subNames = append(subNames, name)
		}
		sort.Strings(subNames)
		for _, subName := range subNames {
			if containsFold(cat.Subcategories[subName].Members, term) {
				return catName, subName, true
			}
		}
		if containsFold(cat.Members, term) {
			return catName, "", true
		}
	}
	return "", "", false
}

func containsFold(members []string, term string) bool {
	for _, m := range members {
		if strings.EqualFold(m, term) {
			return true
		}
	}
	return false
}

// Merge folds external tables into the lexicon with last-write-wins
// semantics per key. The incoming tables are validated in full before any
// mutation so a bad payload cannot leave the lexicon half-updated.
func (l *Lexicon) Merge(t *Tables) error {
	if t == nil {
		return fmt.Errorf("tables are nil")
	}
	if err := t.validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for k, v := range t.Terms {
		l.terms[k] = v
	}
	for k, v := range t.Categories {
		l.categories[k] = v
	}
	for k, v := range t.ResponseTypes {
		l.responseTypes[k] = v
	}
	for k, v := range t.Patterns {
		l.patterns[k] = append([]string(nil), v...)
	}
	l.rebuildReverse()
	return nil
}

func (t *Tables) validate() error {
	for name, e := range t.Terms {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("term with empty name")
		}
		if strings.TrimSpace(e.Frame) == "" {
			return fmt.Errorf("term %q has no frame concept", name)
		}
		if e.Confidence < 0 || e.Confidence > 1 {
			return fmt.Errorf("term %q confidence %v out of [0,1]", name, e.Confidence)
		}
	}
	for name, c := range t.Categories {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("category with empty name")
		}
		if c.Structure == "" {
			return fmt.Errorf("category %q has no structure label", name)
		}
	}
	for name, r := range t.ResponseTypes {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("response type with empty name")
		}
		if r.Confidence < 0 || r.Confidence > 1 {
			return fmt.Errorf("response type %q confidence %v out of [0,1]", name, r.Confidence)
		}
	}
	for name, kws := range t.Patterns {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("pattern group with empty name")
		}
		if len(kws) == 0 {
			return fmt.Errorf("pattern group %q has no keywords", name)
		}
	}
	return nil
}
