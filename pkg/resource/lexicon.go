package resource

import (
	"encoding/json"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bastiangx/pawn/pkg/lexerr"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Document is the on-disk shape of a lexicon file (.json or .msgpack).
type Document struct {
	Version  string           `json:"version" msgpack:"version"`
	License  string           `json:"license" msgpack:"license"`
	Citation string           `json:"citation" msgpack:"citation"`
	Synsets  []SynsetDocument `json:"synsets" msgpack:"synsets"`
}

// SynsetDocument is one synset record.
type SynsetDocument struct {
	ID         string                `json:"id" msgpack:"id"`
	Definition string                `json:"definition,omitempty" msgpack:"definition,omitempty"`
	Examples   []string              `json:"examples,omitempty" msgpack:"examples,omitempty"`
	Lemmas     []LemmaDocument       `json:"lemmas" msgpack:"lemmas"`
	Relations  map[Relation][]string `json:"relations,omitempty" msgpack:"relations,omitempty"`
}

// LemmaDocument is one lemma record; relation targets are lemma keys ("good.a.01.good").
type LemmaDocument struct {
	Name      string                `json:"name" msgpack:"name"`
	Count     int                   `json:"count,omitempty" msgpack:"count,omitempty"`
	Relations map[Relation][]string `json:"relations,omitempty" msgpack:"relations,omitempty"`
}

// Lexicon is the file-backed Resource implementation.
// It is safe for concurrent reads once loaded.
type Lexicon struct {
	path string
	once sync.Once
	err  error

	meta    Metadata
	synsets map[string]*Synset
	order   []string
	lemmas  map[string]*Lemma
	// words maps a lowercased, underscore-joined word to its synsets in sense order.
	words map[string][]*Synset

	depthMu  sync.Mutex
	maxDepth map[string]int
}

// Open returns a Lexicon that reads path on the first EnsureLoaded call.
func Open(path string) *Lexicon {
	return &Lexicon{path: path}
}

// NewLexicon builds a Lexicon from an in-memory document.
func NewLexicon(doc Document) (*Lexicon, error) {
	l := &Lexicon{}
	l.once.Do(func() { l.err = l.index(doc) })
	return l, l.err
}

// EnsureLoaded loads the lexicon file once; later calls return the first result.
func (l *Lexicon) EnsureLoaded() error {
	l.once.Do(func() {
		doc, err := readDocument(l.path)
		if err != nil {
			l.err = err
			return
		}
		l.err = l.index(doc)
		if l.err == nil {
			log.Debugf("Loaded English lexicon %s: %d synsets, %d words", l.path, len(l.synsets), len(l.words))
		}
	})
	return l.err
}

func readDocument(path string) (Document, error) {
	var doc Document
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, lexerr.Missing("resource.Open", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mpk":
		err = msgpack.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return doc, lexerr.Missing("resource.Open", path, err)
	}
	return doc, nil
}

func (l *Lexicon) index(doc Document) error {
	l.meta = Metadata{Version: doc.Version, License: doc.License, Citation: doc.Citation}
	l.synsets = make(map[string]*Synset, len(doc.Synsets))
	l.lemmas = make(map[string]*Lemma)
	l.words = make(map[string][]*Synset)
	l.maxDepth = make(map[string]int)

	for _, sd := range doc.Synsets {
		if POSOf(sd.ID) == "" {
			return fmt.Errorf("resource: malformed synset id %q", sd.ID)
		}
		if _, dup := l.synsets[sd.ID]; dup {
			return fmt.Errorf("resource: duplicate synset id %q", sd.ID)
		}
		s := &Synset{
			ID:         sd.ID,
			Definition: sd.Definition,
			Examples:   sd.Examples,
			relations:  copyRelations(sd.Relations),
		}
		for _, ld := range sd.Lemmas {
			lm := &Lemma{Name: ld.Name, Count: ld.Count, synset: s, relations: copyRelations(ld.Relations)}
			s.Lemmas = append(s.Lemmas, lm)
			l.lemmas[lm.Key()] = lm
			w := normalizeWord(ld.Name)
			l.words[w] = append(l.words[w], s)
		}
		l.synsets[s.ID] = s
		l.order = append(l.order, s.ID)
	}

	// fill in reverse pointers so the graph is walkable in both directions
	for _, id := range l.order {
		s := l.synsets[id]
		for rel, targets := range s.relations {
			inv, ok := inverses[rel]
			if !ok {
				continue
			}
			for _, t := range targets {
				if ts, ok := l.synsets[t]; ok {
					ts.relations[inv] = appendUnique(ts.relations[inv], id)
				}
			}
		}
		for _, lm := range s.Lemmas {
			for _, t := range lm.relations[Antonym] {
				if tl, ok := l.lemmas[t]; ok {
					tl.relations[Antonym] = appendUnique(tl.relations[Antonym], lm.Key())
				}
			}
		}
	}
	return nil
}

func copyRelations(in map[Relation][]string) map[Relation][]string {
	out := make(map[Relation][]string, len(in))
	for k, v := range in {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

func normalizeWord(w string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(w)), " ", "_")
}

// Synset returns the synset with raw id.
func (l *Lexicon) Synset(id string) (*Synset, error) {
	if err := l.EnsureLoaded(); err != nil {
		return nil, err
	}
	s, ok := l.synsets[id]
	if !ok {
		return nil, lexerr.NotFound("resource.Synset", id)
	}
	return s, nil
}

// Synsets returns every synset for word (after morphological reduction) whose tag is in pos.
func (l *Lexicon) Synsets(word, pos string) ([]*Synset, error) {
	if err := l.EnsureLoaded(); err != nil {
		return nil, err
	}
	if pos == "" {
		pos = AllPOS
	}
	var out []*Synset
	seen := make(map[string]bool)
	for _, form := range l.forms(normalizeWord(word), pos) {
		for _, s := range l.words[form] {
			if seen[s.ID] || !MatchPOS(s.ID, pos) {
				continue
			}
			seen[s.ID] = true
			out = append(out, s)
		}
	}
	return out, nil
}

// Lemma resolves a lemma key "<synset id>.<name>".
func (l *Lexicon) Lemma(key string) (*Lemma, error) {
	if err := l.EnsureLoaded(); err != nil {
		return nil, err
	}
	if lm, ok := l.lemmas[key]; ok {
		return lm, nil
	}
	return nil, lexerr.NotFound("resource.Lemma", key)
}

// Lemmas returns the lemmas named word (after reduction) whose synset tag is in pos.
func (l *Lexicon) Lemmas(word, pos string) ([]*Lemma, error) {
	synsets, err := l.Synsets(word, pos)
	if err != nil {
		return nil, err
	}
	forms := make(map[string]bool)
	for _, f := range l.forms(normalizeWord(word), AllPOS) {
		forms[f] = true
	}
	var out []*Lemma
	for _, s := range synsets {
		for _, lm := range s.Lemmas {
			if forms[normalizeWord(lm.Name)] {
				out = append(out, lm)
			}
		}
	}
	return out, nil
}

// AllSynsets yields synsets in file order. The sequence may be ranged over repeatedly.
func (l *Lexicon) AllSynsets() iter.Seq[*Synset] {
	return func(yield func(*Synset) bool) {
		if l.EnsureLoaded() != nil {
			return
		}
		for _, id := range l.order {
			if !yield(l.synsets[id]) {
				return
			}
		}
	}
}

// AllLemmaNames returns every indexed word-form.
func (l *Lexicon) AllLemmaNames() []string {
	if l.EnsureLoaded() != nil {
		return nil
	}
	out := make([]string, 0, len(l.words))
	for w := range l.words {
		out = append(out, w)
	}
	return out
}

// Related follows rel from s; dangling pointers are skipped.
func (l *Lexicon) Related(s *Synset, rel Relation) []*Synset {
	var out []*Synset
	for _, id := range s.relations[rel] {
		if t, ok := l.synsets[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// LemmaRelated follows rel from lemma lm; dangling pointers are skipped.
func (l *Lexicon) LemmaRelated(lm *Lemma, rel Relation) []*Lemma {
	var out []*Lemma
	for _, key := range lm.relations[rel] {
		if t, ok := l.lemmas[key]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Metadata returns version, license and citation strings of the loaded document.
func (l *Lexicon) Metadata() Metadata {
	if l.EnsureLoaded() != nil {
		return Metadata{}
	}
	return l.meta
}
