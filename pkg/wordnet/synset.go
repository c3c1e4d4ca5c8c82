package wordnet

import (
	"strings"

	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/resource"
)

// overlay is the display name of one raw synset as of the language it was last computed for.
type overlay struct {
	raw  string
	name string
	lang lang.Code
}

// touch recomputes ov when the active language changed since its last use.
func (wn *WordNet) touch(ov *overlay) {
	current := wn.sessions.Current()
	if ov.lang == current {
		return
	}
	ov.name = wn.displayName(ov.raw)
	ov.lang = current
}

func (wn *WordNet) displayName(raw string) string {
	if wn.english() {
		return raw
	}
	if name, ok := wn.sessions.Artifacts().Registry.Name(raw); ok {
		return name
	}
	return RawPrefix + raw
}

func (wn *WordNet) overlayFor(raw string) *overlay {
	ov, ok := wn.overlays[raw]
	if !ok {
		ov = &overlay{raw: raw}
		wn.overlays[raw] = ov
	}
	return ov
}

func (wn *WordNet) wrap(s *resource.Synset) *Synset {
	ov := wn.overlayFor(s.ID)
	wn.touch(ov)
	return &Synset{wn: wn, raw: s, ov: ov}
}

func (wn *WordNet) wrapAll(ss []*resource.Synset) []*Synset {
	out := make([]*Synset, len(ss))
	for i, s := range ss {
		out[i] = wn.wrap(s)
	}
	return out
}

// Synset is a resource synset seen through the active language. Relations are
// followed on the resource graph by raw id and the results re-labelled.
type Synset struct {
	wn  *WordNet
	raw *resource.Synset
	ov  *overlay
}

// Name returns the display name for the active language: the raw id in
// English, the canonical name elsewhere, or RawPrefix+id when none exists.
func (s *Synset) Name() string {
	s.wn.touch(s.ov)
	return s.ov.name
}

// ID returns the raw resource id.
func (s *Synset) ID() string { return s.raw.ID }

// Raw returns the resource synset.
func (s *Synset) Raw() *resource.Synset { return s.raw }

func (s *Synset) POS() string { return s.raw.POS() }

func (s *Synset) Definition() string { return s.raw.Definition }

func (s *Synset) Examples() []string { return s.raw.Examples }

// Lemmas returns the lemmas in the active language, highest ranked first.
func (s *Synset) Lemmas() []*Lemma {
	wn := s.wn
	if wn.english() {
		out := make([]*Lemma, len(s.raw.Lemmas))
		for i, rl := range s.raw.Lemmas {
			out[i] = wn.englishLemma(rl, s)
		}
		return out
	}
	name := s.Name()
	qualified, _ := wn.sessions.Artifacts().Registry.Lemmas(name)
	out := make([]*Lemma, len(qualified))
	for i, q := range qualified {
		out[i] = wn.lemma(wn.Language(), name, strings.TrimPrefix(q, name+"."), s)
	}
	return out
}

// LemmaNames returns bare lemma names in English and qualified names elsewhere.
func (s *Synset) LemmaNames() []string {
	if s.wn.english() {
		return s.raw.LemmaNames()
	}
	qualified, _ := s.wn.sessions.Artifacts().Registry.Lemmas(s.Name())
	return append([]string(nil), qualified...)
}

// Related follows rel on the resource graph.
func (s *Synset) Related(rel resource.Relation) []*Synset {
	return s.wn.wrapAll(s.wn.res.Related(s.raw, rel))
}

func (s *Synset) Hypernyms() []*Synset { return s.Related(resource.Hypernym) }

func (s *Synset) Hyponyms() []*Synset { return s.Related(resource.Hyponym) }

// Equal compares raw ids.
func (s *Synset) Equal(o *Synset) bool {
	return o != nil && s.raw.ID == o.raw.ID
}

// Less orders by display name.
func (s *Synset) Less(o *Synset) bool {
	return s.Name() < o.Name()
}

func (s *Synset) String() string {
	return "Synset('" + s.Name() + "')"
}
