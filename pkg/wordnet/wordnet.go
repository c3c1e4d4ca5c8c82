/*
Package wordnet is the multilingual query surface.

A WordNet answers synset, lemma and morphology queries for the active
language. English queries go straight to the resource; other languages are
answered from the vocabulary, the canonical name registry and the morphology
engine built by the session cache, and their results are resource synsets
carrying a language specific display name.

	wn := wordnet.New(resource.Open(lexiconPath), session.New(dictionary.NewLoader(dataDir), morph.Options{}))
	if err := wn.SetLanguage("fr", "auto"); err != nil { ... }
	synsets, _ := wn.Synsets("chiens", "n")

A WordNet is not safe for concurrent use.
*/
package wordnet

import (
	"iter"
	"strings"
	"unicode"

	"github.com/bastiangx/pawn/pkg/dictionary"
	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/lexerr"
	"github.com/bastiangx/pawn/pkg/morph"
	"github.com/bastiangx/pawn/pkg/resource"
	"github.com/bastiangx/pawn/pkg/session"
	"github.com/bastiangx/pawn/pkg/suggest"
	"github.com/charmbracelet/log"
)

// RawPrefix marks a synset name as a raw resource id. It is the display name of
// synsets that have no canonical name in the active language.
const RawPrefix = "DUMMY~"

// WordNet dispatches queries to the resource or the active language's artifacts.
type WordNet struct {
	res      resource.Resource
	sessions *session.Cache
	// overlays is keyed by raw synset id.
	overlays   map[string]*overlay
	lemmas     map[lemmaKey]*Lemma
	completers map[lang.Code]suggest.ICompleter
}

// New creates a facade with English active.
func New(res resource.Resource, sessions *session.Cache) *WordNet {
	return &WordNet{
		res:        res,
		sessions:   sessions,
		overlays:   map[string]*overlay{},
		lemmas:     map[lemmaKey]*Lemma{},
		completers: map[lang.Code]suggest.ICompleter{},
	}
}

// Resource returns the underlying English resource.
func (wn *WordNet) Resource() resource.Resource {
	return wn.res
}

// SetLanguage activates a language by code or alias with the named analyser mode.
func (wn *WordNet) SetLanguage(code, analyzer string) error {
	c, err := lang.Parse(code)
	if err != nil {
		return err
	}
	mode, err := morph.ParseMode(analyzer)
	if err != nil {
		return err
	}
	return wn.sessions.Activate(c, mode)
}

// Language returns the active language.
func (wn *WordNet) Language() lang.Code {
	return wn.sessions.Current()
}

// Analyzer returns the name of the active morphology engine, "resource" for English.
func (wn *WordNet) Analyzer() string {
	if e := wn.sessions.Artifacts().Engine; e != nil {
		return e.Name()
	}
	return "resource"
}

func (wn *WordNet) english() bool {
	return wn.sessions.Current().IsEnglish()
}

// EnsureLoaded loads the resource.
func (wn *WordNet) EnsureLoaded() error {
	return wn.res.EnsureLoaded()
}

// Morphy returns the dictionary form of token: the token itself when indexed,
// else the engine's root when that is indexed. Tokens with whitespace are never
// reduced outside English.
func (wn *WordNet) Morphy(token string) (string, bool) {
	if wn.english() {
		return wn.res.Morphy(token, resource.AllPOS)
	}
	art := wn.sessions.Artifacts()
	token = dictionary.NormalizeWord(token)
	if art.Vocabulary.Has(token) {
		return token, true
	}
	if token == "" || strings.ContainsFunc(token, unicode.IsSpace) {
		return "", false
	}
	root := art.Engine.Morphy(token)
	if art.Vocabulary.Has(root) {
		return root, true
	}
	return "", false
}

func normalizePOS(pos string) string {
	if pos == "" {
		return resource.AllPOS
	}
	return pos
}

// rawSynsets returns the raw ids of token's dictionary form filtered by pos.
func (wn *WordNet) rawSynsets(token, pos string) (string, []string) {
	form, ok := wn.Morphy(token)
	if !ok {
		return "", nil
	}
	var out []string
	for _, raw := range wn.sessions.Artifacts().Vocabulary.Synsets(form) {
		if resource.MatchPOS(raw, pos) {
			out = append(out, raw)
		}
	}
	return form, out
}

// Synsets returns the synsets of token whose part of speech is in pos ("" means all).
func (wn *WordNet) Synsets(token, pos string) ([]*Synset, error) {
	pos = normalizePOS(pos)
	if wn.english() {
		raws, err := wn.res.Synsets(token, pos)
		if err != nil {
			return nil, err
		}
		return wn.wrapAll(raws), nil
	}
	_, raws := wn.rawSynsets(token, pos)
	out := make([]*Synset, 0, len(raws))
	for _, raw := range raws {
		s, err := wn.res.Synset(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, wn.wrap(s))
	}
	return out, nil
}

// Synset resolves a synset name in the active language. Outside English the
// name is canonical, or RawPrefix followed by a raw id.
func (wn *WordNet) Synset(name string) (*Synset, error) {
	raw := name
	if !wn.english() {
		if after, ok := strings.CutPrefix(name, RawPrefix); ok {
			raw = after
		} else if r, ok := wn.sessions.Artifacts().Registry.Raw(name); ok {
			raw = r
		} else {
			return nil, lexerr.NotFound("wordnet.Synset", name)
		}
	}
	s, err := wn.res.Synset(raw)
	if err != nil {
		return nil, err
	}
	return wn.wrap(s), nil
}

// Lemma resolves a qualified lemma name "<synset name>.<word>". Word-forms may contain dots.
func (wn *WordNet) Lemma(qualified string) (*Lemma, error) {
	if wn.english() {
		rl, err := wn.res.Lemma(qualified)
		if err != nil {
			return nil, err
		}
		return wn.englishLemma(rl, wn.wrap(rl.Synset())), nil
	}
	name, word, ok := wn.sessions.Artifacts().Registry.Resolve(qualified)
	if !ok {
		return nil, lexerr.NotFound("wordnet.Lemma", qualified)
	}
	s, err := wn.Synset(name)
	if err != nil {
		return nil, err
	}
	return wn.lemma(wn.Language(), name, word, s), nil
}

// Lemmas returns the lemmas of token's dictionary form in every synset whose
// part of speech is in pos.
func (wn *WordNet) Lemmas(token, pos string) ([]*Lemma, error) {
	pos = normalizePOS(pos)
	if wn.english() {
		raws, err := wn.res.Lemmas(token, pos)
		if err != nil {
			return nil, err
		}
		out := make([]*Lemma, len(raws))
		for i, rl := range raws {
			out[i] = wn.englishLemma(rl, wn.wrap(rl.Synset()))
		}
		return out, nil
	}
	form, raws := wn.rawSynsets(token, pos)
	out := make([]*Lemma, 0, len(raws))
	for _, raw := range raws {
		rs, err := wn.res.Synset(raw)
		if err != nil {
			return nil, err
		}
		s := wn.wrap(rs)
		out = append(out, wn.lemma(wn.Language(), s.Name(), form, s))
	}
	return out, nil
}

// AllSynsets yields every synset of the active language. Outside English these
// are the synsets with a canonical name, in registry order. The sequence is
// finite and may be ranged over again.
func (wn *WordNet) AllSynsets() iter.Seq[*Synset] {
	if wn.english() {
		return func(yield func(*Synset) bool) {
			for s := range wn.res.AllSynsets() {
				if !yield(wn.wrap(s)) {
					return
				}
			}
		}
	}
	reg := wn.sessions.Artifacts().Registry
	return func(yield func(*Synset) bool) {
		for _, name := range reg.Names() {
			raw, _ := reg.Raw(name)
			s, err := wn.res.Synset(raw)
			if err != nil {
				log.Debugf("Skipping %s: %v", name, err)
				continue
			}
			if !yield(wn.wrap(s)) {
				return
			}
		}
	}
}

// AllLemmaNames returns every word-form of the active language.
func (wn *WordNet) AllLemmaNames() []string {
	if wn.english() {
		return wn.res.AllLemmaNames()
	}
	return wn.sessions.Artifacts().Vocabulary.Words()
}

// Words is AllLemmaNames.
func (wn *WordNet) Words() []string {
	return wn.AllLemmaNames()
}
