package wordnet

import (
	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/resource"
)

type lemmaKey struct {
	lang   lang.Code
	synset string
	word   string
}

// lemma returns the one Lemma for (code, synsetName, word), creating it on first use.
func (wn *WordNet) lemma(code lang.Code, synsetName, word string, s *Synset) *Lemma {
	key := lemmaKey{lang: code, synset: synsetName, word: word}
	if l, ok := wn.lemmas[key]; ok {
		return l
	}
	l := &Lemma{wn: wn, lang: code, synsetName: synsetName, word: word, synset: s}
	wn.lemmas[key] = l
	return l
}

func (wn *WordNet) englishLemma(rl *resource.Lemma, s *Synset) *Lemma {
	l := wn.lemma(lang.English, rl.Synset().ID, rl.Name, s)
	l.raw = rl
	return l
}

// Lemma is a (language, synset, word) triple. The facade hands out one value
// per triple, so lemmas compare equal by pointer.
type Lemma struct {
	wn         *WordNet
	lang       lang.Code
	synsetName string
	word       string
	synset     *Synset
	// raw is set for English lemmas only.
	raw *resource.Lemma
}

// Name returns the word-form.
func (l *Lemma) Name() string { return l.word }

// QualifiedName returns "<synset name>.<word>".
func (l *Lemma) QualifiedName() string { return l.synsetName + "." + l.word }

// Language returns the language the lemma was created in.
func (l *Lemma) Language() lang.Code { return l.lang }

func (l *Lemma) Synset() *Synset { return l.synset }

// Count returns the resource count in English. Elsewhere it is the number of
// synsets the word-form belongs to, an approximation of corpus frequency.
func (l *Lemma) Count() int {
	if l.raw != nil {
		return l.raw.Count
	}
	art, ok := l.wn.sessions.Lookup(l.lang)
	if !ok {
		return 0
	}
	return len(art.Vocabulary.Synsets(l.word))
}

// Related follows a lexical relation. Outside English every resource lemma of
// the underlying synset is followed and each target synset contributes all of
// its lemmas in the active language.
func (l *Lemma) Related(rel resource.Relation) []*Lemma {
	wn := l.wn
	if wn.english() && l.raw != nil {
		targets := wn.res.LemmaRelated(l.raw, rel)
		out := make([]*Lemma, len(targets))
		for i, t := range targets {
			out[i] = wn.englishLemma(t, wn.wrap(t.Synset()))
		}
		return out
	}
	var out []*Lemma
	seen := map[*Lemma]bool{}
	for _, source := range l.synset.raw.Lemmas {
		for _, t := range wn.res.LemmaRelated(source, rel) {
			for _, lm := range wn.wrap(t.Synset()).Lemmas() {
				if !seen[lm] {
					seen[lm] = true
					out = append(out, lm)
				}
			}
		}
	}
	return out
}

func (l *Lemma) Antonyms() []*Lemma { return l.Related(resource.Antonym) }

func (l *Lemma) Pertainyms() []*Lemma { return l.Related(resource.Pertainym) }

func (l *Lemma) String() string {
	return "Lemma('" + l.QualifiedName() + "')"
}
