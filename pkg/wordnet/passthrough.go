package wordnet

import (
	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/suggest"
)

// Version returns the resource version.
func (wn *WordNet) Version() string { return wn.res.Metadata().Version }

// License returns the resource license text.
func (wn *WordNet) License() string { return wn.res.Metadata().License }

// Citation returns the resource citation.
func (wn *WordNet) Citation() string { return wn.res.Metadata().Citation }

// PathSimilarity scores the shortest hypernym path between a and b on the resource graph.
func (wn *WordNet) PathSimilarity(a, b *Synset) (float64, bool) {
	return wn.res.PathSimilarity(a.raw, b.raw)
}

// LCHSimilarity is the Leacock-Chodorow score of a and b.
func (wn *WordNet) LCHSimilarity(a, b *Synset) (float64, bool) {
	return wn.res.LCHSimilarity(a.raw, b.raw)
}

// WUPSimilarity is the Wu-Palmer score of a and b.
func (wn *WordNet) WUPSimilarity(a, b *Synset) (float64, bool) {
	return wn.res.WUPSimilarity(a.raw, b.raw)
}

// LemmaCount is l.Count().
func (wn *WordNet) LemmaCount(l *Lemma) int { return l.Count() }

// Complete returns up to limit word-forms of the active language starting with
// prefix, most frequent first. Without frequency data a word ranks by the
// number of synsets it belongs to.
func (wn *WordNet) Complete(prefix string, limit int) []suggest.Suggestion {
	return wn.completer(wn.Language()).Complete(prefix, limit)
}

func (wn *WordNet) completer(code lang.Code) suggest.ICompleter {
	if c, ok := wn.completers[code]; ok {
		return c
	}
	counts := map[string]int{}
	if code.IsEnglish() {
		for s := range wn.res.AllSynsets() {
			for _, l := range s.Lemmas {
				counts[l.Name] += l.Count
			}
		}
	} else {
		vocab := wn.sessions.Artifacts().Vocabulary
		for word, raws := range vocab.Index {
			if vocab.HasFrequencies() {
				counts[word] = vocab.Count(word)
			} else {
				counts[word] = len(raws)
			}
		}
	}
	c := suggest.FromCounts(counts)
	wn.completers[code] = c
	return c
}
