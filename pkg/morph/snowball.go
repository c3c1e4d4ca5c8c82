package morph

import (
	"strings"

	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/lexerr"
	"github.com/kljensen/snowball"
)

// Stemmer is a capability that reduces one token to its stem.
type Stemmer interface {
	Stem(token string) (string, error)
}

// SnowballStemmer stems with the snowball algorithm for one language.
type SnowballStemmer struct {
	language string
}

// NewSnowballStemmer fails with ErrBackendUnavailable if snowball has no
// algorithm for code.
func NewSnowballStemmer(code lang.Code) (*SnowballStemmer, error) {
	s := &SnowballStemmer{language: code.Name()}
	if _, err := s.Stem("test"); err != nil {
		return nil, lexerr.Unavailable("morph.snowball", code.String(), err)
	}
	return s, nil
}

func (s *SnowballStemmer) Stem(token string) (string, error) {
	return snowball.Stem(token, s.language, true)
}

// StemEngine adapts a Stemmer to Engine. Whitespace separated words are
// stemmed one by one and joined with Joiner. A failed stem keeps the word.
type StemEngine struct {
	label   string
	stemmer Stemmer
}

// NewStemEngine wraps st.
func NewStemEngine(label string, st Stemmer) *StemEngine {
	return &StemEngine{label: label, stemmer: st}
}

func (e *StemEngine) Name() string { return e.label }

func (e *StemEngine) Morphy(token string) string {
	words := strings.Fields(token)
	if len(words) == 0 {
		return token
	}
	for i, w := range words {
		if stem, err := e.stemmer.Stem(w); err == nil {
			words[i] = stem
		}
	}
	return strings.Join(words, Joiner)
}
