package wordnet

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/bastiangx/pawn/pkg/dictionary"
	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/lexerr"
	"github.com/bastiangx/pawn/pkg/morph"
	"github.com/bastiangx/pawn/pkg/resource"
	"github.com/bastiangx/pawn/pkg/session"
	"github.com/bastiangx/pawn/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWordNet(t *testing.T) *WordNet {
	t.Helper()
	t.Setenv("PATH", t.TempDir())
	t.Setenv("TREETAGGER_HOME", "")
	lex := resource.Open(filepath.Join("..", "resource", "testdata", "lexicon.json"))
	cache := session.New(dictionary.NewLoader("testdata"), morph.Options{DataDir: "testdata", CacheSize: 32})
	return New(lex, cache)
}

func french(t *testing.T) *WordNet {
	t.Helper()
	wn := newWordNet(t)
	require.NoError(t, wn.SetLanguage("french", "morphy"))
	return wn
}

func names(ss []*Synset) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.Name()
	}
	return out
}

func qualified(ls []*Lemma) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.QualifiedName()
	}
	return out
}

func TestEnglishDelegates(t *testing.T) {
	wn := newWordNet(t)
	assert.Equal(t, lang.English, wn.Language())
	assert.Equal(t, "resource", wn.Analyzer())

	got, err := wn.Synsets("dogs", "n")
	require.NoError(t, err)
	assert.Equal(t, []string{"dog.n.01"}, names(got))

	s, err := wn.Synset("dog.n.01")
	require.NoError(t, err)
	assert.Equal(t, []string{"dog", "domestic_dog"}, s.LemmaNames())

	l, err := wn.Lemma("dog.n.01.dog")
	require.NoError(t, err)
	assert.Equal(t, 42, l.Count())
	assert.Equal(t, 42, wn.LemmaCount(l))

	ants := mustLemma(t, wn, "good.a.01.good").Antonyms()
	assert.Equal(t, []string{"bad.a.01.bad"}, qualified(ants))

	form, ok := wn.Morphy("apples")
	assert.True(t, ok)
	assert.Equal(t, "apple", form)
	assert.Equal(t, "3.0-test", wn.Version())
	assert.Contains(t, wn.Citation(), "Miller")
	assert.NotEmpty(t, wn.License())
}

func mustLemma(t *testing.T, wn *WordNet, name string) *Lemma {
	t.Helper()
	l, err := wn.Lemma(name)
	require.NoError(t, err)
	return l
}

func TestSetLanguageErrors(t *testing.T) {
	wn := newWordNet(t)
	assert.True(t, errors.Is(wn.SetLanguage("klingon", ""), lexerr.ErrConfiguration))
	assert.True(t, errors.Is(wn.SetLanguage("fr", "spacy"), lexerr.ErrConfiguration))

	err := wn.SetLanguage("ru", "morphy")
	assert.True(t, errors.Is(err, lexerr.ErrResourceMissing))
	assert.Equal(t, lang.English, wn.Language())
}

func TestFrenchSynsets(t *testing.T) {
	wn := french(t)
	assert.Equal(t, lang.French, wn.Language())
	assert.Equal(t, "rules", wn.Analyzer())

	got, err := wn.Synsets("chiens", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"chien.n.01", "chien.v.01"}, names(got))
	assert.Equal(t, "dog.n.01", got[0].ID())

	got, err = wn.Synsets("chiens", "v")
	require.NoError(t, err)
	assert.Equal(t, []string{"chien.v.01"}, names(got))

	got, err = wn.Synsets("chien noir", "")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = wn.Synsets("zzz", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFrenchMorphy(t *testing.T) {
	wn := french(t)
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"chien", "chien", true},
		{"chiens", "chien", true},
		{"chats", "chat", true},
		{"toutous", "toutou", true},
		{"pomme_de_terre", "pomme_de_terre", true},
		{"pommes_de_terre", "", false},
		{"chien noir", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := wn.Morphy(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFrenchSynsetByName(t *testing.T) {
	wn := french(t)

	s, err := wn.Synset("chien.n.01")
	require.NoError(t, err)
	assert.Equal(t, "dog.n.01", s.ID())
	assert.Equal(t, "n", s.POS())
	assert.NotEmpty(t, s.Definition())
	assert.Equal(t, []string{"chien.n.01.chien", "chien.n.01.toutou"}, s.LemmaNames())
	assert.Equal(t, "Synset('chien.n.01')", s.String())

	_, err = wn.Synset("dog.n.01")
	assert.True(t, errors.Is(err, lexerr.ErrNotFound))

	raw, err := wn.Synset(RawPrefix + "entity.n.01")
	require.NoError(t, err)
	assert.Equal(t, "DUMMY~entity.n.01", raw.Name())
	assert.Empty(t, raw.Lemmas())

	animal, err := wn.Synset("animal.n.01")
	require.NoError(t, err)
	assert.Equal(t, []string{"DUMMY~entity.n.01"}, names(animal.Hypernyms()))
	assert.ElementsMatch(t, []string{"canidé.n.01", "chat.n.01"}, names(animal.Hyponyms()))
}

func TestOverlayFollowsLanguage(t *testing.T) {
	wn := french(t)
	s, err := wn.Synset("chien.n.01")
	require.NoError(t, err)
	assert.Equal(t, "chien.n.01", s.Name())
	assert.Equal(t, "chien.n.01", s.Name())

	require.NoError(t, wn.SetLanguage("en", ""))
	assert.Equal(t, "dog.n.01", s.Name())
	assert.Equal(t, []string{"dog", "domestic_dog"}, s.LemmaNames())

	require.NoError(t, wn.SetLanguage("fr", "morphy"))
	assert.Equal(t, "chien.n.01", s.Name())

	other, err := wn.Synsets("chiens", "n")
	require.NoError(t, err)
	assert.True(t, s.Equal(other[0]))
	assert.Same(t, s.ov, other[0].ov)

	chat, _ := wn.Synset("chat.n.01")
	assert.True(t, chat.Less(s))
}

func TestFrenchLemmas(t *testing.T) {
	wn := french(t)

	l := mustLemma(t, wn, "chien.n.01.toutou")
	assert.Equal(t, "toutou", l.Name())
	assert.Equal(t, "chien.n.01", l.Synset().Name())
	assert.Equal(t, lang.French, l.Language())
	assert.Equal(t, "Lemma('chien.n.01.toutou')", l.String())
	assert.Same(t, l, mustLemma(t, wn, "chien.n.01.toutou"))

	got, err := wn.Lemmas("toutous", "n")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Same(t, l, got[0])

	got, err = wn.Lemmas("chiens", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"chien.n.01.chien", "chien.v.01.chien"}, qualified(got))
	// synset membership count
	assert.Equal(t, 2, got[0].Count())
	assert.Equal(t, 1, l.Count())

	_, err = wn.Lemma("chien.n.01.chat")
	assert.True(t, errors.Is(err, lexerr.ErrNotFound))
	_, err = wn.Lemma("nothing")
	assert.True(t, errors.Is(err, lexerr.ErrNotFound))
}

func TestFrenchLexicalRelations(t *testing.T) {
	wn := french(t)
	assert.Equal(t, []string{"mauvais.a.01.mauvais"}, qualified(mustLemma(t, wn, "bon.a.01.bon").Antonyms()))
	assert.Equal(t, []string{"bon.a.01.bon"}, qualified(mustLemma(t, wn, "mauvais.a.01.mauvais").Antonyms()))
	assert.Equal(t, []string{"musique.n.01.musique"}, qualified(mustLemma(t, wn, "musical.a.01.musical").Pertainyms()))
	assert.Empty(t, mustLemma(t, wn, "chat.n.01.chat").Antonyms())
}

func TestFrenchRoundTrip(t *testing.T) {
	wn := french(t)
	count := 0
	for s := range wn.AllSynsets() {
		count++
		for _, q := range s.LemmaNames() {
			l, err := wn.Lemma(q)
			require.NoError(t, err, q)
			assert.Equal(t, s.Name(), l.Synset().Name())
			assert.Equal(t, q, l.QualifiedName())
		}
	}
	assert.Equal(t, 11, count)

	again := 0
	for range wn.AllSynsets() {
		again++
	}
	assert.Equal(t, count, again)

	assert.Len(t, wn.AllLemmaNames(), 12)
	assert.Equal(t, wn.AllLemmaNames(), wn.Words())
}

func TestSimilarityOnRawGraph(t *testing.T) {
	wn := french(t)
	dog, _ := wn.Synset("chien.n.01")
	cat, _ := wn.Synset("chat.n.01")
	p, ok := wn.PathSimilarity(dog, cat)
	require.True(t, ok)
	assert.InDelta(t, 0.25, p, 1e-9)

	w, ok := wn.WUPSimilarity(dog, cat)
	require.True(t, ok)
	assert.InDelta(t, 4.0/7, w, 1e-9)

	_, ok = wn.LCHSimilarity(dog, cat)
	assert.True(t, ok)
}

func TestComplete(t *testing.T) {
	wn := french(t)
	assert.Equal(t, []suggest.Suggestion{{Word: "chien", Frequency: 100}, {Word: "chat", Frequency: 50}},
		wn.Complete("ch", 10))
	assert.Equal(t, "pomme_de_terre", wn.Complete("pomme", 10)[0].Word)

	require.NoError(t, wn.SetLanguage("en", ""))
	got := wn.Complete("do", 10)
	require.Len(t, got, 2)
	assert.Equal(t, suggest.Suggestion{Word: "dog", Frequency: 45}, got[0])
}

func TestAutoFallbackServesVocabulary(t *testing.T) {
	wn := newWordNet(t)
	require.NoError(t, wn.SetLanguage("fr", "auto"))
	assert.Equal(t, "rules", wn.Analyzer())
	form, ok := wn.Morphy("chats")
	assert.True(t, ok)
	assert.Equal(t, "chat", form)
}
