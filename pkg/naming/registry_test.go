package naming

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bastiangx/pawn/pkg/dictionary"
	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/lexerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFrequencySort(t *testing.T) {
	v := dictionary.NewVocabulary(lang.French,
		map[string][]string{"dog": {"s1.n.01"}, "canine": {"s1.n.01"}},
		map[string]int{"dog": 100, "canine": 5})

	r, err := Build(v)
	require.NoError(t, err)

	name, ok := r.Name("s1.n.01")
	require.True(t, ok)
	assert.Equal(t, "dog.n.01", name)

	lemmas, ok := r.Lemmas("dog.n.01")
	require.True(t, ok)
	assert.Equal(t, []string{"dog.n.01.dog", "dog.n.01.canine"}, lemmas)
}

func TestBuildLexicographicWithoutFrequencies(t *testing.T) {
	v := dictionary.NewVocabulary(lang.French,
		map[string][]string{"dog": {"s1.n.01"}, "canine": {"s1.n.01"}}, nil)

	r, err := Build(v)
	require.NoError(t, err)
	lemmas, _ := r.Lemmas("canine.n.01")
	assert.Equal(t, []string{"canine.n.01.canine", "canine.n.01.dog"}, lemmas)
}

func TestBuildFrequencyTiesAndMissingCounts(t *testing.T) {
	v := dictionary.NewVocabulary(lang.French,
		map[string][]string{"b": {"x.n.01"}, "a": {"x.n.01"}, "c": {"x.n.01"}},
		map[string]int{"b": 3, "a": 3})

	r, err := Build(v)
	require.NoError(t, err)
	lemmas, _ := r.Lemmas("a.n.01")
	assert.Equal(t, []string{"a.n.01.a", "a.n.01.b", "a.n.01.c"}, lemmas)
}

func TestBuildCollision(t *testing.T) {
	v := dictionary.NewVocabulary(lang.French,
		map[string][]string{"dog": {"a.n.01", "b.n.01", "d.v.01"}, "chase": {"c.v.01"}}, nil)

	r, err := Build(v)
	require.NoError(t, err)

	first, _ := r.Name("a.n.01")
	second, _ := r.Name("b.n.01")
	assert.Equal(t, "dog.n.01", first)
	assert.Equal(t, "dog.n.02", second)

	// different pos does not collide
	verb, _ := r.Name("d.v.01")
	assert.Equal(t, "dog.v.01", verb)
}

func TestBuildBijection(t *testing.T) {
	index := map[string][]string{}
	for i := 0; i < 40; i++ {
		raw := fmt.Sprintf("raw%02d.n.01", i)
		index["word"] = append(index["word"], raw)
		index[fmt.Sprintf("w%d", i%7)] = append(index[fmt.Sprintf("w%d", i%7)], raw)
	}
	v := dictionary.NewVocabulary(lang.Russian, index, map[string]int{"word": 10})

	r, err := Build(v)
	require.NoError(t, err)
	assert.Equal(t, 40, r.Len())

	seen := map[string]bool{}
	for _, name := range r.Names() {
		raw, ok := r.Raw(name)
		require.True(t, ok)
		back, ok := r.Name(raw)
		require.True(t, ok)
		assert.Equal(t, name, back)
		assert.False(t, seen[raw], raw)
		seen[raw] = true

		lemmas, _ := r.Lemmas(name)
		for _, q := range lemmas {
			n, _, ok := r.Resolve(q)
			require.True(t, ok, q)
			assert.Equal(t, name, n)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	index := map[string][]string{
		"chien": {"dog.n.01", "hound.n.01", "pursue.v.01"},
		"chat":  {"cat.n.01"},
		"matou": {"cat.n.01", "tom.n.01"},
	}
	freq := map[string]int{"chien": 9, "chat": 4}

	a, err := Build(dictionary.NewVocabulary(lang.French, index, freq))
	require.NoError(t, err)
	b, err := Build(dictionary.NewVocabulary(lang.French, index, freq))
	require.NoError(t, err)
	assert.Equal(t, a.Names(), b.Names())
	for _, n := range a.Names() {
		ra, _ := a.Raw(n)
		rb, _ := b.Raw(n)
		assert.Equal(t, ra, rb)
	}
}

func TestBuildLimitExceeded(t *testing.T) {
	index := map[string][]string{}
	for i := 0; i <= MaxIndex; i++ {
		index["x"] = append(index["x"], fmt.Sprintf("r%03d.n.01", i))
	}
	_, err := Build(dictionary.NewVocabulary(lang.French, index, nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, lexerr.ErrLimitExceeded))
}

func TestResolveDottedWords(t *testing.T) {
	v := dictionary.NewVocabulary(lang.French,
		map[string][]string{"st._louis": {"city.n.01"}, "a.b": {"city.n.01"}},
		map[string]int{"st._louis": 2, "a.b": 1})
	r, err := Build(v)
	require.NoError(t, err)

	name, word, ok := r.Resolve("st._louis.n.01.a.b")
	require.True(t, ok)
	assert.Equal(t, "st._louis.n.01", name)
	assert.Equal(t, "a.b", word)

	_, _, ok = r.Resolve("st._louis.n.01.nope")
	assert.False(t, ok)
	_, _, ok = r.Resolve("nope")
	assert.False(t, ok)
}
