package morph

import (
	"errors"
	"strings"
	"testing"

	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/lexerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleStemmerLongestFirst(t *testing.T) {
	table := NewSuffixTable(map[string]string{"s": "", "es": "", "e": ""})
	r := NewRuleStemmer("rules", table)
	assert.Equal(t, "chien", r.Morphy("chiens"))
	assert.Equal(t, "pomm", r.Morphy("pommes"))
	assert.Equal(t, "chat", r.Morphy("chat"))
	// stem never drops below MinStem runes
	assert.Equal(t, "es", r.Morphy("es"))
	assert.Equal(t, "", r.Morphy(""))
}

func TestFrenchSuffixes(t *testing.T) {
	r := NewRuleStemmer("rules", FrenchSuffixes())
	tests := []struct {
		in, want string
	}{
		{"chiens", "chien"},
		{"mangeons", "manger"},
		{"parlez", "parler"},
		{"chapeaux", "chapeau"},
		{"belle", "bel"},
		{"aimée", "aimer"},
		{"parlaient", "parler"},
		{"table", "tabl"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Morphy(tt.in), tt.in)
	}
	assert.Equal(t, 5, FrenchSuffixes().MaxLen())
}

func TestCompound(t *testing.T) {
	e := Compound(NewRuleStemmer("rules", FrenchSuffixes()))
	assert.Equal(t, "pomm_de_terr", e.Morphy("pommes_de_terre"))
	assert.Equal(t, "chien", e.Morphy("chiens"))

	var seen []string
	spy := Compound(Func{Label: "spy", Fn: func(s string) string {
		seen = append(seen, s)
		return strings.ToUpper(s)
	}})
	assert.Equal(t, "A_B__C", spy.Morphy("a_b__c"))
	assert.Equal(t, []string{"a", "b", "", "c"}, seen)
}

type fakeAnalyzer map[string][]Parse

func (f fakeAnalyzer) Parse(token string) []Parse { return f[token] }

func TestDisambiguator(t *testing.T) {
	a := fakeAnalyzer{
		"стали": {
			{NormalForm: "стать", Score: 0.6, Methods: []string{"DictionaryAnalyzer"}},
			{NormalForm: "сталь", Score: 0.4, Methods: []string{"DictionaryAnalyzer"}},
		},
		"accum": {
			{NormalForm: "x", Score: 0.3},
			{NormalForm: "y", Score: 0.1},
			{NormalForm: "x", Score: 0.25},
		},
		"guess": {
			{NormalForm: "fake", Score: 0.9, Methods: []string{"<UnknAnalyzer>"}},
			{NormalForm: "a", Score: 0.2},
			{NormalForm: "b", Score: 0.3},
			{NormalForm: "a", Score: 0.05},
		},
		"only-guesses": {
			{NormalForm: "fake", Score: 0.9, Methods: []string{"DictionaryAnalyzer", "FakeDictionary"}},
		},
	}
	d := NewDisambiguator("statistical", a)

	assert.Equal(t, "стать", d.Morphy("стали"))
	assert.Equal(t, "x", d.Morphy("accum"))
	// no form reaches the threshold: best accumulated wins
	assert.Equal(t, "b", d.Morphy("guess"))
	assert.Equal(t, "only-guesses", d.Morphy("only-guesses"))
	assert.Equal(t, "nothing", d.Morphy("nothing"))
}

func TestReadTableAnalyzer(t *testing.T) {
	src := "# token\tnormal\tscore\tmethods\n" +
		"стали\tстать\t0.6\tDictionaryAnalyzer\n" +
		"стали\tсталь\t0.4\n\n"
	a, err := ReadTableAnalyzer(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, a.Len())
	parses := a.Parse("Стали")
	require.Len(t, parses, 2)
	assert.Equal(t, []string{"DictionaryAnalyzer"}, parses[0].Methods)
	assert.Nil(t, parses[1].Methods)

	_, err = ReadTableAnalyzer(strings.NewReader("a\tb\n"))
	assert.Error(t, err)
	_, err = ReadTableAnalyzer(strings.NewReader("a\tb\tx\n"))
	assert.Error(t, err)
}

func TestLoadTableAnalyzerMissing(t *testing.T) {
	a, err := LoadTableAnalyzer(t.TempDir() + "/ru_morph.tsv")
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())
}

func TestParseTags(t *testing.T) {
	tags := ParseTags("Les\tDET:ART\tle\nchiens\tNOM\tchien\nbad line\n")
	require.Len(t, tags, 2)
	assert.Equal(t, Tag{Word: "chiens", POS: "NOM", Lemma: "chien"}, tags[1])
}

type fakeTagger struct {
	out []Tag
	err error
}

func (f fakeTagger) Tag(string) ([]Tag, error) { return f.out, f.err }

func TestTagEngine(t *testing.T) {
	e := NewTagEngine("treetagger", fakeTagger{out: []Tag{
		{Word: "Pommes", Lemma: "Pomme"},
		{Word: "de", Lemma: "de"},
		{Word: "zorg", Lemma: "<unknown>"},
		{Word: "été", Lemma: "être|été"},
	}})
	assert.Equal(t, "pomme_de_zorg_être", e.Morphy("pommes de zorg été"))

	failing := NewTagEngine("treetagger", fakeTagger{err: errors.New("boom")})
	assert.Equal(t, "chiens", failing.Morphy("chiens"))
}

func TestSnowball(t *testing.T) {
	st, err := NewSnowballStemmer(lang.French)
	require.NoError(t, err)
	e := NewStemEngine("snowball", st)
	assert.Equal(t, "chien", e.Morphy("chiens"))
	assert.Equal(t, "", e.Morphy(""))
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"":           ModeNative,
		"auto":       ModeAuto,
		"Rules":      ModeNative,
		"stemmer":    ModeSnowball,
		"tagger":     ModeTreeTagger,
		"treetagger": ModeTreeTagger,
	}
	for in, want := range tests {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("spacy")
	assert.True(t, errors.Is(err, lexerr.ErrConfiguration))
}

func noTreeTagger(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	t.Setenv("TREETAGGER_HOME", "")
}

func TestSelectAutoFallsBack(t *testing.T) {
	noTreeTagger(t)

	e, err := Select(lang.French, ModeAuto, Options{CacheSize: 16})
	require.NoError(t, err)
	assert.Equal(t, "rules", e.Name())
	assert.IsType(t, &RuleStemmer{}, Base(e))
	assert.Equal(t, "chien", e.Morphy("chiens"))
	assert.Equal(t, "pomm_de_terr", e.Morphy("pommes_de_terre"))

	e, err = Select(lang.Russian, ModeAuto, Options{DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "statistical", e.Name())
}

func TestSelectAutoPrefersTagger(t *testing.T) {
	e, err := Select(lang.French, ModeAuto, Options{Tagger: fakeTagger{out: []Tag{{Word: "chiens", Lemma: "chien"}}}})
	require.NoError(t, err)
	assert.Equal(t, "treetagger", e.Name())
	assert.Equal(t, "chien", e.Morphy("chiens"))
}

func TestSelectExplicit(t *testing.T) {
	noTreeTagger(t)

	_, err := Select(lang.French, ModeTreeTagger, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, lexerr.ErrBackendUnavailable))

	_, err = Select(lang.English, ModeNative, Options{})
	assert.True(t, errors.Is(err, lexerr.ErrConfiguration))

	_, err = Select(lang.French, Mode("spacy"), Options{})
	assert.True(t, errors.Is(err, lexerr.ErrConfiguration))

	e, err := Select(lang.French, ModeSnowball, Options{})
	require.NoError(t, err)
	assert.Equal(t, "snowball", e.Name())
}

func TestSelectRussianWithAnalyzer(t *testing.T) {
	a := fakeAnalyzer{"стали": {{NormalForm: "стать", Score: 0.6}}}
	e, err := Select(lang.Russian, ModeNative, Options{Analyzer: a})
	require.NoError(t, err)
	assert.Equal(t, "стать", e.Morphy("стали"))
}

func TestMemoize(t *testing.T) {
	calls := 0
	e := Memoize(Func{Label: "count", Fn: func(s string) string {
		calls++
		return s + "!"
	}}, 2)
	assert.Equal(t, "a!", e.Morphy("a"))
	assert.Equal(t, "a!", e.Morphy("a"))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "count", e.Name())

	plain := Func{Label: "plain", Fn: strings.ToLower}
	assert.IsType(t, Func{}, Memoize(plain, 0))
}
