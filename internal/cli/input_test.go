package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/pawn/pkg/dictionary"
	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/morph"
	"github.com/bastiangx/pawn/pkg/resource"
	"github.com/bastiangx/pawn/pkg/session"
	"github.com/bastiangx/pawn/pkg/wordnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string) (string, *wordnet.WordNet) {
	t.Helper()
	t.Setenv("PATH", t.TempDir())
	t.Setenv("TREETAGGER_HOME", "")
	data := filepath.Join("..", "..", "pkg", "wordnet", "testdata")
	lex := resource.Open(filepath.Join("..", "..", "pkg", "resource", "testdata", "lexicon.json"))
	wn := wordnet.New(lex, session.New(dictionary.NewLoader(data), morph.Options{DataDir: data}))

	var out bytes.Buffer
	require.NoError(t, NewInputHandler(wn, strings.NewReader(input), &out, 5).Start())
	return out.String(), wn
}

func TestLookupAndCommands(t *testing.T) {
	out, wn := run(t, strings.Join([]string{
		"dogs",
		":lang fr",
		"chiens",
		"ch*",
		":lemma bon.a.01.bon",
		":synset nothing.n.01",
		":pos x",
		":bogus",
		"",
	}, "\n"))

	assert.Equal(t, lang.French, wn.Language())
	assert.Contains(t, out, "dog.n.01")
	assert.Contains(t, out, "french")
	assert.Contains(t, out, "dictionary form: chien")
	assert.Contains(t, out, "chien.n.01.toutou")
	assert.Contains(t, out, "Found 2 suggestions for prefix 'ch'")
	assert.Contains(t, out, "mauvais.a.01.mauvais")
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "invalid part of speech")
	assert.Contains(t, out, "unknown command :bogus")
}

func TestQuitStopsReading(t *testing.T) {
	out, wn := run(t, ":lang fr\n:quit\n:lang en\n")
	assert.Equal(t, lang.French, wn.Language())
	assert.NotContains(t, out, "english")
}

func TestModeSwitch(t *testing.T) {
	out, wn := run(t, ":lang fr\n:mode snowball\n:morphy chiens\n:mode tagger\n")
	assert.Equal(t, "snowball", wn.Analyzer())
	assert.Contains(t, out, "chien")
	assert.Contains(t, out, "unavailable")
}
