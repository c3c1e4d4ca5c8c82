package morph

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/lexerr"
	"github.com/charmbracelet/log"
)

// unknownLemma is what TreeTagger prints for words missing from its lexicon.
const unknownLemma = "<unknown>"

// Tag is one line of tagger output.
type Tag struct {
	Word  string
	POS   string
	Lemma string
}

// Tagger is a capability that tags running text.
type Tagger interface {
	Tag(text string) ([]Tag, error)
}

// TreeTagger runs the TreeTagger wrapper script for a language.
type TreeTagger struct {
	command string
}

// NewTreeTagger locates tree-tagger-<language> under home/cmd, then home, then
// $TREETAGGER_HOME and $PATH. It fails with ErrBackendUnavailable when none exists.
func NewTreeTagger(code lang.Code, home string) (*TreeTagger, error) {
	script := "tree-tagger-" + code.Name()
	var candidates []string
	for _, dir := range []string{home, os.Getenv("TREETAGGER_HOME")} {
		if dir == "" {
			continue
		}
		candidates = append(candidates, filepath.Join(dir, "cmd", script), filepath.Join(dir, script))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return &TreeTagger{command: c}, nil
		}
	}
	path, err := exec.LookPath(script)
	if err != nil {
		return nil, lexerr.Unavailable("morph.treetagger", code.String(), err)
	}
	return &TreeTagger{command: path}, nil
}

// Tag feeds text on stdin, one word per line, and parses word/POS/lemma lines.
func (t *TreeTagger) Tag(text string) ([]Tag, error) {
	cmd := exec.Command(t.command)
	cmd.Stdin = strings.NewReader(strings.Join(strings.Fields(text), "\n") + "\n")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", t.command, err, strings.TrimSpace(stderr.String()))
	}
	return ParseTags(stdout.String()), nil
}

// ParseTags reads tab separated tagger output. Lines with fewer than three fields are ignored.
func ParseTags(out string) []Tag {
	var tags []Tag
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(fields) < 3 {
			continue
		}
		tags = append(tags, Tag{Word: fields[0], POS: fields[1], Lemma: fields[len(fields)-1]})
	}
	return tags
}

// TagEngine adapts a Tagger to Engine: the lemma of every tagged word,
// lowercased and joined with Joiner. Unknown lemmas keep the surface word.
type TagEngine struct {
	label  string
	tagger Tagger
}

// NewTagEngine wraps tg.
func NewTagEngine(label string, tg Tagger) *TagEngine {
	return &TagEngine{label: label, tagger: tg}
}

func (e *TagEngine) Name() string { return e.label }

func (e *TagEngine) Morphy(token string) string {
	if strings.TrimSpace(token) == "" {
		return token
	}
	tags, err := e.tagger.Tag(strings.ReplaceAll(token, Joiner, " "))
	if err != nil {
		log.Debugf("Tagger failed on %q: %v", token, err)
		return token
	}
	if len(tags) == 0 {
		return token
	}
	lemmas := make([]string, len(tags))
	for i, tg := range tags {
		lemma := tg.Lemma
		if lemma == unknownLemma || lemma == "" {
			lemma = tg.Word
		}
		// ambiguous lemmas are printed as a|b
		if bar := strings.IndexByte(lemma, '|'); bar > 0 {
			lemma = lemma[:bar]
		}
		lemmas[i] = strings.ToLower(lemma)
	}
	return strings.Join(lemmas, Joiner)
}
