/*
Package dictionary is the per-language vocabulary store.

For a language code it reads two sources from the data directory:

	<code>_data.json | <code>_data.msgpack   word -> [raw synset ids]   (required)
	<code>_vocab.txt                          "word count" lines         (optional)

A missing or unparsable word-synset source is fatal (lexerr.ErrResourceMissing).
A missing frequency file yields an empty frequency map.
*/
package dictionary

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/lexerr"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/unicode/norm"
)

// Vocabulary holds one language's word-synset index and word frequencies.
// It is read-only after Load returns.
type Vocabulary struct {
	Lang lang.Code
	// Index maps a word-form to the ordered, duplicate-free raw synset ids it belongs to.
	Index map[string][]string
	// Frequency maps a word-form to its usage count; may be empty.
	Frequency map[string]int
}

// NewVocabulary builds a Vocabulary from in-memory maps, normalising keys and
// dropping duplicate synset ids the same way Load does.
func NewVocabulary(code lang.Code, index map[string][]string, freq map[string]int) *Vocabulary {
	v := &Vocabulary{
		Lang:      code,
		Index:     make(map[string][]string, len(index)),
		Frequency: make(map[string]int, len(freq)),
	}
	for word, ids := range index {
		w := NormalizeWord(word)
		v.Index[w] = dedupe(append(v.Index[w], ids...))
	}
	for word, n := range freq {
		v.Frequency[NormalizeWord(word)] += n
	}
	return v
}

// Synsets returns the raw synset ids of word, nil if it is not indexed.
func (v *Vocabulary) Synsets(word string) []string {
	return v.Index[word]
}

// Has reports whether word is an indexed dictionary form.
func (v *Vocabulary) Has(word string) bool {
	_, ok := v.Index[word]
	return ok
}

// Count returns the frequency of word, 0 when unknown.
func (v *Vocabulary) Count(word string) int {
	return v.Frequency[word]
}

// HasFrequencies reports whether any frequency data was loaded.
func (v *Vocabulary) HasFrequencies() bool {
	return len(v.Frequency) > 0
}

// Words returns every indexed word-form, sorted.
func (v *Vocabulary) Words() []string {
	out := make([]string, 0, len(v.Index))
	for w := range v.Index {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// NormalizeWord puts a word-form in NFC so composed and decomposed accents index alike.
func NormalizeWord(w string) string {
	return norm.NFC.String(strings.TrimSpace(w))
}

// Loader reads vocabularies from a data directory.
type Loader struct {
	dirPath string
}

// NewLoader creates a loader rooted at dirPath.
func NewLoader(dirPath string) *Loader {
	return &Loader{dirPath: dirPath}
}

// Dir returns the data directory.
func (l *Loader) Dir() string {
	return l.dirPath
}

// Load reads both sources for code. It is a pure function of the directory contents.
func (l *Loader) Load(code lang.Code) (*Vocabulary, error) {
	index, src, err := l.loadSynsetSource(code)
	if err != nil {
		return nil, err
	}
	freq, err := l.loadFrequencies(code)
	if err != nil {
		return nil, err
	}
	v := NewVocabulary(code, index, freq)
	log.Debugf("Loaded %s vocabulary from %s: %s words, %s counts",
		code, src, humanize.Comma(int64(len(v.Index))), humanize.Comma(int64(len(v.Frequency))))
	return v, nil
}

func (l *Loader) loadSynsetSource(code lang.Code) (map[string][]string, string, error) {
	for _, path := range SynsetSourcePaths(l.dirPath, code) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		format, err := DetectFileFormat(path)
		if err != nil {
			return nil, path, lexerr.Missing("dictionary.Load", path, err)
		}
		if err := ValidateFileFormat(path, format); err != nil {
			return nil, path, lexerr.Missing("dictionary.Load", path, err)
		}
		index, err := readSynsetFile(path, format)
		if err != nil {
			return nil, path, lexerr.Missing("dictionary.Load", path, err)
		}
		return index, path, nil
	}
	return nil, "", lexerr.Missing("dictionary.Load", code.String(),
		fmt.Errorf("no word-synset source in %s", l.dirPath))
}

func readSynsetFile(path string, format FileFormat) (map[string][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	index := make(map[string][]string)
	reader := bufio.NewReader(file)
	switch format {
	case FormatMsgpack:
		err = msgpack.NewDecoder(reader).Decode(&index)
	case FormatJSON:
		err = json.NewDecoder(reader).Decode(&index)
	default:
		err = fmt.Errorf("format %v cannot hold a word-synset mapping", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return index, nil
}

func (l *Loader) loadFrequencies(code lang.Code) (map[string]int, error) {
	path := FrequencySourcePath(l.dirPath, code)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("No frequency file for %s at %s, sorting lemmas lexicographically", code, path)
			return map[string]int{}, nil
		}
		return nil, lexerr.Missing("dictionary.Load", path, err)
	}
	defer file.Close()
	return ParseFrequencies(file)
}

// ParseFrequencies reads "word count" lines. Blank lines are skipped, malformed
// lines are logged and skipped, and repeated words accumulate.
func ParseFrequencies(r io.Reader) (map[string]int, error) {
	freq := make(map[string]int)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	skipped := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			skipped++
			log.Debugf("Skipping malformed frequency line %d: %q", lineNo, sc.Text())
			continue
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			skipped++
			log.Debugf("Skipping frequency line %d with bad count %q", lineNo, fields[1])
			continue
		}
		freq[NormalizeWord(fields[0])] += n
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read frequencies: %w", err)
	}
	if skipped > 0 {
		log.Warnf("Skipped %d malformed frequency lines", skipped)
	}
	return freq, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
