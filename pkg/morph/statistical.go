package morph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Threshold is the confidence a normal form needs to be accepted early.
const Threshold = 0.5

// LowConfidenceMethods are analyser units whose parses are guesses, not dictionary matches.
var LowConfidenceMethods = map[string]bool{
	"FakeDictionary":          true,
	"HyphenatedWordsAnalyzer": true,
	"PunctuationAnalyzer":     true,
	"UnknAnalyzer":            true,
	"UnknownSuffixAnalyzer":   true,
}

// Parse is one candidate analysis of a token.
type Parse struct {
	NormalForm string
	Score      float64
	// Methods names every analyser unit that contributed to the parse.
	Methods []string
}

func (p Parse) lowConfidence() bool {
	for _, m := range p.Methods {
		if LowConfidenceMethods[strings.Trim(m, "<>")] {
			return true
		}
	}
	return false
}

// Analyzer returns candidate parses of a token, best first.
type Analyzer interface {
	Parse(token string) []Parse
}

// Disambiguator picks one normal form out of an analyser's parses.
type Disambiguator struct {
	label    string
	analyzer Analyzer
}

// NewDisambiguator creates a statistical engine over a.
func NewDisambiguator(label string, a Analyzer) *Disambiguator {
	return &Disambiguator{label: label, analyzer: a}
}

func (d *Disambiguator) Name() string { return d.label }

// Morphy returns the first parse scoring Threshold on its own, else the first
// normal form whose accumulated score reaches it, else the best accumulated form.
func (d *Disambiguator) Morphy(token string) string {
	scores := map[string]float64{}
	var order []string
	for _, p := range d.analyzer.Parse(token) {
		if p.lowConfidence() {
			continue
		}
		if p.Score >= Threshold {
			return p.NormalForm
		}
		if _, ok := scores[p.NormalForm]; !ok {
			order = append(order, p.NormalForm)
		}
		scores[p.NormalForm] += p.Score
		if scores[p.NormalForm] >= Threshold {
			return p.NormalForm
		}
	}
	if len(order) == 0 {
		return token
	}
	best := order[0]
	for _, form := range order[1:] {
		if scores[form] > scores[best] {
			best = form
		}
	}
	return best
}

// TableAnalyzer serves parses from a precomputed table.
type TableAnalyzer struct {
	parses map[string][]Parse
}

// NewTableAnalyzer wraps an in-memory table.
func NewTableAnalyzer(parses map[string][]Parse) *TableAnalyzer {
	if parses == nil {
		parses = map[string][]Parse{}
	}
	return &TableAnalyzer{parses: parses}
}

func (t *TableAnalyzer) Parse(token string) []Parse {
	return t.parses[strings.ToLower(token)]
}

// Len is the number of tokens with at least one parse.
func (t *TableAnalyzer) Len() int {
	return len(t.parses)
}

// LoadTableAnalyzer reads a tab separated parse table:
//
//	token <TAB> normal form <TAB> score <TAB> method,method,...
//
// Rows for one token keep their file order. A missing file yields an empty analyzer.
func LoadTableAnalyzer(path string) (*TableAnalyzer, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("No parse table at %s", path)
			return NewTableAnalyzer(nil), nil
		}
		return nil, err
	}
	defer file.Close()
	return ReadTableAnalyzer(file)
}

// ReadTableAnalyzer parses the LoadTableAnalyzer format from r.
func ReadTableAnalyzer(r io.Reader) (*TableAnalyzer, error) {
	parses := map[string][]Parse{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: expected at least 3 tab separated fields, got %d", lineNo, len(fields))
		}
		score, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid score %q: %w", lineNo, fields[2], err)
		}
		p := Parse{NormalForm: fields[1], Score: score}
		if len(fields) > 3 && fields[3] != "" {
			p.Methods = strings.Split(fields[3], ",")
		}
		token := strings.ToLower(fields[0])
		parses[token] = append(parses[token], p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewTableAnalyzer(parses), nil
}
