package morph

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/lexerr"
	"github.com/charmbracelet/log"
)

// Mode names an analyser selection strategy.
type Mode string

const (
	ModeAuto       Mode = "auto"
	ModeNative     Mode = "morphy"
	ModeSnowball   Mode = "snowball"
	ModeTreeTagger Mode = "treetagger"
)

var modeAliases = map[string]Mode{
	"auto":       ModeAuto,
	"morphy":     ModeNative,
	"rules":      ModeNative,
	"native":     ModeNative,
	"snowball":   ModeSnowball,
	"stemmer":    ModeSnowball,
	"treetagger": ModeTreeTagger,
	"tagger":     ModeTreeTagger,
}

// ParseMode resolves a mode name or alias. The empty string means ModeNative.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeNative, nil
	}
	if m, ok := modeAliases[s]; ok {
		return m, nil
	}
	return "", lexerr.Configuration("morph.ParseMode", s)
}

// Options configures backend construction.
type Options struct {
	// DataDir holds per-language parse tables (<code>_morph.tsv).
	DataDir string
	// TreeTaggerHome is searched for tree-tagger-<language> before $PATH.
	TreeTaggerHome string
	// CacheSize bounds the memo cache; 0 disables it.
	CacheSize int
	// Analyzer overrides the table analyser of statistical engines.
	Analyzer Analyzer
	// Tagger overrides the TreeTagger process.
	Tagger Tagger
}

type constructor func(code lang.Code, opts Options) (Engine, error)

var constructors = map[Mode]constructor{
	ModeNative:     newNative,
	ModeSnowball:   newSnowball,
	ModeTreeTagger: newTreeTagger,
}

// autoOrder is tried in sequence by ModeAuto, most accurate first.
var autoOrder = []Mode{ModeTreeTagger, ModeNative}

// Select builds the engine for code under mode, wrapped with compound handling
// and the memo cache. ModeAuto falls back along autoOrder when a backend is
// unavailable; an explicit mode reports ErrBackendUnavailable instead.
func Select(code lang.Code, mode Mode, opts Options) (Engine, error) {
	var base Engine
	var err error
	if mode == ModeAuto {
		base, err = selectAuto(code, opts)
	} else {
		build, ok := constructors[mode]
		if !ok {
			return nil, lexerr.Configuration("morph.Select", string(mode))
		}
		base, err = build(code, opts)
	}
	if err != nil {
		return nil, err
	}
	log.Debugf("Morphology for %s: %s", code, base.Name())
	return Memoize(Compound(base), opts.CacheSize), nil
}

func selectAuto(code lang.Code, opts Options) (Engine, error) {
	var errs []error
	for _, mode := range autoOrder {
		e, err := constructors[mode](code, opts)
		if err == nil {
			return e, nil
		}
		log.Debugf("Morphology backend %s unavailable for %s: %v", mode, code, err)
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

func newNative(code lang.Code, opts Options) (Engine, error) {
	switch code {
	case lang.French:
		return NewRuleStemmer("rules", FrenchSuffixes()), nil
	case lang.Russian:
		a := opts.Analyzer
		if a == nil {
			table, err := LoadTableAnalyzer(filepath.Join(opts.DataDir, code.String()+"_morph.tsv"))
			if err != nil {
				return nil, lexerr.Unavailable("morph.native", code.String(), err)
			}
			a = table
		}
		return NewDisambiguator("statistical", a), nil
	}
	return nil, lexerr.Configuration("morph.native", code.String())
}

func newSnowball(code lang.Code, _ Options) (Engine, error) {
	st, err := NewSnowballStemmer(code)
	if err != nil {
		return nil, err
	}
	return NewStemEngine("snowball", st), nil
}

func newTreeTagger(code lang.Code, opts Options) (Engine, error) {
	if opts.Tagger != nil {
		return NewTagEngine("treetagger", opts.Tagger), nil
	}
	tt, err := NewTreeTagger(code, opts.TreeTaggerHome)
	if err != nil {
		return nil, err
	}
	return NewTagEngine("treetagger", tt), nil
}
