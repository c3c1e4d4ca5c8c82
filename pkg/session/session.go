// Package session holds the active language and the per-language artifacts
// built on first activation.
//
// A Cache is not safe for concurrent use. Callers that share one across
// goroutines must serialise Activate and every query made through it.
package session

import (
	"time"

	"github.com/bastiangx/pawn/internal/logger"
	"github.com/bastiangx/pawn/pkg/dictionary"
	"github.com/bastiangx/pawn/pkg/lang"
	"github.com/bastiangx/pawn/pkg/morph"
	"github.com/bastiangx/pawn/pkg/naming"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// Artifacts are everything built for one language.
type Artifacts struct {
	Lang       lang.Code
	Vocabulary *dictionary.Vocabulary
	Registry   *naming.Registry
	// Engine is nil for English, which defers to the resource's own morphology.
	Engine morph.Engine
	Mode   morph.Mode
}

// Source loads a language's vocabulary.
type Source interface {
	Load(code lang.Code) (*dictionary.Vocabulary, error)
}

// Cache remembers built artifacts for the process lifetime. Entries are never evicted.
type Cache struct {
	source  Source
	opts    morph.Options
	current lang.Code
	built   map[lang.Code]*Artifacts
	builds  map[lang.Code]int
	logger  *log.Logger
}

// New creates a cache with English active and pre-seeded.
func New(source Source, opts morph.Options) *Cache {
	c := &Cache{
		source:  source,
		opts:    opts,
		current: lang.English,
		built:   map[lang.Code]*Artifacts{},
		builds:  map[lang.Code]int{},
		logger:  logger.New("session"),
	}
	c.built[lang.English] = &Artifacts{
		Lang:       lang.English,
		Vocabulary: dictionary.NewVocabulary(lang.English, nil, nil),
		Registry:   naming.Empty(),
	}
	return c
}

// Current returns the active language.
func (c *Cache) Current() lang.Code {
	return c.current
}

// Artifacts returns the active language's artifacts.
func (c *Cache) Artifacts() *Artifacts {
	return c.built[c.current]
}

// Lookup returns the artifacts of code if it was ever activated.
func (c *Cache) Lookup(code lang.Code) (*Artifacts, bool) {
	art, ok := c.built[code]
	return art, ok
}

// Built reports whether code has artifacts.
func (c *Cache) Built(code lang.Code) bool {
	_, ok := c.built[code]
	return ok
}

// Languages returns every language with artifacts.
func (c *Cache) Languages() []lang.Code {
	out := make([]lang.Code, 0, len(c.built))
	for _, code := range lang.Supported {
		if _, ok := c.built[code]; ok {
			out = append(out, code)
		}
	}
	return out
}

// Builds returns how many vocabulary builds ran for code.
func (c *Cache) Builds(code lang.Code) int {
	return c.builds[code]
}

// Activate makes code the active language. Re-activating the active language
// with the same mode is a no-op. A first activation loads the vocabulary, runs
// the naming pass and selects a morphology engine; later activations reuse
// them, and only re-select the engine when mode differs from the one built.
// On failure the cache is left exactly as before the call.
func (c *Cache) Activate(code lang.Code, mode morph.Mode) error {
	if code.IsEnglish() {
		c.current = code
		return nil
	}
	art, ok := c.built[code]
	if ok && art.Mode == mode {
		if c.current != code {
			c.logger.Debugf("Switching to cached %s", code)
		}
		c.current = code
		return nil
	}
	if ok {
		engine, err := morph.Select(code, mode, c.opts)
		if err != nil {
			return err
		}
		c.logger.Debugf("Re-selected %s morphology: %s", code, engine.Name())
		c.built[code] = &Artifacts{
			Lang:       code,
			Vocabulary: art.Vocabulary,
			Registry:   art.Registry,
			Engine:     engine,
			Mode:       mode,
		}
		c.current = code
		return nil
	}

	next, err := c.build(code, mode)
	if err != nil {
		return err
	}
	c.built[code] = next
	c.builds[code]++
	c.current = code
	return nil
}

func (c *Cache) build(code lang.Code, mode morph.Mode) (*Artifacts, error) {
	start := time.Now()
	vocab, err := c.source.Load(code)
	if err != nil {
		return nil, err
	}
	reg, err := naming.Build(vocab)
	if err != nil {
		return nil, err
	}
	engine, err := morph.Select(code, mode, c.opts)
	if err != nil {
		return nil, err
	}
	c.logger.Infof("Built %s: %s words, %s synsets, %s morphology in %s",
		code, humanize.Comma(int64(len(vocab.Index))), humanize.Comma(int64(reg.Len())),
		engine.Name(), time.Since(start).Round(time.Millisecond))
	return &Artifacts{
		Lang:       code,
		Vocabulary: vocab,
		Registry:   reg,
		Engine:     engine,
		Mode:       mode,
	}, nil
}
