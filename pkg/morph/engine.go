// Package morph reduces inflected tokens to dictionary root forms.
//
// Several strategies share the Engine contract: a rule-based suffix stripper
// (French), a statistical disambiguator over analyser parses (Russian), the
// snowball stemmer and an external TreeTagger process. Select picks one for a
// language and analyser mode and wraps it with compound handling and an
// optional memo cache.
package morph

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Joiner separates the words of a multi-word lemma.
const Joiner = "_"

// Engine maps a token to its root form. Tokens with no known root are returned unchanged.
type Engine interface {
	Morphy(token string) string
	Name() string
}

// Unwrapper is implemented by decorators around another Engine.
type Unwrapper interface {
	Unwrap() Engine
}

// Base strips every decorator from e.
func Base(e Engine) Engine {
	for {
		u, ok := e.(Unwrapper)
		if !ok {
			return e
		}
		e = u.Unwrap()
	}
}

// compound applies the wrapped engine to each Joiner-separated segment.
type compound struct {
	next Engine
}

// Compound wraps e so "pommes_de_terre" is processed as three tokens and rejoined.
func Compound(e Engine) Engine {
	return &compound{next: e}
}

func (c *compound) Morphy(token string) string {
	if !strings.Contains(token, Joiner) {
		return c.next.Morphy(token)
	}
	parts := strings.Split(token, Joiner)
	for i, p := range parts {
		parts[i] = c.next.Morphy(p)
	}
	return strings.Join(parts, Joiner)
}

func (c *compound) Name() string   { return c.next.Name() }
func (c *compound) Unwrap() Engine { return c.next }

type memo struct {
	next  Engine
	cache *lru.Cache[string, string]
}

// Memoize caches up to size results of e. A size <= 0 returns e unchanged.
func Memoize(e Engine, size int) Engine {
	if size <= 0 {
		return e
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return e
	}
	return &memo{next: e, cache: cache}
}

func (m *memo) Morphy(token string) string {
	if root, ok := m.cache.Get(token); ok {
		return root
	}
	root := m.next.Morphy(token)
	m.cache.Add(token, root)
	return root
}

func (m *memo) Name() string   { return m.next.Name() }
func (m *memo) Unwrap() Engine { return m.next }

// Func adapts a plain function to Engine.
type Func struct {
	Label string
	Fn    func(string) string
}

func (f Func) Morphy(token string) string { return f.Fn(token) }
func (f Func) Name() string               { return f.Label }
