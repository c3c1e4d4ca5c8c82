// Package naming mints canonical cross-language synset names from a vocabulary.
//
// A canonical name has the form <word>.<pos>.<NN>, where word is the highest
// ranked member of the synset, pos is taken from the raw id and NN starts at 01
// and is incremented on collision. Qualified lemma names are <canonical>.<word>.
package naming

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bastiangx/pawn/pkg/dictionary"
	"github.com/bastiangx/pawn/pkg/lexerr"
	"github.com/bastiangx/pawn/pkg/resource"
)

// MaxIndex is the largest collision suffix a base name may take.
const MaxIndex = 99

// Registry is the bijection between canonical names and raw synset ids, plus
// the ordered qualified lemma list of every canonical name. Read-only after Build.
type Registry struct {
	toRaw  map[string]string
	toName map[string]string
	lemmas map[string][]string
	names  []string
}

// Empty returns a registry with no entries.
func Empty() *Registry {
	return &Registry{
		toRaw:  map[string]string{},
		toName: map[string]string{},
		lemmas: map[string][]string{},
	}
}

// Build runs the naming pass over v. Synsets are processed in ascending raw id
// order so identical inputs always yield identical names.
func Build(v *dictionary.Vocabulary) (*Registry, error) {
	r := Empty()
	members := invert(v.Index)

	raws := make([]string, 0, len(members))
	for raw := range members {
		raws = append(raws, raw)
	}
	sort.Strings(raws)

	for _, raw := range raws {
		words := rank(members[raw], v)
		name, err := r.claim(words[0], resource.POSOf(raw))
		if err != nil {
			return nil, err
		}
		r.toRaw[name] = raw
		r.toName[raw] = name
		r.names = append(r.names, name)

		qualified := make([]string, len(words))
		for i, w := range words {
			qualified[i] = name + "." + w
		}
		r.lemmas[name] = qualified
	}
	return r, nil
}

// invert turns word -> raw ids into raw id -> set of words.
func invert(index map[string][]string) map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{})
	for word, raws := range index {
		for _, raw := range raws {
			set, ok := out[raw]
			if !ok {
				set = make(map[string]struct{})
				out[raw] = set
			}
			set[word] = struct{}{}
		}
	}
	return out
}

// rank orders words by descending frequency with lexicographic ties, or purely
// lexicographically when the vocabulary carries no frequencies.
func rank(set map[string]struct{}, v *dictionary.Vocabulary) []string {
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	useFreq := v.HasFrequencies()
	sort.Slice(words, func(i, j int) bool {
		if useFreq {
			fi, fj := v.Count(words[i]), v.Count(words[j])
			if fi != fj {
				return fi > fj
			}
		}
		return words[i] < words[j]
	})
	return words
}

func (r *Registry) claim(word, pos string) (string, error) {
	for i := 1; i <= MaxIndex; i++ {
		name := fmt.Sprintf("%s.%s.%02d", word, pos, i)
		if _, taken := r.toRaw[name]; !taken {
			return name, nil
		}
	}
	return "", &lexerr.Error{
		Kind:    lexerr.ErrLimitExceeded,
		Op:      "naming.Build",
		Subject: fmt.Sprintf("%s.%s", word, pos),
	}
}

// Raw returns the raw synset id behind a canonical name.
func (r *Registry) Raw(name string) (string, bool) {
	raw, ok := r.toRaw[name]
	return raw, ok
}

// Name returns the canonical name of a raw synset id.
func (r *Registry) Name(raw string) (string, bool) {
	name, ok := r.toName[raw]
	return name, ok
}

// Lemmas returns the qualified lemma names of a canonical synset name, highest ranked first.
func (r *Registry) Lemmas(name string) ([]string, bool) {
	l, ok := r.lemmas[name]
	return l, ok
}

// HasLemma reports whether word is listed under the canonical synset name.
func (r *Registry) HasLemma(name, word string) bool {
	want := name + "." + word
	for _, q := range r.lemmas[name] {
		if q == want {
			return true
		}
	}
	return false
}

// Names returns canonical names in build order (ascending raw id).
func (r *Registry) Names() []string {
	return r.names
}

// Len is the number of registered synsets.
func (r *Registry) Len() int {
	return len(r.names)
}

// SplitQualified splits qualified at its n-th dot. ok is false when there are
// fewer than n dots or nothing follows the split.
func SplitQualified(qualified string, n int) (prefix, rest string, ok bool) {
	idx := 0
	for i := 0; i < n; i++ {
		next := strings.IndexByte(qualified[idx:], '.')
		if next < 0 {
			return "", "", false
		}
		idx += next + 1
	}
	if idx == 0 || idx >= len(qualified) {
		return "", "", false
	}
	return qualified[:idx-1], qualified[idx:], true
}

// Resolve parses a qualified lemma name by trying progressively longer prefixes
// as the synset name until one is registered and the rest is one of its lemmas.
// Word-forms and synset names may both contain dots.
func (r *Registry) Resolve(qualified string) (name, word string, ok bool) {
	for n := 1; ; n++ {
		name, word, ok = SplitQualified(qualified, n)
		if !ok {
			return "", "", false
		}
		if _, known := r.lemmas[name]; known && r.HasLemma(name, word) {
			return name, word, true
		}
	}
}
