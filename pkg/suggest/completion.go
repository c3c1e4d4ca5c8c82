package suggest

import (
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Suggestion is one completion candidate.
type Suggestion struct {
	Word      string `msgpack:"w" json:"word"`
	Frequency int    `msgpack:"f" json:"frequency"`
}

// Completer is a frequency-ranked prefix index. Words are stored lowercased,
// with spaces folded to underscores the way multi-word lemmas are written.
type Completer struct {
	trie         *patricia.Trie
	totalWords   int
	maxFrequency int
	// MinFrequency drops candidates below this count.
	MinFrequency int
}

var _ ICompleter = (*Completer)(nil)

func NewCompleter() *Completer {
	return &Completer{trie: patricia.NewTrie()}
}

// FromCounts builds a completer over every word in counts.
func FromCounts(counts map[string]int) *Completer {
	c := NewCompleter()
	for w, n := range counts {
		c.AddWord(w, n)
	}
	return c
}

func foldKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}

// AddWord inserts word; re-adding a word keeps the larger frequency.
func (c *Completer) AddWord(word string, frequency int) {
	key := patricia.Prefix(foldKey(word))
	if prev := c.trie.Get(key); prev != nil {
		if old, ok := prev.(int); ok && old >= frequency {
			return
		}
		c.trie.Set(key, frequency)
	} else {
		c.trie.Insert(key, frequency)
		c.totalWords++
	}
	if frequency > c.maxFrequency {
		c.maxFrequency = frequency
	}
}

// Complete returns up to limit words extending prefix, most frequent first,
// ties in lexicographic order. limit <= 0 means no limit.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	lowerPrefix := foldKey(prefix)
	if lowerPrefix == "" {
		return []Suggestion{}
	}
	suggestions := SearchTrie(c.trie, lowerPrefix, CapitalPositions(prefix), c.MinFrequency)

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Frequency != suggestions[j].Frequency {
			return suggestions[i].Frequency > suggestions[j].Frequency
		}
		return suggestions[i].Word < suggestions[j].Word
	})
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

func (c *Completer) Stats() map[string]int {
	return map[string]int{
		"totalWords":   c.totalWords,
		"maxFrequency": c.maxFrequency,
	}
}
