package suggest

import (
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// SearchTrie collects every word below lowerPrefix with a frequency of at least
// minThreshold. The prefix itself is not returned.
func SearchTrie(trie *patricia.Trie, lowerPrefix string, capitalPositions []bool, minThreshold int) []Suggestion {
	if trie == nil {
		return []Suggestion{}
	}

	var suggestions []Suggestion
	err := trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if word == lowerPrefix {
			return nil
		}

		freq := 0
		switch v := item.(type) {
		case int:
			freq = v
		case int32:
			freq = int(v)
		case uint32:
			freq = int(v)
		default:
			log.Errorf("Unknown item type: %T for word %s", item, p)
		}
		if freq < minThreshold {
			return nil
		}

		suggestions = append(suggestions, Suggestion{
			Word:      ApplyCapitalization(word, capitalPositions),
			Frequency: freq,
		})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
	return suggestions
}

// ApplyCapitalization upper-cases the runes of word that were upper-case in the typed prefix.
func ApplyCapitalization(word string, capitalPositions []bool) string {
	if len(capitalPositions) == 0 {
		return word
	}
	runes := []rune(word)
	for i := 0; i < len(runes) && i < len(capitalPositions); i++ {
		if capitalPositions[i] {
			runes[i] = unicode.ToUpper(runes[i])
		}
	}
	return string(runes)
}

// CapitalPositions marks the upper-case runes of prefix.
func CapitalPositions(prefix string) []bool {
	var positions []bool
	seen := false
	for _, r := range prefix {
		up := unicode.IsUpper(r)
		seen = seen || up
		positions = append(positions, up)
	}
	if !seen {
		return nil
	}
	return positions
}
