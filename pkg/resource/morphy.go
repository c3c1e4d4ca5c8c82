package resource

import "strings"

// detachments are the WordNet suffix substitutions per part of speech, tried in order.
var detachments = map[string][][2]string{
	"n": {
		{"s", ""}, {"ses", "s"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	"v": {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	"a": {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
	"r": nil,
}

var posOrder = []string{"n", "v", "a", "r"}

// hasPOS reports whether form is indexed under tag p (satellites count as adjectives).
func (l *Lexicon) hasPOS(form, p string) bool {
	for _, s := range l.words[form] {
		if MatchPOS(s.ID, p) {
			return true
		}
	}
	return false
}

// forms returns the indexed base forms of word for every tag in pos, exact form first.
func (l *Lexicon) forms(word, pos string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(f string) {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	for _, p := range posOrder {
		if !strings.Contains(pos, p) && !(p == "a" && strings.Contains(pos, "s")) {
			continue
		}
		if l.hasPOS(word, p) {
			add(word)
		}
		for _, d := range detachments[p] {
			suffix, repl := d[0], d[1]
			if len(word) <= len(suffix) || !strings.HasSuffix(word, suffix) {
				continue
			}
			cand := strings.TrimSuffix(word, suffix) + repl
			if l.hasPOS(cand, p) {
				add(cand)
			}
		}
	}
	return out
}

// Morphy returns the first indexed base form of word under pos ("" means all tags).
func (l *Lexicon) Morphy(word, pos string) (string, bool) {
	if l.EnsureLoaded() != nil {
		return "", false
	}
	if pos == "" {
		pos = AllPOS
	}
	forms := l.forms(normalizeWord(word), pos)
	if len(forms) == 0 {
		return "", false
	}
	return forms[0], true
}
