package morph

// MinStem is the shortest stem the rule stripper leaves behind.
const MinStem = 2

// SuffixTable maps suffix length (in runes) to suffix -> replacement.
type SuffixTable map[int]map[string]string

// NewSuffixTable indexes rules by suffix length.
func NewSuffixTable(rules map[string]string) SuffixTable {
	t := SuffixTable{}
	for suffix, repl := range rules {
		n := len([]rune(suffix))
		if t[n] == nil {
			t[n] = map[string]string{}
		}
		t[n][suffix] = repl
	}
	return t
}

// MaxLen is the length of the longest suffix in the table.
func (t SuffixTable) MaxLen() int {
	m := 0
	for n := range t {
		if n > m {
			m = n
		}
	}
	return m
}

// FrenchSuffixes is the French inflection table.
func FrenchSuffixes() SuffixTable {
	rules := map[string]string{}
	for _, s := range []string{"ons", "ez", "ent", "ais", "ait", "ions", "iez", "aient", "ai", "ont", "eons", "é", "és", "ée"} {
		rules[s] = "er"
	}
	for _, s := range []string{"ssons", "ssez", "ssent"} {
		rules[s] = "ir"
	}
	for _, s := range []string{"s", "e", "es"} {
		rules[s] = ""
	}
	for _, c := range []string{"l", "n", "s"} {
		rules[c+c+"e"] = c
	}
	rules["eaux"] = "eau"
	return NewSuffixTable(rules)
}

// RuleStemmer strips the longest matching table suffix.
type RuleStemmer struct {
	label  string
	table  SuffixTable
	maxLen int
}

// NewRuleStemmer creates a stripper over table.
func NewRuleStemmer(label string, table SuffixTable) *RuleStemmer {
	return &RuleStemmer{label: label, table: table, maxLen: table.MaxLen()}
}

func (r *RuleStemmer) Name() string { return r.label }

// Morphy tries suffix lengths from min(longest rule, len(token)-MinStem) down to 1
// and rewrites on the first hit.
func (r *RuleStemmer) Morphy(token string) string {
	runes := []rune(token)
	longest := min(r.maxLen, len(runes)-MinStem)
	for n := longest; n >= 1; n-- {
		suffix := string(runes[len(runes)-n:])
		if repl, ok := r.table[n][suffix]; ok {
			return string(runes[:len(runes)-n]) + repl
		}
	}
	return token
}
