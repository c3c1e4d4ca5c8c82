/*
Package resource provides the English lexical resource the multilingual layer sits on.

The resource is keyed by raw synset identifiers of the form `<lemma>.<pos>.<nn>`
("dog.n.01"). Everything above it (canonical multilingual names, overlays) is
computed by other packages; the resource itself knows nothing about languages.

A [Lexicon] is loaded lazily from a JSON or msgpack document on the first call
to EnsureLoaded, or built in memory with [NewLexicon]:

	lex := resource.Open("data/en_lexicon.json")
	if err := lex.EnsureLoaded(); err != nil { ... }
	ss, _ := lex.Synsets("dogs", "n")
*/
package resource

import (
	"iter"
	"strings"
)

// Relation names a synset-level or lemma-level pointer.
type Relation string

const (
	Hypernym         Relation = "hypernym"
	Hyponym          Relation = "hyponym"
	InstanceHypernym Relation = "instance_hypernym"
	InstanceHyponym  Relation = "instance_hyponym"
	MemberHolonym    Relation = "member_holonym"
	MemberMeronym    Relation = "member_meronym"
	PartHolonym      Relation = "part_holonym"
	PartMeronym      Relation = "part_meronym"
	Similar          Relation = "similar"
	Also             Relation = "also"
	Antonym          Relation = "antonym"
	Pertainym        Relation = "pertainym"
	Derivation       Relation = "derivation"
)

// inverses lists relations whose reverse edge is filled in at load time.
var inverses = map[Relation]Relation{
	Hypernym:         Hyponym,
	Hyponym:          Hypernym,
	InstanceHypernym: InstanceHyponym,
	InstanceHyponym:  InstanceHypernym,
	MemberHolonym:    MemberMeronym,
	MemberMeronym:    MemberHolonym,
	PartHolonym:      PartMeronym,
	PartMeronym:      PartHolonym,
	Similar:          Similar,
}

// AllPOS is the default part-of-speech filter: adjective, noun, adverb, satellite, verb.
const AllPOS = "anrsv"

// Synset is a resource-owned synonym set.
type Synset struct {
	// ID is the raw identifier, e.g. "dog.n.01".
	ID         string
	Definition string
	Examples   []string
	Lemmas     []*Lemma
	relations  map[Relation][]string
}

// POS returns the part-of-speech tag embedded in the raw identifier.
func (s *Synset) POS() string {
	return POSOf(s.ID)
}

// Pointers returns the raw ids s points to through rel.
func (s *Synset) Pointers(rel Relation) []string {
	return s.relations[rel]
}

// LemmaNames returns the bare lemma names in sense order.
func (s *Synset) LemmaNames() []string {
	out := make([]string, len(s.Lemmas))
	for i, l := range s.Lemmas {
		out[i] = l.Name
	}
	return out
}

// Lemma is a resource-owned (synset, word) pair.
type Lemma struct {
	Name      string
	Count     int
	synset    *Synset
	relations map[Relation][]string
}

// Synset returns the owning synset.
func (l *Lemma) Synset() *Synset {
	return l.synset
}

// Key returns "<synset id>.<name>".
func (l *Lemma) Key() string {
	return l.synset.ID + "." + l.Name
}

// Pointers returns the lemma keys l points to through rel.
func (l *Lemma) Pointers(rel Relation) []string {
	return l.relations[rel]
}

// Metadata describes the resource build.
type Metadata struct {
	Version  string
	License  string
	Citation string
}

// Resource is the capability set the multilingual layer consumes.
type Resource interface {
	EnsureLoaded() error
	Synset(id string) (*Synset, error)
	Synsets(word, pos string) ([]*Synset, error)
	Lemma(key string) (*Lemma, error)
	Lemmas(word, pos string) ([]*Lemma, error)
	Morphy(word, pos string) (string, bool)
	AllSynsets() iter.Seq[*Synset]
	AllLemmaNames() []string
	Related(s *Synset, rel Relation) []*Synset
	LemmaRelated(l *Lemma, rel Relation) []*Lemma
	Metadata() Metadata
	PathSimilarity(a, b *Synset) (float64, bool)
	LCHSimilarity(a, b *Synset) (float64, bool)
	WUPSimilarity(a, b *Synset) (float64, bool)
}

// POSOf extracts the part-of-speech tag (second-to-last dotted field) from a raw id.
// Returns "" for ids with fewer than three fields.
func POSOf(id string) string {
	parts := strings.Split(id, ".")
	if len(parts) < 3 {
		return ""
	}
	return parts[len(parts)-2]
}

// MatchPOS reports whether the tag of id is listed in pos.
// The satellite tag "s" is accepted whenever "a" is requested, as WordNet does.
func MatchPOS(id, pos string) bool {
	p := POSOf(id)
	if p == "" {
		return false
	}
	if strings.Contains(pos, p) {
		return true
	}
	return p == "s" && strings.Contains(pos, "a")
}
