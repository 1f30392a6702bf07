// Package dictionary stores words with optional definitions in a
// prefix tree keyed by runes, and exposes the lookups the front ends
// need: membership, definitions, prefix completion, and set-theoretic
// combination of whole dictionaries.
package dictionary

import (
	"fmt"

	"github.com/jakobknauer/gotrie/pkg/trie"
)

// LowercaseLatin is the default alphabet for plain English word lists.
const LowercaseLatin = "abcdefghijklmnopqrstuvwxyz"

// Entry is a single word with its definition. The definition may be
// empty, plain word lists carry no definitions.
type Entry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// Dictionary is a set of words with definitions. The alphabet fixes
// the order of Entries and Complete; words may still contain runes
// outside of it.
type Dictionary struct {
	tree *trie.Trie[rune, string]
}

// New returns an empty dictionary ordering its words by alphabet.
func New(alphabet string) *Dictionary {
	return &Dictionary{tree: trie.New[rune, string]([]rune(alphabet))}
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return d.tree.Len()
}

// Add stores word with its definition, replacing any previous one.
func (d *Dictionary) Add(word, definition string) {
	d.tree.Insert([]rune(word), definition)
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	return d.tree.Contains([]rune(word))
}

// Define returns the definition stored for word. The error wraps
// trie.ErrKeyNotFound when the word is absent.
func (d *Dictionary) Define(word string) (string, error) {
	definition, err := d.tree.Lookup([]rune(word))
	if err != nil {
		return "", fmt.Errorf("define %q: %w", word, err)
	}
	return definition, nil
}

// Forget removes word. The error wraps trie.ErrKeyNotFound when the
// word is absent.
func (d *Dictionary) Forget(word string) error {
	if err := d.tree.Remove([]rune(word)); err != nil {
		return fmt.Errorf("forget %q: %w", word, err)
	}
	return nil
}

// Complete returns the entries whose words start with prefix, in
// alphabet order, with the prefix joined back onto each word. A limit
// of zero or less returns all matches; the traversal stops as soon as
// the limit is reached.
func (d *Dictionary) Complete(prefix string, limit int) []Entry {
	entries := []Entry{}
	for suffix, definition := range d.tree.Items([]rune(prefix)) {
		entries = append(entries, Entry{Word: prefix + string(suffix), Definition: definition})
		if limit > 0 && len(entries) == limit {
			break
		}
	}
	return entries
}

// Entries returns all entries in alphabet order.
func (d *Dictionary) Entries() []Entry {
	return d.Complete("", 0)
}

// Merge returns a new dictionary holding the words of both operands,
// with other's definitions winning on conflict. Neither operand is
// mutated.
func (d *Dictionary) Merge(other *Dictionary) *Dictionary {
	return &Dictionary{tree: d.tree.Union(other.tree)}
}

// Subtract returns a new dictionary holding the words of d that are
// not in other.
func (d *Dictionary) Subtract(other *Dictionary) *Dictionary {
	return &Dictionary{tree: d.tree.Difference(other.tree)}
}

// Common returns a new dictionary holding the words present in both
// operands, with definitions taken from other.
func (d *Dictionary) Common(other *Dictionary) *Dictionary {
	return &Dictionary{tree: d.tree.Intersection(other.tree)}
}

// Absorb adds every entry of other to d in place.
func (d *Dictionary) Absorb(other *Dictionary) {
	d.tree.Update(other.tree)
}

// Stats summarizes the tree behind a dictionary.
type Stats struct {
	Words    int `json:"words"`
	Nodes    int `json:"nodes"`
	MaxDepth int `json:"max_depth"`
}

// Stats recomputes word, node, and depth figures by full traversal.
func (d *Dictionary) Stats() Stats {
	return Stats{
		Words:    d.tree.Len(),
		Nodes:    d.tree.NodeCount(),
		MaxDepth: d.tree.Depth(),
	}
}
