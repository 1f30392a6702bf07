package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type wordItem struct {
	key   string
	value int
}

func buildTree(alphabet string, items []wordItem) *Trie[rune, int] {
	tree := New[rune, int]([]rune(alphabet))
	for _, item := range items {
		tree.Insert([]rune(item.key), item.value)
	}
	return tree
}

func collectItems(tree *Trie[rune, int], prefix string) []wordItem {
	collected := []wordItem{}
	for suffix, value := range tree.Items([]rune(prefix)) {
		collected = append(collected, wordItem{key: string(suffix), value: value})
	}
	return collected
}

func collectKeys(tree *Trie[rune, int], prefix string) []string {
	collected := []string{}
	for suffix := range tree.Keys([]rune(prefix)) {
		collected = append(collected, string(suffix))
	}
	return collected
}

func collectValues(tree *Trie[rune, int], prefix string) []int {
	collected := []int{}
	for value := range tree.Values([]rune(prefix)) {
		collected = append(collected, value)
	}
	return collected
}

// iterationCases pair insertion orders with the expected alphabet-ordered
// output, optionally scoped to a prefix.
var iterationCases = []struct {
	name     string
	prefix   string
	inserted []wordItem
	expected []wordItem
}{
	{"empty tree", "", nil, []wordItem{}},
	{"single key", "", []wordItem{{"a", 5}}, []wordItem{{"a", 5}}},
	{"inserted in order", "", []wordItem{{"a", 5}, {"b", 6}}, []wordItem{{"a", 5}, {"b", 6}}},
	{"inserted out of order", "", []wordItem{{"b", 6}, {"a", 5}}, []wordItem{{"a", 5}, {"b", 6}}},
	{"prefix key after extension", "", []wordItem{{"aa", 6}, {"a", 5}}, []wordItem{{"a", 5}, {"aa", 6}}},
	{"shared prefix", "", []wordItem{{"ab", 6}, {"aa", 7}, {"a", 5}}, []wordItem{{"a", 5}, {"aa", 7}, {"ab", 6}}},
	{"mixed branches", "", []wordItem{{"ab", 6}, {"a", 5}, {"b", 7}}, []wordItem{{"a", 5}, {"ab", 6}, {"b", 7}}},
	{"absent prefix", "a", nil, []wordItem{}},
	{"prefix not on path", "a", []wordItem{{"b", 6}}, []wordItem{}},
	{"prefix is a key", "b", []wordItem{{"b", 6}}, []wordItem{{"", 6}}},
	{"prefix scopes out siblings", "b", []wordItem{{"a", 5}, {"b", 6}}, []wordItem{{"", 6}}},
	{"prefix with descendants", "b", []wordItem{{"a", 5}, {"b", 6}, {"bb", 7}, {"ba", 8}}, []wordItem{{"", 6}, {"a", 8}, {"b", 7}}},
}

// TestItems verifies ordered, prefix-scoped iteration of key-value pairs.
// Yielded keys are suffixes relative to the prefix.
func TestItems(t *testing.T) {
	for _, tc := range iterationCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(lowercase, tc.inserted)
			assert.Equal(t, tc.expected, collectItems(tree, tc.prefix))
		})
	}
}

// TestKeys verifies ordered, prefix-scoped iteration of keys.
func TestKeys(t *testing.T) {
	for _, tc := range iterationCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(lowercase, tc.inserted)
			expected := []string{}
			for _, item := range tc.expected {
				expected = append(expected, item.key)
			}
			assert.Equal(t, expected, collectKeys(tree, tc.prefix))
		})
	}
}

// TestValues verifies ordered, prefix-scoped iteration of values.
func TestValues(t *testing.T) {
	for _, tc := range iterationCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(lowercase, tc.inserted)
			expected := []int{}
			for _, item := range tc.expected {
				expected = append(expected, item.value)
			}
			assert.Equal(t, expected, collectValues(tree, tc.prefix))
		})
	}
}

// TestAlphabetDefinesOrder verifies that iteration follows the alphabet
// given at construction, not any intrinsic symbol order.
func TestAlphabetDefinesOrder(t *testing.T) {
	tree := buildTree("ba", []wordItem{{"a", 1}, {"b", 2}, {"ab", 3}, {"ba", 4}})
	assert.Equal(t, []string{"b", "ba", "a", "ab"}, collectKeys(tree, ""))
}

// TestUnknownSymbolsRankAfterAlphabet verifies that symbols absent from
// the alphabet are legal key components and iterate after all alphabet
// members, in first-insertion order.
func TestUnknownSymbolsRankAfterAlphabet(t *testing.T) {
	tree := buildTree("ab", []wordItem{{"z", 1}, {"y", 2}, {"b", 3}, {"a", 4}})
	assert.Equal(t, []string{"a", "b", "z", "y"}, collectKeys(tree, ""))
}

// TestIterationStopsEarly verifies that breaking out of the loop stops the
// traversal without draining it.
func TestIterationStopsEarly(t *testing.T) {
	tree := buildTree(lowercase, []wordItem{{"a", 1}, {"b", 2}, {"c", 3}})

	seen := []string{}
	for key := range tree.Keys(nil) {
		seen = append(seen, string(key))
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

// TestFreshTraversalPerCall verifies that each call starts its own
// traversal over the current tree state.
func TestFreshTraversalPerCall(t *testing.T) {
	tree := buildTree(lowercase, []wordItem{{"a", 1}})

	assert.Equal(t, []string{"a"}, collectKeys(tree, ""))
	tree.Insert([]rune("b"), 2)
	assert.Equal(t, []string{"a", "b"}, collectKeys(tree, ""))
}
