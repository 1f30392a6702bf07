// ## Overview
// Package trie implements a generic prefix tree mapping sequences of
// symbols to values. Keys are slices of any comparable symbol type,
// so strings (as rune slices), byte paths, or token sequences all work.
// Point operations run in time linear in the key length, independent of
// the number of stored keys.
//
// The tree supports prefix-scoped ordered iteration, driven by the
// alphabet supplied at construction, and set-theoretic combination of
// two trees (union, difference, intersection) in both in-place and
// new-tree-producing forms.
//
// ## Example usage:
//
//	dictionary := trie.New[rune, string]([]rune("abcdefghijklmnopqrstuvwxyz"))
//
//	dictionary.Insert([]rune("apple"), "A red or green fruit")
//	dictionary.Insert([]rune("banana"), "A yellow fruit")
//	dictionary.Insert([]rune("appletree"), "A tree on which apples grow")
//
//	// print all words in lexicographical order
//	for word := range dictionary.Keys(nil) {
//	    fmt.Println(string(word))
//	}
//
//	// print all words starting with "apple" and their definitions
//	prefix := []rune("apple")
//	for suffix, definition := range dictionary.Items(prefix) {
//	    fmt.Printf("%q is defined as %q.\n", string(prefix)+string(suffix), definition)
//	}
//
// A Trie instance assumes exclusive single-writer access; callers that
// share one across goroutines must synchronize externally.
package trie
