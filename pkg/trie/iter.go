package trie

import (
	"cmp"
	"iter"
	"slices"
)

// Keys returns an iterator over the keys below prefix, in the
// lexicographic order defined by the constructor alphabet. The yielded
// keys are suffixes relative to prefix; a nil prefix yields all keys.
// If no node exists at prefix the sequence is empty.
func (t *Trie[K, V]) Keys(prefix []K) iter.Seq[[]K] {
	return func(yield func([]K) bool) {
		for suffix := range t.iterate(t.findNode(prefix)) {
			if !yield(suffix) {
				return
			}
		}
	}
}

// Values returns an iterator over the values below prefix, ordered by
// their keys as in Keys.
func (t *Trie[K, V]) Values(prefix []K) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range t.iterate(t.findNode(prefix)) {
			if !yield(value) {
				return
			}
		}
	}
}

// Items returns an iterator over the key-value pairs below prefix,
// ordered as in Keys. The yielded keys are suffixes relative to prefix.
func (t *Trie[K, V]) Items(prefix []K) iter.Seq2[[]K, V] {
	return t.iterate(t.findNode(prefix))
}

// iterate walks the subtree under start depth-first with an explicit
// stack, yielding occupied nodes. Children are pushed in descending
// alphabet rank so popping visits them in ascending order. Auxiliary
// memory is bounded by tree depth times branching, not key count.
func (t *Trie[K, V]) iterate(start *node[K, V]) iter.Seq2[[]K, V] {
	type frame struct {
		n      *node[K, V]
		suffix []K
	}

	return func(yield func([]K, V) bool) {
		if start == nil {
			return
		}

		stack := []frame{{n: start, suffix: []K{}}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if top.n.occupied {
				if !yield(top.suffix, top.n.value) {
					return
				}
			}

			syms := t.orderedChildSymbols(top.n)
			for i := len(syms) - 1; i >= 0; i-- {
				sym := syms[i]
				suffix := make([]K, len(top.suffix)+1)
				copy(suffix, top.suffix)
				suffix[len(top.suffix)] = sym
				stack = append(stack, frame{n: top.n.children[sym], suffix: suffix})
			}
		}
	}
}

// orderedChildSymbols returns the symbols of n's children sorted by
// their alphabet rank. Every edge symbol was ranked when the edge was
// created, so the sort is total.
func (t *Trie[K, V]) orderedChildSymbols(n *node[K, V]) []K {
	syms := make([]K, 0, len(n.children))
	for sym := range n.children {
		syms = append(syms, sym)
	}
	slices.SortFunc(syms, func(a, b K) int {
		return cmp.Compare(t.rank[a], t.rank[b])
	})
	return syms
}
