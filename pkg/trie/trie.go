package trie

import (
	"errors"
	"slices"
)

// ErrKeyNotFound is returned by Lookup and Remove when no value is
// stored under the requested key.
var ErrKeyNotFound = errors.New("trie: key not found")

// node is a single tree node. A node is occupied when a complete key
// terminates at it; unoccupied nodes exist only to carry children, and
// Remove prunes any node left with neither a value nor children.
type node[K comparable, V any] struct {
	children map[K]*node[K, V]
	value    V
	occupied bool
}

func newNode[K comparable, V any]() *node[K, V] {
	return &node[K, V]{children: make(map[K]*node[K, V])}
}

// Trie is a prefix tree mapping key sequences to values.
//
// The alphabet given to New determines the iteration order of Keys,
// Values, and Items; it does not restrict which symbols a key may
// contain. The zero value is not usable, use New.
type Trie[K comparable, V any] struct {
	alphabet []K
	rank     map[K]int
	root     *node[K, V]
	count    int
}

// New returns an empty tree whose iteration order follows the position
// of each symbol in alphabet. Duplicate alphabet symbols keep their
// first position.
func New[K comparable, V any](alphabet []K) *Trie[K, V] {
	t := &Trie[K, V]{
		alphabet: slices.Clone(alphabet),
		rank:     make(map[K]int, len(alphabet)),
		root:     newNode[K, V](),
	}
	for _, sym := range t.alphabet {
		t.ensureRank(sym)
	}
	return t
}

// Alphabet returns a copy of the alphabet the tree was constructed with.
func (t *Trie[K, V]) Alphabet() []K {
	return slices.Clone(t.alphabet)
}

// Len returns the number of keys in the tree. The count is cached, so
// this is O(1).
func (t *Trie[K, V]) Len() int {
	return t.count
}

// Insert stores value under key, overwriting any previous value.
// Missing nodes along the path are created. The empty key is legal and
// addresses the root.
func (t *Trie[K, V]) Insert(key []K, value V) {
	n := t.root
	for _, sym := range key {
		child, ok := n.children[sym]
		if !ok {
			t.ensureRank(sym)
			child = newNode[K, V]()
			n.children[sym] = child
		}
		n = child
	}

	if !n.occupied {
		t.count++
	}
	n.value = value
	n.occupied = true
}

// Contains reports whether a value is stored under key.
func (t *Trie[K, V]) Contains(key []K) bool {
	n := t.findNode(key)
	return n != nil && n.occupied
}

// Get returns the value stored under key, or fallback if there is none.
func (t *Trie[K, V]) Get(key []K, fallback V) V {
	n := t.findNode(key)
	if n == nil || !n.occupied {
		return fallback
	}
	return n.value
}

// Lookup returns the value stored under key, or ErrKeyNotFound if
// there is none.
func (t *Trie[K, V]) Lookup(key []K) (V, error) {
	n := t.findNode(key)
	if n == nil || !n.occupied {
		var zero V
		return zero, ErrKeyNotFound
	}
	return n.value, nil
}

// Remove deletes key from the tree and prunes any nodes that became
// unnecessary, or returns ErrKeyNotFound if the key is absent. The
// tree is left unchanged on error.
//
// The walk tracks the last node on the path that must survive the
// deletion (the cutoff): the most recent node that is itself occupied,
// has two or more children, or is the root. Detaching the cutoff's
// child on the recorded edge drops the whole dead chain in one step.
func (t *Trie[K, V]) Remove(key []K) error {
	n := t.root
	var cutoff *node[K, V]
	var cutoffSym K

	for _, sym := range key {
		child, ok := n.children[sym]
		if !ok {
			return ErrKeyNotFound
		}
		if cutoff == nil || n.occupied || len(n.children) >= 2 {
			cutoff = n
			cutoffSym = sym
		}
		n = child
	}

	if !n.occupied {
		return ErrKeyNotFound
	}
	var zero V
	n.value = zero
	n.occupied = false

	if cutoff != nil && len(n.children) == 0 {
		delete(cutoff.children, cutoffSym)
	}
	t.count--
	return nil
}

// Count recomputes the number of keys by full traversal. It always
// equals Len; the method exists to validate the cached count in tests.
func (t *Trie[K, V]) Count() int {
	count := 0
	stack := []*node[K, V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.occupied {
			count++
		}
		for _, child := range n.children {
			stack = append(stack, child)
		}
	}
	return count
}

// NodeCount returns the number of nodes in the tree, including the
// root and unoccupied structural nodes, so it is never smaller than
// Count. Only used for testing purposes.
func (t *Trie[K, V]) NodeCount() int {
	count := 0
	stack := []*node[K, V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, child := range n.children {
			stack = append(stack, child)
		}
	}
	return count
}

// Depth returns the number of edges on the longest root-to-leaf path.
// Only used for testing purposes.
func (t *Trie[K, V]) Depth() int {
	type frame struct {
		n     *node[K, V]
		depth int
	}
	maxDepth := 0
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		maxDepth = max(top.depth, maxDepth)
		for _, child := range top.n.children {
			stack = append(stack, frame{child, top.depth + 1})
		}
	}
	return maxDepth
}

// findNode returns the node reached by walking key, or nil if the path
// breaks off.
func (t *Trie[K, V]) findNode(key []K) *node[K, V] {
	n := t.root
	for _, sym := range key {
		child, ok := n.children[sym]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// ensureRank assigns sym its iteration rank on first sight. Symbols
// outside the constructor alphabet rank after all alphabet members, in
// the order the tree first creates an edge for them; that order is
// stable for the life of the tree.
func (t *Trie[K, V]) ensureRank(sym K) {
	if _, ok := t.rank[sym]; !ok {
		t.rank[sym] = len(t.rank)
	}
}
