package trie

import "slices"

// The set operations treat a tree as the set of its keys, each key
// carrying a value. In-place forms mutate only the receiver; the pure
// forms allocate a fresh tree seeded with the receiver's alphabet and
// share no nodes with either operand. The operands' alphabets need not
// match, alphabets only order iteration.

// Update copies every key-value pair of other into t, so that
// afterwards t holds the union of both key sets with other's values
// winning on conflict. Other is read but never mutated, and none of
// its nodes are attached to t.
func (t *Trie[K, V]) Update(other *Trie[K, V]) {
	type pair struct {
		own   *node[K, V]
		other *node[K, V]
	}

	stack := []pair{{t.root, other.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.other.occupied {
			if !p.own.occupied {
				t.count++
			}
			p.own.value = p.other.value
			p.own.occupied = true
		}

		for sym, otherChild := range p.other.children {
			ownChild, ok := p.own.children[sym]
			if !ok {
				t.ensureRank(sym)
				ownChild = newNode[K, V]()
				p.own.children[sym] = ownChild
			}
			stack = append(stack, pair{ownChild, otherChild})
		}
	}
}

// Union returns a new tree holding the union of both key sets, with
// values from other preferred where a key is present in both.
func (t *Trie[K, V]) Union(other *Trie[K, V]) *Trie[K, V] {
	third := New[K, V](t.alphabet)
	third.Update(t)
	third.Update(other)
	return third
}

// DifferenceUpdate removes from t every key that is present in other,
// leaving all other keys untouched.
func (t *Trie[K, V]) DifferenceUpdate(other *Trie[K, V]) {
	for key := range other.Keys(nil) {
		if t.Contains(key) {
			// cannot fail, Contains just confirmed the key
			_ = t.Remove(key)
		}
	}
}

// Difference returns a new tree holding the keys of t that are not in
// other, with t's values.
func (t *Trie[K, V]) Difference(other *Trie[K, V]) *Trie[K, V] {
	third := New[K, V](t.alphabet)
	third.Update(t)
	third.DifferenceUpdate(other)
	return third
}

// IntersectionUpdate keeps in t only the keys also present in other,
// overwriting their values with other's.
func (t *Trie[K, V]) IntersectionUpdate(other *Trie[K, V]) {
	// snapshot the keys first, the loop below mutates t and the lazy
	// iterator must not observe its own removals
	keys := slices.Collect(t.Keys(nil))
	for _, key := range keys {
		if value, err := other.Lookup(key); err == nil {
			t.Insert(key, value)
		} else {
			_ = t.Remove(key)
		}
	}
}

// Intersection returns a new tree holding the keys present in both t
// and other, with values taken from other.
func (t *Trie[K, V]) Intersection(other *Trie[K, V]) *Trie[K, V] {
	third := New[K, V](t.alphabet)
	third.Update(t)
	third.IntersectionUpdate(other)
	return third
}
