package combinator

type trie[O any] struct {
	// Two generations of nested map[any]any; leaves hold O. When the live
	// generation fills up, the stale one is dropped and writes rotate into a
	// fresh map, bounding total entries to 2*maxSize.
	memos   [2]map[any]any
	headIdx int
	size    uint32
	maxSize uint32
}

func newTrie[O any](maxSize uint32) *trie[O] {
	if maxSize == 0 {
		panic("combinator: memo table size should be greater than 0")
	}
	return &trie[O]{
		memos:   [2]map[any]any{{}, {}},
		maxSize: maxSize,
	}
}

func (t *trie[O]) load(keys []any) (O, bool) {
	if v, ok := lookup[O](t.memos[t.headIdx], keys); ok {
		return v, true
	}
	return lookup[O](t.memos[1-t.headIdx], keys)
}

func lookup[O any](m map[any]any, keys []any) (O, bool) {
	var zero O
	for _, k := range keys[:len(keys)-1] {
		v, ok := m[k]
		if !ok {
			return zero, false
		}
		m = v.(map[any]any)
	}
	v, ok := m[keys[len(keys)-1]]
	if !ok {
		return zero, false
	}
	return v.(O), true
}

func (t *trie[O]) store(keys []any, value O) {
	if len(keys) == 0 {
		panic("combinator: empty memo keys")
	}
	if t.size == t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.memos[t.headIdx] = map[any]any{}
		t.size = 0
	}
	m := t.memos[t.headIdx]
	for _, k := range keys[:len(keys)-1] {
		v, ok := m[k]
		if !ok {
			next := map[any]any{}
			m[k] = next
			v = next
		}
		m = v.(map[any]any)
	}
	m[keys[len(keys)-1]] = value
	t.size++
}
