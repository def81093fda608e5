package bst

func (t *tree[K, V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[K, V]) IsEmpty() bool {
	return t.Size() == 0
}

func (t *tree[K, V]) Put(key K, value V) (bool, error) {
	if err := checkKey("put", key); err != nil {
		return false, err
	}

	slot := t.find(key)
	if *slot != nil {
		return false, nil
	}
	*slot = newNode(key, value)
	t.size++
	return true, nil
}

func (t *tree[K, V]) Set(key K, value V) error {
	if err := checkKey("set", key); err != nil {
		return err
	}

	slot := t.find(key)
	if curr := *slot; curr != nil {
		curr.value = value
		return nil
	}
	*slot = newNode(key, value)
	t.size++
	return nil
}

// Replace returns true only when an entry with an equal key exists. A missing
// key reports false even on a non-empty map.
func (t *tree[K, V]) Replace(key K, value V) (bool, error) {
	if err := checkKey("replace", key); err != nil {
		return false, err
	}

	if t.root == nil {
		return false, nil
	}
	curr := *t.find(key)
	if curr == nil {
		return false, nil
	}
	curr.value = value
	return true, nil
}

func (t *tree[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if err := checkKey("get", key); err != nil {
		return zero, false, err
	}

	if curr := *t.find(key); curr != nil {
		return curr.value, true, nil
	}
	return zero, false, nil
}

func (t *tree[K, V]) ContainsKey(key K) (bool, error) {
	if err := checkKey("contains key", key); err != nil {
		return false, err
	}
	return *t.find(key) != nil, nil
}

func (t *tree[K, V]) Remove(key K) (bool, error) {
	if err := checkKey("remove", key); err != nil {
		return false, err
	}

	var removed bool
	t.root, removed = t.recursiveRemove(t.root, key)
	if removed {
		t.size--
	}
	return removed, nil
}

// find walks from the root and returns the slot holding key. The slot points
// to nil when key is absent; a new node for key belongs there.
func (t *tree[K, V]) find(key K) **node[K, V] {
	slot := &t.root
	for curr := *slot; curr != nil; curr = *slot {
		c := t.compare(key, curr.key)
		if c == 0 {
			break
		}
		if c < 0 {
			slot = &curr.left
		} else {
			slot = &curr.right
		}
	}
	return slot
}

// recursiveRemove deletes key from the subtree rooted at curr and returns the
// new root of that subtree.
func (t *tree[K, V]) recursiveRemove(curr *node[K, V], key K) (*node[K, V], bool) {
	if curr == nil {
		return nil, false
	}

	var removed bool
	switch c := t.compare(key, curr.key); {
	case c < 0:
		curr.left, removed = t.recursiveRemove(curr.left, key)
		return curr, removed
	case c > 0:
		curr.right, removed = t.recursiveRemove(curr.right, key)
		return curr, removed
	}

	switch {
	case curr.isLeaf():
		return nil, true
	case curr.right == nil:
		return curr.left, true
	case curr.left == nil:
		return curr.right, true
	}

	// two children: take over the in-order predecessor, which has no right
	// child, and drop it from the left subtree
	pred := curr.left.maximum()
	curr.key, curr.value = pred.key, pred.value
	curr.left, _ = t.recursiveRemove(curr.left, pred.key)
	return curr, true
}

func (t *tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Size())
	t.Ascend(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (t *tree[K, V]) Values() []V {
	values := make([]V, 0, t.Size())
	t.Ascend(func(_ K, value V) bool {
		values = append(values, value)
		return true
	})
	return values
}

func (t *tree[K, V]) Ascend(fn Callback[K, V]) {
	if t == nil {
		return
	}
	t.recursiveForEach(t.root, fn)
}

func (t *tree[K, V]) recursiveForEach(curr *node[K, V], callback Callback[K, V]) traverseAction {
	if curr == nil {
		return traverseContinue
	}

	if t.recursiveForEach(curr.left, callback) == traverseStop {
		return traverseStop
	}
	if !callback(curr.key, curr.value) {
		return traverseStop
	}
	return t.recursiveForEach(curr.right, callback)
}

func (t *tree[K, V]) Iterator() Iterator[K, V] {
	it := &iterator[K, V]{}
	if t != nil {
		it.pushLeft(t.root)
	}
	return it
}

func (it *iterator[K, V]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *iterator[K, V]) Next() (Entry[K, V], error) {
	if !it.HasNext() {
		return nil, ErrNoMoreEntries
	}

	last := len(it.stack) - 1
	cur := it.stack[last]
	it.stack[last] = nil
	it.stack = it.stack[:last]

	it.pushLeft(cur.right)
	return cur, nil
}

func (it *iterator[K, V]) pushLeft(curr *node[K, V]) {
	for ; curr != nil; curr = curr.left {
		it.stack = append(it.stack, curr)
	}
}
