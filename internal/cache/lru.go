package cache

// lruNode is a node in the recency list. It stores its key so the oldest
// entry can be deleted from the map in O(1).
type lruNode[K comparable, V any] struct {
	key        K
	prev, next *lruNode[K, V]
}

// lruList orders keys from most (head) to least (tail) recently used.
// Not thread-safe; Cache holds its lock around every call.
type lruList[K comparable, V any] struct {
	head, tail *lruNode[K, V]
	len        int
}

// PushFront inserts key as the most recently used node.
func (l *lruList[K, V]) PushFront(key K) *lruNode[K, V] {
	node := &lruNode[K, V]{key: key}
	l.linkFront(node)
	return node
}

// MoveToFront marks node as the most recently used.
func (l *lruList[K, V]) MoveToFront(node *lruNode[K, V]) {
	if node == nil || node == l.head {
		return
	}
	l.unlink(node)
	l.linkFront(node)
}

// RemoveOldest unlinks the least recently used node and returns its key.
func (l *lruList[K, V]) RemoveOldest() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	node := l.tail
	l.unlink(node)
	return node.key, true
}

// Clear drops every node.
func (l *lruList[K, V]) Clear() {
	l.head, l.tail, l.len = nil, nil, 0
}

func (l *lruList[K, V]) linkFront(node *lruNode[K, V]) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

func (l *lruList[K, V]) unlink(node *lruNode[K, V]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev, node.next = nil, nil
	l.len--
}
