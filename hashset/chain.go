package hashset

type node[K comparable] struct {
	key  K
	next *node[K]
}

// chain is the list of keys hashing to one bucket. It always ends in a
// sentinel node that carries no key; tail points at it for the whole
// lifetime of the chain.
type chain[K comparable] struct {
	head   *node[K]
	tail   *node[K]
	length int
}

func newChain[K comparable]() *chain[K] {
	sentinel := &node[K]{}
	return &chain[K]{head: sentinel, tail: sentinel}
}

func (c *chain[K]) empty() bool {
	return c.head == c.tail
}

// lookup returns the node holding key, or the sentinel and false.
func (c *chain[K]) lookup(key K) (*node[K], bool) {
	n := c.head
	for n != c.tail {
		if n.key == key {
			return n, true
		}
		n = n.next
	}
	return n, false
}

// prepend links a new node in front of head. The caller checks uniqueness.
func (c *chain[K]) prepend(key K) *node[K] {
	n := &node[K]{key: key, next: c.head}
	c.head = n
	c.length++
	return n
}

// remove unlinks the node holding key. The sentinel is never touched, so
// removing the last real node leaves its predecessor (or head) pointing at it.
func (c *chain[K]) remove(key K) bool {
	if c.empty() {
		return false
	}

	if c.head.key == key {
		n := c.head
		c.head = n.next
		n.next = nil
		c.length--
		return true
	}

	prev := c.head
	for prev.next != c.tail {
		n := prev.next
		if n.key == key {
			prev.next = n.next
			n.next = nil
			c.length--
			return true
		}
		prev = n
	}
	return false
}

// release unlinks every node, sentinel included.
func (c *chain[K]) release() {
	n := c.head
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
	c.head, c.tail = nil, nil
	c.length = 0
}

func newTable[K comparable](size int) []*chain[K] {
	table := make([]*chain[K], size)
	for i := range table {
		table[i] = newChain[K]()
	}
	return table
}

func releaseTable[K comparable](table []*chain[K]) {
	for _, c := range table {
		c.release()
	}
}
