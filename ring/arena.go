package ring

// none marks an absent node index.
const none = -1

// node is a slot in the ring's arena. Links are arena indices.
type node struct {
	digit uint8
	next  int
	prev  int
}

// alloc returns the index of a fresh self-linked node holding digit. Freed
// slots are reused before the arena grows.
func (r *Ring) alloc(digit uint8) int {
	var i int

	if n := len(r.free); n > 0 {
		i = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		i = len(r.nodes)
		r.nodes = append(r.nodes, node{})
	}

	r.nodes[i] = node{
		digit: digit,
		next:  i,
		prev:  i,
	}

	return i
}

// release returns slot i to the free list.
func (r *Ring) release(i int) {
	r.nodes[i] = node{next: none, prev: none}
	r.free = append(r.free, i)
}

// linkBefore splices the detached node i in front of at.
func (r *Ring) linkBefore(at, i int) {
	prev := r.nodes[at].prev

	r.nodes[i].prev = prev
	r.nodes[i].next = at
	r.nodes[prev].next = i
	r.nodes[at].prev = i
}

// insertBefore allocates a node for digit and links it in front of at. When
// the ring is empty the node becomes head and at is ignored. If makeHead is
// set the new node becomes head.
func (r *Ring) insertBefore(at int, digit uint8, makeHead bool) int {
	i := r.alloc(digit)

	if r.size == 0 {
		r.head = i
	} else {
		r.linkBefore(at, i)

		if makeHead {
			r.head = i
		}
	}

	r.size++
	r.revision++

	return i
}

// unlink detaches node i, moves head to its successor if i was head and
// frees the slot. It returns the removed digit.
func (r *Ring) unlink(i int) uint8 {
	n := r.nodes[i]

	if r.size == 1 {
		r.head = none
	} else {
		r.nodes[n.prev].next = n.next
		r.nodes[n.next].prev = n.prev

		if i == r.head {
			r.head = n.next
		}
	}

	r.release(i)
	r.size--
	r.revision++

	return n.digit
}

// nodeAt returns the arena index of position pos. pos must be in
// [0, size). The walk goes backwards when that is shorter.
func (r *Ring) nodeAt(pos int) int {
	i := r.head

	if pos <= r.size/2 {
		for ; pos > 0; pos-- {
			i = r.nodes[i].next
		}

		return i
	}

	for pos = r.size - pos; pos > 0; pos-- {
		i = r.nodes[i].prev
	}

	return i
}
