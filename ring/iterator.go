package ring

// Iterators are fail fast: each keeps a copy of the ring's revision and
// every positional call fails with ConcurrentModification once the ring has
// been changed by anything other than the iterator itself. This only catches
// misuse within a single goroutine; it is not a synchronization mechanism.

// Iterator walks a ring forward from position 0.
type Iterator struct {
	r *Ring

	cursor   int // arena index of the next node
	pos      int // positions consumed
	last     int // arena index of the last returned node or none
	revision uint64
}

// Iterator returns a forward iterator positioned before the head.
func (r *Ring) Iterator() *Iterator {
	return &Iterator{
		r:        r,
		cursor:   r.head,
		last:     none,
		revision: r.revision,
	}
}

func (it *Iterator) check() error {
	if it.revision != it.r.revision {
		return ConcurrentModification.New(
			"iterator revision=%d ring revision=%d",
			it.revision,
			it.r.revision,
		)
	}

	return nil
}

// HasNext reports whether Next has a digit to return.
func (it *Iterator) HasNext() bool {
	return it.pos < it.r.size
}

// Next returns the next digit.
func (it *Iterator) Next() (uint8, error) {
	err := it.check()
	if err != nil {
		return 0, err
	}

	if !it.HasNext() {
		return 0, NoSuchElement.New("position=%d size=%d", it.pos, it.r.size)
	}

	it.last = it.cursor
	it.cursor = it.r.nodes[it.cursor].next
	it.pos++

	return it.r.nodes[it.last].digit, nil
}

// Remove deletes the node last returned by Next. The iterator stays valid.
func (it *Iterator) Remove() error {
	err := it.check()
	if err != nil {
		return err
	}

	if it.last == none {
		return IllegalState.New("remove without next")
	}

	it.r.unlink(it.last)
	it.last = none
	it.pos--
	it.revision = it.r.revision

	if it.r.size == 0 {
		it.cursor = none
	}

	return nil
}

// ListIterator walks a ring in both directions.
//
// The cursor sits between two positions: NextIndex is the position Next
// would return and PreviousIndex the one Previous would return.
type ListIterator struct {
	r *Ring

	cursor   int // arena index of the node at pos; head when pos == size
	pos      int
	last     int  // arena index of the last returned node or none
	forward  bool // last was returned by Next
	revision uint64
}

// ListIterator returns a bidirectional iterator whose first Next returns the
// digit at start. start may equal Len.
func (r *Ring) ListIterator(start int) (*ListIterator, error) {
	err := r.checkIndex(start, r.size+1)
	if err != nil {
		return nil, err
	}

	cursor := r.head
	if start < r.size {
		cursor = r.nodeAt(start)
	}

	return &ListIterator{
		r:        r,
		cursor:   cursor,
		pos:      start,
		last:     none,
		revision: r.revision,
	}, nil
}

func (it *ListIterator) check() error {
	if it.revision != it.r.revision {
		return ConcurrentModification.New(
			"iterator revision=%d ring revision=%d",
			it.revision,
			it.r.revision,
		)
	}

	return nil
}

// sync adopts the ring's revision after a change made by the iterator.
func (it *ListIterator) sync() {
	it.revision = it.r.revision
}

// HasNext reports whether Next has a digit to return.
func (it *ListIterator) HasNext() bool { return it.pos < it.r.size }

// HasPrevious reports whether Previous has a digit to return.
func (it *ListIterator) HasPrevious() bool { return it.pos > 0 }

// NextIndex returns the position Next would return.
func (it *ListIterator) NextIndex() int { return it.pos }

// PreviousIndex returns the position Previous would return, -1 at the start.
func (it *ListIterator) PreviousIndex() int { return it.pos - 1 }

// Next returns the digit after the cursor and advances.
func (it *ListIterator) Next() (uint8, error) {
	err := it.check()
	if err != nil {
		return 0, err
	}

	if !it.HasNext() {
		return 0, NoSuchElement.New("position=%d size=%d", it.pos, it.r.size)
	}

	it.last = it.cursor
	it.forward = true
	it.cursor = it.r.nodes[it.cursor].next
	it.pos++

	return it.r.nodes[it.last].digit, nil
}

// Previous returns the digit before the cursor and moves back.
func (it *ListIterator) Previous() (uint8, error) {
	err := it.check()
	if err != nil {
		return 0, err
	}

	if !it.HasPrevious() {
		return 0, NoSuchElement.New("position=%d size=%d", it.pos, it.r.size)
	}

	it.cursor = it.r.nodes[it.cursor].prev
	it.pos--
	it.last = it.cursor
	it.forward = false

	return it.r.nodes[it.last].digit, nil
}

// Remove deletes the node last returned by Next or Previous.
func (it *ListIterator) Remove() error {
	err := it.check()
	if err != nil {
		return err
	}

	if it.last == none {
		return IllegalState.New("remove without next or previous")
	}

	if it.forward {
		it.pos--
	} else {
		// The cursor sits on the node being removed.
		it.cursor = it.r.nodes[it.last].next
	}

	it.r.unlink(it.last)
	it.last = none

	if it.r.size == 0 {
		it.cursor = none
	} else if it.pos == it.r.size {
		it.cursor = it.r.head
	}

	it.sync()

	return nil
}

// Set overwrites the digit of the node last returned by Next or Previous.
// Like Remove it may be called once per call to Next or Previous.
func (it *ListIterator) Set(digit uint8) error {
	err := it.check()
	if err != nil {
		return err
	}

	if it.last == none {
		return IllegalState.New("set without next or previous")
	}

	err = it.r.checkDigit(digit)
	if err != nil {
		return err
	}

	it.r.nodes[it.last].digit = digit
	it.last = none
	it.r.revision++
	it.sync()

	return nil
}

// Add inserts digit in front of the cursor and moves the cursor past it.
// Remove and Set are illegal until the next call to Next or Previous.
func (it *ListIterator) Add(digit uint8) error {
	err := it.check()
	if err != nil {
		return err
	}

	err = it.r.checkDigit(digit)
	if err != nil {
		return err
	}

	i := it.r.insertBefore(it.cursor, digit, it.pos == 0)
	if it.cursor == none {
		it.cursor = i
	}

	it.pos++
	it.last = none
	it.sync()

	return nil
}
