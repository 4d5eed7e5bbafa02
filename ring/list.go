package ring

// walk calls fn with each position and arena index in order from head until
// fn returns false.
func (r *Ring) walk(fn func(pos, i int) bool) {
	i := r.head
	for pos := 0; pos < r.size; pos++ {
		if !fn(pos, i) {
			return
		}

		i = r.nodes[i].next
	}
}

// IndexOf returns the first position holding digit or -1.
func (r *Ring) IndexOf(digit uint8) (found int) {
	found = -1

	r.walk(func(pos, i int) bool {
		if r.nodes[i].digit == digit {
			found = pos

			return false
		}

		return true
	})

	return found
}

// LastIndexOf returns the last position holding digit or -1.
func (r *Ring) LastIndexOf(digit uint8) (found int) {
	found = -1

	r.walk(func(pos, i int) bool {
		if r.nodes[i].digit == digit {
			found = pos
		}

		return true
	})

	return found
}

// Contains reports whether digit is present.
func (r *Ring) Contains(digit uint8) bool {
	return r.IndexOf(digit) >= 0
}

// ContainsAll reports whether every one of digits is present.
func (r *Ring) ContainsAll(digits []uint8) bool {
	for _, d := range digits {
		if !r.Contains(d) {
			return false
		}
	}

	return true
}

// RemoveValue deletes the first node holding digit. It reports whether a
// node was removed.
func (r *Ring) RemoveValue(digit uint8) bool {
	pos := r.IndexOf(digit)
	if pos < 0 {
		return false
	}

	r.unlink(r.nodeAt(pos))

	return true
}

// AppendAll appends digits in order. Digits before the first invalid one
// stay appended.
func (r *Ring) AppendAll(digits []uint8) error {
	for _, d := range digits {
		err := r.Append(d)
		if err != nil {
			return err
		}
	}

	return nil
}

// InsertAll inserts digits starting at pos so that they keep their order.
// Digits before the first invalid one stay inserted.
func (r *Ring) InsertAll(pos int, digits []uint8) error {
	err := r.checkIndex(pos, r.size+1)
	if err != nil {
		return err
	}

	for _, d := range digits {
		err = r.Insert(pos, d)
		if err != nil {
			return err
		}

		pos++
	}

	return nil
}

// RemoveAll deletes every node whose digit is in digits. It reports whether
// anything was removed.
func (r *Ring) RemoveAll(digits []uint8) bool {
	set := digitSet(digits)

	return r.filter(func(d uint8) bool { return !set[d] })
}

// RetainAll deletes every node whose digit is not in digits. It reports
// whether anything was removed.
func (r *Ring) RetainAll(digits []uint8) bool {
	set := digitSet(digits)

	return r.filter(func(d uint8) bool { return set[d] })
}

func digitSet(digits []uint8) (set [256]bool) {
	for _, d := range digits {
		set[d] = true
	}

	return set
}

// filter removes, in a single pass, every node for which keep is false.
func (r *Ring) filter(keep func(uint8) bool) (removed bool) {
	it := r.Iterator()

	for it.HasNext() {
		d, err := it.Next()
		if err != nil {
			panic(err)
		}

		if keep(d) {
			continue
		}

		err = it.Remove()
		if err != nil {
			panic(err)
		}

		removed = true
	}

	return removed
}

// Swap exchanges the digits at i and j. It returns false, without changing
// anything, when either index is out of range.
func (r *Ring) Swap(i, j int) bool {
	if i < 0 || i >= r.size || j < 0 || j >= r.size {
		return false
	}

	if i == j {
		return true
	}

	a, b := r.nodeAt(i), r.nodeAt(j)
	r.nodes[a].digit, r.nodes[b].digit = r.nodes[b].digit, r.nodes[a].digit
	r.revision++

	return true
}

// SortAscending orders the digits from smallest to largest.
func (r *Ring) SortAscending() {
	r.sort(func(a, b uint8) bool { return a > b })
}

// SortDescending orders the digits from largest to smallest.
func (r *Ring) SortDescending() {
	r.sort(func(a, b uint8) bool { return a < b })
}

// sort is an exchange sort over adjacent nodes. Neighbours are swapped when
// misplaced(left, right) is true.
func (r *Ring) sort(misplaced func(a, b uint8) bool) {
	for pass := 0; pass < r.size-1; pass++ {
		swapped := false

		i := r.head
		for k := 0; k < r.size-pass-1; k++ {
			j := r.nodes[i].next

			if misplaced(r.nodes[i].digit, r.nodes[j].digit) {
				r.nodes[i].digit, r.nodes[j].digit = r.nodes[j].digit, r.nodes[i].digit
				r.revision++
				swapped = true
			}

			i = j
		}

		if !swapped {
			return
		}
	}
}

// ShiftLeft rotates the ring so the node at position 1 becomes position 0.
func (r *Ring) ShiftLeft() {
	if r.size <= 1 {
		return
	}

	r.head = r.nodes[r.head].next
	r.revision++
}

// ShiftRight rotates the ring so the last node becomes position 0.
func (r *Ring) ShiftRight() {
	if r.size <= 1 {
		return
	}

	r.head = r.nodes[r.head].prev
	r.revision++
}

// SubList returns a new ring in the same base holding copies of the digits
// in [from, to).
func (r *Ring) SubList(from, to int) (*Ring, error) {
	if from < 0 || to > r.size || from > to {
		return nil, IndexOutOfRange.New("from=%d to=%d size=%d", from, to, r.size)
	}

	sub := &Ring{
		base: r.base,
		head: none,
	}

	r.walk(func(pos, i int) bool {
		if pos >= to {
			return false
		}

		if pos >= from {
			sub.insertBefore(sub.head, r.nodes[i].digit, false)
		}

		return true
	})

	return sub, nil
}

// Digits returns a snapshot of the digits in position order.
func (r *Ring) Digits() []uint8 {
	digits := make([]uint8, 0, r.size)

	r.walk(func(_, i int) bool {
		digits = append(digits, r.nodes[i].digit)

		return true
	})

	return digits
}

// Equal reports whether other has the same base and digit sequence.
func (r *Ring) Equal(other *Ring) bool {
	if other == nil || r.base != other.base || r.size != other.size {
		return false
	}

	i, j := r.head, other.head
	for k := 0; k < r.size; k++ {
		if r.nodes[i].digit != other.nodes[j].digit {
			return false
		}

		i, j = r.nodes[i].next, other.nodes[j].next
	}

	return true
}
