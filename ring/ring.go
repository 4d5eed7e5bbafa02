package ring

import "github.com/calebcase/digits/integer"

// Base defaults.
const (
	// DefaultBase is the base of rings built without an explicit base.
	DefaultBase = 2

	// ScaleBase is the target base of ChangeScale.
	ScaleBase = 3

	MinBase = integer.MinBase
	MaxBase = integer.MaxBase
)

// Ring is a circular doubly linked list of digits in a fixed base.
//
// Position 0 is the head node. Nodes live in an arena and link to each other
// by index; removed slots are recycled.
//
// The zero value is not usable; create rings with New, NewBase or one of the
// parsing constructors. A Ring is not safe for concurrent use.
type Ring struct {
	base int

	nodes []node
	free  []int

	head int
	size int

	// revision is bumped by every structural change and value overwrite.
	// Iterators compare it against their own copy to fail fast.
	revision uint64
}

// New returns an empty ring in DefaultBase.
func New() *Ring {
	return &Ring{
		base: DefaultBase,
		head: none,
	}
}

// NewBase returns an empty ring in base.
func NewBase(base int) (*Ring, error) {
	if base < MinBase || base > MaxBase {
		return nil, InvalidBase.New("base=%d min=%d max=%d", base, MinBase, MaxBase)
	}

	return &Ring{
		base: base,
		head: none,
	}, nil
}

// FromDigits returns a ring in base holding digits in order. It fails on the
// first digit outside the base.
func FromDigits(base int, digits ...uint8) (*Ring, error) {
	r, err := NewBase(base)
	if err != nil {
		return nil, err
	}

	err = r.AppendAll(digits)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Base returns the ring's base.
func (r *Ring) Base() int { return r.base }

// Len returns the number of digits.
func (r *Ring) Len() int { return r.size }

// IsEmpty reports whether the ring holds no digits.
func (r *Ring) IsEmpty() bool { return r.size == 0 }

func (r *Ring) checkDigit(digit uint8) error {
	if int(digit) >= r.base {
		return InvalidDigit.New("digit=%d base=%d", digit, r.base)
	}

	return nil
}

// checkIndex validates pos against [0, limit).
func (r *Ring) checkIndex(pos, limit int) error {
	if pos < 0 || pos >= limit {
		return IndexOutOfRange.New("index=%d size=%d", pos, r.size)
	}

	return nil
}

// Get returns the digit at pos.
func (r *Ring) Get(pos int) (uint8, error) {
	err := r.checkIndex(pos, r.size)
	if err != nil {
		return 0, err
	}

	return r.nodes[r.nodeAt(pos)].digit, nil
}

// Set overwrites the digit at pos and returns the previous digit.
func (r *Ring) Set(pos int, digit uint8) (old uint8, err error) {
	err = r.checkIndex(pos, r.size)
	if err != nil {
		return 0, err
	}

	err = r.checkDigit(digit)
	if err != nil {
		return 0, err
	}

	i := r.nodeAt(pos)
	old = r.nodes[i].digit
	r.nodes[i].digit = digit
	r.revision++

	return old, nil
}

// Append adds digit at the tail.
func (r *Ring) Append(digit uint8) error {
	err := r.checkDigit(digit)
	if err != nil {
		return err
	}

	r.insertBefore(r.head, digit, false)

	return nil
}

// Insert adds digit so that it ends up at pos. pos may equal Len, in which
// case Insert appends. Inserting at 0 makes the new node the head.
func (r *Ring) Insert(pos int, digit uint8) error {
	err := r.checkIndex(pos, r.size+1)
	if err != nil {
		return err
	}

	err = r.checkDigit(digit)
	if err != nil {
		return err
	}

	if pos == r.size {
		r.insertBefore(r.head, digit, false)

		return nil
	}

	r.insertBefore(r.nodeAt(pos), digit, pos == 0)

	return nil
}

// Remove deletes the digit at pos and returns it.
func (r *Ring) Remove(pos int) (uint8, error) {
	err := r.checkIndex(pos, r.size)
	if err != nil {
		return 0, err
	}

	return r.unlink(r.nodeAt(pos)), nil
}

// Clear drops every digit.
func (r *Ring) Clear() {
	r.nodes = nil
	r.free = nil
	r.head = none
	r.size = 0
	r.revision++
}
