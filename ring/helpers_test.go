package ring

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// checkRing asserts the structural invariants of r.
func checkRing(t require.TestingT, r *Ring) {
	dump := spew.Sdump(r)

	require.Equal(t, r.size == 0, r.head == none, dump)
	require.Equal(t, r.size, len(r.nodes)-len(r.free), dump)

	if r.size == 0 {
		return
	}

	i := r.head
	for k := 0; k < r.size; k++ {
		n := r.nodes[i]

		require.Less(t, int(n.digit), r.base, dump)
		require.Equal(t, i, r.nodes[n.next].prev, dump)
		require.Equal(t, i, r.nodes[n.prev].next, dump)

		i = n.next
	}
	require.Equal(t, r.head, i, dump)

	for k := 0; k < r.size; k++ {
		i = r.nodes[i].prev
	}
	require.Equal(t, r.head, i, dump)
}

func mustDigits(t require.TestingT, base int, digits ...uint8) *Ring {
	r, err := FromDigits(base, digits...)
	require.NoError(t, err)

	return r
}
