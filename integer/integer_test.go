package integer

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigits(t *testing.T) {
	type TC struct {
		value  int64
		base   int
		digits []uint8
	}

	tcs := []TC{
		{value: 0, base: 2, digits: []uint8{0}},
		{value: 1, base: 2, digits: []uint8{1}},
		{value: 10, base: 2, digits: []uint8{1, 0, 1, 0}},
		{value: 10, base: 3, digits: []uint8{1, 0, 1}},
		{value: 12345, base: 10, digits: []uint8{1, 2, 3, 4, 5}},
		{value: 255, base: 16, digits: []uint8{15, 15}},
		{value: 256, base: 256, digits: []uint8{1, 0}},
		{value: 8, base: 2, digits: []uint8{1, 0, 0, 0}},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%d/base%d", tc.value, tc.base), func(t *testing.T) {
			digits, err := Digits(big.NewInt(tc.value), tc.base)
			require.NoError(t, err)
			require.Equal(t, tc.digits, digits)

			v, err := Value(digits, tc.base)
			require.NoError(t, err)
			require.Equal(t, tc.value, v.Int64())
		})
	}
}

func TestValue(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		v, err := Value(nil, 2)
		require.NoError(t, err)
		require.Equal(t, 0, v.Sign())
	})

	t.Run("digit out of range", func(t *testing.T) {
		_, err := Value([]uint8{1, 2}, 2)
		require.Error(t, err)
		require.True(t, Error.Has(err))
	})

	t.Run("large", func(t *testing.T) {
		digits := make([]uint8, 200)
		digits[0] = 1

		v, err := Value(digits, 2)
		require.NoError(t, err)

		want := new(big.Int).Lsh(big.NewInt(1), 199)
		require.Equal(t, 0, want.Cmp(v))
	})
}

func TestCheckBase(t *testing.T) {
	for _, base := range []int{-1, 0, 1, 257} {
		require.Error(t, CheckBase(base), base)
	}

	for _, base := range []int{2, 3, 10, 36, 256} {
		require.NoError(t, CheckBase(base), base)
	}

	_, err := Digits(big.NewInt(3), 1)
	require.True(t, Error.Has(err))

	_, err = Digits(big.NewInt(-3), 2)
	require.True(t, Error.Has(err))
}

func TestAnd(t *testing.T) {
	v, err := And(big.NewInt(12), big.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, int64(8), v.Int64())

	v, err = And(big.NewInt(5), big.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, 0, v.Sign())

	_, err = And(big.NewInt(-1), big.NewInt(2))
	require.Error(t, err)
}
