package ring_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/digits/ring"
)

func TestParse(t *testing.T) {
	type TC struct {
		input   string
		digits  string
		decimal string
	}

	tcs := []TC{
		{input: "12345", digits: "11000000111001", decimal: "12345"},
		{input: "10", digits: "1010", decimal: "10"},
		{input: " 12\n", digits: "1100", decimal: "12"},
		{input: "0", digits: "0", decimal: "0"},
		{input: "", digits: "0", decimal: "0"},
		{input: "-5", digits: "0", decimal: "0"},
		{input: "abc", digits: "0", decimal: "0"},
		{input: "3.14", digits: "0", decimal: "0"},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			r := ring.Parse(tc.input)
			require.Equal(t, ring.DefaultBase, r.Base())
			require.Equal(t, tc.digits, r.String())
			require.Equal(t, tc.decimal, r.DecimalString())
		})
	}

	t.Run("rejected input is empty", func(t *testing.T) {
		require.True(t, ring.Parse("-1").IsEmpty())
		require.True(t, ring.Parse("x").IsEmpty())
		require.Equal(t, 1, ring.Parse("0").Len())
	})
}

func TestParseBase(t *testing.T) {
	r, err := ring.ParseBase("12345", 10)
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 2, 3, 4, 5}, r.Digits())
	require.Equal(t, "12345", r.String())
	require.Equal(t, "12345", r.DecimalString())

	r, err = ring.ParseBase("255", 16)
	require.NoError(t, err)
	require.Equal(t, "ff", r.String())

	r, err = ring.ParseBase("65535", 256)
	require.NoError(t, err)
	require.Equal(t, "255.255", r.String())
	require.Equal(t, "65535", r.DecimalString())

	r, err = ring.ParseBase("nope", 10)
	require.NoError(t, err)
	require.True(t, r.IsEmpty())

	_, err = ring.ParseBase("1", 1)
	require.True(t, ring.InvalidBase.Has(err))
}

func TestDecimalString(t *testing.T) {
	require.Equal(t, "0", ring.New().DecimalString())
	require.Equal(t, "0", ring.New().String())

	r, err := ring.FromDigits(2, 0, 0, 1, 1)
	require.NoError(t, err)
	require.Equal(t, "3", r.DecimalString())

	// Rotation changes which digit is most significant.
	r.ShiftLeft()
	require.Equal(t, "0110", r.String())
	require.Equal(t, "6", r.DecimalString())
}

func TestFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("save and load", func(t *testing.T) {
		path := filepath.Join(dir, "number.txt")

		err := ring.Parse("987654321").Save(path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "987654321", string(data))

		r := ring.Load(path)
		require.Equal(t, "987654321", r.DecimalString())

		r, err = ring.LoadBase(path, 10)
		require.NoError(t, err)
		require.Equal(t, "987654321", r.String())
	})

	t.Run("save empty", func(t *testing.T) {
		path := filepath.Join(dir, "empty.txt")

		require.NoError(t, ring.New().Save(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "0", string(data))
	})

	t.Run("load first line", func(t *testing.T) {
		path := filepath.Join(dir, "lines.txt")
		require.NoError(t, os.WriteFile(path, []byte("  42 \n17\n"), 0o644))

		require.Equal(t, "42", ring.Load(path).DecimalString())
	})

	t.Run("load long number", func(t *testing.T) {
		path := filepath.Join(dir, "long.txt")
		n := "1" + strings.Repeat("0", 70000)

		require.NoError(t, os.WriteFile(path, []byte(n+"\n"), 0o644))
		require.Equal(t, n, ring.Load(path).DecimalString())

		r, err := ring.ParseBase(n, 256)
		require.NoError(t, err)
		require.NoError(t, r.Save(path))

		r, err = ring.LoadBase(path, 256)
		require.NoError(t, err)
		require.Equal(t, n, r.DecimalString())
	})

	t.Run("load failures", func(t *testing.T) {
		require.True(t, ring.Load(filepath.Join(dir, "missing.txt")).IsEmpty())

		path := filepath.Join(dir, "garbage.txt")
		require.NoError(t, os.WriteFile(path, []byte("-12\n"), 0o644))
		require.True(t, ring.Load(path).IsEmpty())

		_, err := ring.LoadBase(path, 0)
		require.True(t, ring.InvalidBase.Has(err))
	})

	t.Run("save failure", func(t *testing.T) {
		err := ring.Parse("1").Save(filepath.Join(dir, "missing", "dir", "out.txt"))
		require.Error(t, err)
	})
}

func TestChangeScale(t *testing.T) {
	r, err := ring.FromDigits(2, 1, 0, 1, 0)
	require.NoError(t, err)

	scaled := r.ChangeScale()
	require.Equal(t, ring.ScaleBase, scaled.Base())
	require.Equal(t, []uint8{1, 0, 1}, scaled.Digits())
	require.Equal(t, "10", scaled.DecimalString())

	// The source is untouched.
	require.Equal(t, "1010", r.String())

	zero := ring.New().ChangeScale()
	require.Equal(t, []uint8{0}, zero.Digits())

	large := ring.Parse("123456789012345678901234567890").ChangeScale()
	require.Equal(t, "123456789012345678901234567890", large.DecimalString())
}

func TestChangeBase(t *testing.T) {
	r := ring.Parse("255")

	hex, err := r.ChangeBase(16)
	require.NoError(t, err)
	require.Equal(t, []uint8{15, 15}, hex.Digits())

	same, err := r.ChangeBase(2)
	require.NoError(t, err)
	require.True(t, same.Equal(r))

	_, err = r.ChangeBase(300)
	require.True(t, ring.InvalidBase.Has(err))
}

func TestAnd(t *testing.T) {
	a := ring.Parse("12")
	b := ring.Parse("10")
	require.Equal(t, "1100", a.String())
	require.Equal(t, "1010", b.String())

	c, err := a.And(b)
	require.NoError(t, err)
	require.Equal(t, ring.DefaultBase, c.Base())
	require.Equal(t, "1000", c.String())
	require.Equal(t, "8", c.DecimalString())

	// Operands in other bases are compared by value.
	d, err := ring.ParseBase("10", 3)
	require.NoError(t, err)

	c, err = a.And(d)
	require.NoError(t, err)
	require.Equal(t, "8", c.DecimalString())

	c, err = ring.Parse("5").And(ring.Parse("2"))
	require.NoError(t, err)
	require.Equal(t, []uint8{0}, c.Digits())

	c, err = ring.New().And(a)
	require.NoError(t, err)
	require.Equal(t, []uint8{0}, c.Digits())

	require.Equal(t, "1100", a.String())
	require.Equal(t, "1010", b.String())

	_, err = a.And(nil)
	require.True(t, ring.InvalidArgument.Has(err))
}
