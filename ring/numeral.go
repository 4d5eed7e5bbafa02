package ring

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/calebcase/digits/decimal"
	"github.com/calebcase/digits/integer"
)

// Parse returns a ring in DefaultBase holding the digits of the base 10
// integer in s. Surrounding whitespace is ignored. Malformed, negative or
// empty input yields an empty ring.
func Parse(s string) *Ring {
	r := New()
	r.fill(s)

	return r
}

// ParseBase is Parse for an arbitrary base. Only an invalid base is
// reported; unparsable input yields an empty ring.
func ParseBase(s string, base int) (*Ring, error) {
	r, err := NewBase(base)
	if err != nil {
		return nil, err
	}

	r.fill(s)

	return r, nil
}

// fill appends the digits of the decimal text s to the empty ring r,
// leaving r empty when s does not parse.
func (r *Ring) fill(s string) {
	logEntry := logrus.WithFields(logrus.Fields{
		"func_name": "fill",
		"base":      r.base,
	})

	v, err := decimal.Parse(s)
	if err != nil {
		logEntry.Debugf("ignoring input %q: %v", s, err)

		return
	}

	digits, err := integer.Digits(v, r.base)
	if err != nil {
		logEntry.Debugf("ignoring input %q: %v", s, err)

		return
	}

	r.extend(digits)
}

// extend appends digits already known to be valid in r's base.
func (r *Ring) extend(digits []uint8) {
	for _, d := range digits {
		r.insertBefore(r.head, d, false)
	}
}

// Load returns a ring in DefaultBase built from the first line of the file
// at path. Any read or parse failure yields an empty ring.
func Load(path string) *Ring {
	r := New()
	r.load(path)

	return r
}

// LoadBase is Load for an arbitrary base.
func LoadBase(path string, base int) (*Ring, error) {
	r, err := NewBase(base)
	if err != nil {
		return nil, err
	}

	r.load(path)

	return r, nil
}

func (r *Ring) load(path string) {
	line, err := decimal.ReadFile(path)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"func_name": "load",
			"path":      path,
		}).Debugf("ignoring file: %v", err)

		return
	}

	r.fill(line)
}

// Save writes the ring's value in base 10 to the file at path.
func (r *Ring) Save(path string) error {
	return decimal.WriteFile(path, r.DecimalString())
}

// value returns the integer the digits represent.
func (r *Ring) value() *big.Int {
	v, err := integer.Value(r.Digits(), r.base)
	if err != nil {
		// Digits are validated on every write.
		panic(err)
	}

	return v
}

// DecimalString returns the ring's value in base 10. An empty ring is "0".
func (r *Ring) DecimalString() string {
	if r.size == 0 {
		return "0"
	}

	return decimal.Format(r.value())
}

// String returns the digits most significant first. Bases up to 36 use one
// character per digit (0-9 then a-z); larger bases separate decimal digits
// with dots. An empty ring is "0".
func (r *Ring) String() string {
	if r.size == 0 {
		return "0"
	}

	sb := &strings.Builder{}

	r.walk(func(pos, i int) bool {
		d := int64(r.nodes[i].digit)

		if r.base <= 36 {
			sb.WriteString(strconv.FormatInt(d, 36))

			return true
		}

		if pos > 0 {
			sb.WriteByte('.')
		}

		sb.WriteString(strconv.FormatInt(d, 10))

		return true
	})

	return sb.String()
}

// ChangeScale returns a new ring holding the same value in ScaleBase.
func (r *Ring) ChangeScale() *Ring {
	scaled, err := r.ChangeBase(ScaleBase)
	if err != nil {
		panic(err)
	}

	return scaled
}

// ChangeBase returns a new ring holding the same value in base. Zero, and
// the empty ring, become a single 0 digit.
func (r *Ring) ChangeBase(base int) (*Ring, error) {
	out, err := NewBase(base)
	if err != nil {
		return nil, err
	}

	v, err := decimal.Parse(r.DecimalString())
	if err != nil {
		return nil, err
	}

	digits, err := integer.Digits(v, base)
	if err != nil {
		return nil, err
	}

	out.extend(digits)

	return out, nil
}

// And returns a new base 2 ring holding the bitwise AND of the values of r
// and other.
func (r *Ring) And(other *Ring) (*Ring, error) {
	if other == nil {
		return nil, InvalidArgument.New("nil operand")
	}

	x, err := decimal.Parse(r.DecimalString())
	if err != nil {
		return nil, err
	}

	y, err := decimal.Parse(other.DecimalString())
	if err != nil {
		return nil, err
	}

	v, err := integer.And(x, y)
	if err != nil {
		return nil, err
	}

	digits, err := integer.Digits(v, DefaultBase)
	if err != nil {
		return nil, err
	}

	out := New()
	out.extend(digits)

	return out, nil
}
