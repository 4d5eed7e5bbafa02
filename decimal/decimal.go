package decimal

import (
	"bufio"
	"errors"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

var (
	ErrSyntax   = Error.New("invalid syntax")
	ErrNegative = Error.New("negative value")
)

// Parse returns the non-negative integer written in base 10 in s.
func Parse(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrSyntax
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrSyntax
	}

	if v.Sign() < 0 {
		return nil, ErrNegative
	}

	return v, nil
}

// Format returns the base 10 text of v.
func Format(v *big.Int) string {
	if v == nil {
		return "0"
	}

	return v.Text(10)
}

// ReadFile returns the first line of the file at path without its line
// terminator.
func ReadFile(path string) (line string, err error) {
	defer Error.WrapP(&err)

	f, err := os.Open(path)
	if err != nil {
		return "", oops.Trace(err)
	}
	defer func() {
		err = errs.Combine(err, f.Close())
	}()

	line, err = bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", oops.Trace(err)
	}

	// Note: a missing final newline, or an empty file, is not an error.
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

// WriteFile replaces the contents of the file at path with text.
func WriteFile(path, text string) (err error) {
	defer Error.WrapP(&err)

	err = os.WriteFile(path, []byte(text), 0o644)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}
