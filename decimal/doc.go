// Package decimal provides the base 10 text boundary for non-negative
// integers.
//
// Text
//
// Parse accepts an optional amount of surrounding whitespace around a base 10
// integer literal:
//
//  "12345"     -> 12345
//  "  42\n"    -> 42
//  "+7"        -> 7
//  "-1"        -> ErrNegative
//  "1.5", ""   -> ErrSyntax
//
// Format renders the canonical base 10 form. A nil value renders as "0".
//
// Files
//
// ReadFile returns the first line of a file, WriteFile replaces the contents
// of a file with the given text. Neither interprets the text.
package decimal
