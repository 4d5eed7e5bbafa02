package ring

import "github.com/zeebo/errs"

// Error classes. Use Has to test an error's kind:
//
//  if ring.IndexOutOfRange.Has(err) { ... }
var (
	IndexOutOfRange        = errs.Class("index out of range")
	InvalidDigit           = errs.Class("invalid digit")
	InvalidBase            = errs.Class("invalid base")
	InvalidArgument        = errs.Class("invalid argument")
	ConcurrentModification = errs.Class("concurrent modification")
	IllegalState           = errs.Class("illegal state")
	NoSuchElement          = errs.Class("no such element")
)
