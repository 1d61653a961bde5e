package domain

import "errors"

// ErrUnsolvable is the normal outcome for a grid whose constraints
// cannot be satisfied: reduction emptied a candidate set in every
// explored branch, or every branch candidate was exhausted.
var ErrUnsolvable = errors.New("puzzle is unsolvable")

// ErrInvalidInput rejects malformed grid encodings (wrong length or an
// illegal character) before any solving state is built.
var ErrInvalidInput = errors.New("invalid grid encoding")
