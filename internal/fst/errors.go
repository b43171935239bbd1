package fst

import "errors"

// Sentinel errors describing the PreconditionViolation/OutOfRange taxonomy.
// These are programming errors from a caller violating the builder's
// ordering contract; they are returned, never panicked, so a library
// consumer always gets a chance to react.
var (
	// ErrOutOfOrder is returned when Add is called with a key that does not
	// sort at or after the previously added key.
	ErrOutOfOrder = errors.New("fst: input must be added in non-decreasing lexicographic order")

	// ErrEmptyAfterNonEmpty is returned when an empty key is added after a
	// non-empty key has already advanced the frontier. Packed FSTs can only
	// represent an empty key as the first input via a dedicated empty-output
	// slot.
	ErrEmptyAfterNonEmpty = errors.New("fst: empty input is only valid as the first Add call")

	// ErrDuplicateKey is returned when the same key is added twice and the
	// configured Outputs[T] does not support Merge.
	ErrDuplicateKey = errors.New("fst: duplicate key and output algebra does not support merge")

	// ErrLabelOutOfRange is returned when a label falls outside the domain
	// of the configured InputType.
	ErrLabelOutOfRange = errors.New("fst: label out of range for input type")

	// ErrFinished is returned by Add/Finish when the builder has already
	// been finished; mutation after finalization is not supported.
	ErrFinished = errors.New("fst: builder already finished")

	// ErrNotFound is returned by store lookups for a compiled-node handle
	// that does not exist. A missing key is not an error: enumerator seeks
	// return a nil result instead.
	ErrNotFound = errors.New("fst: not found")
)
