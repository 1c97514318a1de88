package memutils

import "github.com/pkg/errors"

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

// ErrEmptySequence is returned when a chunk allocation sequence is built with no levels
var ErrEmptySequence error = errors.New("chunk allocation sequence must not be empty")

// ErrInvalidLevel is returned when a chunk level falls outside the admissible range
var ErrInvalidLevel error = errors.New("invalid chunk level")

// ErrCommitLimitReached is returned when committing more words would exceed the commit cap
var ErrCommitLimitReached error = errors.New("commit limit reached")
