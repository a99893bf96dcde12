// Package bigerr defines the distinct error kinds the bignum library can
// report. Callers distinguish kinds with errors.Is, not type assertions.
package bigerr

import "errors"

// Sentinel error kinds. Wrap these with fmt.Errorf("...: %w", ErrX) to add
// call-site context; errors.Is(err, ErrDomain) etc. still matches through
// the wrap.
var (
	// ErrParse reports a malformed decimal string: non-digit, empty, or a
	// stray sign where none is permitted (BigUint parsing).
	ErrParse = errors.New("bignum: parse error")

	// ErrConversion reports a NaN/infinite float, or a negative float
	// given to a BigUint. Narrowing to a native integer (Int64, Uint64)
	// truncates silently and never reports it.
	ErrConversion = errors.New("bignum: conversion error")

	// ErrDomain reports an operation invalid for its operands: unsigned
	// subtraction going negative, division or modulo by zero, a negative
	// exponent.
	ErrDomain = errors.New("bignum: domain error")

	// ErrFormat reports a truncated or malformed serialized file.
	ErrFormat = errors.New("bignum: format error")

	// ErrIO wraps an underlying file read/write failure.
	ErrIO = errors.New("bignum: io error")
)
