// Package g1cplx decodes GRIB Edition-1 "second-order" (complex) packed
// data fields: a bit-level codec that reconstructs a floating-point
// field from a secondary group bitmap, per-group first-order values,
// and per-group variable-width residuals, rescaled through binary and
// decimal exponents into physical units.
//
// g1cplx does not parse GRIB messages itself. Callers supply a
// KeyResolver that can look up the handful of named scalars and arrays
// the decode needs, plus the raw byte buffer and the byte offset of
// the packed data section within it. The memres package provides a
// small in-memory KeyResolver for callers who have already extracted
// those values without linking a full message parser.
//
// Basic usage:
//
//	resolver := memres.NewResolver(longs, doubles, arrays)
//	out := make([]float64, numberOfValues)
//	n, err := (Decoder{}).Decode(resolver, buf, offset, out)
package g1cplx

import "fmt"

// MissingKeyError indicates a KeyResolver had no value for the named key.
//
// Real resolver implementations should construct this with
// github.com/pkg/errors.WithStack so the stack at the point of lookup
// survives to wherever the caller handles the error.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("g1cplx: missing key %q", e.Key)
}

// WrongTypeError indicates a KeyResolver's value for the named key did
// not have the type the decoder requested.
type WrongTypeError struct {
	Key       string
	Want, Got string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("g1cplx: key %q: want %s, got %s", e.Key, e.Want, e.Got)
}

// ArrayTooSmallError indicates the caller's output buffer cannot hold
// the number of values the message declares.
type ArrayTooSmallError struct {
	Have, Want int
}

func (e *ArrayTooSmallError) Error() string {
	return fmt.Sprintf("g1cplx: output array too small: have %d, need %d", e.Have, e.Want)
}

// InternalError signals an invariant the decoder expects a well-formed
// message to uphold was violated mid-decode. The source treats these
// as unreachable given valid input, so their presence signals
// corruption rather than a recoverable condition.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("g1cplx: internal error: %s", e.Message)
}
