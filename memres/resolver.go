// Package memres provides an in-memory KeyResolver backed by plain Go
// maps, for callers that have already extracted a second-order block's
// scalar and array parameters without linking a full GRIB message
// parser — most commonly, tests.
package memres

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mmp/g1cplx"
)

// Resolver is a g1cplx.KeyResolver backed by in-memory maps.
type Resolver struct {
	longs   map[string]int64
	doubles map[string]float64
	arrays  map[string][]int64
}

// NewResolver builds a Resolver from the given scalar and array maps.
// Any of the three maps may be nil, which behaves the same as empty.
func NewResolver(longs map[string]int64, doubles map[string]float64, arrays map[string][]int64) *Resolver {
	return &Resolver{longs: longs, doubles: doubles, arrays: arrays}
}

// GetLong implements g1cplx.KeyResolver.
func (r *Resolver) GetLong(name string) (int64, error) {
	v, ok := r.longs[name]
	if !ok {
		return 0, errors.WithStack(&g1cplx.MissingKeyError{Key: name})
	}
	return v, nil
}

// GetDouble implements g1cplx.KeyResolver.
func (r *Resolver) GetDouble(name string) (float64, error) {
	v, ok := r.doubles[name]
	if !ok {
		return 0, errors.WithStack(&g1cplx.MissingKeyError{Key: name})
	}
	return v, nil
}

// GetLongArray implements g1cplx.KeyResolver. It returns a
// *g1cplx.WrongTypeError if the stored array's length does not match
// expectedSize, matching the source's convention that the array's size
// is agreed out-of-band (typically via a prior GetLong call) and a
// mismatch indicates the caller and the message disagree about shape.
func (r *Resolver) GetLongArray(name string, expectedSize int) ([]int64, error) {
	v, ok := r.arrays[name]
	if !ok {
		return nil, errors.WithStack(&g1cplx.MissingKeyError{Key: name})
	}
	if len(v) != expectedSize {
		return nil, errors.WithStack(&g1cplx.WrongTypeError{
			Key:  name,
			Want: arraySizeDescription(expectedSize),
			Got:  arraySizeDescription(len(v)),
		})
	}
	out := make([]int64, len(v))
	copy(out, v)
	return out, nil
}

func arraySizeDescription(n int) string {
	if n == 1 {
		return "array of 1 entry"
	}
	return fmt.Sprintf("array of %d entries", n)
}
