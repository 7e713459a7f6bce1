package g1cplx

// KeyResolver looks up named scalars and arrays from an opaque message
// handle. The decoder never mutates or caches the handle; it is
// read-only from g1cplx's point of view.
//
// Implementations are expected to return a *MissingKeyError or
// *WrongTypeError (wrapped with a stack via github.com/pkg/errors,
// conventionally) when a key is absent or has the wrong type in the
// underlying message. g1cplx propagates whatever the resolver returns
// unchanged.
type KeyResolver interface {
	// GetLong returns the scalar integer value for name.
	GetLong(name string) (int64, error)

	// GetDouble returns the scalar floating-point value for name.
	GetDouble(name string) (float64, error)

	// GetLongArray returns exactly expectedSize entries for name. The
	// size is agreed out-of-band, typically via a prior GetLong call
	// (numberOfGroups, in this decoder's case).
	GetLongArray(name string, expectedSize int) ([]int64, error)
}
