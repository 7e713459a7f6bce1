package g1cplx

import (
	"fmt"

	"github.com/mmp/g1cplx/internal/bitio"
	"github.com/mmp/g1cplx/internal/numeric"
)

// Params holds the scalar parameters of one second-order packed block,
// resolved once at the start of a decode call. It is the "plain
// configuration record populated at construction" the accessor-class
// hierarchy in the source collapses down to; there is no further
// lazy-accessor indirection once Params exists.
type Params struct {
	NumberOfGroups                  int64
	WidthOfFirstOrderValues         int
	NumberOfSecondOrderPackedValues int64
	BinaryScaleFactor               int64
	DecimalScaleFactor              int64
	ReferenceValue                  float64
}

// ResolveParams resolves the six named scalars and the groupWidths
// array for one second-order block from r, in the order the source
// looks them up in. It does not perform the output-capacity check —
// that is Decoder.Decode's job, since ResolveParams has no output
// buffer to check against. Decode delegates to ResolveParams for this
// sequence rather than repeating it, so the two cannot drift apart.
func ResolveParams(r KeyResolver) (Params, []int64, error) {
	numberOfGroups, err := r.GetLong("numberOfGroups")
	if err != nil {
		return Params{}, nil, err
	}

	widthOfFirstOrderValues, err := r.GetLong("widthOfFirstOrderValues")
	if err != nil {
		return Params{}, nil, err
	}

	numberOfSecondOrderPackedValues, err := r.GetLong("numberOfSecondOrderPackedValues")
	if err != nil {
		return Params{}, nil, err
	}

	binaryScaleFactor, err := r.GetLong("binary_scale_factor")
	if err != nil {
		return Params{}, nil, err
	}

	decimalScaleFactor, err := r.GetLong("decimal_scale_factor")
	if err != nil {
		return Params{}, nil, err
	}

	referenceValue, err := r.GetDouble("reference_value")
	if err != nil {
		return Params{}, nil, err
	}

	groupWidths, err := r.GetLongArray("groupWidths", int(numberOfGroups))
	if err != nil {
		return Params{}, nil, err
	}

	params := Params{
		NumberOfGroups:                  numberOfGroups,
		WidthOfFirstOrderValues:         int(widthOfFirstOrderValues),
		NumberOfSecondOrderPackedValues: numberOfSecondOrderPackedValues,
		BinaryScaleFactor:               binaryScaleFactor,
		DecimalScaleFactor:              decimalScaleFactor,
		ReferenceValue:                  referenceValue,
	}

	return params, groupWidths, nil
}

// Decoder decodes GRIB Edition-1 second-order packed data. It carries
// no state of its own; a zero-value Decoder{} is ready to use, and one
// instance may be reused or shared freely across concurrent decodes
// (each Decode call owns only its own transient buffers).
type Decoder struct{}

// Decode reconstructs a second-order packed field from buf starting at
// byteOffset, writing up to len(out) values into out and returning the
// number of values written (always NumberOfSecondOrderPackedValues on
// success).
//
// On any failure out is left untouched: parameter resolution failures
// and the capacity check happen before any bit is read, and an
// invariant violation discovered mid-decode (the bitmap's `1`-count not
// matching numberOfGroups) is reported as *InternalError before out is
// written.
func (d Decoder) Decode(r KeyResolver, buf []byte, byteOffset int, out []float64) (int, error) {
	// numberOfSecondOrderPackedValues is looked up once here, ahead of
	// ResolveParams, purely to gate the capacity check before any array
	// is resolved or allocated; ResolveParams re-reads it as part of its
	// own sequence, which is harmless since a KeyResolver is read-only.
	numberOfSecondOrderPackedValues, err := r.GetLong("numberOfSecondOrderPackedValues")
	if err != nil {
		return 0, err
	}

	nv := int(numberOfSecondOrderPackedValues)
	if len(out) < nv {
		return 0, &ArrayTooSmallError{Have: len(out), Want: nv}
	}

	params, groupWidthsRaw, err := ResolveParams(r)
	if err != nil {
		return 0, err
	}

	ng := int(params.NumberOfGroups)
	groupWidths := make([]int, ng)
	for i, w := range groupWidthsRaw {
		groupWidths[i] = int(w)
	}

	wf := params.WidthOfFirstOrderValues
	binaryScaleFactor := params.BinaryScaleFactor
	decimalScaleFactor := params.DecimalScaleFactor
	referenceValue := params.ReferenceValue

	cursor := bitio.NewBitCursor(buf, byteOffset)

	if cursor.RemainingBits() < nv {
		return 0, &InternalError{Message: fmt.Sprintf("buffer too short for %d-bit secondary bitmap", nv)}
	}

	// Secondary bitmap: nv bits read, plus a sentinel 1 appended so the
	// final group's length scan always terminates without a special case.
	bitmap := make([]uint64, nv+1)
	cursor.ReadUnsignedArray(1, nv, bitmap[:nv])
	bitmap[nv] = 1
	cursor.AlignToByte()

	if cursor.RemainingBits() < ng*wf {
		return 0, &InternalError{Message: fmt.Sprintf("buffer too short for %d first-order values of width %d", ng, wf)}
	}

	firstOrderValues := make([]int64, ng)
	for i := 0; i < ng; i++ {
		firstOrderValues[i] = int64(cursor.ReadUnsigned(wf))
	}
	cursor.AlignToByte()

	x := make([]int64, nv)
	n, g, groupCount := 0, -1, 0
	for n < nv {
		if bitmap[n] != 1 {
			return 0, &InternalError{Message: fmt.Sprintf("secondary bitmap desynchronised at element %d", n)}
		}

		g++
		groupCount++
		if g >= ng {
			return 0, &InternalError{Message: fmt.Sprintf("secondary bitmap yields more than %d groups", ng)}
		}

		length := 1
		for bitmap[n+length] != 1 {
			length++
		}

		width := groupWidths[g]
		if width > 0 {
			if cursor.RemainingBits() < length*width {
				return 0, &InternalError{Message: fmt.Sprintf("buffer too short for group %d residuals", g)}
			}
			for j := 0; j < length; j++ {
				x[n+j] = firstOrderValues[g] + int64(cursor.ReadUnsigned(width))
			}
		} else {
			for j := 0; j < length; j++ {
				x[n+j] = firstOrderValues[g]
			}
		}

		n += length
	}

	if groupCount != ng {
		return 0, &InternalError{Message: fmt.Sprintf("secondary bitmap yields %d groups, expected %d", groupCount, ng)}
	}

	scaling := numeric.NewScaling(int(binaryScaleFactor), int(decimalScaleFactor), referenceValue)
	for i := 0; i < nv; i++ {
		out[i] = scaling.Apply(x[i])
	}

	return nv, nil
}

// DecodeFloat32 is Decode narrowed to float32 at the final write, for
// callers whose field storage is single precision. All intermediate
// arithmetic remains double precision; only the last assignment narrows.
func (d Decoder) DecodeFloat32(r KeyResolver, buf []byte, byteOffset int, out []float32) (int, error) {
	wide := make([]float64, len(out))
	n, err := d.Decode(r, buf, byteOffset, wide)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		out[i] = float32(wide[i])
	}
	return n, nil
}
