// Package errs defines the error values returned by the wkb packages.
//
// Structural failures are reported as *Error values that wrap one of the
// sentinel errors below, so callers can classify them with errors.Is and
// recover positional details with errors.As:
//
//	g, err := raw.Parse(data)
//	if errors.Is(err, errs.ErrMalformedInput) {
//	    var e *errs.Error
//	    if errors.As(err, &e) && e.Index >= 0 {
//	        log.Printf("ring %d rejected: %s", e.Index, e.Reason)
//	    }
//	}
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// WKB structural errors.
var (
	// ErrMalformedInput reports a truncated buffer, a declared-vs-actual length
	// mismatch, an unclosed ring or a negative count.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnsupportedDimension reports a nonzero ordinate selector or reserved
	// Z/M/SRID flag bits in the type code.
	ErrUnsupportedDimension = errors.New("unsupported dimension")
	// ErrUnsupportedGeometryType reports a geometry kind outside the seven
	// recognized kinds.
	ErrUnsupportedGeometryType = errors.New("unsupported geometry type")
	// ErrEndiannessMismatch reports a byte-order byte that differs from the
	// requested order (native order unless configured otherwise).
	ErrEndiannessMismatch = errors.New("endianness mismatch")
	// ErrBufferTooSmall reports a destination buffer shorter than the
	// precomputed encoded length.
	ErrBufferTooSmall = errors.New("buffer too small")
	// ErrInvalidGeometry reports an object-model geometry that cannot be encoded.
	ErrInvalidGeometry = errors.New("invalid geometry")
)

// Geometry set errors.
var (
	ErrInvalidSetHeader  = errors.New("invalid geometry set header")
	ErrChecksumMismatch  = errors.New("geometry set checksum mismatch")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrEncoderFinished   = errors.New("encoder already finished")
	ErrNoGeometries      = errors.New("no geometries added")
	ErrTooManyGeometries = errors.New("too many geometries")
)

// Error carries the position of a structural failure.
type Error struct {
	// Kind is the sentinel error this failure is classified as.
	Kind error
	// Op names the structure being processed, e.g. "polygon" or "read".
	Op string
	// Reason is a short human readable description.
	Reason string
	// Offset is the byte offset of the failing node in the outermost buffer,
	// or -1 when unknown.
	Offset int
	// Index is the ring, child or record index the failure refers to,
	// or -1 when not applicable.
	Index int
}

// New creates an Error of the given kind without positional information.
func New(kind error, op string, format string, args ...any) *Error {
	reason := format
	if len(args) > 0 {
		reason = fmt.Sprintf(format, args...)
	}

	return &Error{
		Kind:   kind,
		Op:     op,
		Reason: reason,
		Offset: -1,
		Index:  -1,
	}
}

// Malformed is shorthand for New(ErrMalformedInput, ...).
func Malformed(op string, format string, args ...any) *Error {
	return New(ErrMalformedInput, op, format, args...)
}

// AtIndex sets the index the error refers to.
func (e *Error) AtIndex(i int) *Error {
	e.Index = i
	return e
}

// AtOffset sets the byte offset of the failing node.
func (e *Error) AtOffset(off int) *Error {
	e.Offset = off
	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}

	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	} else {
		b.WriteString("error")
	}

	if e.Index >= 0 {
		fmt.Fprintf(&b, " (index %d)", e.Index)
	}

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}

	return b.String()
}

// Unwrap returns the sentinel kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Shift adds delta to the offset of err when it is an *Error with a known
// offset. It is used when a failure found in a sub-slice is reported in terms
// of the enclosing buffer.
func Shift(err error, delta int) error {
	var e *Error
	if errors.As(err, &e) && e.Offset >= 0 {
		e.Offset += delta
	}

	return err
}
