package quarkgl

import "errors"

var (
	// ErrDegenerateVector reports a zero-length or non-finite vector where a
	// direction was required.
	ErrDegenerateVector = errors.New("quarkgl: degenerate vector")

	// ErrProjection reports a point that cannot be projected: it lies on the
	// camera plane or the result is not finite.
	ErrProjection = errors.New("quarkgl: point cannot be projected")

	ErrInvalidMesh    = errors.New("quarkgl: invalid mesh")
	ErrInvalidCamera  = errors.New("quarkgl: invalid camera")
	ErrInvalidSurface = errors.New("quarkgl: invalid surface")
)
