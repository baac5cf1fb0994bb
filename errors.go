package fastgeom

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrArity is wrapped by an [ArgumentError] when an operation receives the
	// wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
	// ErrUnknownOp is wrapped by an [ArgumentError] for operation names
	// [ParseArgs] does not know.
	ErrUnknownOp = errors.New("unknown operation")
)

// ArgumentError reports arguments that cannot be passed to an operation.
type ArgumentError struct {
	// Op is the name of the operation.
	Op string
	// Arg is the offending argument and Index its position. Both are unset
	// for arity errors.
	Arg   string
	Index int
	// Want and Got are the expected and actual number of arguments.
	Want int
	Got  int
	Err  error
}

func (e *ArgumentError) Error() string {
	switch {
	case errors.Is(e.Err, ErrArity):
		return fmt.Sprintf("fastgeom: %s: want %d arguments, got %d", e.Op, e.Want, e.Got)
	case errors.Is(e.Err, ErrUnknownOp):
		return fmt.Sprintf("fastgeom: %s: %s", e.Op, e.Err)
	default:
		return fmt.Sprintf("fastgeom: %s: argument %d (%q): %s", e.Op, e.Index, e.Arg, e.Err)
	}
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Operation names accepted by [ParseArgs].
const (
	OpIntersect = "intersect"
	OpCubic     = "cubic"
	OpQuadratic = "quad"
)

// ParseArgs validates and parses the textual arguments of the operation op.
//
// [OpIntersect] takes the eight coordinates of four points. [OpCubic] and
// [OpQuadratic] take the parameter t followed by the coordinates of four and
// three control points, respectively. Coordinates are parsed at single
// precision and t at double precision; t is zero for [OpIntersect].
//
// Errors are always of type *[ArgumentError].
func ParseArgs(op string, args []string) (t float64, pts []Point, err error) {
	var npts int
	var hasT bool
	switch op {
	case OpIntersect:
		npts = 4
	case OpCubic:
		npts, hasT = 4, true
	case OpQuadratic:
		npts, hasT = 3, true
	default:
		return 0, nil, &ArgumentError{Op: op, Err: ErrUnknownOp}
	}

	want := 2 * npts
	if hasT {
		want++
	}
	if len(args) != want {
		return 0, nil, &ArgumentError{Op: op, Want: want, Got: len(args), Err: ErrArity}
	}

	if hasT {
		t, err = strconv.ParseFloat(args[0], 64)
		if err != nil {
			return 0, nil, argError(op, 0, args[0], want, err)
		}
		args = args[1:]
	}

	offset := want - len(args)
	pts = make([]Point, npts)
	for i := range pts {
		x, err := strconv.ParseFloat(args[2*i], 32)
		if err != nil {
			return 0, nil, argError(op, offset+2*i, args[2*i], want, err)
		}
		y, err := strconv.ParseFloat(args[2*i+1], 32)
		if err != nil {
			return 0, nil, argError(op, offset+2*i+1, args[2*i+1], want, err)
		}
		pts[i] = Pt(float32(x), float32(y))
	}
	return t, pts, nil
}

func argError(op string, idx int, arg string, want int, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return &ArgumentError{Op: op, Arg: arg, Index: idx, Want: want, Got: want, Err: err}
}
