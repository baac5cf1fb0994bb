// Command fastgeom evaluates the fastgeom primitives from the command line.
//
// Usage:
//
//	fastgeom intersect x0 y0 x1 y1 x2 y2 x3 y3
//	fastgeom cubic t x0 y0 x1 y1 x2 y2 x3 y3
//	fastgeom quad t x0 y0 x1 y1 x2 y2
//	fastgeom [-n count] [-seed seed] stress
//
// Results are printed as "x y", or "none" when two lines don't intersect.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/ttacon/chalk"

	"honnef.co/go/fastgeom"
)

const opStress = "stress"

var errUsage = errors.New("usage: fastgeom [-n count] [-seed seed] intersect|cubic|quad|stress [arguments]")

func main() {
	log.SetFlags(0)

	count := flag.Int("n", 10000, "number of operations per primitive for stress")
	seed := flag.Int64("seed", 0, "random seed for stress; 0 uses the current time")
	flag.Parse()

	if err := run(os.Stdout, flag.Args(), *count, *seed); err != nil {
		fail(err)
	}
}

func fail(err error) {
	log.Print(chalk.Red.Color(err.Error()))
	var argErr *fastgeom.ArgumentError
	if errors.As(err, &argErr) || errors.Is(err, errUsage) {
		os.Exit(2)
	}
	os.Exit(1)
}

func run(w io.Writer, args []string, count int, seed int64) error {
	if len(args) == 0 {
		return errUsage
	}
	op, args := args[0], args[1:]
	if op == opStress {
		if len(args) != 0 {
			return &fastgeom.ArgumentError{Op: op, Want: 0, Got: len(args), Err: fastgeom.ErrArity}
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return stress(w, count, rand.New(rand.NewSource(seed)))
	}

	t, pts, err := fastgeom.ParseArgs(op, args)
	if err != nil {
		return err
	}

	switch op {
	case fastgeom.OpIntersect:
		pt, ok := fastgeom.Intersect(pts[0], pts[1], pts[2], pts[3])
		if !ok {
			_, err = fmt.Fprintln(w, "none")
			return err
		}
		return printPoint(w, pt)
	case fastgeom.OpCubic:
		return printPoint(w, fastgeom.CubicPoint(t, pts[0], pts[1], pts[2], pts[3]))
	case fastgeom.OpQuadratic:
		return printPoint(w, fastgeom.QuadraticPoint(t, pts[0], pts[1], pts[2]))
	default:
		panic("unreachable")
	}
}

func printPoint(w io.Writer, pt fastgeom.Point) error {
	_, err := fmt.Fprintln(w,
		strconv.FormatFloat(float64(pt.X), 'g', -1, 32),
		strconv.FormatFloat(float64(pt.Y), 'g', -1, 32))
	return err
}
