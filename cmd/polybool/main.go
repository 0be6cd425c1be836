package main

import (
	"fmt"
	"os"

	"github.com/osuushi/polybool"
	"github.com/osuushi/polybool/booleanop"
)

// Demo of the Boolean operations. Reads two polygons in the plain-text
// polygon format, applies the requested operation, and either writes
// the result to a file or prints it to stdout. With -d, the result is
// also rendered into the terminal.
//
// Usage: polybool <subject> <clipping> <I|U|D|X> [result] [-d]

func main() {
	args := os.Args[1:]
	draw := false
	if n := len(args); n > 0 && args[n-1] == "-d" {
		draw = true
		args = args[:n-1]
	}
	if len(args) < 3 || len(args) > 4 {
		fmt.Fprintln(os.Stderr, "usage: polybool <subject> <clipping> <I|U|D|X> [result] [-d]")
		os.Exit(1)
	}

	subject, err := booleanop.ReadPolygonFile(args[0])
	if err != nil {
		fatal(err)
	}
	clipping, err := booleanop.ReadPolygonFile(args[1])
	if err != nil {
		fatal(err)
	}

	var op polybool.Op
	switch args[2] {
	case "I":
		op = polybool.OpIntersection
	case "U":
		op = polybool.OpUnion
	case "D":
		op = polybool.OpDifference
	case "X":
		op = polybool.OpXor
	default:
		fatal(fmt.Errorf("unknown operation %q (want I, U, D or X)", args[2]))
	}

	result, err := polybool.Compute(subject, clipping, op)
	if err != nil {
		fatal(err)
	}

	if len(args) == 4 {
		if err := booleanop.WritePolygonFile(args[3], result); err != nil {
			fatal(err)
		}
	} else {
		if err := booleanop.WritePolygon(os.Stdout, result); err != nil {
			fatal(err)
		}
	}

	if draw {
		result.DbgDraw(20)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "polybool:", err)
	os.Exit(1)
}
