package main

import (
	"bufio"
	"io"
	"strconv"
	"time"

	"github.com/katalvlaran/routeopt/tsp"
)

// geoReport is the summary printed by "routeopt solve".
type geoReport struct {
	Scale    float64
	Points   int
	Nautical float64
	Tour     tsp.Tour
	Elapsed  time.Duration
}

// writeGeoReport prints the scaling note (when scaling was needed), the point
// count, the distance in nautical miles and the 1-based closed tour.
func writeGeoReport(w io.Writer, r geoReport) error {
	bw := bufio.NewWriter(w)
	if r.Scale != 1 {
		bw.WriteString(strconv.FormatFloat(r.Scale, 'g', -1, 64) + "x distance scaling applied.\n")
	}
	bw.WriteString("Number of coordinates: " + strconv.Itoa(r.Points) + "\n")
	bw.WriteString("Total distance: " + strconv.FormatFloat(r.Nautical, 'f', 1, 64) + "nm\n")
	bw.WriteString("Tour path:")
	writePath(bw, r.Tour.Closed(), 1)
	bw.WriteString("Elapsed: " + r.Elapsed.Round(time.Millisecond).String() + "\n")

	return bw.Flush()
}

// matrixReport is the summary printed by "routeopt matrix".
type matrixReport struct {
	Tour    tsp.Tour
	Elapsed time.Duration
}

// writeMatrixReport prints the vertex count, the cost and the 0-based closed tour.
func writeMatrixReport(w io.Writer, r matrixReport) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("Number of vertices: " + strconv.Itoa(r.Tour.Len()) + "\n")
	bw.WriteString("Tour cost: " + strconv.Itoa(r.Tour.Cost) + "\n")
	bw.WriteString("Tour path:")
	writePath(bw, r.Tour.Closed(), 0)
	bw.WriteString("Elapsed: " + r.Elapsed.Round(time.Millisecond).String() + "\n")

	return bw.Flush()
}

func writePath(bw *bufio.Writer, path []int, base int) {
	for _, v := range path {
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(v + base))
	}
	bw.WriteByte('\n')
}
