package geo

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Conversion factors between kilometres, nautical miles and statute miles.
const (
	KmPerNM = 1.852
	KmPerSM = 1.609347
	SMPerNM = 1.150778974

	NMPerKm = 1 / KmPerNM
	SMPerKm = 1 / KmPerSM
	NMPerSM = 1 / SMPerNM
)

// EarthRadiusKm is the radius used by Haversine.
const EarthRadiusKm = 6372.8

// ErrUnknownMetric is returned by ParseMetric for unrecognised names.
var ErrUnknownMetric = errors.New("geo: unknown distance metric")

// Point is a position in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// String renders the point as "lat,lon".
func (p Point) String() string {
	return fmt.Sprintf("%g,%g", p.Lat, p.Lon)
}

// Metric selects a distance formula.
type Metric int

const (
	// MetricRhumbline measures along the constant-course line (default).
	MetricRhumbline Metric = iota
	// MetricHaversine measures along the great circle.
	MetricHaversine
)

// String returns the configuration name of the metric.
func (m Metric) String() string {
	switch m {
	case MetricRhumbline:
		return "rhumbline"
	case MetricHaversine:
		return "haversine"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// ParseMetric maps a configuration name (case-insensitive) to a Metric.
// The empty string selects MetricRhumbline.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rhumbline", "rhumb":
		return MetricRhumbline, nil
	case "haversine", "great-circle":
		return MetricHaversine, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
}

// Distance returns the distance between a and b in kilometres.
func (m Metric) Distance(a, b Point) float64 {
	if m == MetricHaversine {
		return Haversine(a, b)
	}

	return Rhumbline(a, b)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Rhumbline returns the rhumb-line distance from a to b in kilometres.
//
// The true course tc is derived from the longitude difference and the
// difference in Mercator latitude. The distance is Δlat/cos(tc); for courses
// within a hair of due east or west that quotient is ill-conditioned, so the
// parallel-of-latitude length |Δlon|·cos(lat) is used instead.
func Rhumbline(a, b Point) float64 {
	dPhi := math.Log(math.Tan(radians(b.Lat)/2+math.Pi/4) / math.Tan(radians(a.Lat)/2+math.Pi/4))
	tc := math.Mod(math.Atan2(radians(a.Lon-b.Lon), dPhi), 2*math.Pi)
	if tc < 0 {
		tc += 2 * math.Pi
	}

	var nm float64
	if (tc > 1.570795 && tc < 1.570797) || (tc > 4.71238 && tc < 4.71239) {
		nm = 60 * math.Abs(b.Lon-a.Lon) * math.Cos(radians(a.Lat))
	} else {
		nm = 60 * (b.Lat - a.Lat) / math.Cos(tc)
	}

	return nm * KmPerNM
}

// Haversine returns the great-circle distance from a to b in kilometres.
func Haversine(a, b Point) float64 {
	lat1, lat2 := radians(a.Lat), radians(b.Lat)
	dLat := lat2 - lat1
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// Dedupe returns pts with exact duplicates removed, keeping the first
// occurrence of every point in input order, and the number removed.
//
// Complexity: O(n) expected.
func Dedupe(pts []Point) ([]Point, int) {
	seen := make(map[Point]struct{}, len(pts))
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out, len(pts) - len(out)
}
