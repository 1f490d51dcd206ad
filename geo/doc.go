// Package geo provides decimal-degree points and the surface distance formulas
// used to turn a list of stops into a cost matrix.
//
// Two metrics are available:
//
//   - Rhumbline — length of the constant-course (loxodrome) line, the default.
//   - Haversine — great-circle distance on a sphere of radius 6372.8 km.
//
// Both return kilometres. Unit constants convert between kilometres, nautical
// miles and statute miles.
package geo
