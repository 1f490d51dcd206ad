// Package routeopt finds short closed routes through a set of stops.
//
// 🚀 What is routeopt?
//
//	A small, dependency-light toolkit around one pipeline:
//		• Prim minimum spanning tree over a dense integer cost matrix
//		• Greedy matching of the odd-degree tree vertices
//		• Eulerian circuit of the combined multigraph (iterative Hierholzer)
//		• Shortcutting into a Hamiltonian cycle
//		• First-improvement 2-opt until no improving move remains
//
// ✨ Around the solver:
//
//   - geo/        – points, rhumb-line and great-circle distances, unit constants
//   - costmatrix/ – points → integer cost matrix with automatic distance scaling
//   - csvio/      – coordinate and matrix CSV readers
//   - kml/        – route export for Google Earth
//   - metrics/    – Prometheus textfile metrics for a run
//   - tsp/        – the solver itself
//
// The routeopt command (cmd/routeopt) ties them together:
//
//	routeopt solve stops.csv      # writes stops.kml and prints the route
//	routeopt matrix costs.csv     # solves an explicit cost matrix
//
// Tours are approximate. The greedy matching step gives up Christofides'
// worst-case ratio; 2-opt usually brings the result within a few percent of
// the optimum.
package routeopt
