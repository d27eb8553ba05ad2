// Package lvcover is an in-memory toolkit for vertex covers and independent
// sets of small undirected graphs.
//
// What is inside?
//
//	core/     - thread-safe string-keyed undirected Graph (vertices, edges, neighbors)
//	builder/  - deterministic topology constructors (path, cycle, star, grid, random…)
//	cover/    - exact and randomized vertex-cover solvers, IsCover, complements
//	graphio/  - YAML/JSON graph documents and result documents
//	cmd/lvcover - command line front-end: generate, solve, version
//
// Cover rule:
//
// A vertex outside a cover must have at least one neighbor and every neighbor
// must be inside the cover. Isolated vertices therefore always belong to the
// cover.
//
// Quick ASCII example:
//
//	a───b───c───d
//
// The minimum cover is {a, c}; its complement {b, d} is the independent set.
//
//	lvcover generate path --n 4 | lvcover solve
package lvcover
