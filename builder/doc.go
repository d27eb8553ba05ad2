// Package builder assembles deterministic core.Graph fixtures from composable
// constructors and functional options.
//
// The package offers:
//
//   - BuildGraph / BuildInto: apply Constructors in order to a fresh or
//     existing *core.Graph.
//   - Constructors: Empty, Path, Cycle, Star, Wheel, Complete,
//     CompleteBipartite, Grid, RandomSparse, RandomRegular.
//   - Options: WithIDScheme, WithPrefixedIDs, WithExcelColumnIDs, WithSeed,
//     WithRand, WithPartitionPrefix.
//   - Kind / ParseKind / Params: pick a constructor by name.
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order give identical
//     graphs (vertex IDs, edge IDs and edge order).
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (errors.Is against ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed).
//   - Option constructors panic on programmer error (nil RNG or ID scheme).
//
// Builder graphs double as cover fixtures with known answers: the hub of a
// Star, either side of CompleteBipartite and any n-1 vertices of Complete(n)
// are minimum covers.
package builder
