// Package builder defines the named topology kinds used by command-line and
// document-driven callers to pick a Constructor by string.
package builder

import (
	"fmt"
	"strings"
)

//-----------------------------------------------------------------------------
// Topology Kinds
//-----------------------------------------------------------------------------

// Kind enumerates the constructors reachable by name.
type Kind int

const (
	// KindEmpty maps to Empty(N).
	KindEmpty Kind = iota
	// KindPath maps to Path(N).
	KindPath
	// KindCycle maps to Cycle(N).
	KindCycle
	// KindStar maps to Star(N).
	KindStar
	// KindWheel maps to Wheel(N).
	KindWheel
	// KindComplete maps to Complete(N).
	KindComplete
	// KindBipartite maps to CompleteBipartite(N, M).
	KindBipartite
	// KindGrid maps to Grid(N, M).
	KindGrid
	// KindRandom maps to RandomSparse(N, P).
	KindRandom
	// KindRegular maps to RandomRegular(N, D).
	KindRegular
)

// kindNames maps each Kind to its lower-case name.
var kindNames = [...]string{
	KindEmpty:     "empty",
	KindPath:      "path",
	KindCycle:     "cycle",
	KindStar:      "star",
	KindWheel:     "wheel",
	KindComplete:  "complete",
	KindBipartite: "bipartite",
	KindGrid:      "grid",
	KindRandom:    "random",
	KindRegular:   "regular",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// KindNames returns every kind name in declaration order.
func KindNames() []string {
	out := make([]string, len(kindNames))
	copy(out, kindNames[:])

	return out
}

// ParseKind maps a case-insensitive name to a Kind.
// Unknown names return ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Params carries the numeric arguments of a Kind. Fields a kind does not
// use are ignored.
type Params struct {
	// N is the primary size (vertices, left side, or rows).
	N int
	// M is the secondary size (right side or cols).
	M int
	// P is the edge probability for KindRandom.
	P float64
	// D is the degree for KindRegular.
	D int
}

// Constructor returns the Constructor for k with prm applied. Parameter
// validation happens when the constructor runs.
func (k Kind) Constructor(prm Params) (Constructor, error) {
	switch k {
	case KindEmpty:
		return Empty(prm.N), nil
	case KindPath:
		return Path(prm.N), nil
	case KindCycle:
		return Cycle(prm.N), nil
	case KindStar:
		return Star(prm.N), nil
	case KindWheel:
		return Wheel(prm.N), nil
	case KindComplete:
		return Complete(prm.N), nil
	case KindBipartite:
		return CompleteBipartite(prm.N, prm.M), nil
	case KindGrid:
		return Grid(prm.N, prm.M), nil
	case KindRandom:
		return RandomSparse(prm.N, prm.P), nil
	case KindRegular:
		return RandomRegular(prm.N, prm.D), nil
	default:
		return nil, fmt.Errorf("Constructor: %s: %w", k, ErrUnknownKind)
	}
}
