package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedArity is returned when a choice does not name a supported arity.
var ErrUnsupportedArity = errors.New("unsupported arity")

// Arity is the number of canonical positions in a system.
type Arity int

const (
	Monad   Arity = 1
	Dyad    Arity = 2
	Triad   Arity = 3
	Tetrad  Arity = 4
	Pentad  Arity = 5
	Hexad   Arity = 6
	Heptad  Arity = 7
	Octad   Arity = 8
	Dodecad Arity = 12
)

var arityNames = map[Arity]string{
	Monad:   "Monad",
	Dyad:    "Dyad",
	Triad:   "Triad",
	Tetrad:  "Tetrad",
	Pentad:  "Pentad",
	Hexad:   "Hexad",
	Heptad:  "Heptad",
	Octad:   "Octad",
	Dodecad: "Dodecad",
}

// SupportedArities lists every arity in ascending order.
func SupportedArities() []Arity {
	return []Arity{Monad, Dyad, Triad, Tetrad, Pentad, Hexad, Heptad, Octad, Dodecad}
}

// Valid reports whether a is one of the supported arities.
func (a Arity) Valid() bool {
	_, ok := arityNames[a]
	return ok
}

// Name returns the system name for the arity, e.g. "Pentad".
func (a Arity) Name() string {
	if name, ok := arityNames[a]; ok {
		return name
	}
	return fmt.Sprintf("%d-ad", int(a))
}

func (a Arity) String() string {
	return a.Name()
}

// PairCount returns C(N,2), the number of unordered position pairs.
func (a Arity) PairCount() int {
	n := int(a)
	return n * (n - 1) / 2
}

// ParseArity parses a decimal arity choice such as "5".
func ParseArity(s string) (Arity, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrUnsupportedArity, s)
	}
	a := Arity(n)
	if !a.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedArity, n)
	}
	return a, nil
}
