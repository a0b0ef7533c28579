package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidPair is returned for a diagonal or out-of-range position pair.
var ErrInvalidPair = errors.New("invalid position pair")

// Pair is an unordered pair of distinct position indices, stored with I < J.
type Pair struct {
	I int
	J int
}

// NewPair normalises (i, j) so that I < J. It rejects diagonal and
// out-of-range pairs for a system of n positions.
func NewPair(n, i, j int) (Pair, error) {
	if i == j || i < 0 || j < 0 || i >= n || j >= n {
		return Pair{}, fmt.Errorf("%w: (%d,%d) for %d positions", ErrInvalidPair, i, j, n)
	}
	if i > j {
		i, j = j, i
	}
	return Pair{I: i, J: j}, nil
}

// Pairs enumerates every pair for n positions in row-major i<j order.
func Pairs(n int) []Pair {
	if n < 2 {
		return nil
	}
	out := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pair{I: i, J: j})
		}
	}
	return out
}

// Index returns the slot of p in the Pairs(n) enumeration.
func (p Pair) Index(n int) int {
	// Rows 0..I-1 contribute (n-1)+(n-2)+...+(n-I) slots.
	return p.I*(2*n-p.I-1)/2 + (p.J - p.I - 1)
}

// Code returns the two position letters, e.g. "AB".
func (p Pair) Code() string {
	return PositionLetter(p.I) + PositionLetter(p.J)
}

// Display returns the pair code in report form, e.g. "A<>B".
func (p Pair) Display() string {
	return PositionLetter(p.I) + "<>" + PositionLetter(p.J)
}

// PositionLetter returns the letter assigned to a canonical index (0 -> "A").
func PositionLetter(i int) string {
	return string(rune('A' + i))
}
