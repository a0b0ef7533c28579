package domain

import "fmt"

// Permutation is one ordering of three terms in sequence.
type Permutation struct {
	Name       string
	Initiating string
	Colouring  string
	Outcome    string
}

func (p Permutation) String() string {
	return fmt.Sprintf("%s: %s → %s → %s", p.Name, p.Initiating, p.Colouring, p.Outcome)
}

// GeneratePermutations returns the six orderings of a, b, c. Names and
// order are fixed and do not depend on the input values.
func GeneratePermutations(a, b, c string) []Permutation {
	return []Permutation{
		{Name: "Expansion", Initiating: a, Colouring: b, Outcome: c},
		{Name: "Interaction", Initiating: a, Colouring: c, Outcome: b},
		{Name: "Concentration", Initiating: b, Colouring: a, Outcome: c},
		{Name: "Identity", Initiating: b, Colouring: c, Outcome: a},
		{Name: "Order", Initiating: c, Colouring: a, Outcome: b},
		{Name: "Freedom", Initiating: c, Colouring: b, Outcome: a},
	}
}
