package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePermutations_FixedOrder(t *testing.T) {
	perms := GeneratePermutations("A", "B", "C")
	require.Len(t, perms, 6)

	want := []string{
		"Expansion: A → B → C",
		"Interaction: A → C → B",
		"Concentration: B → A → C",
		"Identity: B → C → A",
		"Order: C → A → B",
		"Freedom: C → B → A",
	}
	for i, p := range perms {
		assert.Equal(t, want[i], p.String())
	}
}

func TestGeneratePermutations_NamesIndependentOfInput(t *testing.T) {
	perms := GeneratePermutations("Same", "Same", "Same")
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Expansion", "Interaction", "Concentration", "Identity", "Order", "Freedom"}, names)
}

func TestGeneratePermutations_SpecialCharacters(t *testing.T) {
	perms := GeneratePermutations("Term-1", "Term (2)", "Term.3")
	assert.Equal(t, "Expansion: Term-1 → Term (2) → Term.3", perms[0].String())
}
