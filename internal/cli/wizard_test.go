package cli

import (
	"testing"

	"github.com/alexanderramin/systematics/internal/builder"
	"github.com/alexanderramin/systematics/internal/domain"
	"github.com/alexanderramin/systematics/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOptionalText(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateOptionalText(""))
	assert.NoError(t, validateOptionalText("  "))
	assert.NoError(t, validateOptionalText("Range of potential"))
	assert.ErrorIs(t, validateOptionalText("a_b"), validate.ErrInvalidCharacter)
}

func TestValidateRequiredText(t *testing.T) {
	t.Parallel()
	check := validateRequiredText("Essence")
	assert.NoError(t, check("Being"))

	err := check("")
	require.Error(t, err)
	assert.Equal(t, "Essence is required. Please enter a value.", err.Error())
}

func TestSystemForm_DraftKeepsOverrides(t *testing.T) {
	t.Parallel()
	table := domain.MustTable(domain.Pentad)
	sf := newSystemForm(table, builder.ProfileFor(domain.Pentad))
	require.NotNil(t, sf.build())
	assert.True(t, sf.modify)

	sf.name = "Design"
	copy(sf.terms, []string{"a", "b", "", "d", "e"})
	sf.connectives[0] = "Bridge"

	sys, err := builder.Assemble(table, sf.profile, sf.draft())
	require.NoError(t, err)
	assert.Equal(t, "Design", sys.Name)
	assert.Equal(t, "Default Inner Lower Limit", sys.Term(2))

	label, ok := sys.Connective(0, 1)
	assert.True(t, ok)
	assert.Equal(t, "Bridge", label)
	label, _ = sys.Connective(0, 2)
	assert.Equal(t, "Operation", label)
}

func TestSystemForm_DraftClearsWhenDeclined(t *testing.T) {
	t.Parallel()
	table := domain.MustTable(domain.Tetrad)
	sf := newSystemForm(table, builder.ProfileFor(domain.Tetrad))
	require.NotNil(t, sf.build())
	assert.False(t, sf.modify)

	sf.connectives[0] = "ignored"
	sf.clearAll = true
	d := sf.draft()
	assert.Nil(t, d.Connectives)
	assert.True(t, d.ClearConnectives)

	sys, err := builder.Assemble(table, sf.profile, d)
	require.NoError(t, err)
	assert.Equal(t, "Unnamed Tetrad", sys.Name)
	assert.False(t, sys.HasConnectives())
}

func TestSystemForm_RequiredTermsFailAssembly(t *testing.T) {
	t.Parallel()
	table := domain.MustTable(domain.Triad)
	sf := newSystemForm(table, builder.ProfileFor(domain.Triad))
	require.NotNil(t, sf.build())

	sf.terms[0] = "Act"
	_, err := builder.Assemble(table, sf.profile, sf.draft())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Passive is required")
	assert.Contains(t, err.Error(), "Reconciling is required")
}
