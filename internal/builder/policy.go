package builder

import (
	"github.com/alexanderramin/systematics/internal/domain"
)

// Policy decides what a blank or invalid answer means for a field.
type Policy int

const (
	// PolicyDefault substitutes the field's default for blank or invalid
	// input, and for a failed read.
	PolicyDefault Policy = iota

	// PolicyRequired reprompts until a valid non-blank value is entered. A
	// failed read aborts construction.
	PolicyRequired
)

func (p Policy) String() string {
	if p == PolicyRequired {
		return "required"
	}
	return "default"
}

// Profile carries the per-arity prompting choices.
type Profile struct {
	TermPolicy Policy

	// ModifyConnectivesDefault is the answer assumed for a blank reply to
	// the "modify connectives" question.
	ModifyConnectivesDefault bool

	// OfferClearAll asks whether to remove every connective when the user
	// declines to modify them.
	OfferClearAll bool
}

// ProfileFor returns the prompting profile for a.
func ProfileFor(a domain.Arity) Profile {
	switch a {
	case domain.Monad, domain.Dyad, domain.Triad:
		return Profile{TermPolicy: PolicyRequired}
	case domain.Tetrad:
		return Profile{TermPolicy: PolicyDefault, ModifyConnectivesDefault: false, OfferClearAll: true}
	case domain.Pentad, domain.Hexad, domain.Heptad, domain.Octad:
		return Profile{TermPolicy: PolicyDefault, ModifyConnectivesDefault: true, OfferClearAll: true}
	default:
		return Profile{TermPolicy: PolicyDefault}
	}
}

// DefaultName is the name used when none is entered, e.g. "Unnamed Pentad".
func DefaultName(a domain.Arity) string {
	return "Unnamed " + a.Name()
}

// DefaultTerm is the value substituted for an optional term left blank.
func DefaultTerm(table *domain.Table, i int) string {
	return "Default " + table.Position(i)
}
