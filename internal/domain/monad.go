package domain

import "slices"

// MonadSystem is the arity-1 system: a name and a free-form, growable list
// of terms.
type MonadSystem struct {
	Name  string
	terms []string
}

// NewMonad creates an empty monad.
func NewMonad(name string) *MonadSystem {
	return &MonadSystem{Name: name}
}

// AddTerm appends a term.
func (m *MonadSystem) AddTerm(term string) {
	m.terms = append(m.terms, term)
}

// Terms returns the terms in insertion order.
func (m *MonadSystem) Terms() []string {
	return slices.Clone(m.terms)
}

// HasTerms reports whether any term has been added.
func (m *MonadSystem) HasTerms() bool {
	return len(m.terms) > 0
}

// CoreAttribute returns the monad's descriptive phrase.
func (m *MonadSystem) CoreAttribute() string {
	return MustTable(Monad).CoreAttribute()
}
