package domain

import (
	"errors"
	"fmt"
	"slices"
)

// ErrTermCount is returned when the number of term values does not match the arity.
var ErrTermCount = errors.New("term count does not match arity")

// Connective is the current state of one pair's relation label.
type Connective struct {
	Pair    Pair
	Label   string
	Defined bool
}

type connectiveSlot struct {
	label   string
	defined bool
}

// System is one user-constructed instance of an arity: N term values plus
// one optional connective label for every unordered pair of positions.
//
// The set of pairs is fixed at construction; only their values change.
type System struct {
	Name string

	table       *Table
	terms       []string
	connectives []connectiveSlot
}

// NewSystem stores name and terms verbatim and defaults every connective to
// its canonical label.
func NewSystem(table *Table, name string, terms []string) (*System, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: nil table", ErrUnsupportedArity)
	}
	if len(terms) != table.Size() {
		return nil, fmt.Errorf("%w: %s needs %d terms, got %d", ErrTermCount, table.Arity().Name(), table.Size(), len(terms))
	}

	slots := make([]connectiveSlot, len(table.connectives))
	for i, label := range table.connectives {
		slots[i] = connectiveSlot{label: label, defined: true}
	}

	return &System{
		Name:        name,
		table:       table,
		terms:       slices.Clone(terms),
		connectives: slots,
	}, nil
}

// Table returns the canonical table the system was built from.
func (s *System) Table() *Table { return s.table }

// Arity returns N.
func (s *System) Arity() Arity { return s.table.Arity() }

// Instances returns the term values in canonical position order.
func (s *System) Instances() []string {
	return slices.Clone(s.terms)
}

// Term returns the value at canonical index i.
func (s *System) Term(i int) string {
	return s.terms[i]
}

// SetTerm replaces the value at canonical index i.
func (s *System) SetTerm(i int, value string) {
	s.terms[i] = value
}

// Connective returns the label for (i, j) and whether it is defined.
func (s *System) Connective(i, j int) (string, bool) {
	slot := s.connectives[s.mustSlot(i, j)]
	return slot.label, slot.defined
}

// SetConnective overrides the label for (i, j). A diagonal or out-of-range
// pair is a programming error and panics.
func (s *System) SetConnective(i, j int, label string) {
	s.connectives[s.mustSlot(i, j)] = connectiveSlot{label: label, defined: true}
}

// ClearConnective marks the pair (i, j) as having no connective.
func (s *System) ClearConnective(i, j int) {
	s.connectives[s.mustSlot(i, j)] = connectiveSlot{}
}

// ClearConnectives clears every pair.
func (s *System) ClearConnectives() {
	for i := range s.connectives {
		s.connectives[i] = connectiveSlot{}
	}
}

// Connectives returns every pair's state in row-major i<j order.
func (s *System) Connectives() []Connective {
	pairs := s.table.Pairs()
	out := make([]Connective, len(pairs))
	for k, p := range pairs {
		slot := s.connectives[k]
		out[k] = Connective{Pair: p, Label: slot.label, Defined: slot.defined}
	}
	return out
}

// HasTerms reports whether at least one term is non-empty.
func (s *System) HasTerms() bool {
	for _, t := range s.terms {
		if t != "" {
			return true
		}
	}
	return false
}

// HasConnectives reports whether at least one connective is defined.
func (s *System) HasConnectives() bool {
	for _, c := range s.connectives {
		if c.defined {
			return true
		}
	}
	return false
}

func (s *System) mustSlot(i, j int) int {
	n := s.table.Size()
	p, err := NewPair(n, i, j)
	if err != nil {
		panic(err)
	}
	return p.Index(n)
}
