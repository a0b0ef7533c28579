package testutil

import (
	"fmt"

	"github.com/alexanderramin/systematics/internal/domain"
)

// System options
type SystemOption func(*domain.System)

func WithName(name string) SystemOption {
	return func(s *domain.System) {
		s.Name = name
	}
}

func WithTerms(terms ...string) SystemOption {
	return func(s *domain.System) {
		for i, t := range terms {
			s.SetTerm(i, t)
		}
	}
}

func WithConnective(i, j int, label string) SystemOption {
	return func(s *domain.System) {
		s.SetConnective(i, j, label)
	}
}

func WithClearedConnective(i, j int) SystemOption {
	return func(s *domain.System) {
		s.ClearConnective(i, j)
	}
}

func WithoutConnectives() SystemOption {
	return func(s *domain.System) {
		s.ClearConnectives()
	}
}

// NewTestSystem returns a system of arity a named "Test <Arity>" whose terms
// are "t1".."tN" and whose connectives hold the canonical labels.
func NewTestSystem(a domain.Arity, opts ...SystemOption) *domain.System {
	table := domain.MustTable(a)
	terms := make([]string, table.Size())
	for i := range terms {
		terms[i] = fmt.Sprintf("t%d", i+1)
	}

	s, err := domain.NewSystem(table, "Test "+a.Name(), terms)
	if err != nil {
		panic(err)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
