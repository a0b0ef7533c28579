package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Table holds the compiled-in canonical data for one arity: its position
// labels, core attribute and the default label of every connective.
type Table struct {
	arity         Arity
	coreAttribute string
	positions     []string
	connectives   []string // indexed by Pair.Index
	relational    bool
}

// Arity returns the table's arity.
func (t *Table) Arity() Arity { return t.arity }

// CoreAttribute returns the descriptive phrase for the arity.
func (t *Table) CoreAttribute() string { return t.coreAttribute }

// Relational reports whether connectives are edited and displayed for this arity.
func (t *Table) Relational() bool { return t.relational }

// Size returns N.
func (t *Table) Size() int { return len(t.positions) }

// Positions returns the canonical position labels in canonical order.
func (t *Table) Positions() []string {
	return slices.Clone(t.positions)
}

// Position returns the label at canonical index i.
func (t *Table) Position(i int) string {
	return t.positions[i]
}

// Pairs enumerates the table's pairs in row-major i<j order.
func (t *Table) Pairs() []Pair {
	return Pairs(len(t.positions))
}

// ConnectiveLabel returns the canonical default label for the pair (i, j).
// Either argument order is accepted.
func (t *Table) ConnectiveLabel(i, j int) (string, error) {
	p, err := NewPair(len(t.positions), i, j)
	if err != nil {
		return "", err
	}
	return t.connectives[p.Index(len(t.positions))], nil
}

// LookupTable returns the canonical table for a.
func LookupTable(a Arity) (*Table, error) {
	t, ok := tables[a]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedArity, int(a))
	}
	return t, nil
}

// MustTable is LookupTable for arities known at compile time.
func MustTable(a Arity) *Table {
	t, err := LookupTable(a)
	if err != nil {
		panic(err)
	}
	return t
}

// newTable builds a table. When curated is nil every connective gets a
// placeholder label derived from its endpoints.
func newTable(a Arity, core string, relational bool, positions []string, curated []string) *Table {
	if len(positions) != int(a) {
		panic(fmt.Sprintf("%s table: %d positions", a.Name(), len(positions)))
	}
	pairs := Pairs(len(positions))
	labels := make([]string, len(pairs))
	if curated != nil {
		if len(curated) != len(pairs) {
			panic(fmt.Sprintf("%s table: %d connective labels for %d pairs", a.Name(), len(curated), len(pairs)))
		}
		copy(labels, curated)
	} else {
		for _, p := range pairs {
			labels[p.Index(len(positions))] = placeholderLabel(p, positions)
		}
	}
	return &Table{
		arity:         a,
		coreAttribute: core,
		positions:     slices.Clone(positions),
		connectives:   labels,
		relational:    relational,
	}
}

// placeholderLabel renders "<PairCode>_<field1>_<field2>", e.g. "AB_resources_values".
func placeholderLabel(p Pair, positions []string) string {
	return p.Code() + "_" + fieldName(positions[p.I]) + "_" + fieldName(positions[p.J])
}

func fieldName(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "_")
}
