package builder

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/systematics/internal/domain"
	"github.com/alexanderramin/systematics/internal/validate"
)

// Draft holds raw field values collected outside the prompt loop, such as
// from a form. Empty strings mean "not entered".
type Draft struct {
	Name  string
	Terms []string

	// Connectives holds one override per pair in row-major order. It may be
	// nil when the user chose not to modify connectives.
	Connectives []string

	ClearConnectives bool
}

// Assemble applies the same field policies as BuildSystem to an already
// collected draft. Required terms that are blank or invalid are reported
// as errors rather than reprompted.
func Assemble(table *domain.Table, profile Profile, d Draft) (*domain.System, error) {
	if len(d.Terms) != table.Size() {
		return nil, fmt.Errorf("%w: %s needs %d terms, got %d", domain.ErrTermCount, table.Arity().Name(), table.Size(), len(d.Terms))
	}

	name, err := validate.Text(d.Name)
	if err != nil {
		name = DefaultName(table.Arity())
	}

	terms := make([]string, table.Size())
	var errs []error
	for i, raw := range d.Terms {
		v, err := validate.Field(table.Position(i), raw)
		switch {
		case err == nil:
			terms[i] = v
		case profile.TermPolicy == PolicyRequired:
			errs = append(errs, err)
		default:
			terms[i] = DefaultTerm(table, i)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	sys, err := domain.NewSystem(table, name, terms)
	if err != nil {
		return nil, err
	}
	if !table.Relational() {
		return sys, nil
	}

	if d.ClearConnectives {
		sys.ClearConnectives()
		return sys, nil
	}
	for k, p := range table.Pairs() {
		if k >= len(d.Connectives) {
			break
		}
		if v, err := validate.Text(d.Connectives[k]); err == nil {
			sys.SetConnective(p.I, p.J, v)
		}
	}
	return sys, nil
}
