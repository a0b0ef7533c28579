package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/systematics/internal/domain"
)

// NoConnective is printed in place of a cleared connective label.
const NoConnective = "no connective defined"

// FormatSystem renders a system report: name, core attribute, one line per
// position in canonical order and, for relational arities with at least one
// defined connective, one line per pair in row-major order.
func FormatSystem(sys *domain.System) string {
	table := sys.Table()
	arity := table.Arity()

	var b strings.Builder
	b.WriteString(Header(arity.Name() + " Details"))
	b.WriteString("\n")
	b.WriteString(labelLine(arity.Name()+" Name", sys.Name) + "\n")
	b.WriteString(labelLine("Core Attribute", table.CoreAttribute()) + "\n")

	for i, position := range table.Positions() {
		b.WriteString(labelLine(position, sys.Term(i)) + "\n")
	}

	if table.Relational() && sys.HasConnectives() {
		b.WriteString("\n")
		b.WriteString(Header("Connectives"))
		b.WriteString("\n")
		for _, c := range sys.Connectives() {
			b.WriteString(FormatConnective(sys, c) + "\n")
		}
	}

	return b.String()
}

// FormatConnective renders one pair as "term_i <--[label]--> term_j (A<>B)".
func FormatConnective(sys *domain.System, c domain.Connective) string {
	label := StylePurple.Render(c.Label)
	if !c.Defined {
		label = Dim(NoConnective)
	}
	return fmt.Sprintf("%s <--[%s]--> %s %s",
		sys.Term(c.Pair.I), label, sys.Term(c.Pair.J), Dim("("+c.Pair.Display()+")"))
}

// FormatMonad renders a monad and its terms.
func FormatMonad(m *domain.MonadSystem) string {
	var b strings.Builder
	b.WriteString(Header("Monad Details"))
	b.WriteString("\n")
	b.WriteString(labelLine("Monad Name", m.Name) + "\n")
	b.WriteString(labelLine("Core Attribute", m.CoreAttribute()) + "\n")

	if !m.HasTerms() {
		b.WriteString(Dim("No terms added.") + "\n")
		return b.String()
	}

	terms := m.Terms()
	b.WriteString(labelLine("Terms", Pluralize(len(terms), "term", "terms")) + "\n")
	for i, t := range terms {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, t)
	}
	return b.String()
}

// FormatPermutations renders the six permutations of three terms.
func FormatPermutations(a, b, c string, perms []domain.Permutation) string {
	var body strings.Builder
	fmt.Fprintf(&body, "For terms: %s\n\n", quoteList(a, b, c))
	for i, p := range perms {
		fmt.Fprintf(&body, "%d. %s", i+1, p.String())
		if i < len(perms)-1 {
			body.WriteString("\n")
		}
	}
	return RenderBox("Six Permutations", body.String()) + "\n"
}
