package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/systematics/internal/domain"
)

// FormatArities renders the supported arities as a table.
func FormatArities(tables []*domain.Table) string {
	headers := []string{"N", "System", "Connectives", "Core Attribute"}
	rows := make([][]string, 0, len(tables))
	for _, t := range tables {
		conns := Dim("--")
		if t.Relational() {
			conns = strconv.Itoa(t.Arity().PairCount())
		}
		rows = append(rows, []string{
			strconv.Itoa(int(t.Arity())),
			Bold(t.Arity().Name()),
			conns,
			t.CoreAttribute(),
		})
	}
	return RenderTable(headers, rows)
}

// FormatPositions renders the canonical position labels one per line, each
// prefixed by its letter.
func FormatPositions(table *domain.Table) string {
	var b strings.Builder
	for i, p := range table.Positions() {
		b.WriteString(Dim(domain.PositionLetter(i)) + " " + p + "\n")
	}
	return b.String()
}
