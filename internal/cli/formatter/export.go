package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/systematics/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format selects how a result is written.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts text, yaml, yml or json in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown format %q (expected text, yaml or json)", s)
}

// SystemDoc is the exported shape of a system.
type SystemDoc struct {
	System        string          `yaml:"system" json:"system"`
	Arity         int             `yaml:"arity" json:"arity"`
	Name          string          `yaml:"name" json:"name"`
	CoreAttribute string          `yaml:"core_attribute" json:"core_attribute"`
	Terms         []TermDoc       `yaml:"terms" json:"terms"`
	Connectives   []ConnectiveDoc `yaml:"connectives,omitempty" json:"connectives,omitempty"`
}

// TermDoc is one position and its value.
type TermDoc struct {
	Position string `yaml:"position" json:"position"`
	Value    string `yaml:"value" json:"value"`
}

// ConnectiveDoc is one pair and its label. Label is empty when the
// connective has been cleared.
type ConnectiveDoc struct {
	Pair    string `yaml:"pair" json:"pair"`
	From    string `yaml:"from" json:"from"`
	To      string `yaml:"to" json:"to"`
	Label   string `yaml:"label,omitempty" json:"label,omitempty"`
	Defined bool   `yaml:"defined" json:"defined"`
}

// NewSystemDoc converts a system to its exported shape. Connectives are
// included for relational arities only.
func NewSystemDoc(sys *domain.System) SystemDoc {
	table := sys.Table()
	doc := SystemDoc{
		System:        table.Arity().Name(),
		Arity:         int(table.Arity()),
		Name:          sys.Name,
		CoreAttribute: table.CoreAttribute(),
	}
	for i, p := range table.Positions() {
		doc.Terms = append(doc.Terms, TermDoc{Position: p, Value: sys.Term(i)})
	}
	if table.Relational() {
		for _, c := range sys.Connectives() {
			cd := ConnectiveDoc{
				Pair:    c.Pair.Display(),
				From:    sys.Term(c.Pair.I),
				To:      sys.Term(c.Pair.J),
				Defined: c.Defined,
			}
			if c.Defined {
				cd.Label = c.Label
			}
			doc.Connectives = append(doc.Connectives, cd)
		}
	}
	return doc
}

// WriteSystem writes sys to w in the requested format.
func WriteSystem(w io.Writer, sys *domain.System, format Format) error {
	switch format {
	case FormatYAML, FormatJSON:
		return encode(w, NewSystemDoc(sys), format)
	default:
		_, err := io.WriteString(w, FormatSystem(sys))
		return err
	}
}

// PositionsDoc is the exported canonical label list consumed by diagram front-ends.
type PositionsDoc struct {
	System    string   `yaml:"system" json:"system"`
	Arity     int      `yaml:"arity" json:"arity"`
	Positions []string `yaml:"positions" json:"positions"`
}

// WritePositions writes the canonical labels of table to w.
func WritePositions(w io.Writer, table *domain.Table, format Format) error {
	switch format {
	case FormatYAML, FormatJSON:
		return encode(w, PositionsDoc{
			System:    table.Arity().Name(),
			Arity:     int(table.Arity()),
			Positions: table.Positions(),
		}, format)
	default:
		_, err := io.WriteString(w, FormatPositions(table))
		return err
	}
}

func encode(w io.Writer, v any, format Format) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
