package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/systematics/internal/builder"
	"github.com/alexanderramin/systematics/internal/cli/formatter"
	"github.com/alexanderramin/systematics/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// systematicsHuhTheme returns a huh theme using the formatter palette.
func systematicsHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// systemForm holds the values bound to a system form's fields.
type systemForm struct {
	table   *domain.Table
	profile builder.Profile

	name        string
	terms       []string
	modify      bool
	connectives []string
	clearAll    bool
}

func newSystemForm(table *domain.Table, profile builder.Profile) *systemForm {
	return &systemForm{
		table:       table,
		profile:     profile,
		terms:       make([]string, table.Size()),
		modify:      profile.ModifyConnectivesDefault,
		connectives: make([]string, len(table.Pairs())),
	}
}

// build lays out the form: name and terms first, then the connective
// questions for relational arities.
func (f *systemForm) build() *huh.Form {
	arity := f.table.Arity()
	relational := f.table.Relational() && len(f.connectives) > 0

	fields := []huh.Field{
		optionalInput(fmt.Sprintf("%s name", arity.Name()), builder.DefaultName(arity), &f.name),
	}
	for i, pos := range f.table.Positions() {
		if f.profile.TermPolicy == builder.PolicyRequired {
			fields = append(fields, requiredInput(pos, &f.terms[i]))
		} else {
			fields = append(fields, optionalInput(pos, builder.DefaultTerm(f.table, i), &f.terms[i]))
		}
	}
	groups := []*huh.Group{
		huh.NewGroup(fields...).Title(fmt.Sprintf("Creating a %s", arity.Name())),
	}
	if !relational {
		return f.themed(groups)
	}

	groups = append(groups,
		huh.NewGroup(confirmField("Would you like to modify the connectives?", &f.modify)),
	)

	conns := make([]huh.Field, 0, len(f.connectives))
	for k, p := range f.table.Pairs() {
		label, _ := f.table.ConnectiveLabel(p.I, p.J)
		title := fmt.Sprintf("%s (%s: %s / %s)", label, p.Display(), f.table.Position(p.I), f.table.Position(p.J))
		conns = append(conns, optionalInput(title, label, &f.connectives[k]))
	}
	groups = append(groups,
		huh.NewGroup(conns...).
			Title("Connectives").
			WithHideFunc(func() bool { return !f.modify }),
	)

	if f.profile.OfferClearAll {
		groups = append(groups,
			huh.NewGroup(confirmField("Remove all connectives?", &f.clearAll)).
				WithHideFunc(func() bool { return f.modify }),
		)
	}
	return f.themed(groups)
}

func (f *systemForm) themed(groups []*huh.Group) *huh.Form {
	return huh.NewForm(groups...).
		WithTheme(systematicsHuhTheme()).
		WithShowHelp(false).
		WithProgramOptions(tea.WithAltScreen())
}

// draft converts the submitted values for builder.Assemble.
func (f *systemForm) draft() builder.Draft {
	d := builder.Draft{
		Name:  f.name,
		Terms: f.terms,
	}
	if f.modify {
		d.Connectives = f.connectives
	} else {
		d.ClearConnectives = f.clearAll
	}
	return d
}

// runSystemForm collects a system through a full-screen form over the
// command's streams.
func runSystemForm(ctx context.Context, cmd *cobra.Command, table *domain.Table) (*domain.System, error) {
	profile := builder.ProfileFor(table.Arity())
	sf := newSystemForm(table, profile)

	form := sf.build().
		WithInput(cmd.InOrStdin()).
		WithOutput(cmd.OutOrStdout())
	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}
	return builder.Assemble(table, profile, sf.draft())
}
