// Package builder populates systems by prompting for each field in turn.
package builder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/systematics/internal/domain"
	"github.com/alexanderramin/systematics/internal/prompt"
	"github.com/alexanderramin/systematics/internal/validate"
	"github.com/google/uuid"
)

// Builder runs the interactive construction protocol over a prompt session.
type Builder struct {
	session  *prompt.Session
	logger   *slog.Logger
	observer Observer
	profile  func(domain.Arity) Profile
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for warnings about substituted defaults.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithObserver sets the observer notified after every build.
func WithObserver(observer Observer) Option {
	return func(b *Builder) {
		if observer != nil {
			b.observer = observer
		}
	}
}

// WithProfiles replaces ProfileFor as the source of per-arity profiles.
func WithProfiles(fn func(domain.Arity) Profile) Option {
	return func(b *Builder) {
		if fn != nil {
			b.profile = fn
		}
	}
}

// New returns a builder that prompts over session.
func New(session *prompt.Session, opts ...Option) *Builder {
	b := &Builder{
		session:  session,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer: NoopObserver{},
		profile:  ProfileFor,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type state int

const (
	stateCollectName state = iota
	stateCollectTerm
	stateAskModifyConnectives
	stateAskRemoveAllConnectives
	stateIterateConnectives
	stateDone
)

// systemRun is the mutable state of one BuildSystem call.
type systemRun struct {
	*fieldReader

	table   *domain.Table
	profile Profile
	sys     *domain.System
	pairs   []domain.Pair
	term    int
	pair    int
}

// BuildSystem prompts for a name, every term and, for relational arities,
// the connectives of a new system over table. A read failure on a required
// field aborts with an error; no partially built system is returned.
func (b *Builder) BuildSystem(ctx context.Context, table *domain.Table) (*domain.System, error) {
	sys, err := domain.NewSystem(table, DefaultName(table.Arity()), make([]string, table.Size()))
	if err != nil {
		return nil, err
	}

	r := &systemRun{
		fieldReader: b.newFieldReader(ctx, "system", table.Arity()),
		table:       table,
		profile:     b.profile(table.Arity()),
		sys:         sys,
		pairs:       table.Pairs(),
	}

	r.session.Printf("\n--- Creating a %s ---\n", table.Arity().Name())

	st := stateCollectName
	for st != stateDone {
		st, err = r.step(st)
		if err != nil {
			b.finish(r.fieldReader, err)
			return nil, err
		}
	}

	b.finish(r.fieldReader, nil)
	return r.sys, nil
}

func (r *systemRun) step(st state) (state, error) {
	arity := r.table.Arity()

	switch st {
	case stateCollectName:
		r.sys.Name = r.optional("Name", fmt.Sprintf("Enter a name for your %s: ", arity.Name()), DefaultName(arity))
		r.term = 0
		if r.table.Size() == 0 {
			return stateDone, nil
		}
		return stateCollectTerm, nil

	case stateCollectTerm:
		position := r.table.Position(r.term)
		var value string
		if r.profile.TermPolicy == PolicyRequired {
			v, err := r.required(position, fmt.Sprintf("Enter %s's %s: ", arity.Name(), position))
			if err != nil {
				return stateDone, err
			}
			value = v
		} else {
			def := DefaultTerm(r.table, r.term)
			value = r.optional(position, fmt.Sprintf("Enter %s's %s [%s]: ", arity.Name(), position, def), def)
		}
		r.sys.SetTerm(r.term, value)

		r.term++
		if r.term < r.table.Size() {
			return stateCollectTerm, nil
		}
		if !r.table.Relational() || len(r.pairs) == 0 {
			return stateDone, nil
		}
		return stateAskModifyConnectives, nil

	case stateAskModifyConnectives:
		def := r.profile.ModifyConnectivesDefault
		modify := r.yesNo("Modify connectives", fmt.Sprintf("Would you like to modify the connectives? %s: ", prompt.YesNoHint(def)), def)
		if modify {
			r.pair = 0
			return stateIterateConnectives, nil
		}
		if r.profile.OfferClearAll {
			return stateAskRemoveAllConnectives, nil
		}
		return stateDone, nil

	case stateAskRemoveAllConnectives:
		if r.yesNo("Remove connectives", fmt.Sprintf("Remove all connectives? %s: ", prompt.YesNoHint(false)), false) {
			r.sys.ClearConnectives()
			r.event.Cleared = true
		}
		return stateDone, nil

	case stateIterateConnectives:
		p := r.pairs[r.pair]
		current, _ := r.sys.Connective(p.I, p.J)
		message := fmt.Sprintf("%s (%s: %s / %s) [%s]: ",
			current, p.Display(), r.table.Position(p.I), r.table.Position(p.J), current)
		value := r.optional(current, message, current)
		if value != current {
			r.sys.SetConnective(p.I, p.J, value)
			r.event.Overrides++
		}

		r.pair++
		if r.pair < len(r.pairs) {
			return stateIterateConnectives, nil
		}
		return stateDone, nil
	}

	return stateDone, fmt.Errorf("unknown builder state %d", st)
}

// BuildMonad prompts for a name and then terms until a blank line.
func (b *Builder) BuildMonad(ctx context.Context) (*domain.MonadSystem, error) {
	r := b.newFieldReader(ctx, "monad", domain.Monad)

	r.session.Println("\n--- Creating a Monad ---")
	m := domain.NewMonad(r.optional("Name", "Enter a name for your Monad: ", DefaultName(domain.Monad)))

	for {
		term, done := r.listItem("Term", "Enter a term (blank to finish): ")
		if done {
			break
		}
		m.AddTerm(term)
	}

	b.finish(r, nil)
	return m, nil
}

// PermutationTerms prompts for the initiating, colouring and outcome terms.
// All three are required.
func (b *Builder) PermutationTerms(ctx context.Context) (initiating, colouring, outcome string, err error) {
	r := b.newFieldReader(ctx, "permutations", domain.Triad)
	defer func() { b.finish(r, err) }()

	r.session.Println("\n--- Six Permutations Generator ---")
	if initiating, err = r.required("Initiating term", "Enter initiating term: "); err != nil {
		return "", "", "", err
	}
	if colouring, err = r.required("Colouring term", "Enter colouring term: "); err != nil {
		return "", "", "", err
	}
	if outcome, err = r.required("Outcome term", "Enter outcome term: "); err != nil {
		return "", "", "", err
	}
	return initiating, colouring, outcome, nil
}

func (b *Builder) finish(r *fieldReader, err error) {
	r.event.Err = err
	r.event.Duration = time.Since(r.event.StartedAt)
	b.observer.ObserveBuild(r.ctx, r.event)
}

// fieldReader applies field policies to prompted input and records what happened.
type fieldReader struct {
	ctx     context.Context
	session *prompt.Session
	logger  *slog.Logger
	event   BuildEvent
}

func (b *Builder) newFieldReader(ctx context.Context, kind string, arity domain.Arity) *fieldReader {
	id := uuid.NewString()
	return &fieldReader{
		ctx:     ctx,
		session: b.session,
		logger:  b.logger.With("session_id", id),
		event: BuildEvent{
			SessionID: id,
			Kind:      kind,
			Arity:     arity,
			StartedAt: time.Now(),
		},
	}
}

// optional returns the validated answer, or def when the answer is blank,
// invalid or could not be read.
func (f *fieldReader) optional(field, message, def string) string {
	f.event.Prompts++
	raw, err := f.session.Ask(message)
	if err != nil {
		f.event.Defaulted++
		f.logger.WarnContext(f.ctx, "input unavailable, using default", "field", field, "default", def, "error", err)
		return def
	}

	v, err := validate.Field(field, raw)
	switch {
	case errors.Is(err, validate.ErrEmpty):
		return def
	case err != nil:
		f.event.Rejected++
		f.event.Defaulted++
		f.logger.WarnContext(f.ctx, "invalid input, using default", "field", field, "default", def, "error", err)
		return def
	}
	return v
}

// required reprompts until a valid non-blank answer is entered.
func (f *fieldReader) required(field, message string) (string, error) {
	for {
		f.event.Prompts++
		raw, err := f.session.Ask(message)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", field, err)
		}

		v, err := validate.Field(field, raw)
		if err == nil {
			return v, nil
		}
		f.event.Rejected++
		f.session.Println(err.Error())
	}
}

// listItem reads one entry of an open-ended list. A blank line or the end
// of input finishes the list; invalid entries are reprompted.
func (f *fieldReader) listItem(field, message string) (string, bool) {
	for {
		f.event.Prompts++
		raw, err := f.session.Ask(message)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				f.logger.WarnContext(f.ctx, "input unavailable, ending list", "field", field, "error", err)
			}
			return "", true
		}

		v, err := validate.Field(field, raw)
		switch {
		case errors.Is(err, validate.ErrEmpty):
			return "", true
		case err != nil:
			f.event.Rejected++
			f.session.Println(err.Error())
			continue
		}
		return v, false
	}
}

// yesNo asks a yes/no question, falling back to def when input cannot be read.
func (f *fieldReader) yesNo(field, message string, def bool) bool {
	f.event.Prompts++
	answer, err := f.session.YesNo(message, def)
	if err != nil {
		f.event.Defaulted++
		f.logger.WarnContext(f.ctx, "input unavailable, using default", "field", field, "default", def, "error", err)
		return def
	}
	return answer
}
