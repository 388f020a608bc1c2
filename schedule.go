package crontime

import (
	"strings"

	"go.uber.org/zap"
)

// Schedule is a parsed five-field cron expression: minute, hour,
// day-of-month, month and day-of-week. A point in time is included only
// when every field includes it.
//
// A Schedule is not safe for concurrent use while Parse may be running.
type Schedule struct {
	input  string
	fields [fieldCount]*Field
	logger *zap.Logger
}

// Option configures a Schedule.
type Option func(*Schedule)

// WithLogger sets the logger that receives non-fatal parse warnings, such
// as tokens ignored after a shortcut.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Schedule) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Schedule that matches every point in time.
func New(opts ...Option) *Schedule {
	s := &Schedule{
		input:  strings.TrimSpace(strings.Repeat("* ", fieldCount)),
		logger: zap.NewNop(),
	}
	for i := range s.fields {
		s.fields[i] = NewField(specs[i])
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse replaces the schedule's expression and returns its normalized form.
// Args are joined with spaces, so both Parse("0 9 * * mon-fri") and
// Parse("0", "9", "*", "*", "mon-fri") work.
//
// Parse is atomic: if any field fails, no field changes.
func (s *Schedule) Parse(args ...string) (string, error) {
	n := normalize(args)
	if len(n.ignored) > 0 {
		s.logger.Warn("extra tokens ignored",
			zap.String("input", strings.Join(args, " ")),
			zap.Strings("ignored", n.ignored),
		)
	}

	var states [fieldCount]fieldState
	for i, token := range n.tokens {
		state, err := compileField(specs[i], token)
		if err != nil {
			return "", err
		}
		states[i] = state
	}

	for i, state := range states {
		s.fields[i].set(n.tokens[i], state)
	}
	s.input = n.input
	return s.input, nil
}

// Input returns the normalized expression.
func (s *Schedule) Input() string { return s.input }

func (s *Schedule) String() string { return s.input }

// Field returns the field of the given kind, or nil for an unknown kind.
func (s *Schedule) Field(kind FieldKind) *Field {
	if kind < 0 || int(kind) >= fieldCount {
		return nil
	}
	return s.fields[kind]
}

// Fields returns the five fields in expression order.
func (s *Schedule) Fields() []*Field {
	return append([]*Field(nil), s.fields[:]...)
}

func (s *Schedule) Minutes() *Field   { return s.fields[Minutes] }
func (s *Schedule) Hours() *Field     { return s.fields[Hours] }
func (s *Schedule) MonthDays() *Field { return s.fields[MonthDays] }
func (s *Schedule) Months() *Field    { return s.fields[Months] }
func (s *Schedule) WeekDays() *Field  { return s.fields[WeekDays] }
