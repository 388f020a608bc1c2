package crontime

import "iter"

// Field parses and matches one cron position against a FieldSpec.
//
// A new Field matches everything until Parse is called. Parse is atomic: on
// error the field keeps its previous expression.
type Field struct {
	spec     *FieldSpec
	input    string
	clauses  []Clause
	selected valueSet
	matchAll bool
}

// NewField creates a field over spec that matches everything. spec must not
// be nil.
func NewField(spec *FieldSpec) *Field {
	return &Field{
		spec:     spec,
		input:    "*",
		clauses:  []Clause{NewWildcard()},
		selected: spec.universal,
		matchAll: true,
	}
}

// ParseField creates a field over spec and parses expr into it.
func ParseField(spec *FieldSpec, expr string) (*Field, error) {
	if spec == nil {
		return nil, SpecError("nil field spec")
	}
	f := NewField(spec)
	if _, err := f.Parse(expr); err != nil {
		return nil, err
	}
	return f, nil
}

// fieldState is the result of parsing a field expression.
type fieldState struct {
	clauses  []Clause
	selected valueSet
	matchAll bool
}

func compileField(spec *FieldSpec, expr string) (fieldState, error) {
	clauses, err := parseClauses(spec, Numerise(spec, expr))
	if err != nil {
		return fieldState{}, err
	}

	var selected valueSet
	for _, clause := range clauses {
		selected |= clause.expand(spec)
	}

	return fieldState{
		clauses:  clauses,
		selected: selected,
		matchAll: selected == spec.universal,
	}, nil
}

// Parse replaces the field's expression and returns the selected values in
// ascending order.
func (f *Field) Parse(expr string) ([]int, error) {
	state, err := compileField(f.spec, expr)
	if err != nil {
		return nil, err
	}
	f.set(expr, state)
	return f.Selected(), nil
}

func (f *Field) set(expr string, state fieldState) {
	f.input = expr
	f.clauses = state.clauses
	f.selected = state.selected
	f.matchAll = state.matchAll
}

// Includes reports whether point is selected. A point outside the domain
// is an ErrOutOfRange error unless the field matches everything.
func (f *Field) Includes(point int) (bool, error) {
	if f.matchAll {
		return true, nil
	}
	if !f.spec.Contains(point) {
		return false, RangeError(f.spec.name, point, f.spec.min, f.spec.max)
	}
	return f.selected.has(point), nil
}

// IncludesValue is Includes for a name ("mon"), a numeric string, or any
// integer type. A negative value is an ErrOutOfRange error.
func (f *Field) IncludesValue(point any) (bool, error) {
	if f.matchAll {
		return true, nil
	}
	n, err := f.spec.resolveValue(point)
	if err != nil {
		return false, err
	}
	return f.Includes(n)
}

func (f *Field) Spec() *FieldSpec { return f.spec }
func (f *Field) Kind() FieldKind  { return f.spec.kind }
func (f *Field) Min() int         { return f.spec.min }
func (f *Field) Max() int         { return f.spec.max }

// Input returns the expression as supplied, before name resolution.
func (f *Field) Input() string { return f.input }

func (f *Field) String() string { return f.input }

// MatchAll reports whether the field selects its whole universal set.
func (f *Field) MatchAll() bool { return f.matchAll }

// Clauses returns a copy of the parsed clauses.
func (f *Field) Clauses() []Clause {
	return append([]Clause(nil), f.clauses...)
}

// Selected returns the selected values in ascending order.
func (f *Field) Selected() []int {
	return f.selected.slice()
}

// Values iterates the selected values in ascending order.
func (f *Field) Values() iter.Seq[int] {
	return f.selected.values()
}
