package crontime

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// FieldKind identifies one of the five cron positions.
type FieldKind int

const (
	Minutes FieldKind = iota
	Hours
	MonthDays
	Months
	WeekDays
)

// CustomField is the kind of every spec built with NewFieldSpec.
const CustomField FieldKind = -1

const fieldCount = 5

func (k FieldKind) String() string {
	switch k {
	case Minutes:
		return "minute"
	case Hours:
		return "hour"
	case MonthDays:
		return "day-of-month"
	case Months:
		return "month"
	case WeekDays:
		return "day-of-week"
	default:
		return "custom"
	}
}

// FieldSpec is the immutable metadata of a field kind: its inclusive domain,
// an optional name table, and the set of values that counts as "everything".
type FieldSpec struct {
	kind      FieldKind
	name      string
	min       int
	max       int
	names     map[string]int
	universal valueSet
}

// SpecOption configures a FieldSpec built with NewFieldSpec.
type SpecOption func(*specConfig)

type specConfig struct {
	names     map[string]int
	universal []int
}

// WithNames attaches a name table. Keys are matched case-insensitively and
// must be purely alphabetic.
func WithNames(names map[string]int) SpecOption {
	return func(c *specConfig) {
		c.names = names
	}
}

// WithUniversal overrides the set of values a field must select to be
// treated as matching everything. It defaults to the whole domain.
func WithUniversal(values ...int) SpecOption {
	return func(c *specConfig) {
		c.universal = values
	}
}

// NewFieldSpec builds a custom field spec over the inclusive domain
// [min, max], which must lie within 0..63.
func NewFieldSpec(name string, min, max int, opts ...SpecOption) (*FieldSpec, error) {
	if min < 0 || max > maxDomainValue || min > max {
		return nil, SpecError(fmt.Sprintf("domain %d..%d for %s field must lie within 0..%d", min, max, name, maxDomainValue))
	}

	var cfg specConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	spec := &FieldSpec{
		kind:      CustomField,
		name:      name,
		min:       min,
		max:       max,
		universal: rangeSet(min, max),
	}

	if len(cfg.names) > 0 {
		spec.names = make(map[string]int, len(cfg.names))
		for key, value := range cfg.names {
			lower := strings.ToLower(key)
			if lower == "" || strings.IndexFunc(lower, func(r rune) bool { return r < 'a' || r > 'z' }) >= 0 {
				return nil, SpecError(fmt.Sprintf("name %q for %s field must be alphabetic", key, name))
			}
			if value < min || value > max {
				return nil, SpecError(fmt.Sprintf("name %q maps to %d, outside %d..%d", key, value, min, max))
			}
			spec.names[lower] = value
		}
	}

	if cfg.universal != nil {
		var universal valueSet
		for _, value := range cfg.universal {
			if value < min || value > max {
				return nil, SpecError(fmt.Sprintf("universal value %d outside %d..%d", value, min, max))
			}
			universal.add(value)
		}
		spec.universal = universal
	}

	return spec, nil
}

// Kind returns the field kind, or CustomField.
func (s *FieldSpec) Kind() FieldKind { return s.kind }

// Name returns the display name used in errors and renderings.
func (s *FieldSpec) Name() string { return s.name }

// Min returns the lower domain bound.
func (s *FieldSpec) Min() int { return s.min }

// Max returns the upper domain bound.
func (s *FieldSpec) Max() int { return s.max }

// Contains reports whether value lies within the domain.
func (s *FieldSpec) Contains(value int) bool {
	return value >= s.min && value <= s.max
}

// Lookup resolves a name (case insensitive) to its number.
func (s *FieldSpec) Lookup(name string) (int, bool) {
	v, ok := s.names[strings.ToLower(name)]
	return v, ok
}

// Names returns the recognized names in ascending numeric order.
func (s *FieldSpec) Names() []string {
	names := slices.Collect(maps.Keys(s.names))
	slices.SortFunc(names, func(a, b string) int {
		if d := s.names[a] - s.names[b]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	return names
}

// Universal returns the "matches everything" set in ascending order.
func (s *FieldSpec) Universal() []int {
	return s.universal.slice()
}

var monthNames = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4,
	"may": 5, "jun": 6, "jul": 7, "aug": 8,
	"sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var weekdayNames = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3,
	"thu": 4, "fri": 5, "sat": 6,
}

// specs is the registry of the five standard field kinds, indexed by kind.
var specs = [fieldCount]*FieldSpec{
	Minutes:   standardSpec(Minutes, 0, 59, nil),
	Hours:     standardSpec(Hours, 0, 23, nil),
	MonthDays: standardSpec(MonthDays, 1, 31, nil),
	Months:    standardSpec(Months, 1, 12, monthNames),
	WeekDays:  standardSpec(WeekDays, 0, 6, weekdayNames),
}

func standardSpec(kind FieldKind, min, max int, names map[string]int) *FieldSpec {
	return &FieldSpec{
		kind:      kind,
		name:      kind.String(),
		min:       min,
		max:       max,
		names:     names,
		universal: rangeSet(min, max),
	}
}

// SpecFor returns the shared spec of a standard field kind, or nil for an
// unknown kind.
func SpecFor(kind FieldKind) *FieldSpec {
	if kind < 0 || int(kind) >= fieldCount {
		return nil
	}
	return specs[kind]
}
