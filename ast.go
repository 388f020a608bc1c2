package crontime

// ClauseKind discriminates the range part of a clause.
type ClauseKind int

const (
	// ClauseWildcard is "*", the whole domain.
	ClauseWildcard ClauseKind = iota
	// ClauseSingle is a bare integer.
	ClauseSingle
	// ClauseRange is "low-high", inclusive.
	ClauseRange
)

func (k ClauseKind) String() string {
	switch k {
	case ClauseWildcard:
		return "wildcard"
	case ClauseSingle:
		return "single"
	case ClauseRange:
		return "range"
	default:
		return "unknown"
	}
}

// Clause is one comma-separated unit of a field expression.
type Clause struct {
	Kind ClauseKind
	// Low and High are set for ClauseSingle (equal) and ClauseRange.
	Low  int
	High int
	// Step keeps only values divisible by it; 0 means no step.
	Step int
	// Span locates the clause in the resolved field text.
	Span Span
}

// NewWildcard creates a "*" clause.
func NewWildcard() Clause {
	return Clause{Kind: ClauseWildcard}
}

// NewSingle creates a single-value clause.
func NewSingle(value int) Clause {
	return Clause{Kind: ClauseSingle, Low: value, High: value}
}

// NewRange creates an inclusive range clause. A range with low > high
// selects nothing.
func NewRange(low, high int) Clause {
	return Clause{Kind: ClauseRange, Low: low, High: high}
}

// WithStep returns a copy of c filtered to multiples of step.
func (c Clause) WithStep(step int) Clause {
	c.Step = step
	return c
}

// Bounds returns the inclusive range the clause covers before stepping.
func (c Clause) Bounds(spec *FieldSpec) (low, high int) {
	if c.Kind == ClauseWildcard {
		return spec.min, spec.max
	}
	return c.Low, c.High
}

// expand returns the in-domain values the clause selects. Literals outside
// the domain are accepted by the grammar but select nothing.
func (c Clause) expand(spec *FieldSpec) valueSet {
	low, high := c.Bounds(spec)
	low = max(low, spec.min)
	high = min(high, spec.max)

	var s valueSet
	for v := low; v <= high; v++ {
		if c.Step == 0 || v%c.Step == 0 {
			s.add(v)
		}
	}
	return s
}
