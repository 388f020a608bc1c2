package crontime

import (
	"fmt"
	"strconv"
	"strings"
)

// Display renders the field as its name and sorted selected values, for
// example "minute=[0 15 30 45]".
func (f *Field) Display() string {
	return fmt.Sprintf("%s=%s", f.spec.name, formatValues(f.Selected()))
}

// Display renders every field's selected values in expression order.
func (s *Schedule) Display() string {
	parts := make([]string, len(s.fields))
	for i, field := range s.fields {
		parts[i] = field.Display()
	}
	return strings.Join(parts, " ")
}

// Canonical renders the parsed clauses of the field, with names resolved.
func (f *Field) Canonical() string {
	return formatClauses(f.clauses)
}

// Canonical renders the schedule from its parsed clauses, with names
// resolved and whitespace inside fields removed.
func (s *Schedule) Canonical() string {
	parts := make([]string, 0, len(s.fields))
	for _, field := range s.fields {
		if field.input == "" {
			break
		}
		parts = append(parts, field.Canonical())
	}
	return strings.Join(parts, " ")
}

func (c Clause) String() string {
	var sb strings.Builder
	switch c.Kind {
	case ClauseWildcard:
		sb.WriteString("*")
	case ClauseSingle:
		sb.WriteString(strconv.Itoa(c.Low))
	case ClauseRange:
		sb.WriteString(fmt.Sprintf("%d-%d", c.Low, c.High))
	}
	if c.Step > 0 {
		sb.WriteString(fmt.Sprintf("/%d", c.Step))
	}
	return sb.String()
}

func formatClauses(clauses []Clause) string {
	parts := make([]string, len(clauses))
	for i, c := range clauses {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
