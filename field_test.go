package crontime

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseField(t *testing.T, kind FieldKind, expr string) *Field {
	t.Helper()
	f, err := ParseField(SpecFor(kind), expr)
	require.NoError(t, err, "ParseField(%s, %q)", kind, expr)
	return f
}

func TestNewFieldMatchesEverything(t *testing.T) {
	for kind := Minutes; kind <= WeekDays; kind++ {
		t.Run(kind.String(), func(t *testing.T) {
			f := NewField(SpecFor(kind))
			assert.True(t, f.MatchAll())
			assert.Equal(t, "*", f.Input())
			assert.Equal(t, SpecFor(kind).Universal(), f.Selected())
		})
	}
}

func TestFieldSingleValues(t *testing.T) {
	for kind := Minutes; kind <= WeekDays; kind++ {
		spec := SpecFor(kind)
		for n := spec.Min(); n <= spec.Max(); n++ {
			f := mustParseField(t, kind, strconv.Itoa(n))
			for m := spec.Min(); m <= spec.Max(); m++ {
				ok, err := f.Includes(m)
				require.NoError(t, err)
				assert.Equal(t, m == n, ok, "%s %d includes %d", kind, n, m)
			}
		}
	}
}

func TestFieldWildcard(t *testing.T) {
	for kind := Minutes; kind <= WeekDays; kind++ {
		f := mustParseField(t, kind, "*")
		assert.True(t, f.MatchAll(), kind.String())
		for x := f.Min(); x <= f.Max(); x++ {
			ok, err := f.Includes(x)
			require.NoError(t, err)
			assert.True(t, ok)
		}
	}
}

func TestFieldSelections(t *testing.T) {
	tests := []struct {
		name string
		kind FieldKind
		expr string
		want []int
	}{
		{"range", MonthDays, "3-6", []int{3, 4, 5, 6}},
		{"inverted_range_is_empty", MonthDays, "6-3", []int{}},
		{"step_minutes", Minutes, "*/15", []int{0, 15, 30, 45}},
		{"step_is_divisibility", MonthDays, "*/10", []int{10, 20, 30}},
		{"step_over_range", Minutes, "1-10/3", []int{3, 6, 9}},
		{"union", MonthDays, "1,3,5-7", []int{1, 3, 5, 6, 7}},
		{"overlapping_union", Hours, "1-3,2-4", []int{1, 2, 3, 4}},
		{"month_names", Months, "JAN,mar", []int{1, 3}},
		{"month_name_range", Months, "nov-dec", []int{11, 12}},
		{"weekday_names", WeekDays, "mon-fri", []int{1, 2, 3, 4, 5}},
		{"weekday_names_step", WeekDays, "sun-sat/2", []int{0, 2, 4, 6}},
		{"out_of_domain_literal", Minutes, "99", []int{}},
		{"partly_out_of_domain", Hours, "20-30", []int{20, 21, 22, 23}},
		{"below_domain", MonthDays, "0", []int{}},
		{"spaces_around_separators", Minutes, "1 , 2 / 2", []int{1, 2}},
		{"non_numeric_step_ignored", Hours, "1-3/x", []int{1, 2, 3}},
		{"empty", Minutes, "", []int{}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := mustParseField(t, test.kind, test.expr)
			assert.Equal(t, test.want, f.Selected())
		})
	}
}

func TestFieldMatchAllFromEquivalentExpression(t *testing.T) {
	assert.True(t, mustParseField(t, WeekDays, "0-6").MatchAll())
	assert.True(t, mustParseField(t, WeekDays, "sun-wed,thu-sat").MatchAll())
	assert.True(t, mustParseField(t, Minutes, "*/1").MatchAll())
	assert.False(t, mustParseField(t, Minutes, "*/2").MatchAll())
	assert.False(t, mustParseField(t, Minutes, "").MatchAll())
}

func TestFieldOutOfRange(t *testing.T) {
	f := mustParseField(t, Minutes, "0")

	for _, point := range []int{-1, 60, 70} {
		ok, err := f.Includes(point)
		assert.False(t, ok)
		require.ErrorIs(t, err, ErrOutOfRange)

		var cronErr *Error
		require.ErrorAs(t, err, &cronErr)
		assert.Equal(t, point, cronErr.Value)
		assert.Equal(t, "minute", cronErr.Field)
	}
}

func TestFieldMatchAllSkipsRangeCheck(t *testing.T) {
	f := mustParseField(t, Minutes, "*")
	ok, err := f.Includes(70)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFieldOutOfDomainLiteralNeverMatches(t *testing.T) {
	f := mustParseField(t, Months, "0")
	for m := 1; m <= 12; m++ {
		ok, err := f.Includes(m)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestFieldIncludesValue(t *testing.T) {
	f := mustParseField(t, WeekDays, "mon-fri")

	tests := []struct {
		value any
		want  bool
	}{
		{"mon", true},
		{"SAT", false},
		{"3", true},
		{0, false},
		{int64(5), true},
	}
	for _, test := range tests {
		ok, err := f.IncludesValue(test.value)
		require.NoError(t, err, "%v", test.value)
		assert.Equal(t, test.want, ok, "%v", test.value)
	}

	_, err := f.IncludesValue("someday")
	assert.ErrorIs(t, err, ErrInvalidTime)

	for _, value := range []any{9, -1, "-1", int64(-5)} {
		ok, err := f.IncludesValue(value)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrOutOfRange, "%v", value)
	}
}

func TestFieldIncludesAgreesWithIncludesValue(t *testing.T) {
	f := mustParseField(t, Minutes, "0")

	_, err := f.Includes(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = f.IncludesValue(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestParseFieldNilSpec(t *testing.T) {
	f, err := ParseField(SpecFor(FieldKind(9)), "*")
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestFieldParseIsAtomic(t *testing.T) {
	f := mustParseField(t, Hours, "9-17")

	_, err := f.Parse("9,abc")
	require.ErrorIs(t, err, ErrInvalidClause)

	assert.Equal(t, "9-17", f.Input())
	assert.Equal(t, []int{9, 10, 11, 12, 13, 14, 15, 16, 17}, f.Selected())
}

func TestFieldParseReturnsSelected(t *testing.T) {
	f := NewField(SpecFor(Minutes))
	selected, err := f.Parse("*/20")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 20, 40}, selected)
	assert.False(t, f.MatchAll())
}

func TestFieldKeepsInputBeforeNameResolution(t *testing.T) {
	f := mustParseField(t, Months, "Jan-Mar")
	assert.Equal(t, "Jan-Mar", f.Input())
	assert.Equal(t, "Jan-Mar", f.String())
	assert.Equal(t, "1-3", f.Canonical())
}

func TestFieldCustomSpec(t *testing.T) {
	spec, err := NewFieldSpec("quarter", 1, 4, WithNames(map[string]int{"q": 1, "Qq": 2}))
	require.NoError(t, err)

	f, err := ParseField(spec, "q,qq")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, f.Selected())
	assert.Equal(t, CustomField, f.Kind())

	_, err = f.Includes(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFieldUniversalOverride(t *testing.T) {
	spec, err := NewFieldSpec("workday", 0, 6, WithUniversal(1, 2, 3, 4, 5))
	require.NoError(t, err)

	f := mustParseCustom(t, spec, "1-5")
	assert.True(t, f.MatchAll())

	// The match-all fast path answers before looking at the value.
	ok, err := f.Includes(0)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.False(t, mustParseCustom(t, spec, "0-6").MatchAll())
}

func mustParseCustom(t *testing.T, spec *FieldSpec, expr string) *Field {
	t.Helper()
	f, err := ParseField(spec, expr)
	require.NoError(t, err)
	return f
}

func TestFieldDisplay(t *testing.T) {
	assert.Equal(t, "minute=[0 15 30 45]", mustParseField(t, Minutes, "45,30,*/15").Display())
	assert.Equal(t, "month=[]", mustParseField(t, Months, "13").Display())
}

func TestFieldClauses(t *testing.T) {
	f := mustParseField(t, Minutes, "*/15,5")
	clauses := f.Clauses()
	require.Len(t, clauses, 2)
	assert.Equal(t, ClauseWildcard, clauses[0].Kind)
	assert.Equal(t, 15, clauses[0].Step)
	assert.Equal(t, ClauseSingle, clauses[1].Kind)

	// Returned slice is a copy.
	clauses[0].Step = 1
	assert.Equal(t, 15, f.Clauses()[0].Step)
}
