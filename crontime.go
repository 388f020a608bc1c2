// Package crontime parses cron-style time expressions and tests points in
// time against them.
//
// An expression has five whitespace-separated fields, or is a single
// shortcut token:
//
//	┌───────────── minute (0-59)
//	│ ┌───────────── hour (0-23)
//	│ │ ┌───────────── day of month (1-31)
//	│ │ │ ┌───────────── month (1-12 or jan-dec)
//	│ │ │ │ ┌───────────── day of week (0-6 or sun-sat, 0=Sunday)
//	│ │ │ │ │
//	* * * * *
//
// Each field is a comma-separated list of clauses. A clause is "*", a
// number, or a range "low-high", optionally followed by "/step", which keeps
// only the values divisible by step. Shortcuts are @yearly, @annually,
// @monthly, @weekly, @daily, @hourly and @minutely.
//
// All five fields must match; day-of-month and day-of-week are not OR'd.
// crontime does not compute fire times and does no time zone conversion.
//
// Example usage:
//
//	schedule, err := crontime.Parse("*/15 9-17 * * mon-fri")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if schedule.Matches(time.Now()) {
//	    fmt.Println("due")
//	}
package crontime

// Parse creates a Schedule from an expression.
func Parse(expr string, opts ...Option) (*Schedule, error) {
	s := New(opts...)
	if _, err := s.Parse(expr); err != nil {
		return nil, err
	}
	return s, nil
}

// MustParse creates a Schedule from an expression.
// It panics if the expression is invalid.
func MustParse(expr string) *Schedule {
	s, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks if an expression parses.
func Validate(expr string) bool {
	_, err := Parse(expr)
	return err == nil
}
