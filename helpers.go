package crontime

import (
	"reflect"
	"strconv"
	"time"

	"github.com/spf13/cast"
)

// timePoints extracts minute, hour, day-of-month, month (1-12) and weekday
// (Sunday=0) from t in its own location.
func timePoints(t time.Time) [fieldCount]int {
	return [fieldCount]int{
		t.Minute(),
		t.Hour(),
		t.Day(),
		int(t.Month()),
		int(t.Weekday()),
	}
}

// valueText renders a query value as text. time.Month and time.Weekday are
// rendered as numbers rather than through their String methods.
func valueText(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case time.Month:
		return strconv.Itoa(int(v)), nil
	case time.Weekday:
		return strconv.Itoa(int(v)), nil
	}
	return cast.ToStringE(value)
}

// flatten unpacks a single slice or array argument into its elements.
func flatten(values []any) []any {
	if len(values) != 1 {
		return values
	}
	if v, ok := values[0].([]any); ok {
		return v
	}

	v := reflect.ValueOf(values[0])
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = v.Index(i).Interface()
		}
		return out
	}
	return values
}
