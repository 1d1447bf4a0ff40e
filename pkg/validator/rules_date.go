package validator

import "time"

// Date comparison rules. The value side accepts time.Time, epoch
// milliseconds, or an RFC 3339 string; the parameter side is a string
// carrying epoch milliseconds or an RFC 3339 timestamp. Either side failing
// to parse fails the rule.

func compareDates(value any, param string, cmp func(v, p time.Time) bool) bool {
	v, ok := toTime(value)
	if !ok {
		return false
	}
	p, ok := toTime(param)
	if !ok {
		return false
	}
	return cmp(v, p)
}

func isAfter(value any, param string) bool {
	return compareDates(value, param, func(v, p time.Time) bool { return v.After(p) })
}

func isAfterOrEqual(value any, param string) bool {
	return compareDates(value, param, func(v, p time.Time) bool { return !v.Before(p) })
}

func isBefore(value any, param string) bool {
	return compareDates(value, param, func(v, p time.Time) bool { return v.Before(p) })
}

func isBeforeOrEqual(value any, param string) bool {
	return compareDates(value, param, func(v, p time.Time) bool { return !v.After(p) })
}

// isDate checks that the value is an actual time.Time (or non-nil pointer to
// one); unlike the comparison rules it does not coerce timestamps or strings.
func isDate(value any, _ string) bool {
	switch t := value.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return false
}
