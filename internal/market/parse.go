package market

import (
	"fmt"
	"strconv"
)

func floatField(row []any, idx int, name string) (float64, error) {
	f, ok := floatFromAny(row[idx])
	if !ok {
		return 0, &ValidationError{Field: name, Reason: fmt.Sprintf("cannot coerce %v to float", row[idx])}
	}
	return f, nil
}

func intField(row []any, idx int, name string) (int64, error) {
	n, ok := intFromAny(row[idx])
	if !ok {
		return 0, &ValidationError{Field: name, Reason: fmt.Sprintf("cannot coerce %v to integer", row[idx])}
	}
	return n, nil
}

func floatFromAny(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func intFromAny(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
