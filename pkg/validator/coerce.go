package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// stringify narrows scalar input to text. Composite values are rejected.
func stringify(input any) (string, bool) {
	switch v := input.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

// numeric narrows input to a finite float64. Empty reports absent input:
// nil or a blank string.
func numeric(input any) (value float64, empty, ok bool) {
	switch v := input.(type) {
	case nil:
		return 0, true, true
	case string:
		return parseNumber(v)
	case json.Number:
		return parseNumber(v.String())
	case float64:
		return v, false, finite(v)
	case float32:
		return float64(v), false, finite(float64(v))
	case int, int8, int16, int32, int64:
		return float64(reflect.ValueOf(v).Int()), false, true
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(v).Uint()), false, true
	default:
		return 0, false, false
	}
}

func parseNumber(s string) (float64, bool, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(f) {
		return 0, false, false
	}
	return f, false, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func formatLimit(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
