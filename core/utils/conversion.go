package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// It handles standard integer types, floats, strings, and byte slices.
func ToInt(val any) int {
	i, _ := ParseInt(val)
	return i
}

// ParseInt converts val to an int and reports whether the value was numeric.
// Strings are trimmed first; fractional floats are truncated.
func ParseInt(val any) (int, bool) {
	switch v := val.(type) {
	case nil:
		return 0, false
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case int16:
		return int(v), true
	case int8:
		return int(v), true
	case uint:
		return int(v), true
	case uint64:
		return int(v), true
	case uint32:
		return int(v), true
	case uint16:
		return int(v), true
	case uint8:
		return int(v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case float32:
		return ParseInt(float64(v))
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return ParseInt(f)
		}
		return 0, false
	case []byte:
		return ParseInt(string(v))
	default:
		return ParseInt(fmt.Sprintf("%v", v))
	}
}

// ToString converts various types to string.
// Whole floats are rendered without a fractional part so that 101 and 101.0
// produce the same key.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return ToString(float64(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToKey converts an identifier of any representation to its canonical map key.
func ToKey(val any) string {
	return strings.TrimSpace(ToString(val))
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true", "yes").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8, float64, float32:
		return ToInt(v) == 1
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "1" || s == "true" || s == "yes"
	case []byte:
		return ToBool(string(v))
	default:
		return false
	}
}
