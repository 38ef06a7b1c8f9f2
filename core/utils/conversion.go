package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToAmount converts a decoded quantity to an int.
// It accepts integer types, integral floats, json.Number and numeric strings,
// and reports false for fractions, NaN, infinities, values outside the int32
// range and anything else.
func ToAmount(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return intAmount(int64(v))
	case int64:
		return intAmount(v)
	case int32:
		return int(v), true
	case uint:
		return uintAmount(uint64(v))
	case uint64:
		return uintAmount(v)
	case uint32:
		return uintAmount(uint64(v))
	case float64:
		return floatAmount(v)
	case float32:
		return floatAmount(float64(v))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return intAmount(i)
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return floatAmount(f)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return intAmount(i)
	default:
		return 0, false
	}
}

func intAmount(i int64) (int, bool) {
	if i > math.MaxInt32 || i < math.MinInt32 {
		return 0, false
	}
	return int(i), true
}

func uintAmount(u uint64) (int, bool) {
	if u > math.MaxInt32 {
		return 0, false
	}
	return int(u), true
}

func floatAmount(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true", "yes").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, uint, uint64, uint32, float64, json.Number:
		n, ok := ToAmount(v)
		return ok && n == 1
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "1" || s == "true" || s == "yes"
	case []byte:
		return ToBool(string(v))
	default:
		return false
	}
}
