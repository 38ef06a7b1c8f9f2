package utils

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToAmount(t *testing.T) {
	tests := []struct {
		name   string
		val    any
		want   int
		wantOK bool
	}{
		{"Int", 3, 3, true},
		{"Negative", -2, -2, true},
		{"IntegralFloat", 4.0, 4, true},
		{"Fraction", 1.5, 0, false},
		{"NaN", math.NaN(), 0, false},
		{"Inf", math.Inf(1), 0, false},
		{"Huge", 1e18, 0, false},
		{"JSONNumber", json.Number("7"), 7, true},
		{"JSONFraction", json.Number("7.25"), 0, false},
		{"JSONNumberMaxInt32", json.Number("2147483647"), math.MaxInt32, true},
		{"JSONNumberTooLarge", json.Number("9223372036854775807"), 0, false},
		{"Int64TooLarge", int64(math.MaxInt64), 0, false},
		{"IntTooSmall", math.MinInt, 0, false},
		{"Uint64TooLarge", uint64(math.MaxUint64), 0, false},
		{"StringTooLarge", "10000000000", 0, false},
		{"String", " 12 ", 12, true},
		{"BadString", "twelve", 0, false},
		{"Nil", nil, 0, false},
		{"Bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToAmount(tt.val)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("YES"))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool([]byte("1")))
	assert.False(t, ToBool("false"))
	assert.True(t, ToBool(json.Number("1")))
	assert.False(t, ToBool(2))
	assert.False(t, ToBool(nil))
}

func TestOptional(t *testing.T) {
	assert.Nil(t, OptString(""))
	assert.Equal(t, "x", *OptString("x"))
	assert.Equal(t, 5, *Ptr(5))
	assert.Equal(t, "", Deref[string](nil))
	assert.Equal(t, "y", Deref(Ptr("y")))
}
