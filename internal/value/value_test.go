package value_test

import (
	"math"
	"testing"
	"time"

	"github.com/paveg/zebras/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestValue_ZeroIsMissing(t *testing.T) {
	var v value.Value
	assert.True(t, v.IsMissing())
	assert.Equal(t, value.KindMissing, v.Kind())
	assert.Equal(t, value.Missing(), v)
}

func TestValue_MissingIsDistinctFromFalsy(t *testing.T) {
	falsy := []value.Value{value.Number(0), value.Text(""), value.Bool(false)}
	for _, v := range falsy {
		assert.False(t, v.IsMissing(), "%s should not be missing", v.Kind())
		assert.NotEqual(t, value.Missing(), v)
	}
}

func TestValue_Float(t *testing.T) {
	tests := []struct {
		name     string
		in       value.Value
		expected float64
		ok       bool
	}{
		{"number", value.Number(2.5), 2.5, true},
		{"NaN number", value.Number(math.NaN()), 0, false},
		{"numeric text", value.Text(" 12 "), 12, true},
		{"float text", value.Text("1e3"), 1000, true},
		{"empty text", value.Text(""), 0, true},
		{"blank text", value.Text(" \t "), 0, true},
		{"word", value.Text("abc"), 0, false},
		{"NaN text", value.Text("NaN"), 0, false},
		{"true", value.Bool(true), 1, true},
		{"false", value.Bool(false), 0, true},
		{"missing", value.Missing(), 0, false},
		{"infinity", value.Number(math.Inf(1)), math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Float()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.ok, tt.in.IsNumeric())
		})
	}
}

func TestParseNumber(t *testing.T) {
	f, ok := value.ParseNumber(" 2.5 ")
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)

	for _, in := range []string{"", "   ", "abc", "NaN", "12abc"} {
		_, ok := value.ParseNumber(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestValue_Key(t *testing.T) {
	assert.Equal(t, "1", value.Int(1).Key())
	assert.Equal(t, "8.5", value.Number(8.5).Key())
	assert.Equal(t, "-0.25", value.Number(-0.25).Key())
	assert.Equal(t, "1e+21", value.Number(1e21).Key())
	assert.Equal(t, "Mon", value.Text("Mon").Key())
	assert.Equal(t, "true", value.Bool(true).Key())
	assert.Equal(t, value.MissingText, value.Missing().Key())
	assert.Equal(t, "NaN", value.Number(math.NaN()).Key())
	assert.Equal(t, "Infinity", value.Number(math.Inf(1)).Key())
}

func TestValue_Format(t *testing.T) {
	assert.Equal(t, "3.14159", value.Number(3.14159).Format(-1, "-"))
	assert.Equal(t, "3.14", value.Number(3.14159).Format(2, "-"))
	assert.Equal(t, "-", value.Missing().Format(2, "-"))
	assert.Equal(t, "abc", value.Text("abc").Format(2, "-"))
	assert.Equal(t, "false", value.Bool(false).Format(2, "-"))
}

func TestValue_FromAny(t *testing.T) {
	ts := time.Date(2010, 12, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		in       any
		expected value.Value
	}{
		{"nil", nil, value.Missing()},
		{"string", "7", value.Text("7")},
		{"bool", true, value.Bool(true)},
		{"int", 42, value.Int(42)},
		{"int64", int64(-3), value.Number(-3)},
		{"uint8", uint8(9), value.Number(9)},
		{"float32", float32(0.5), value.Number(0.5)},
		{"time", ts, value.Number(1292198400000)},
		{"value passthrough", value.Text("x"), value.Text("x")},
		{"unsupported", []int{1, 2}, value.Text("[1 2]")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, value.FromAny(tt.in))
		})
	}
}

func TestValue_Interface(t *testing.T) {
	assert.Equal(t, 1.5, value.Number(1.5).Interface())
	assert.Equal(t, "a", value.Text("a").Interface())
	assert.Equal(t, true, value.Bool(true).Interface())
	assert.Nil(t, value.Missing().Interface())
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, value.Number(math.NaN()).Equal(value.Number(math.NaN())))
	assert.True(t, value.Text("a").Equal(value.Text("a")))
	assert.False(t, value.Text("1").Equal(value.Number(1)))
	assert.False(t, value.Missing().Equal(value.Text("")))
}

func TestLess(t *testing.T) {
	assert.True(t, value.Less(value.Number(1), value.Number(2)))
	assert.True(t, value.Less(value.Text("5"), value.Number(math.Inf(1))))
	assert.False(t, value.Less(value.Text("abc"), value.Number(math.Inf(1))))
	assert.False(t, value.Less(value.Missing(), value.Number(3)))
	assert.False(t, value.Less(value.Number(2), value.Number(2)))
}
