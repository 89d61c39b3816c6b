package dates_test

import (
	"testing"

	"github.com/paveg/zebras/internal/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		expected int64
	}{
		{"2010-12-13", 1292198400000},
		{"2010-12-15", 1292371200000},
		{" 2010-12-17 ", 1292544000000},
		{"2010-12-13T00:00:00Z", 1292198400000},
		{"2010-12-13T01:00:00+01:00", 1292198400000},
		{"2010-12-13 00:00:01", 1292198401000},
		{"1970-01-01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := dates.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "not a date", "2010-13-45"} {
		_, err := dates.Parse(in)
		assert.Error(t, err, in)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2010-12-13T00:00:00Z", dates.Format(1292198400000))
}
