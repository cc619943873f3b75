package utils_test

import (
	"testing"

	"park-sync/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		want  int
		valid bool
	}{
		{"Int", 12, 12, true},
		{"Float", float64(45), 45, true},
		{"NumericString", " 30 ", 30, true},
		{"FloatString", "12.0", 12, true},
		{"Negative", "-1", -1, true},
		{"Text", "closed", 0, false},
		{"Nil", nil, 0, false},
		{"Bytes", []byte("7"), 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := utils.ParseInt(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestToKey(t *testing.T) {
	assert.Equal(t, "101", utils.ToKey(101))
	assert.Equal(t, "101", utils.ToKey(float64(101)))
	assert.Equal(t, "101", utils.ToKey(" 101 "))
	assert.Equal(t, "1.5", utils.ToKey(1.5))
	assert.Equal(t, "", utils.ToKey(nil))
}

func TestToBool(t *testing.T) {
	assert.True(t, utils.ToBool(true))
	assert.True(t, utils.ToBool(1))
	assert.True(t, utils.ToBool("TRUE"))
	assert.True(t, utils.ToBool(float64(1)))
	assert.False(t, utils.ToBool("0"))
	assert.False(t, utils.ToBool(nil))
}
